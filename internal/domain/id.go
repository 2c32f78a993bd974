package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID идентификатор ресурса backend
// API отдает идентификаторы то числом, то строкой, поэтому принимаем оба варианта
type ID string

// String возвращает строковое представление
func (id ID) String() string {
	return string(id)
}

// IsZero возвращает true для пустого идентификатора
func (id ID) IsZero() bool {
	return id == ""
}

// IDFromInt создает ID из числа
func IDFromInt(v int64) ID {
	return ID(strconv.FormatInt(v, 10))
}

// MarshalJSON сериализует числовые идентификаторы числом, остальные строкой
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON принимает число, строку или null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}
