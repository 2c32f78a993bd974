package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator проверка форм перед отправкой в API
// Имена полей в ошибках берутся из json тегов
type Validator struct {
	v *validator.Validate
}

// New создает валидатор
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{v: v}
}

// FieldErrors ошибки формы по полям
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e[name])
	}
	return strings.Join(msgs, ", ")
}

// Struct проверяет структуру
// Возвращает FieldErrors, либо исходную ошибку валидатора, если структура не поддерживается
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, ok := fields[fe.Field()]; ok {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("Le champ %s est obligatoire", field)
	case "email":
		return "Adresse email invalide"
	case "eqfield":
		return "Les mots de passe ne correspondent pas"
	case "min":
		return fmt.Sprintf("Le champ %s doit contenir au moins %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Le champ %s ne doit pas dépasser %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("Le champ %s doit être supérieur ou égal à %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Valeur invalide pour %s", field)
	case "datetime":
		return fmt.Sprintf("Format invalide pour %s (attendu %s)", field, fe.Param())
	case "url":
		return fmt.Sprintf("URL invalide pour %s", field)
	default:
		return fmt.Sprintf("Valeur invalide pour %s", field)
	}
}
