package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore хранилище сессии в JSON файле
// Аналог localStorage: файл перечитывается при каждом обращении,
// поэтому разные процессы видят записи друг друга при следующем чтении.
// Межпроцессной блокировки нет, последняя запись побеждает.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore создает хранилище поверх файла path
// Файл и каталог создаются при первой записи
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path путь к файлу сессии
func (s *FileStore) Path() string {
	return s.path
}

// Get возвращает значение ключа; ok=false если ключ или файл отсутствует
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set записывает значение
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readForWrite()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

// Remove удаляет ключ
func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.write(values)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrBackend, s.path, err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptedFile, s.path, err)
	}
	return values, nil
}

// readForWrite как read, но поврежденный файл заменяется пустым набором:
// восстановить из него нечего, а запись должна пройти
func (s *FileStore) readForWrite() (map[string]string, error) {
	values, err := s.read()
	if errors.Is(err, ErrCorruptedFile) {
		return map[string]string{}, nil
	}
	return values, err
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrBackend, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrBackend, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrBackend, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrBackend, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrBackend, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod temp file: %v", ErrBackend, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrBackend, s.path, err)
	}
	return nil
}
