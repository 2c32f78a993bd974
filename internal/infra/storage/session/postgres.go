package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresStore хранилище сессии в таблице PostgreSQL
//
// Схема:
//
//	namespace   TEXT NOT NULL
//	entry_key   TEXT NOT NULL
//	entry_value TEXT NOT NULL
//	updated_at  TIMESTAMPTZ NOT NULL
//	PRIMARY KEY (namespace, entry_key)
type PostgresStore struct {
	db        DBExecutor
	table     string
	namespace string
}

// NewPostgresStore создает хранилище поверх таблицы table
func NewPostgresStore(db DBExecutor, table, namespace string) (*PostgresStore, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrBuildQuery, table)
	}
	return &PostgresStore{db: db, table: table, namespace: namespace}, nil
}

// EnsureSchema создает таблицу, если она отсутствует
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	namespace   TEXT NOT NULL,
	entry_key   TEXT NOT NULL,
	entry_value TEXT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (namespace, entry_key)
)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает значение ключа; ok=false если ключ отсутствует
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("entry_value").
		From(s.table).
		Where(squirrel.Eq{"namespace": s.namespace}).
		Where(squirrel.Eq{"entry_key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}
	return value, true, nil
}

// Set вставляет или перезаписывает значение
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psql.Insert(s.table).
		Columns("namespace", "entry_key", "entry_value", "updated_at").
		Values(s.namespace, key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (namespace, entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Remove удаляет ключ
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query, args, err := psql.Delete(s.table).
		Where(squirrel.Eq{"namespace": s.namespace}).
		Where(squirrel.Eq{"entry_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
