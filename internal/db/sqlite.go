package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonathan/resume-builder/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// SQLStore keeps items in the local_storage table of a database/sql
// connection. OpenSQLite wires it to SQLite.
type SQLStore struct {
	db *sql.DB
	q  queries
}

// NewSQLStore wraps an open connection whose schema is already migrated.
func NewSQLStore(db *sql.DB, format sq.PlaceholderFormat) *SQLStore {
	return &SQLStore{db: db, q: newQueries(format)}
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// applies the embedded migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := migrations.Migrate(ctx, conn, migrations.DialectSQLite); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn, sq.Question), nil
}

func (s *SQLStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.q.get(key)
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) SetItem(ctx context.Context, key, value string) error {
	query, args, err := s.q.upsert(key, value)
	if err != nil {
		return wrapErr("set", key, err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return wrapErr("set", key, err)
}

func (s *SQLStore) RemoveItem(ctx context.Context, key string) error {
	query, args, err := s.q.remove(key)
	if err != nil {
		return wrapErr("remove", key, err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return wrapErr("remove", key, err)
}

func (s *SQLStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := s.q.keys()
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, wrapErr("keys", "", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("keys", "", err)
	}
	return keys, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
