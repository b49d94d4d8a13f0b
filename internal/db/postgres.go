package db

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jonathan/resume-builder/migrations"
)

// PostgresStore keeps items in PostgreSQL through a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	q    queries
}

// Connect establishes a connection pool to the database and applies the
// embedded migrations.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn := stdlib.OpenDBFromPool(pool)
	err = migrations.Migrate(ctx, conn, migrations.DialectPostgres)
	conn.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool, q: newQueries(sq.Dollar)}, nil
}

func (s *PostgresStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.q.get(key)
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}

	var value string
	err = s.pool.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) SetItem(ctx context.Context, key, value string) error {
	query, args, err := s.q.upsert(key, value)
	if err != nil {
		return wrapErr("set", key, err)
	}
	_, err = s.pool.Exec(ctx, query, args...)
	return wrapErr("set", key, err)
}

func (s *PostgresStore) RemoveItem(ctx context.Context, key string) error {
	query, args, err := s.q.remove(key)
	if err != nil {
		return wrapErr("remove", key, err)
	}
	_, err = s.pool.Exec(ctx, query, args...)
	return wrapErr("remove", key, err)
}

func (s *PostgresStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := s.q.keys()
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}
	return keys, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
