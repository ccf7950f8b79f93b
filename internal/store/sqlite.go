package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrPathRequired is returned when opening a SQLite store without a path
var ErrPathRequired = errors.New("storage path is required")

// SQLite settings
const (
	SQLiteDriver       = "sqlite"
	SQLiteDSNOptions   = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	SQLiteQueryTimeout = 5 * time.Second
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite persists key-value pairs in a single SQLite table
type SQLite struct {
	sqlDB *sql.DB
}

// Open opens or creates the SQLite store at path
func Open(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	dsn := filepath.Clean(path) + SQLiteDSNOptions
	sqlDB, err := sql.Open(SQLiteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createTableSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLite{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the value stored under key and whether it exists
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value
func (s *SQLite) Put(ctx context.Context, key, value string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// String returns the value for key, or "" if unset or unreadable
func (s *SQLite) String(key string) string {
	ctx, cancel := context.WithTimeout(context.Background(), SQLiteQueryTimeout)
	defer cancel()

	value, _, err := s.Get(ctx, key)
	if err != nil {
		log.Printf("SQLite store read failed: %v", err)
		return ""
	}
	return value
}

// SetString stores value under key, logging failures
func (s *SQLite) SetString(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), SQLiteQueryTimeout)
	defer cancel()

	if err := s.Put(ctx, key, value); err != nil {
		log.Printf("SQLite store write failed: %v", err)
	}
}
