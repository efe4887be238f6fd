package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"rsvpportal/internal/domain"
)

// Dialect selects the placeholder style and driver of a SQLStore.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const createSnapshotsTable = `
	CREATE TABLE IF NOT EXISTS cache_snapshots (
		namespace  TEXT NOT NULL,
		key        TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (namespace, key)
	)`

// SQLStore keeps snapshots in the cache_snapshots table.
type SQLStore struct {
	DB      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// OpenSQL opens dsn with the driver for dialect and creates the table.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect, err)
	}
	s := NewSQLStore(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open database.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{DB: db, dialect: dialect, now: time.Now}
}

// Migrate creates the snapshot table if it does not exist.
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("could not create cache_snapshots table: %w", err)
	}
	return nil
}

// bind rewrites $N placeholders for dialects that use '?'.
func (s *SQLStore) bind(query string) string {
	if s.dialect != DialectSQLite {
		return query
	}
	for i := 9; i >= 1; i-- {
		query = strings.ReplaceAll(query, fmt.Sprintf("$%d", i), "?")
	}
	return query
}

func (s *SQLStore) Load(ctx context.Context, namespace, key string) ([]byte, error) {
	query := `SELECT data FROM cache_snapshots WHERE namespace = $1 AND key = $2`
	var data string
	err := s.DB.QueryRowContext(ctx, s.bind(query), namespace, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(data), nil
}

func (s *SQLStore) Save(ctx context.Context, namespace, key string, data []byte) error {
	query := `
		INSERT INTO cache_snapshots (namespace, key, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace, key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err := s.DB.ExecContext(ctx, s.bind(query), namespace, key, string(data), s.now().UTC())
	return err
}

func (s *SQLStore) Delete(ctx context.Context, namespace, key string) error {
	query := `DELETE FROM cache_snapshots WHERE namespace = $1 AND key = $2`
	_, err := s.DB.ExecContext(ctx, s.bind(query), namespace, key)
	return err
}

func (s *SQLStore) Close() error {
	return s.DB.Close()
}
