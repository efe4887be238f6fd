package storage

import (
	"context"
	"fmt"

	"rsvpportal/internal/domain"
)

// Open returns the snapshot store named by kind: bolt, postgres, sqlite or memory.
func Open(ctx context.Context, kind, dsn string) (domain.SnapshotStore, error) {
	switch kind {
	case "", "bolt":
		if dsn == "" {
			dsn = "rsvpportal.db"
		}
		return OpenBolt(dsn)
	case "postgres":
		return OpenSQL(ctx, DialectPostgres, dsn)
	case "sqlite":
		if dsn == "" {
			dsn = "rsvpportal.sqlite"
		}
		return OpenSQL(ctx, DialectSQLite, dsn)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache store %q", kind)
	}
}
