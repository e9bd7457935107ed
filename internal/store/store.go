package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/lawnbook/internal/filex"
)

// Store is a flat key/value blob store.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes every pair atomically.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Close releases the underlying resources.
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Open returns the Store implementation for driver. path is ignored by the
// memory driver. On error the returned Store is nil.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite:
		if file := sqliteFilePath(path); file != "" {
			if err := filex.EnsureParentDir(file); err != nil {
				return nil, err
			}
		}
		s, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverBolt:
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
		s, err := OpenBolt(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// sqliteFilePath returns the on-disk file behind dsn, or "" for in-memory
// databases. "file:" URIs lose their scheme and query.
func sqliteFilePath(dsn string) string {
	if dsn == ":memory:" {
		return ""
	}
	rest, isURI := strings.CutPrefix(dsn, "file:")
	if !isURI {
		return dsn
	}
	path, query, _ := strings.Cut(rest, "?")
	if path == ":memory:" || path == "" {
		return ""
	}
	if q, err := url.ParseQuery(query); err == nil && q.Get("mode") == "memory" {
		return ""
	}
	return path
}
