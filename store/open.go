package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"

	"entgo.io/ent/dialect"
	"github.com/ddevcap/movielist/config"
	"github.com/ddevcap/movielist/ent"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var registerOnce sync.Once

// RegisterSQLiteDriver makes modernc.org/sqlite available under the
// "sqlite3" name. modernc registers itself as "sqlite" in database/sql, but
// ent's dialect layer recognises only "sqlite3". Safe to call repeatedly.
func RegisterSQLiteDriver() {
	registerOnce.Do(func() {
		if slices.Contains(sql.Drivers(), dialect.SQLite) {
			return
		}
		tmp, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			panic(err)
		}
		drv := tmp.Driver()
		_ = tmp.Close()
		sql.Register(dialect.SQLite, drv)
	})
}

// Open connects to the configured database and migrates the schema.
func Open(ctx context.Context, cfg config.Config) (*ent.Client, error) {
	if cfg.DatabaseDialect == dialect.SQLite {
		RegisterSQLiteDriver()
	}

	client, err := ent.Open(cfg.DatabaseDialect, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s database: %w", cfg.DatabaseDialect, err)
	}
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store: running schema migration: %w", err)
	}
	return client, nil
}
