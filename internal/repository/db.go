package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/cbruhn/drawing-archive/gen/ent"
)

type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// ftsDDL creates the contentless search table. rowid is the page id; the
// single column carries the normalized label blob.
const ftsDDL = `CREATE VIRTUAL TABLE IF NOT EXISTS left_fts USING fts5(left_search_text, tokenize='unicode61 remove_diacritics 2')`

// Open opens the archive database, wraps it for Ent and returns both the
// Ent client and the raw handle used for FTS statements.
func Open(cfg Config, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	logger.Info("opening database", "path", cfg.Path)

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	if cfg.BusyTimeout > 0 {
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	}
	dsn := "file:" + cfg.Path + "?" + q.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, nil, err
	}
	// sqlite has a single writer; more connections just contend
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("database opened")
	return client, db, nil
}

// EnsureSchema creates the Ent-managed tables and the FTS virtual table.
func EnsureSchema(ctx context.Context, client *ent.Client, db *sql.DB, logger *slog.Logger) error {
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		return err
	}
	if _, err := db.ExecContext(ctx, ftsDDL); err != nil {
		logger.Error("fts table creation failed", "error", err)
		return err
	}
	return nil
}

// Close closes the database connections gracefully
func Close(entc *ent.Client, db *sql.DB, logger *slog.Logger) {
	logger.Info("closing database connections")
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	} else if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	logger.Info("database connections closed")
}
