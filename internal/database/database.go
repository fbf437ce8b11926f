// Package database contains the logic for opening the SQLite database
// that backs the record store.
//
// It handles:
//   - creating the backing file on first open
//   - applying connection pragmas suited to a single-writer workload
//   - applying the schema (idempotent)
//   - closing the connection pool on shutdown
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/oakhollow/squirreld/internal/config"
)

// Database wraps the sql.DB handle and a logger. It provides a simple
// object that can be passed around the app.
type Database struct {
	DB  *sql.DB
	log *zerolog.Logger
}

// PingTimeout bounds the connectivity check at open time, in seconds.
const PingTimeout = 10

// New opens (or creates) the SQLite database at the configured path.
//
// The request loop is synchronous and the store has a single writer,
// so the pool is capped at one connection; this also sidesteps
// SQLITE_BUSY contention entirely.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return &Database{
		DB:  db,
		log: logger,
	}, nil
}

// applyPragmas sets the required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}
