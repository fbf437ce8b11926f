package database

import (
	"database/sql"
	_ "embed"
	"fmt"
)

// The schema ships inside the binary so the service does not depend on
// the filesystem at runtime.
//
//go:embed schema.sql
var schemaSQL string

// Migrate creates the tables if they do not exist. It is idempotent
// and safe to run on every open.
//
// The squirrels table uses INTEGER PRIMARY KEY AUTOINCREMENT: SQLite
// then guarantees ids are monotonically increasing and never reused,
// even after rows are deleted.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
