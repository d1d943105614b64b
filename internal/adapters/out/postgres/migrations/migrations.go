// Package migrations holds the storefront schema as goose SQL migrations
// embedded into the binary.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// Up applies all pending migrations to the database at dsn.
func Up(dsn string) error {
	return run(dsn, func(db *sql.DB) error {
		return goose.Up(db, dir)
	})
}

// Reset rolls every migration back. Used by tests and the seed command.
func Reset(dsn string) error {
	return run(dsn, func(db *sql.DB) error {
		return goose.Reset(db, dir)
	})
}

func run(dsn string, fn func(db *sql.DB) error) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(files)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = fn(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
