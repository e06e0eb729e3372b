package db

import (
	"context"
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db   *sql.DB
	once sync.Once
)

const schema = `
CREATE TABLE IF NOT EXISTS Submission (
	id         TEXT PRIMARY KEY,
	form_type  TEXT NOT NULL,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submission_created_at ON Submission(created_at);
`

// Init initializes the database connection and creates the schema
func Init(databaseURL string) error {
	var err error
	once.Do(func() {
		defer func() {
			if err != nil && db != nil {
				db.Close()
				db = nil
			}
		}()

		db, err = sql.Open("sqlite3", databaseURL)
		if err != nil {
			log.Printf("Failed to open database: %v", err)
			return
		}

		// Test the connection
		if err = db.Ping(); err != nil {
			log.Printf("Failed to ping database: %v", err)
			return
		}

		if _, err = db.Exec(schema); err != nil {
			log.Printf("Failed to create schema: %v", err)
			return
		}

		log.Printf("Database initialized successfully: %s", databaseURL)
	})
	return err
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// Ready reports whether Init succeeded (or a test database was set).
func Ready() bool {
	return db != nil
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Convenience methods that wrap common database operations

// Query executes a query that returns rows
func Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return Get().QueryContext(ctx, query, args...)
}

// Exec executes a query that doesn't return rows
func Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return Get().ExecContext(ctx, query, args...)
}
