package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// baseSchemaVersion is the version a freshly created subdata table starts at:
// the table below already carries the username column added by version 2.
const baseSchemaVersion = 2

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	conn, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer, single connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db := &DB{conn}
	if err := db.ensureBaseTable(context.Background()); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// ensureBaseTable creates the subdata table when the file is new. Existing
// archives are left alone and brought forward by Migrate.
func (db *DB) ensureBaseTable(ctx context.Context) error {
	var count int
	err := db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = 'subdata'
	`)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE subdata (
			id TEXT PRIMARY KEY,
			title TEXT,
			"desc" TEXT,
			tags TEXT,
			url TEXT UNIQUE ON CONFLICT IGNORE,
			is_scrap INTEGER,
			date_uploaded TEXT,
			content_url TEXT,
			content_name TEXT,
			is_content_saved INTEGER,
			username TEXT
		)`); err != nil {
		return fmt.Errorf("failed to create subdata table: %w", err)
	}
	if err := setSchemaVersion(ctx, tx, baseSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}

// Snapshot writes a compacted copy of the database to path. The target file
// must not exist yet.
func (db *DB) Snapshot(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("failed to snapshot database: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
