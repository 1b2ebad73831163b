package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// Migration is one schema change. A migration runs when the persisted
// user_version is below Version and leaves the database at Version.
type Migration struct {
	Version int
	Name    string
	Apply   func(ctx context.Context, tx *sqlx.Tx) error
}

// migrations must stay sorted by Version.
var migrations = []Migration{
	{
		Version: 2,
		Name:    "add_submission_username",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			return addColumn(ctx, tx, "subdata", "username TEXT")
		},
	},
	{
		Version: 3,
		Name:    "create_comments",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			return execAll(ctx, tx, `
				CREATE TABLE IF NOT EXISTS commentdata (
					id TEXT UNIQUE ON CONFLICT REPLACE,
					submission_id TEXT,
					width TEXT,
					username TEXT,
					"desc" TEXT,
					subtitle TEXT,
					date TEXT
				)`)
		},
	},
	{
		Version: 4,
		Name:    "create_accounts_and_favorites",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			return execAll(ctx, tx,
				`CREATE TABLE IF NOT EXISTS ownedaccounts (
					username TEXT UNIQUE ON CONFLICT IGNORE
				)`,
				`CREATE TABLE IF NOT EXISTS favorites (
					id TEXT UNIQUE ON CONFLICT IGNORE,
					url TEXT,
					username TEXT
				)`,
			)
		},
	},
	{
		Version: 5,
		Name:    "add_moved_content",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			return addColumn(ctx, tx, "subdata", "moved_content INTEGER DEFAULT 0")
		},
	},
	{
		Version: 6,
		Name:    "lowercase_favorite_usernames",
		Apply:   lowercaseFavoriteUsernames,
	},
	{
		Version: 7,
		Name:    "create_user_settings",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			return execAll(ctx, tx,
				`CREATE TABLE IF NOT EXISTS usersettings (
					latest_browser_version TEXT
				)`,
				`DELETE FROM usersettings
				WHERE rowid NOT IN (SELECT MIN(rowid) FROM usersettings)`,
				`INSERT INTO usersettings (latest_browser_version)
				SELECT ''
				WHERE NOT EXISTS (SELECT 1 FROM usersettings)`,
			)
		},
	},
	{
		Version: 8,
		Name:    "add_thumbnail_columns",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			for _, column := range []string{
				"thumbnail_url TEXT",
				"thumbnail_name TEXT",
				"is_thumbnail_saved INTEGER DEFAULT 0",
			} {
				if err := addColumn(ctx, tx, "subdata", column); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Version: 9,
		Name:    "add_rating_and_category",
		Apply: func(ctx context.Context, tx *sqlx.Tx) error {
			if err := addColumn(ctx, tx, "subdata", "rating TEXT"); err != nil {
				return err
			}
			return addColumn(ctx, tx, "subdata", "category TEXT")
		},
	},
}

// Migrations returns a copy of the ordered migration list.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

// LatestSchemaVersion is the version Migrate brings a database to.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].Version
}

// Migrate applies every pending migration in order, then compacts the file.
// Each migration commits together with its user_version bump.
func (db *DB) Migrate(ctx context.Context) error {
	from, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	current := from
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		slog.Debug("applied migration", "version", m.Version, "name", m.Name)
		current = m.Version
	}

	if err := db.Compact(ctx); err != nil {
		return err
	}

	switch {
	case from > LatestSchemaVersion():
		slog.Warn("database schema is newer than this build", "version", from, "latest", LatestSchemaVersion())
	case from == current:
		slog.Info("database schema up to date", "version", current)
	default:
		slog.Info("migrated database schema", "from", from, "to", current)
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := m.Apply(ctx, tx); err != nil {
		return err
	}
	if err := setSchemaVersion(ctx, tx, m.Version); err != nil {
		return err
	}
	return tx.Commit()
}

// SchemaVersion reads the persisted user_version.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := db.GetContext(ctx, &version, "PRAGMA user_version"); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Compact rebuilds the database file, reclaiming free pages.
func (db *DB) Compact(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("failed to compact database: %w", err)
	}
	return nil
}

func setSchemaVersion(ctx context.Context, exec sqlx.ExecerContext, version int) error {
	// PRAGMA does not accept bound parameters
	if _, err := exec.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

// lowercaseFavoriteUsernames rewrites every favorite with a lowercase
// username through a scratch table whose unique id drops the duplicates.
func lowercaseFavoriteUsernames(ctx context.Context, tx *sqlx.Tx) error {
	return execAll(ctx, tx,
		`DROP TABLE IF EXISTS favTemp`,
		`CREATE TABLE favTemp (
			id TEXT UNIQUE ON CONFLICT IGNORE,
			url TEXT,
			username TEXT
		)`,
		`INSERT INTO favTemp (id, url, username)
		SELECT LOWER(COALESCE(username, '')) || COALESCE(url, ''), url, LOWER(username)
		FROM favorites
		ORDER BY rowid`,
		`DELETE FROM favorites`,
		`INSERT INTO favorites (id, url, username)
		SELECT id, url, username FROM favTemp`,
		`DROP TABLE favTemp`,
	)
}

func execAll(ctx context.Context, tx *sqlx.Tx, statements ...string) error {
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// addColumn adds a column, treating an already existing column as success.
func addColumn(ctx context.Context, tx *sqlx.Tx, table, definition string) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, definition))
	if err != nil && !isDuplicateColumnErr(err) {
		return err
	}
	return nil
}

func isDuplicateColumnErr(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrError &&
		strings.Contains(strings.ToLower(sqliteErr.Error()), "duplicate column name")
}
