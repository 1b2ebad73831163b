package database

import (
	"context"
	"database/sql"
	"gallery-archive/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SchemaStatus reports the persisted schema version next to the latest one.
func (r *Repository) SchemaStatus(ctx context.Context) (models.SchemaStatus, error) {
	version, err := r.db.SchemaVersion(ctx)
	if err != nil {
		return models.SchemaStatus{}, err
	}
	return models.SchemaStatus{Version: version, Latest: LatestSchemaVersion()}, nil
}

// nullIfEmpty stores empty strings as NULL. subdata.id relies on this: rows
// without collected metadata keep a NULL id.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
