package database

import (
	"database/sql"
	"gallery-archive/models"
)

// GetUserSettings returns the settings row, or defaults when the row is missing.
func (r *Repository) GetUserSettings() (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Get(&settings, `
		SELECT COALESCE(latest_browser_version, '') AS latest_browser_version
		FROM usersettings
		LIMIT 1
	`)
	if err == sql.ErrNoRows {
		return &models.UserSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveUserSettings overwrites the settings row, creating it if needed.
func (r *Repository) SaveUserSettings(settings models.UserSettings) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE usersettings SET latest_browser_version = ?
	`, settings.LatestBrowserVersion)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := tx.Exec(`
			INSERT INTO usersettings (latest_browser_version) VALUES (?)
		`, settings.LatestBrowserVersion); err != nil {
			return err
		}
	}

	return tx.Commit()
}
