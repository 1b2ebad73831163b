package database

import (
	"fmt"
	"gallery-archive/models"
	"strings"
)

// ==================== FAVORITES & ACCOUNTS ====================

// FavoriteID builds the favorites key for a (username, url) pair.
func FavoriteID(username, url string) string {
	return strings.ToLower(username) + url
}

// SaveFavorites records urls as favorites of username. Usernames are stored
// lowercase and already known pairs are skipped. Returns the number of new
// favorites.
func (r *Repository) SaveFavorites(username string, urls []string) (int, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || len(urls) == 0 {
		return 0, nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO favorites (id, username, url)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, url := range urls {
		res, err := stmt.Exec(FavoriteID(username, url), username, url)
		if err != nil {
			return 0, fmt.Errorf("failed to save favorite %s: %w", url, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	return inserted, tx.Commit()
}

// GetFavoriteLinks returns the raw favorite rows of username.
func (r *Repository) GetFavoriteLinks(username string) ([]models.FavoriteLink, error) {
	links := make([]models.FavoriteLink, 0)
	err := r.db.Select(&links, `
		SELECT COALESCE(id, '') AS id, COALESCE(username, '') AS username, COALESCE(url, '') AS url
		FROM favorites
		WHERE username = ?
		ORDER BY rowid
	`, strings.ToLower(username))
	return links, err
}

// GetFavoritesForUser returns the submissions favorited by username.
func (r *Repository) GetFavoritesForUser(username string) ([]models.Submission, error) {
	subs := make([]models.Submission, 0)
	err := r.db.Select(&subs, "SELECT "+submissionColumns+`
		FROM subdata
		WHERE url IN (
			SELECT url
			FROM favorites
			WHERE username = ?
		)
	`, strings.ToLower(username))
	return subs, err
}

// SetOwnedAccount remembers username as one of the operator's own accounts.
// Empty names are ignored.
func (r *Repository) SetOwnedAccount(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}
	_, err := r.db.Exec(`INSERT INTO ownedaccounts (username) VALUES (?)`, username)
	return err
}

func (r *Repository) GetOwnedAccounts() ([]models.OwnedAccount, error) {
	accounts := make([]models.OwnedAccount, 0)
	err := r.db.Select(&accounts, `
		SELECT username
		FROM ownedaccounts
		WHERE username IS NOT NULL
		ORDER BY username
	`)
	return accounts, err
}
