package database

import (
	"fmt"
	"gallery-archive/models"
)

// ==================== COMMENT OPERATIONS ====================

// SaveComments stores comments; a comment id seen before is replaced.
func (r *Repository) SaveComments(comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT OR REPLACE INTO commentdata (
			id, submission_id, width, username, "desc", subtitle, date
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range comments {
		if _, err := stmt.Exec(
			c.ID, c.SubmissionID, c.Width, c.Username,
			nullIfEmpty(c.Description), c.Subtitle, c.Date,
		); err != nil {
			return fmt.Errorf("failed to save comment %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// GetComments returns the comments of a submission that still have a body.
func (r *Repository) GetComments(submissionID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.Select(&comments, `
		SELECT
			COALESCE(id, '') AS id,
			COALESCE(submission_id, '') AS submission_id,
			COALESCE(width, '') AS width,
			COALESCE(username, '') AS username,
			"desc",
			COALESCE(subtitle, '') AS subtitle,
			COALESCE(date, '') AS date
		FROM commentdata
		WHERE submission_id = ?
		AND "desc" IS NOT NULL
		ORDER BY rowid
	`, submissionID)
	return comments, err
}
