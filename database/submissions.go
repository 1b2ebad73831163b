package database

import (
	"database/sql"
	"fmt"
	"gallery-archive/models"
)

// ==================== SUBMISSION OPERATIONS ====================

const submissionColumns = `
	COALESCE(id, '') AS id,
	COALESCE(title, '') AS title,
	COALESCE("desc", '') AS "desc",
	COALESCE(tags, '') AS tags,
	COALESCE(url, '') AS url,
	COALESCE(is_scrap, 0) AS is_scrap,
	COALESCE(date_uploaded, '') AS date_uploaded,
	COALESCE(content_url, '') AS content_url,
	COALESCE(content_name, '') AS content_name,
	COALESCE(is_content_saved, 0) AS is_content_saved,
	COALESCE(username, '') AS username,
	COALESCE(moved_content, 0) AS moved_content,
	COALESCE(thumbnail_url, '') AS thumbnail_url,
	COALESCE(thumbnail_name, '') AS thumbnail_name,
	COALESCE(is_thumbnail_saved, 0) AS is_thumbnail_saved,
	COALESCE(rating, '') AS rating,
	COALESCE(category, '') AS category`

// SaveLinks creates placeholder rows for submission URLs whose metadata is
// collected later. URLs already present are skipped. Returns the number of
// new rows.
func (r *Repository) SaveLinks(urls []string, isScrap bool) (int, error) {
	if len(urls) == 0 {
		return 0, nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO subdata (url, is_scrap, is_content_saved)
		VALUES (?, ?, 0)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, url := range urls {
		res, err := stmt.Exec(url, isScrap)
		if err != nil {
			return 0, fmt.Errorf("failed to save link %s: %w", url, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	return inserted, tx.Commit()
}

// GetSubmissionLinks returns placeholder rows that still need their metadata.
func (r *Repository) GetSubmissionLinks() ([]models.SubmissionLink, error) {
	links := make([]models.SubmissionLink, 0)
	err := r.db.Select(&links, `
		SELECT rowid AS rowid, url
		FROM subdata
		WHERE id IS NULL
		ORDER BY url DESC
	`)
	return links, err
}

// SaveMetadata fills in the scraped metadata for url.
func (r *Repository) SaveMetadata(url string, meta models.SubmissionMetadata) error {
	_, err := r.db.Exec(`
		UPDATE subdata SET
			id = ?,
			title = ?,
			"desc" = ?,
			tags = ?,
			date_uploaded = ?,
			content_url = ?,
			content_name = ?,
			username = ?,
			rating = ?,
			category = ?
		WHERE url = ?
	`,
		nullIfEmpty(meta.ID), meta.Title, meta.Description, meta.Tags,
		meta.DateUploaded, meta.ContentURL, meta.ContentName, meta.Username,
		meta.Rating, meta.Category, url,
	)
	return err
}

// SaveSubmission inserts or fully overwrites the submission stored under sub.URL.
func (r *Repository) SaveSubmission(sub *models.Submission) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO subdata (url, is_scrap, is_content_saved)
		VALUES (?, ?, 0)
	`, sub.URL, sub.IsScrap); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE subdata SET
			id = ?,
			title = ?,
			"desc" = ?,
			tags = ?,
			is_scrap = ?,
			date_uploaded = ?,
			content_url = ?,
			content_name = ?,
			is_content_saved = ?,
			username = ?,
			moved_content = ?,
			thumbnail_url = ?,
			thumbnail_name = ?,
			is_thumbnail_saved = ?,
			rating = ?,
			category = ?
		WHERE url = ?
	`,
		nullIfEmpty(sub.ID), sub.Title, sub.Description, sub.Tags, sub.IsScrap,
		sub.DateUploaded, sub.ContentURL, sub.ContentName, sub.IsContentSaved,
		sub.Username, sub.MovedContent, sub.ThumbnailURL, sub.ThumbnailName,
		sub.IsThumbnailSaved, sub.Rating, sub.Category, sub.URL,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetSubmission(id string) (*models.Submission, error) {
	return r.getSubmissionWhere("id = ?", id)
}

func (r *Repository) GetSubmissionByURL(url string) (*models.Submission, error) {
	return r.getSubmissionWhere("url = ?", url)
}

func (r *Repository) getSubmissionWhere(cond string, arg any) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Get(&sub, "SELECT "+submissionColumns+" FROM subdata WHERE "+cond, arg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubmissionPage returns the submission with its comments, or nil when
// no submission has that id.
func (r *Repository) GetSubmissionPage(id string) (*models.SubmissionPage, error) {
	sub, err := r.GetSubmission(id)
	if err != nil || sub == nil {
		return nil, err
	}

	comments, err := r.GetComments(id)
	if err != nil {
		return nil, err
	}

	return &models.SubmissionPage{Submission: sub, Comments: comments}, nil
}

// SetContentSaved marks the content as downloaded and already in place.
func (r *Repository) SetContentSaved(contentURL string) error {
	_, err := r.db.Exec(`
		UPDATE subdata SET
			is_content_saved = 1,
			moved_content = 1
		WHERE content_url = ?
	`, contentURL)
	return err
}

func (r *Repository) SetContentMoved(contentName string) error {
	_, err := r.db.Exec(`
		UPDATE subdata SET moved_content = 1
		WHERE content_name = ?
	`, contentName)
	return err
}

func (r *Repository) SetThumbnailSaved(url, thumbnailURL, thumbnailName string) error {
	_, err := r.db.Exec(`
		UPDATE subdata SET
			is_thumbnail_saved = 1,
			thumbnail_url = ?,
			thumbnail_name = ?
		WHERE url = ?
	`, thumbnailURL, thumbnailName, url)
	return err
}

// GetAllUnmovedContent lists saved content that has not been moved into the
// archive layout yet.
func (r *Repository) GetAllUnmovedContent() ([]models.ContentRef, error) {
	refs := make([]models.ContentRef, 0)
	err := r.db.Select(&refs, `
		SELECT
			COALESCE(content_url, '') AS content_url,
			COALESCE(content_name, '') AS content_name,
			COALESCE(username, '') AS username
		FROM subdata
		WHERE is_content_saved = 1
		AND moved_content = 0
	`)
	return refs, err
}

// GetAllUnsavedContent lists content still to download. With a username the
// list is restricted to that user, unless the user has nothing pending, in
// which case every user's content is returned.
func (r *Repository) GetAllUnsavedContent(username string) ([]models.ContentRef, error) {
	if username != "" {
		refs := make([]models.ContentRef, 0)
		err := r.db.Select(&refs, `
			SELECT content_url, content_name, COALESCE(username, '') AS username
			FROM subdata
			WHERE is_content_saved = 0
			AND content_url IS NOT NULL
			AND content_name IS NOT NULL
			AND username LIKE ?
			ORDER BY content_name DESC
		`, username)
		if err != nil {
			return nil, err
		}
		if len(refs) > 0 {
			return refs, nil
		}
	}

	refs := make([]models.ContentRef, 0)
	err := r.db.Select(&refs, `
		SELECT content_url, content_name, username
		FROM subdata
		WHERE is_content_saved = 0
		AND content_url IS NOT NULL
		AND content_name IS NOT NULL
		AND username IS NOT NULL
		ORDER BY content_name DESC
	`)
	return refs, err
}

// GetAllUnsavedThumbnails lists text and audio submissions whose thumbnail
// has not been saved.
func (r *Repository) GetAllUnsavedThumbnails() ([]models.ThumbnailRef, error) {
	refs := make([]models.ThumbnailRef, 0)
	err := r.db.Select(&refs, `
		SELECT
			url,
			COALESCE(content_url, '') AS content_url,
			username,
			COALESCE(thumbnail_url, '') AS thumbnail_url
		FROM subdata
		WHERE is_thumbnail_saved = 0
		AND username IS NOT NULL
		AND (
			content_url LIKE '%/stories/%'
			OR content_url LIKE '%/music/%'
			OR content_url LIKE '%/poetry/%'
		)
		ORDER BY content_name DESC
	`)
	return refs, err
}

// NeedsRepair returns URLs of rows that have an id but lost their username.
func (r *Repository) NeedsRepair() ([]string, error) {
	urls := make([]string, 0)
	err := r.db.Select(&urls, `
		SELECT url
		FROM subdata
		WHERE username IS NULL
		AND id IS NOT NULL
	`)
	return urls, err
}

func (r *Repository) GetAllUsernames() ([]string, error) {
	names := make([]string, 0)
	err := r.db.Select(&names, `
		SELECT DISTINCT username
		FROM subdata
		WHERE username IS NOT NULL
		ORDER BY username
	`)
	return names, err
}

func (r *Repository) GetAllSubmissionURLs() ([]string, error) {
	urls := make([]string, 0)
	err := r.db.Select(&urls, `SELECT url FROM subdata WHERE url IS NOT NULL`)
	return urls, err
}

// GetAllCompleteSubmissions returns every submission whose metadata was collected.
func (r *Repository) GetAllCompleteSubmissions() ([]models.Submission, error) {
	subs := make([]models.Submission, 0)
	err := r.db.Select(&subs, "SELECT "+submissionColumns+" FROM subdata WHERE id IS NOT NULL")
	return subs, err
}
