package database

import (
	"fmt"
	"gallery-archive/models"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// GetGalleryPage returns one page of collected submissions matching q.
func (r *Repository) GetGalleryPage(q models.GalleryQuery) ([]models.GalleryItem, error) {
	where := []string{"id IS NOT NULL"}
	var args []any

	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		pattern := "%" + whitespace.ReplaceAllString(term, "%") + "%"
		where = append(where, `(
			title LIKE ?
			OR tags LIKE ?
			OR "desc" LIKE ?
			OR content_name LIKE ?
		)`)
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if q.Username != "" {
		if q.GalleryType == models.GalleryTypeFavorites {
			where = append(where, `url IN (
				SELECT url
				FROM favorites f
				WHERE f.username LIKE ?
			)`)
			args = append(args, "%"+strings.ToLower(q.Username)+"%")
		} else {
			where = append(where, "username LIKE ?")
			args = append(args, "%"+q.Username+"%")
		}
	}

	// Only whitelisted field names reach the ORDER BY clause
	column := q.SortField
	if !models.IsSortField(column) {
		column = models.DefaultSortField
	}
	order := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		order = "ASC"
	}

	limit := q.Limit
	if limit <= 0 {
		limit = models.DefaultGalleryLimit
	}
	if limit > models.MaxGalleryLimit {
		limit = models.MaxGalleryLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT
			id,
			COALESCE(title, '') AS title,
			COALESCE(username, '') AS username,
			COALESCE(content_name, '') AS content_name,
			COALESCE(content_url, '') AS content_url,
			COALESCE(date_uploaded, '') AS date_uploaded,
			COALESCE(is_content_saved, 0) AS is_content_saved,
			COALESCE(thumbnail_name, '') AS thumbnail_name,
			COALESCE(is_thumbnail_saved, 0) AS is_thumbnail_saved
		FROM subdata
		WHERE %s
		ORDER BY %s %s, rowid %s
		LIMIT ? OFFSET ?
	`, strings.Join(where, " AND "), column, order, order)

	items := make([]models.GalleryItem, 0)
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
