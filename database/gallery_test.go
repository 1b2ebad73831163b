package database

import (
	"fmt"
	"gallery-archive/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGallery(t *testing.T, repo *Repository) {
	t.Helper()

	rows := []struct {
		id, user, title, tags, content, date string
	}{
		{"1", "inkfox", "Night Forest", "forest night", "a_forest.png", "2024-01-03"},
		{"2", "inkfox", "Day Trip", "beach", "b_beach.png", "2024-01-01"},
		{"3", "pebble", "Forest Spirit", "spirit", "c_spirit.png", "2024-01-02"},
		{"4", "pebble", "Sketch dump", "sketch", "d_sketch.png", "2024-01-04"},
	}
	for _, row := range rows {
		sub := sampleSubmission(row.id, fmt.Sprintf("https://example.com/view/%s/", row.id))
		sub.Username = row.user
		sub.Title = row.title
		sub.Tags = row.tags
		sub.Description = ""
		sub.ContentName = row.content
		sub.DateUploaded = row.date
		require.NoError(t, repo.SaveSubmission(sub))
	}

	// A placeholder without metadata never shows up in the gallery
	_, err := repo.SaveLinks([]string{"https://example.com/view/99/"}, false)
	require.NoError(t, err)

	_, err = repo.SaveFavorites("Watcher", []string{
		"https://example.com/view/2/",
		"https://example.com/view/3/",
	})
	require.NoError(t, err)
}

func ids(items []models.GalleryItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestGetGalleryPage(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	seedGallery(t, repo)

	tests := []struct {
		name  string
		query models.GalleryQuery
		want  []string
	}{
		{
			name:  "Default sorts by content name descending",
			query: models.GalleryQuery{},
			want:  []string{"4", "3", "2", "1"},
		},
		{
			name:  "Ascending by upload date",
			query: models.GalleryQuery{SortField: "date_uploaded", SortOrder: "asc"},
			want:  []string{"2", "3", "1", "4"},
		},
		{
			name:  "Unknown sort field falls back to content name",
			query: models.GalleryQuery{SortField: "1; DROP TABLE subdata", SortOrder: "ASC"},
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "Search matches title and tags",
			query: models.GalleryQuery{SearchTerm: "forest", SortOrder: "asc"},
			want:  []string{"1", "3"},
		},
		{
			name:  "Whitespace in search acts as wildcard",
			query: models.GalleryQuery{SearchTerm: "Night  Forest"},
			want:  []string{"1"},
		},
		{
			name:  "Username filter",
			query: models.GalleryQuery{Username: "pebble", SortOrder: "asc"},
			want:  []string{"3", "4"},
		},
		{
			name:  "Favorites gallery",
			query: models.GalleryQuery{Username: "watcher", GalleryType: models.GalleryTypeFavorites, SortOrder: "asc"},
			want:  []string{"2", "3"},
		},
		{
			name:  "Favorites gallery with search",
			query: models.GalleryQuery{Username: "WATCHER", GalleryType: models.GalleryTypeFavorites, SearchTerm: "spirit"},
			want:  []string{"3"},
		},
		{
			name:  "Pagination",
			query: models.GalleryQuery{SortOrder: "asc", Limit: 2, Offset: 1},
			want:  []string{"2", "3"},
		},
		{
			name:  "Offset past the end",
			query: models.GalleryQuery{Offset: 50},
			want:  []string{},
		},
		{
			name:  "Search input is bound, not interpolated",
			query: models.GalleryQuery{SearchTerm: "' OR 1=1 --"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.GetGalleryPage(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestGetGalleryPageFields(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	seedGallery(t, repo)

	items, err := repo.GetGalleryPage(models.GalleryQuery{Username: "inkfox", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.GalleryItem{
		ID:               "1",
		Title:            "Night Forest",
		Username:         "inkfox",
		ContentName:      "a_forest.png",
		ContentURL:       "https://cdn.example.com/art/1.png",
		DateUploaded:     "2024-01-03",
		IsContentSaved:   true,
		ThumbnailName:    "1_thumb.jpg",
		IsThumbnailSaved: true,
	}, items[0])
}
