package validator

import (
	"gallery-archive/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_GalleryQuery(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		query     models.GalleryQuery
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Empty query is valid",
			query:     models.GalleryQuery{},
			wantError: false,
		},
		{
			name: "Full favorites query",
			query: models.GalleryQuery{
				Username:    "ink_fox-1",
				SearchTerm:  "night forest",
				GalleryType: models.GalleryTypeFavorites,
				SortField:   "date_uploaded",
				SortOrder:   "ASC",
				Offset:      50,
				Limit:       25,
			},
			wantError: false,
		},
		{
			name:      "Unknown sort field",
			query:     models.GalleryQuery{SortField: "desc"},
			wantError: true,
			errorMsg:  "sort must be one of: content_name, date_uploaded, title, username, rating, category",
		},
		{
			name:      "Bad sort order",
			query:     models.GalleryQuery{SortOrder: "sideways"},
			wantError: true,
			errorMsg:  "order must be either 'asc' or 'desc'",
		},
		{
			name:      "Unknown gallery type",
			query:     models.GalleryQuery{GalleryType: "scraps"},
			wantError: true,
			errorMsg:  "gallery_type must be empty or 'favorites'",
		},
		{
			name:      "Username with SQL wildcards",
			query:     models.GalleryQuery{Username: "%' OR 1=1"},
			wantError: true,
			errorMsg:  "username contains invalid characters (only letters, numbers, and -_.~ are allowed)",
		},
		{
			name:      "Limit above maximum",
			query:     models.GalleryQuery{Limit: 500},
			wantError: true,
			errorMsg:  "limit must be less than or equal to 100",
		},
		{
			name:      "Negative offset",
			query:     models.GalleryQuery{Offset: -1},
			wantError: true,
			errorMsg:  "offset must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.query)
			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SaveFavorites(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SaveFavoritesRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid request",
			req: models.SaveFavoritesRequest{
				Username: "collector",
				URLs:     []string{"https://example.com/view/1/"},
			},
			wantError: false,
		},
		{
			name:      "Missing username",
			req:       models.SaveFavoritesRequest{URLs: []string{"https://example.com/view/1/"}},
			wantError: true,
			errorMsg:  "username is required",
		},
		{
			name:      "No URLs",
			req:       models.SaveFavoritesRequest{Username: "collector"},
			wantError: true,
			errorMsg:  "urls is required",
		},
		{
			name: "Invalid URL",
			req: models.SaveFavoritesRequest{
				Username: "collector",
				URLs:     []string{"not a url"},
			},
			wantError: true,
			errorMsg:  "must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Settings(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.UpdateSettingsRequest{LatestBrowserVersion: "1.4.2"}))
	assert.NoError(t, v.Validate(models.UpdateSettingsRequest{}))

	err := v.Validate(models.UpdateSettingsRequest{LatestBrowserVersion: string(make([]byte, 51))})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "latest_browser_version must be at most 50 characters")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "sort", Message: "sort is invalid"},
		{Field: "order", Message: "order is invalid"},
	}
	assert.Equal(t, "sort is invalid; order is invalid", errs.Error())
}
