package services

import (
	"context"
	"gallery-archive/models"
)

// GalleryRepository defines the interface for submission browsing
type GalleryRepository interface {
	GetGalleryPage(q models.GalleryQuery) ([]models.GalleryItem, error)
	GetSubmissionPage(id string) (*models.SubmissionPage, error)
	GetAllUsernames() ([]string, error)
}

// LibraryRepository defines the interface for favorites and owned accounts
type LibraryRepository interface {
	SaveFavorites(username string, urls []string) (int, error)
	GetFavoritesForUser(username string) ([]models.Submission, error)
	SetOwnedAccount(username string) error
	GetOwnedAccounts() ([]models.OwnedAccount, error)
}

// SettingsRepository defines the interface for settings and schema state
type SettingsRepository interface {
	GetUserSettings() (*models.UserSettings, error)
	SaveUserSettings(settings models.UserSettings) error
	SchemaStatus(ctx context.Context) (models.SchemaStatus, error)
}
