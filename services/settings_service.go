package services

import (
	"context"
	"gallery-archive/models"
	"strings"
)

// SettingsService handles the application settings row
type SettingsService struct {
	repo SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (ss *SettingsService) Get() (*models.UserSettings, error) {
	return ss.repo.GetUserSettings()
}

// Update stores the settings and returns what was saved
func (ss *SettingsService) Update(req models.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings := models.UserSettings{
		LatestBrowserVersion: strings.TrimSpace(req.LatestBrowserVersion),
	}
	if err := ss.repo.SaveUserSettings(settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Schema reports the database schema version
func (ss *SettingsService) Schema(ctx context.Context) (models.SchemaStatus, error) {
	return ss.repo.SchemaStatus(ctx)
}
