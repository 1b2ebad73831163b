package services

import (
	"context"
	"errors"
	"gallery-archive/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSettingsRepository is a mock implementation of SettingsRepository interface
type MockSettingsRepository struct {
	mock.Mock
}

var _ SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetUserSettings() (*models.UserSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveUserSettings(settings models.UserSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) SchemaStatus(ctx context.Context) (models.SchemaStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.SchemaStatus), args.Error(1)
}

// ==================== TESTS ====================

func TestSettingsService(t *testing.T) {
	t.Run("Get returns stored settings", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetUserSettings").Return(&models.UserSettings{LatestBrowserVersion: "0.9.1"}, nil)

		settings, err := NewSettingsService(repo).Get()

		require.NoError(t, err)
		assert.Equal(t, "0.9.1", settings.LatestBrowserVersion)
		repo.AssertExpectations(t)
	})

	t.Run("Update trims and saves", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("SaveUserSettings", models.UserSettings{LatestBrowserVersion: "1.2.3"}).Return(nil)

		saved, err := NewSettingsService(repo).Update(models.UpdateSettingsRequest{LatestBrowserVersion: " 1.2.3 "})

		require.NoError(t, err)
		assert.Equal(t, "1.2.3", saved.LatestBrowserVersion)
		repo.AssertExpectations(t)
	})

	t.Run("Update failure", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("SaveUserSettings", mock.Anything).Return(errors.New("readonly database"))

		saved, err := NewSettingsService(repo).Update(models.UpdateSettingsRequest{})

		assert.Error(t, err)
		assert.Nil(t, saved)
	})

	t.Run("Schema status", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		ctx := context.Background()
		repo.On("SchemaStatus", ctx).Return(models.SchemaStatus{Version: 9, Latest: 9}, nil)

		status, err := NewSettingsService(repo).Schema(ctx)

		require.NoError(t, err)
		assert.Equal(t, 9, status.Version)
	})
}
