package services

import (
	"gallery-archive/models"
	"strings"
)

// LibraryService handles favorites and the operator's own accounts
type LibraryService struct {
	repo LibraryRepository
}

// NewLibraryService creates a new library service
func NewLibraryService(repo LibraryRepository) *LibraryService {
	return &LibraryService{repo: repo}
}

// SaveFavorites records urls as favorites of username and returns how many
// were new
func (ls *LibraryService) SaveFavorites(username string, urls []string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrInvalidUsername
	}

	cleaned := make([]string, 0, len(urls))
	for _, url := range urls {
		if url = strings.TrimSpace(url); url != "" {
			cleaned = append(cleaned, url)
		}
	}
	if len(cleaned) == 0 {
		return 0, ErrNoURLs
	}

	return ls.repo.SaveFavorites(username, cleaned)
}

// Favorites returns the submissions favorited by username
func (ls *LibraryService) Favorites(username string) ([]models.Submission, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return ls.repo.GetFavoritesForUser(username)
}

// AddAccount marks username as owned by the operator
func (ls *LibraryService) AddAccount(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidUsername
	}
	return ls.repo.SetOwnedAccount(username)
}

// Accounts lists the operator's accounts
func (ls *LibraryService) Accounts() ([]models.OwnedAccount, error) {
	return ls.repo.GetOwnedAccounts()
}
