package services

import (
	"gallery-archive/models"
	"strings"
)

// GalleryService handles read access to archived submissions
type GalleryService struct {
	repo GalleryRepository
}

// NewGalleryService creates a new gallery service
func NewGalleryService(repo GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// Page returns one page of the gallery. Limit and offset are clamped to
// their allowed ranges.
func (gs *GalleryService) Page(q models.GalleryQuery) ([]models.GalleryItem, models.GalleryQuery, error) {
	q.Username = strings.TrimSpace(q.Username)
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)

	if q.Limit <= 0 {
		q.Limit = models.DefaultGalleryLimit
	}
	q.Limit = min(q.Limit, models.MaxGalleryLimit)
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.SortField == "" {
		q.SortField = models.DefaultSortField
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
	q.SortOrder = strings.ToLower(q.SortOrder)

	items, err := gs.repo.GetGalleryPage(q)
	if err != nil {
		return nil, q, err
	}
	return items, q, nil
}

// Submission returns a submission and its comments
func (gs *GalleryService) Submission(id string) (*models.SubmissionPage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrSubmissionNotFound
	}

	page, err := gs.repo.GetSubmissionPage(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrSubmissionNotFound
	}
	return page, nil
}

// Usernames lists every artist with archived submissions
func (gs *GalleryService) Usernames() ([]string, error) {
	return gs.repo.GetAllUsernames()
}
