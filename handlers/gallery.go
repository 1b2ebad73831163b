package handlers

import (
	"errors"
	"gallery-archive/app"
	"gallery-archive/models"
	"gallery-archive/services"

	"github.com/gofiber/fiber/v2"
)

var errInvalidQuery = errors.New("Invalid query parameters")

// parseGalleryQuery reads and validates the gallery filters from the query string
func parseGalleryQuery(c *fiber.Ctx, a *app.App) (models.GalleryQuery, error) {
	var q models.GalleryQuery
	if err := c.QueryParser(&q); err != nil {
		return q, errInvalidQuery
	}
	if err := a.Validator.Validate(&q); err != nil {
		return q, err
	}
	return q, nil
}

// GetGallery returns one page of archived submissions
func GetGallery(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseGalleryQuery(c, a)
		if err != nil {
			return validationError(c, err)
		}

		items, applied, err := a.Gallery.Page(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load gallery", err)
		}

		return success(c, fiber.Map{
			"items":    items,
			"query":    applied,
			"has_next": len(items) == applied.Limit,
		})
	}
}

// GetSubmission returns a submission together with its comments
func GetSubmission(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := a.Gallery.Submission(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSubmissionNotFound) {
				return notFound(c, "Submission not found")
			}
			return serverErrorWithDetails(c, "Failed to load submission", err)
		}

		return success(c, fiber.Map{
			"submission": page.Submission,
			"comments":   page.Comments,
		})
	}
}

// GetUsernames lists every artist in the archive
func GetUsernames(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usernames, err := a.Gallery.Usernames()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load usernames", err)
		}
		if usernames == nil {
			usernames = []string{}
		}

		return success(c, fiber.Map{"usernames": usernames})
	}
}
