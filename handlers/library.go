package handlers

import (
	"errors"
	"gallery-archive/app"
	"gallery-archive/models"
	"gallery-archive/services"

	"github.com/gofiber/fiber/v2"
)

// GetAccounts lists the operator's own accounts
func GetAccounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := a.Library.Accounts()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load accounts", err)
		}
		if accounts == nil {
			accounts = []models.OwnedAccount{}
		}

		return success(c, fiber.Map{"accounts": accounts})
	}
}

// AddAccount marks a username as one of the operator's accounts
func AddAccount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.OwnedAccountRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Library.AddAccount(req.Username); err != nil {
			if errors.Is(err, services.ErrInvalidUsername) {
				return badRequest(c, "username is required")
			}
			return serverErrorWithDetails(c, "Failed to save account", err)
		}

		return created(c, fiber.Map{"account": models.OwnedAccount{Username: req.Username}})
	}
}

// GetFavorites returns the submissions a user has favorited
func GetFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favorites, err := a.Library.Favorites(c.Params("username"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidUsername) {
				return badRequest(c, "username is required")
			}
			return serverErrorWithDetails(c, "Failed to load favorites", err)
		}
		if favorites == nil {
			favorites = []models.Submission{}
		}

		return success(c, fiber.Map{"favorites": favorites})
	}
}

// SaveFavorites records favorited submission urls for a user
func SaveFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveFavoritesRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		added, err := a.Library.SaveFavorites(req.Username, req.URLs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername):
				return badRequest(c, "username is required")
			case errors.Is(err, services.ErrNoURLs):
				return badRequest(c, "at least one url is required")
			}
			return serverErrorWithDetails(c, "Failed to save favorites", err)
		}

		return created(c, fiber.Map{"added": added})
	}
}
