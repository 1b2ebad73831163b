package handlers

import (
	"gallery-archive/app"
	"gallery-archive/backup"
	"gallery-archive/models"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := a.Settings.Get()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load settings", err)
		}

		return success(c, fiber.Map{"settings": settings})
	}
}

// UpdateSettings replaces the stored settings
func UpdateSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		settings, err := a.Settings.Update(req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save settings", err)
		}

		return success(c, fiber.Map{"settings": settings})
	}
}

// GetSchema reports the database schema version
func GetSchema(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := a.Settings.Schema(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read schema version", err)
		}

		return success(c, fiber.Map{"schema": status})
	}
}

// GetBackupStatus reports the state of the Drive backup worker
func GetBackupStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := backup.Status{}
		if a.Backup != nil {
			status = a.Backup.Status()
		}

		return success(c, fiber.Map{"backup": status})
	}
}
