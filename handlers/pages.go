package handlers

import (
	"gallery-archive/app"
	"gallery-archive/views"

	"github.com/gofiber/fiber/v2"
)

// GalleryPage renders the HTML archive browser
func GalleryPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseGalleryQuery(c, a)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		items, applied, err := a.Gallery.Page(q)
		if err != nil {
			return err
		}

		usernames, err := a.Gallery.Usernames()
		if err != nil {
			return err
		}

		// Set HTML content type
		c.Set("Content-Type", "text/html; charset=utf-8")
		// Render with Templ
		return views.Gallery(views.GalleryPage{
			Items:     items,
			Query:     applied,
			Usernames: usernames,
			HasNext:   len(items) == applied.Limit,
		}).Render(c.Context(), c.Response().BodyWriter())
	}
}

// Health reports that the server is up and the database answers
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.DB.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
