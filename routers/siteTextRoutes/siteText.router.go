package siteTextRoutes

import (
	"opora/cache"
	siteTextController "opora/controllers/sitetext"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSiteTextRoutes(app *fiber.App) {
	app.Get("/api/site-texts", cache.PageCache(), siteTextController.GetSiteTexts)
	app.Put("/api/site-texts", middleware.AdminMiddleware, siteTextController.UpdateSiteTexts)
}
