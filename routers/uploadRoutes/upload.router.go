package uploadRoutes

import (
	uploadController "opora/controllers/upload"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	app.Post("/api/upload", middleware.AdminMiddleware, uploadController.UploadImage)
}
