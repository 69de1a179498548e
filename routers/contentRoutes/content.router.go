package contentRoutes

import (
	"opora/cache"
	contentController "opora/controllers/content"
	"opora/middleware"
	contentValidator "opora/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes wires CRUD for the four published-content entity types.
// Collection GETs are public (published rows only) but include unpublished
// rows when a valid admin session is attached.
func SetupContentRoutes(app *fiber.App) {
	services := app.Group("/api/services")
	services.Get("/", cache.PageCache(), middleware.OptionalAdminMiddleware, contentController.GetServices)
	services.Post("/", middleware.AdminMiddleware, contentValidator.ServiceBody(), contentController.CreateService)
	services.Get("/:id", middleware.AdminMiddleware, contentController.GetService)
	services.Patch("/:id", middleware.AdminMiddleware, contentValidator.ServiceBody(), contentController.UpdateService)
	services.Delete("/:id", middleware.AdminMiddleware, contentController.DeleteService)

	specialists := app.Group("/api/specialists")
	specialists.Get("/", cache.PageCache(), middleware.OptionalAdminMiddleware, contentController.GetSpecialists)
	specialists.Post("/", middleware.AdminMiddleware, contentValidator.SpecialistBody(), contentController.CreateSpecialist)
	specialists.Get("/:id", middleware.AdminMiddleware, contentController.GetSpecialist)
	specialists.Patch("/:id", middleware.AdminMiddleware, contentValidator.SpecialistBody(), contentController.UpdateSpecialist)
	specialists.Delete("/:id", middleware.AdminMiddleware, contentController.DeleteSpecialist)

	events := app.Group("/api/events")
	events.Get("/", cache.PageCache(), middleware.OptionalAdminMiddleware, contentController.GetEvents)
	events.Post("/", middleware.AdminMiddleware, contentValidator.EventBody(), contentController.CreateEvent)
	events.Get("/:id", contentController.GetEvent)
	events.Patch("/:id", middleware.AdminMiddleware, contentValidator.EventBody(), contentController.UpdateEvent)
	events.Delete("/:id", middleware.AdminMiddleware, contentController.DeleteEvent)

	photos := app.Group("/api/photo-reports")
	photos.Get("/", cache.PageCache(), middleware.OptionalAdminMiddleware, contentController.GetPhotoReports)
	photos.Post("/", middleware.AdminMiddleware, contentValidator.PhotoReportBody(), contentController.CreatePhotoReport)
	photos.Get("/:id", middleware.AdminMiddleware, contentController.GetPhotoReport)
	photos.Patch("/:id", middleware.AdminMiddleware, contentValidator.PhotoReportBody(), contentController.UpdatePhotoReport)
	photos.Delete("/:id", middleware.AdminMiddleware, contentController.DeletePhotoReport)
}
