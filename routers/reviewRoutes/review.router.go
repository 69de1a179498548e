package reviewRoutes

import (
	"opora/cache"
	reviewController "opora/controllers/review"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	app.Post("/api/reviews", reviewController.SubmitReview)
	app.Get("/api/reviews", cache.PageCache(), reviewController.GetPublicReviews)

	adminGroup := app.Group("/api/admin/reviews", middleware.AdminMiddleware)
	adminGroup.Get("/", reviewController.GetAdminReviews)
	adminGroup.Post("/:id/approve", reviewController.ApproveReview)
	adminGroup.Post("/:id/reject", reviewController.RejectReview)
	adminGroup.Delete("/:id", reviewController.DeleteReview)
}
