package bookingRoutes

import (
	bookingController "opora/controllers/booking"
	"opora/middleware"
	bookingValidator "opora/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	app.Post("/api/booking", bookingValidator.Booking(), bookingController.SubmitBooking)

	adminGroup := app.Group("/api/admin/bookings", middleware.AdminMiddleware)
	adminGroup.Get("/", bookingController.GetBookings)
	adminGroup.Delete("/:id", bookingController.DeleteBooking)
}
