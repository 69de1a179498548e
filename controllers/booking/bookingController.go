package bookingController

import (
	"log"

	"opora/database"
	"opora/middleware"
	"opora/models"

	bookingValidator "opora/validators/booking"

	"github.com/gofiber/fiber/v2"
)

// SubmitBooking persists a public consultation request
func SubmitBooking(c *fiber.Ctx) error {
	reqData := c.Locals("validatedBooking").(*bookingValidator.BookingRequestBody)

	booking := models.BookingRequest{
		Name:    reqData.Name,
		Phone:   reqData.Phone,
		Email:   reqData.Email,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&booking).Error; err != nil {
		log.Printf("Failed to save booking request: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	return middleware.JsonOk(c, fiber.StatusCreated)
}

// GetBookings lists consultation requests for the admin panel, newest first
func GetBookings(c *fiber.Ctx) error {
	var items []models.BookingRequest
	if err := database.Database.Db.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}
	return c.JSON(items)
}

// DeleteBooking removes a handled consultation request
func DeleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.BookingRequest
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	if err := database.Database.Db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	return middleware.JsonOk(c, fiber.StatusOK)
}
