package bookingValidator

import (
	"strings"

	"opora/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BookingRequestBody is the public contact-form payload
type BookingRequestBody struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message"`
}

func Booking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookingRequestBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Phone = strings.TrimSpace(reqData.Phone)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
		}

		c.Locals("validatedBooking", reqData)
		return c.Next()
	}
}
