package middleware

import "github.com/gofiber/fiber/v2"

// JsonOk responds with the plain success envelope
func JsonOk(c *fiber.Ctx, statusCode int) error {
	return c.Status(statusCode).JSON(fiber.Map{"ok": true})
}

// JsonError responds with the error envelope `{ ok:false, error:<code> }`
func JsonError(c *fiber.Ctx, statusCode int, code string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"ok":    false,
		"error": code,
	})
}

// ValidationErrorResponse reports per-field validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"ok":     false,
		"error":  "VALIDATION_ERROR",
		"fields": errors,
	})
}
