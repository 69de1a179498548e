package uploadController

import (
	"log"
	"strings"

	"opora/config"
	"opora/middleware"
	"opora/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadImage accepts a single admin-uploaded image and stores it under the
// public uploads directory with a randomly generated filename.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "FILE_REQUIRED")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return middleware.JsonError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE")
	}

	maxBytes := int64(config.AppConfig.UploadMaxMB) * 1024 * 1024
	if file.Size > maxBytes {
		return middleware.JsonError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE")
	}

	filename, err := utils.SaveUploadedImage(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Failed to store upload: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "UPLOAD_FAILED")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":  true,
		"url": "/uploads/" + filename,
	})
}
