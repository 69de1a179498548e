package contentController

import (
	"log"
	"strings"

	"opora/cache"
	"opora/database"
	"opora/middleware"
	"opora/models"

	contentValidator "opora/validators/content"

	"github.com/gofiber/fiber/v2"
)

// GetPhotoReports lists gallery photos, newest first. Anonymous callers see
// only published rows; photos default to published on creation.
func GetPhotoReports(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.PhotoReport{})
	if !middleware.IsAdmin(c) {
		query = query.Where("is_published = ?", true)
	}

	var items []models.PhotoReport
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}
	return c.JSON(items)
}

// GetPhotoReport returns one gallery photo by id
func GetPhotoReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.PhotoReport
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}
	return c.JSON(item)
}

func applyPhotoReport(item *models.PhotoReport, reqData *contentValidator.PhotoReportRequest) {
	item.Title = strings.TrimSpace(reqData.Title)
	item.ImageURL = strings.TrimSpace(reqData.ImageURL)
	item.SortOrder = reqData.SortOrder
	if reqData.IsPublished != nil {
		item.IsPublished = *reqData.IsPublished
	}
}

// CreatePhotoReport persists a new gallery photo from a validated admin payload
func CreatePhotoReport(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPhotoReport").(*contentValidator.PhotoReportRequest)

	item := models.PhotoReport{IsPublished: true}
	applyPhotoReport(&item, reqData)

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Failed to create photo report: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "CREATE_FAILED")
	}

	cache.Revalidate("/", "/api/photo-reports")
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdatePhotoReport rewrites an existing gallery photo from a validated admin payload
func UpdatePhotoReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.PhotoReport
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	reqData := c.Locals("validatedPhotoReport").(*contentValidator.PhotoReportRequest)
	applyPhotoReport(&item, reqData)

	if err := database.Database.Db.Save(&item).Error; err != nil {
		log.Printf("Failed to update photo report: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
	}

	cache.Revalidate("/", "/api/photo-reports")
	return c.JSON(item)
}

// DeletePhotoReport removes a gallery photo permanently
func DeletePhotoReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.PhotoReport
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	if err := database.Database.Db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate("/", "/api/photo-reports")
	return middleware.JsonOk(c, fiber.StatusOK)
}
