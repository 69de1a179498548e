package contentController

import (
	"encoding/json"
	"log"
	"strings"

	"opora/cache"
	"opora/database"
	"opora/middleware"
	"opora/models"
	"opora/utils"

	contentValidator "opora/validators/content"

	"github.com/gofiber/fiber/v2"
)

// cleanBlocks trims both fields of every block and drops fully empty ones,
// preserving order.
func cleanBlocks(blocks []models.ServiceBlock) []models.ServiceBlock {
	out := make([]models.ServiceBlock, 0, len(blocks))
	for _, b := range blocks {
		b.Title = strings.TrimSpace(b.Title)
		b.Text = strings.TrimSpace(b.Text)
		if b.Title != "" || b.Text != "" {
			out = append(out, b)
		}
	}
	return out
}

// GetServices lists services ordered for display. Anonymous callers see only
// published rows; a valid admin session sees everything.
func GetServices(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Service{})
	if !middleware.IsAdmin(c) {
		query = query.Where("is_published = ?", true)
	}

	var items []models.Service
	if err := query.Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}
	return c.JSON(items)
}

// GetService returns one service by id (admin editing view)
func GetService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Service
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}
	return c.JSON(item)
}

// CreateService persists a new service from a validated admin payload
func CreateService(c *fiber.Ctx) error {
	reqData := c.Locals("validatedService").(*contentValidator.ServiceRequest)

	slug := utils.NormalizeSlug(reqData.Slug)
	if slug == "" {
		return middleware.JsonError(c, fiber.StatusBadRequest, "INVALID_SLUG")
	}

	blocksJSON, err := json.Marshal(cleanBlocks(reqData.Blocks))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
	}

	item := models.Service{
		Slug:        slug,
		Title:       strings.TrimSpace(reqData.Title),
		Intro:       strings.TrimSpace(reqData.Intro),
		Blocks:      blocksJSON,
		IsPublished: reqData.IsPublished,
		SortOrder:   reqData.SortOrder,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Failed to create service: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "CREATE_FAILED")
	}

	cache.Revalidate("/", "/api/services")
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateService rewrites an existing service from a validated admin payload
func UpdateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Service
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	reqData := c.Locals("validatedService").(*contentValidator.ServiceRequest)

	slug := utils.NormalizeSlug(reqData.Slug)
	if slug == "" {
		return middleware.JsonError(c, fiber.StatusBadRequest, "INVALID_SLUG")
	}

	blocksJSON, err := json.Marshal(cleanBlocks(reqData.Blocks))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
	}

	item.Slug = slug
	item.Title = strings.TrimSpace(reqData.Title)
	item.Intro = strings.TrimSpace(reqData.Intro)
	item.Blocks = blocksJSON
	item.IsPublished = reqData.IsPublished
	item.SortOrder = reqData.SortOrder

	if err := database.Database.Db.Save(&item).Error; err != nil {
		log.Printf("Failed to update service: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
	}

	cache.Revalidate("/", "/api/services")
	return c.JSON(item)
}

// DeleteService removes a service permanently
func DeleteService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Service
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	if err := database.Database.Db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate("/", "/api/services")
	return middleware.JsonOk(c, fiber.StatusOK)
}
