package contentController

import (
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

// GetSpecialists lists specialists ordered for display. Anonymous callers see
// only published rows.
func GetSpecialists(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Specialist{})
	if !middleware.IsAdmin(c) {
		query = query.Where("is_published = ?", true)
	}

	var items []models.Specialist
	if err := query.Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}
	return c.JSON(items)
}

// GetSpecialist returns one specialist by id (admin editing view)
func GetSpecialist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Specialist
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}
	return c.JSON(item)
}

func applySpecialist(item *models.Specialist, reqData *contentValidator.SpecialistRequest, slug string) {
	item.Slug = slug
	item.Name = strings.TrimSpace(reqData.Name)
	item.Role = strings.TrimSpace(reqData.Role)
	item.Badge = strings.TrimSpace(reqData.Badge)
	item.BadgeTone = strings.TrimSpace(reqData.BadgeTone)
	item.Excerpt = strings.TrimSpace(reqData.Excerpt)
	item.Bio = strings.TrimSpace(reqData.Bio)
	item.PhotoURL = strings.TrimSpace(reqData.PhotoURL)
	item.IsPublished = reqData.IsPublished
	item.SortOrder = reqData.SortOrder
}

// CreateSpecialist persists a new specialist from a validated admin payload
func CreateSpecialist(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSpecialist").(*contentValidator.SpecialistRequest)

	slug := utils.NormalizeSlug(reqData.Slug)
	if slug == "" {
		return middleware.JsonError(c, fiber.StatusBadRequest, "INVALID_SLUG")
	}

	var item models.Specialist
	applySpecialist(&item, reqData, slug)

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Failed to create specialist: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "CREATE_FAILED")
	}

	cache.Revalidate("/", "/api/specialists")
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateSpecialist rewrites an existing specialist from a validated admin payload
func UpdateSpecialist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Specialist
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	reqData := c.Locals("validatedSpecialist").(*contentValidator.SpecialistRequest)

	slug := utils.NormalizeSlug(reqData.Slug)
	if slug == "" {
		return middleware.JsonError(c, fiber.StatusBadRequest, "INVALID_SLUG")
	}

	applySpecialist(&item, reqData, slug)

	if err := database.Database.Db.Save(&item).Error; err != nil {
		log.Printf("Failed to update specialist: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
	}

	cache.Revalidate("/", "/api/specialists")
	return c.JSON(item)
}

// DeleteSpecialist removes a specialist permanently
func DeleteSpecialist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Specialist
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	if err := database.Database.Db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate("/", "/api/specialists")
	return middleware.JsonOk(c, fiber.StatusOK)
}
