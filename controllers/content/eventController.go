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

// GetEvents lists events by date, soonest first. Anonymous callers see only
// published rows; events default to published on creation.
func GetEvents(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Event{})
	if !middleware.IsAdmin(c) {
		query = query.Where("is_published = ?", true)
	}

	var items []models.Event
	if err := query.Order("date ASC").Find(&items).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}
	return c.JSON(items)
}

// GetEvent returns one event by id
func GetEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Event
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}
	return c.JSON(item)
}

func applyEvent(item *models.Event, reqData *contentValidator.EventRequest) {
	item.Title = strings.TrimSpace(reqData.Title)
	item.Description = strings.TrimSpace(reqData.Description)
	item.Date = reqData.Date
	item.Place = strings.TrimSpace(reqData.Place)
	item.ImageURL = strings.TrimSpace(reqData.ImageURL)
	if reqData.IsPublished != nil {
		item.IsPublished = *reqData.IsPublished
	}
}

// CreateEvent persists a new event from a validated admin payload
func CreateEvent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEvent").(*contentValidator.EventRequest)

	item := models.Event{IsPublished: true}
	applyEvent(&item, reqData)

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Failed to create event: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "CREATE_FAILED")
	}

	cache.Revalidate("/", "/api/events")
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateEvent rewrites an existing event from a validated admin payload
func UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Event
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	reqData := c.Locals("validatedEvent").(*contentValidator.EventRequest)
	applyEvent(&item, reqData)

	if err := database.Database.Db.Save(&item).Error; err != nil {
		log.Printf("Failed to update event: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
	}

	cache.Revalidate("/", "/api/events")
	return c.JSON(item)
}

// DeleteEvent removes an event permanently
func DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var item models.Event
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	if err := database.Database.Db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate("/", "/api/events")
	return middleware.JsonOk(c, fiber.StatusOK)
}
