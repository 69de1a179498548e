package siteTextController

import (
	"log"
	"strings"

	"opora/cache"
	"opora/database"
	"opora/middleware"
	"opora/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetSiteTexts returns the effective copy for every text key: the built-in
// defaults overlaid with stored overrides.
func GetSiteTexts(c *fiber.Ctx) error {
	out := make(map[string]string, len(siteTextDefaults))
	for key, value := range siteTextDefaults {
		out[key] = value
	}

	var overrides []models.SiteText
	if err := database.Database.Db.Find(&overrides).Error; err != nil {
		log.Printf("Failed to load site text overrides: %v", err)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	for _, item := range overrides {
		if IsKnownSiteTextKey(item.Key) {
			out[item.Key] = item.Value
		}
	}

	return c.JSON(out)
}

type siteTextItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type updateSiteTextsRequest struct {
	Items []siteTextItem `json:"items"`
}

// UpdateSiteTexts applies a batch of overrides. A trimmed-empty value deletes
// the override row so the key reverts to its default instead of storing "".
func UpdateSiteTexts(c *fiber.Ctx) error {
	reqData := new(updateSiteTextsRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
	}

	for _, item := range reqData.Items {
		if !IsKnownSiteTextKey(item.Key) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "UNKNOWN_KEY")
		}
	}

	db := database.Database.Db

	for _, item := range reqData.Items {
		value := strings.TrimSpace(item.Value)

		if value == "" {
			if err := db.Unscoped().Where("key = ?", item.Key).Delete(&models.SiteText{}).Error; err != nil {
				log.Printf("Failed to delete site text %q: %v", item.Key, err)
				return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
			}
			continue
		}

		record := models.SiteText{Key: item.Key, Value: value}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&record).Error; err != nil {
			log.Printf("Failed to upsert site text %q: %v", item.Key, err)
			return middleware.JsonError(c, fiber.StatusInternalServerError, "UPDATE_FAILED")
		}
	}

	cache.Revalidate("/", "/api/site-texts")
	return middleware.JsonOk(c, fiber.StatusOK)
}
