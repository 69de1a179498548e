package reviewController

import (
	"log"
	"strings"
	"time"

	"opora/cache"
	"opora/config"
	"opora/database"
	"opora/middleware"
	"opora/models"
	"opora/utils"

	"github.com/gofiber/fiber/v2"
)

// Public paths whose cached renderings depend on the approved-review set
var reviewPaths = []string{"/", "/api/reviews", "/api/admin/reviews"}

const (
	minReviewLen  = 20
	maxReviewLen  = 1000
	maxAuthorLen  = 60
	defaultLimit  = 6
	maxPublicPage = 50
)

type submitRequest struct {
	Text        string      `json:"text"`
	Name        string      `json:"name"`
	Rating      *int        `json:"rating"`
	IsAnonymous interface{} `json:"isAnonymous"`
	Website     string      `json:"website"` // honeypot, never shown to real users
}

// coerceBool accepts the boolean-like shapes the public form may send
func coerceBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "on" || s == "1"
	case float64: // JSON numbers: 1 is truthy, 0 is not
		return val != 0
	default:
		return false
	}
}

// SubmitReview accepts an anonymous public submission and persists it in
// PENDING status. All outcomes are reported in-body with HTTP 200 so the
// form client has a single response shape to deal with.
func SubmitReview(c *fiber.Ctx) error {
	reqData := new(submitRequest)
	if err := c.BodyParser(reqData); err != nil {
		return c.JSON(fiber.Map{"ok": false, "error": "validation"})
	}

	// Bots fill the hidden field. Pretend success, write nothing.
	if strings.TrimSpace(reqData.Website) != "" {
		return c.JSON(fiber.Map{"ok": true})
	}

	text := strings.TrimSpace(reqData.Text)
	name := strings.TrimSpace(reqData.Name)

	if len([]rune(text)) < minReviewLen || len([]rune(text)) > maxReviewLen {
		return c.JSON(fiber.Map{"ok": false, "error": "validation"})
	}
	if len([]rune(name)) > maxAuthorLen {
		return c.JSON(fiber.Map{"ok": false, "error": "validation"})
	}
	if reqData.Rating != nil && (*reqData.Rating < 1 || *reqData.Rating > 5) {
		return c.JSON(fiber.Map{"ok": false, "error": "validation"})
	}

	isAnonymous := coerceBool(reqData.IsAnonymous)

	db := database.Database.Db

	ipHash := utils.HashIP(utils.ClientIP(c))
	if ipHash != "" {
		windowStart := time.Now().Add(-time.Duration(config.AppConfig.ReviewRateWindowMin) * time.Minute)

		var recentCount int64
		if err := db.Model(&models.Review{}).
			Where("ip_hash = ? AND created_at > ?", ipHash, windowStart).
			Count(&recentCount).Error; err != nil {
			log.Printf("Error counting recent reviews: %v", err)
			return c.JSON(fiber.Map{"ok": false, "error": "server_error"})
		}

		if recentCount >= int64(config.AppConfig.ReviewRateMax) {
			return c.JSON(fiber.Map{"ok": false, "error": "rate_limited"})
		}
	}

	authorName := name
	if isAnonymous {
		authorName = ""
	}

	review := models.Review{
		Text:        text,
		AuthorName:  authorName,
		Rating:      reqData.Rating,
		IsAnonymous: isAnonymous,
		Status:      models.ReviewStatusPending,
		IPHash:      ipHash,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error saving review: %v", err)
		return c.JSON(fiber.Map{"ok": false, "error": "server_error"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// PublicReviewItem is one approved review as rendered on the public site
type PublicReviewItem struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Rating    *int      `json:"rating"`
	Stars     string    `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayAuthor applies the anonymity rule: the stored name is shown only
// when the flag is off and a name exists.
func DisplayAuthor(r models.Review) string {
	if r.IsAnonymous || strings.TrimSpace(r.AuthorName) == "" {
		return "Anonymous"
	}
	return r.AuthorName
}

// RenderStars renders a rating as a five-symbol indicator, or a dash when absent
func RenderStars(rating *int) string {
	if rating == nil {
		return "—"
	}
	return strings.Repeat("★", *rating) + strings.Repeat("☆", 5-*rating)
}

// GetPublicReviews returns approved reviews, newest first, up to ?limit
func GetPublicReviews(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPublicPage {
		limit = maxPublicPage
	}

	var reviews []models.Review
	if err := database.Database.Db.
		Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	items := make([]PublicReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, PublicReviewItem{
			ID:        r.ID,
			Text:      r.Text,
			Author:    DisplayAuthor(r),
			Rating:    r.Rating,
			Stars:     RenderStars(r.Rating),
			CreatedAt: r.CreatedAt,
		})
	}

	return c.JSON(items)
}

// GetAdminReviews lists reviews in every status, with an optional ?status filter
func GetAdminReviews(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Review{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	return c.JSON(reviews)
}

func findReview(c *fiber.Ctx) (*models.Review, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}

	var review models.Review
	if err := database.Database.Db.First(&review, id).Error; err != nil {
		return nil, middleware.JsonError(c, fiber.StatusNotFound, "NOT_FOUND")
	}
	return &review, nil
}

// ApproveReview transitions a review to APPROVED and stamps the approval time.
// Re-applying to an already approved review just rewrites the same state.
func ApproveReview(c *fiber.Ctx) error {
	review, errResp := findReview(c)
	if review == nil {
		return errResp
	}

	now := time.Now()
	review.Status = models.ReviewStatusApproved
	review.ApprovedAt = &now

	if err := database.Database.Db.Save(review).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate(reviewPaths...)
	return middleware.JsonOk(c, fiber.StatusOK)
}

// RejectReview transitions a review to REJECTED
func RejectReview(c *fiber.Ctx) error {
	review, errResp := findReview(c)
	if review == nil {
		return errResp
	}

	review.Status = models.ReviewStatusRejected

	if err := database.Database.Db.Save(review).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate(reviewPaths...)
	return middleware.JsonOk(c, fiber.StatusOK)
}

// DeleteReview removes a review permanently, whatever its status
func DeleteReview(c *fiber.Ctx) error {
	review, errResp := findReview(c)
	if review == nil {
		return errResp
	}

	if err := database.Database.Db.Unscoped().Delete(review).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	cache.Revalidate(reviewPaths...)
	return middleware.JsonOk(c, fiber.StatusOK)
}
