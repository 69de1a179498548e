package contentValidator

import (
	"strings"
	"time"

	"opora/middleware"
	"opora/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ServiceRequest is the admin payload for creating or updating a service
type ServiceRequest struct {
	Slug        string                `json:"slug" validate:"required"`
	Title       string                `json:"title" validate:"required"`
	Intro       string                `json:"intro"`
	Blocks      []models.ServiceBlock `json:"blocks"`
	IsPublished bool                  `json:"isPublished"`
	SortOrder   int                   `json:"sortOrder"`
}

// SpecialistRequest is the admin payload for creating or updating a specialist
type SpecialistRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role"`
	Badge       string `json:"badge"`
	BadgeTone   string `json:"badgeTone"`
	Excerpt     string `json:"excerpt"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photoUrl"`
	IsPublished bool   `json:"isPublished"`
	SortOrder   int    `json:"sortOrder"`
}

// EventRequest is the admin payload for creating or updating an event
type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Place       string    `json:"place"`
	ImageURL    string    `json:"imageUrl"`
	IsPublished *bool     `json:"isPublished"`
}

// PhotoReportRequest is the admin payload for creating or updating a gallery photo
type PhotoReportRequest struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	IsPublished *bool  `json:"isPublished"`
	SortOrder   int    `json:"sortOrder"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "failed on " + fe.Tag()
		}
	} else {
		errors["body"] = err.Error()
	}
	return errors
}

func bodyValidator(localKey string, newTarget func() interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := newTarget()
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals(localKey, reqData)
		return c.Next()
	}
}

func ServiceBody() fiber.Handler {
	return bodyValidator("validatedService", func() interface{} { return new(ServiceRequest) })
}

func SpecialistBody() fiber.Handler {
	return bodyValidator("validatedSpecialist", func() interface{} { return new(SpecialistRequest) })
}

func EventBody() fiber.Handler {
	return bodyValidator("validatedEvent", func() interface{} { return new(EventRequest) })
}

func PhotoReportBody() fiber.Handler {
	return bodyValidator("validatedPhotoReport", func() interface{} { return new(PhotoReportRequest) })
}
