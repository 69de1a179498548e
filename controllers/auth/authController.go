package authController

import (
	"strings"

	"opora/config"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// passwordMatches compares against ADMIN_PASSWORD, which may be stored either
// pre-hashed with bcrypt (recognized by the "$2" prefix) or as plaintext.
func passwordMatches(candidate, stored string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return candidate == stored
}

// Login authenticates the site administrator against the configured
// credentials and issues a session token.
func Login(c *fiber.Ctx) error {
	reqData := new(loginRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR")
	}

	email := strings.TrimSpace(reqData.Email)
	if email == "" || reqData.Password == "" {
		return middleware.JsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED")
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || email != cfg.AdminEmail || !passwordMatches(reqData.Password, cfg.AdminPassword) {
		return middleware.JsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED")
	}

	token, err := middleware.GenerateAdminJWT(email)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "SERVER_ERROR")
	}

	return c.JSON(fiber.Map{"ok": true, "token": token})
}
