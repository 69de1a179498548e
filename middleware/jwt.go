package middleware

import (
	"fmt"
	"strings"
	"time"

	"opora/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateAdminJWT generates a session token for the site administrator
func GenerateAdminJWT(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  "ADMIN",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := []byte(config.AppConfig.SessionSecret)

	return token.SignedString(secret)
}

func parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// AdminMiddleware rejects requests that do not carry a valid admin session token
func AdminMiddleware(c *fiber.Ctx) error {
	claims, ok := parseBearerToken(c)
	if !ok || claims["role"] != "ADMIN" {
		return JsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED")
	}

	c.Locals("isAdmin", true)
	if email, ok := claims["email"].(string); ok {
		c.Locals("adminEmail", email)
	}
	return c.Next()
}

// OptionalAdminMiddleware marks the request as admin when a valid token is
// present but lets anonymous requests through. Public content listings use it
// to decide whether unpublished rows are visible.
func OptionalAdminMiddleware(c *fiber.Ctx) error {
	if claims, ok := parseBearerToken(c); ok && claims["role"] == "ADMIN" {
		c.Locals("isAdmin", true)
	}
	return c.Next()
}

// IsAdmin reports whether the current request carries a valid admin session
func IsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return isAdmin
}
