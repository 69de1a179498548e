package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"opora/config"

	"github.com/gofiber/fiber/v2"
)

// ClientIP resolves the submitter's address, preferring the direct connection
// and falling back to proxy headers in priority order. Returns "" when nothing
// is resolvable.
func ClientIP(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.IP()); ip != "" {
		return ip
	}

	if xff := c.Get("X-Forwarded-For"); xff != "" {
		first := strings.SplitN(xff, ",", 2)[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(c.Get("X-Real-Ip")); ip != "" {
		return ip
	}

	if ip := strings.TrimSpace(c.Get("Cf-Connecting-Ip")); ip != "" {
		return ip
	}

	return ""
}

// HashIP produces a one-way salted digest of an address for rate limiting.
// The raw address is never stored. An unresolvable address hashes to "".
func HashIP(ip string) string {
	value := strings.TrimSpace(ip)
	if value == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(value + config.AppConfig.SessionSecret))
	return hex.EncodeToString(sum[:])
}
