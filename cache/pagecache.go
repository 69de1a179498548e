// Package cache provides a small in-process response cache for public GET
// endpoints, with explicit per-path revalidation. Mutating handlers call
// Revalidate so the next read re-renders from storage.
package cache

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

type entry struct {
	status      int
	contentType string
	body        []byte
}

var (
	mu    sync.RWMutex
	pages = map[string]entry{}
)

// cacheKey normalizes a request URL so "/api/events" and "/api/events/"
// share one cache entry
func cacheKey(url string) string {
	path, query, hasQuery := strings.Cut(url, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if hasQuery {
		return path + "?" + query
	}
	return path
}

// PageCache caches successful GET responses keyed by full request URL.
// Requests carrying an Authorization header bypass the cache, so admin reads
// always see fresh (and unpublished) data.
func PageCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || c.Get("Authorization") != "" {
			return c.Next()
		}

		key := cacheKey(c.OriginalURL())

		mu.RLock()
		e, ok := pages[key]
		mu.RUnlock()
		if ok {
			c.Set(fiber.HeaderContentType, e.contentType)
			return c.Status(e.status).Send(e.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())

			mu.Lock()
			pages[key] = entry{
				status:      status,
				contentType: string(c.Response().Header.ContentType()),
				body:        body,
			}
			mu.Unlock()
		}
		return nil
	}
}

// Revalidate drops every cached rendering of the given paths, including
// variants that differ only in query string
func Revalidate(paths ...string) {
	mu.Lock()
	for _, p := range paths {
		p = cacheKey(p)
		for key := range pages {
			if key == p || strings.HasPrefix(key, p+"?") {
				delete(pages, key)
			}
		}
	}
	mu.Unlock()
}

// Reset clears the whole cache. Used by tests.
func Reset() {
	mu.Lock()
	pages = map[string]entry{}
	mu.Unlock()
}
