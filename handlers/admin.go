package handlers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/fleetra/site/config"
	"github.com/fleetra/site/db"
	"github.com/fleetra/site/password"
	"github.com/fleetra/site/store"
	"github.com/fleetra/site/ui"
)

const recentSubmissionLimit = 50

// AdminAuth guards the admin routes. Without a configured password hash no
// credentials are accepted.
var AdminAuth = basicauth.New(basicauth.Config{
	Realm:      "Fleetra Admin",
	Authorizer: authorizeAdmin,
})

func authorizeAdmin(user, pass string) bool {
	if config.AdminPasswordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(config.AdminUser)) == 1
	passOK := password.VerifyPassword(pass, config.AdminPasswordHash, config.AdminPasswordSalt)
	return userOK && passOK
}

// HandleAdmin shows recent submissions with their relay status and the page
// cache statistics.
func HandleAdmin(c *fiber.Ctx) error {
	var (
		records []store.Record
		counts  map[string]int
	)
	if db.Ready() {
		var err error
		if records, err = store.RecentSubmissions(c.UserContext(), recentSubmissionLimit); err != nil {
			log.Printf("[ADMIN] %v", err)
			return fiber.ErrInternalServerError
		}
		if counts, err = store.CountByStatus(c.UserContext()); err != nil {
			log.Printf("[ADMIN] %v", err)
			return fiber.ErrInternalServerError
		}
	}
	return render(c, ui.AdminPage(records, counts, pageCacheStats()))
}

// HandleClearPageCache empties the page cache and returns the refreshed
// stats panel for htmx to swap in.
func HandleClearPageCache(c *fiber.Ctx) error {
	if pageCache != nil {
		pageCache.Clear()
		log.Printf("[ADMIN] Page cache cleared")
	}
	return render(c, ui.CacheStatsPanel("Page Cache", pageCacheStats()))
}

func pageCacheStats() map[string]interface{} {
	if pageCache == nil {
		return map[string]interface{}{}
	}
	return pageCache.Stats()
}
