package cookie

import (
	"github.com/gofiber/fiber/v2"
)

const storageClearedName = "storage_cleared"

// GetStorageCleared returns the storage-clear version this browser already
// went through, or "".
func GetStorageCleared(c *fiber.Ctx) string {
	return c.Cookies(storageClearedName)
}

func SetStorageCleared(c *fiber.Ctx, version string) {
	c.Cookie(&fiber.Cookie{
		Name:     storageClearedName,
		Value:    version,
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Lax",
	})
}
