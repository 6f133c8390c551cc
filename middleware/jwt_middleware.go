package middleware

import (
	"strings"

	"github.com/farhandwk/toko-luwes/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTMiddleware membaca Bearer token dari header Authorization dan menaruh
// identitas kasir di Locals untuk dipakai controller.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan atau format salah",
		})
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak valid atau kadaluarsa",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userRole", claims.Role)
	c.Locals("userNama", claims.Nama)

	return c.Next()
}

// JWTMiddlewareForExport reads JWT from Authorization header.
// If missing, it also accepts a token from query string (default: ?token=...).
// This is intentionally scoped for download endpoints invoked via window.open.
func JWTMiddlewareForExport(c *fiber.Ctx) error {
	tokenStr := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenStr == "" {
		tokenStr = c.Query("token", "")
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan atau format salah",
		})
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak valid atau kadaluarsa",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userRole", claims.Role)
	c.Locals("userNama", claims.Nama)

	return c.Next()
}

// RoleGuard membatasi route untuk role tertentu.
func RoleGuard(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Akses ditolak"})
	}
}
