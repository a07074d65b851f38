// Package middleware provides HTTP middleware for the fiber application.
package middleware

import (
	"strings"

	"custodia/internal/models"
	"custodia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the Bearer token and stores the claims in the request
// context for handlers to consume.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return utils.Unauthorized(c, "invalid token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// RequireEmployee rejects callers without the EMPLOYEE role. Used on the
// approve/deny endpoint, which is never customer-facing.
func RequireEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok || claims == nil {
			return utils.Unauthorized(c, "invalid claims")
		}
		if claims.Role != models.RoleEmployee {
			return utils.Forbidden(c, "insufficient permissions")
		}
		return c.Next()
	}
}
