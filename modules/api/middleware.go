package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/catalog-store-demo/modules/catalog"
)

// AdminPinMiddleware guards admin endpoints. The PIN travels in the
// X-Admin-Pin header and is verified against the stored digest on every
// request. No PIN configured means authentication is not yet set up and
// every attempt fails.
func AdminPinMiddleware(service *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pin := c.Get(adminPinHeader)
		if pin == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing " + adminPinHeader + " header",
			})
		}

		valid, err := service.VerifyAdminPin(pin)
		if err != nil {
			if errors.Is(err, catalog.ErrPinNotSet) {
				return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
					Error:   "unauthorized",
					Message: "No admin PIN has been configured",
				})
			}
			return internalError(c)
		}
		if !valid {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid PIN",
			})
		}
		return c.Next()
	}
}
