package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	domain "github.com/example/catalog-store-demo/domain/catalog"
	"github.com/example/catalog-store-demo/modules/audit"
	"github.com/example/catalog-store-demo/modules/catalog"
	"github.com/example/catalog-store-demo/modules/export"
)

// adminPinHeader carries the admin PIN on protected endpoints. Each
// request is checked against the stored digest; there is no session.
const adminPinHeader = "X-Admin-Pin"

// AuditPort exposes the audit journal to the admin surface.
type AuditPort interface {
	Recent(ctx context.Context, limit int) ([]audit.Entry, error)
}

// Handlers contains the HTTP handlers for the catalog API.
type Handlers struct {
	service *catalog.Service
	export  *export.Service
	audit   AuditPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *catalog.Service, exportSvc *export.Service, audit AuditPort) *Handlers {
	return &Handlers{
		service: service,
		export:  exportSvc,
		audit:   audit,
	}
}

// GetCatalog returns the full document.
func (h *Handlers) GetCatalog(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Catalog())
}

// AddProduct creates a new product from a draft.
func (h *Handlers) AddProduct(c *fiber.Ctx) error {
	var draft domain.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "Invalid request body")
	}

	product, err := h.service.AddProduct(c.UserContext(), draft)
	if err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct replaces an existing product wholesale.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid request body")
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(c.UserContext(), product); err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// DeleteProduct removes a product. Unknown ids still return 204:
// deletion is idempotent.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	h.service.DeleteProduct(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordSale applies a sale to a product.
func (h *Handlers) RecordSale(c *fiber.Ctx) error {
	var req SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.service.RecordSale(c.UserContext(), c.Params("id"), req.Quantity)
	if err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// AddReview appends a review to a product.
func (h *Handlers) AddReview(c *fiber.Ctx) error {
	var draft domain.ReviewDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "Invalid request body")
	}

	product, err := h.service.AddReview(c.UserContext(), c.Params("id"), draft)
	if err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// PublicLeaderboard returns the ranks-only tier.
func (h *Handlers) PublicLeaderboard(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Leaderboard().Public)
}

// AdminLeaderboard returns the full-detail tier.
func (h *Handlers) AdminLeaderboard(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Leaderboard().Admin)
}

// SetPin configures the admin PIN. First-time setup is open; once a PIN
// exists, changing it requires the current PIN in the header.
func (h *Handlers) SetPin(c *fiber.Ctx) error {
	var req PinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if h.service.Catalog().Settings.AdminPinHash != "" {
		valid, err := h.service.VerifyAdminPin(c.Get(adminPinHeader))
		if err != nil || !valid {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Current PIN required to change the admin PIN",
			})
		}
	}

	if err := h.service.SetAdminPin(c.UserContext(), req.Pin); err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Login verifies an admin PIN attempt.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req PinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	valid, err := h.service.VerifyAdminPin(req.Pin)
	if err != nil {
		if errors.Is(err, catalog.ErrPinNotSet) {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error:   "pin_not_set",
				Message: "No admin PIN has been configured",
			})
		}
		return h.handleCatalogError(c, err)
	}
	if !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid PIN",
		})
	}
	return c.Status(fiber.StatusOK).JSON(LoginResponse{Valid: true})
}

// Audit returns recent journal entries.
func (h *Handlers) Audit(c *fiber.Ctx) error {
	if h.audit == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Audit journal is not enabled",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	entries, err := h.audit.Recent(c.UserContext(), limit)
	if err != nil {
		log.Printf("[api] Failed to read audit journal: %v", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// SetTheme switches the storefront theme.
func (h *Handlers) SetTheme(c *fiber.Ctx) error {
	var req ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.SetTheme(c.UserContext(), req.Theme); err != nil {
		return h.handleCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleDemoMode flips demo mode.
func (h *Handlers) ToggleDemoMode(c *fiber.Ctx) error {
	enabled := h.service.ToggleDemoMode(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(DemoModeResponse{DemoMode: enabled})
}

// Export streams the document as a .bb download.
func (h *Handlers) Export(c *fiber.Ctx) error {
	data, err := export.Encode(h.service.Catalog())
	if err != nil {
		log.Printf("[api] Failed to encode export: %v", err)
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	return c.Status(fiber.StatusOK).Send(data)
}

// ExportFile saves the document into the configured export directory.
// A missing directory declines the save; 409 tells the caller to fall
// back to the download endpoint.
func (h *Handlers) ExportFile(c *fiber.Ctx) error {
	path, err := h.export.Save(h.service.Catalog())
	if err != nil {
		if errors.Is(err, export.ErrExportDeclined) {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error:   "export_declined",
				Message: "No export directory is configured; use the download endpoint",
			})
		}
		log.Printf("[api] Failed to write export file: %v", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusAccepted).JSON(ExportFileResponse{Path: path})
}

// Import merges an uploaded .bb document into the catalog.
func (h *Handlers) Import(c *fiber.Ctx) error {
	imported, err := export.Decode(c.Body())
	if err != nil {
		return badRequest(c, "Body is not a valid catalog document")
	}

	merged := h.service.ImportMerge(c.UserContext(), imported)
	return c.Status(fiber.StatusOK).JSON(merged)
}

// handleCatalogError maps core errors onto HTTP responses.
func (h *Handlers) handleCatalogError(c *fiber.Ctx, err error) error {
	var validationErr *catalog.ValidationError
	var stockErr *catalog.InsufficientStockError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Error(),
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "insufficient_stock",
			Message: stockErr.Error(),
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Product not found",
		})
	default:
		log.Printf("[api] Internal error: %v", err)
		return internalError(c)
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
