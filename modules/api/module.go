package api

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/catalog-store-demo/modules/audit"
	"github.com/example/catalog-store-demo/modules/catalog"
	"github.com/example/catalog-store-demo/modules/export"
)

// CatalogProvider yields the catalog service once its module started.
type CatalogProvider interface {
	Service() *catalog.Service
}

// ExportProvider yields the file export service once its module started.
type ExportProvider interface {
	Service() *export.Service
}

// AuditProvider yields the audit journal reader. Optional.
type AuditProvider interface {
	Recorder() *audit.Recorder
}

// Module provides the HTTP API for the catalog store. Collaborators are
// resolved during Start, which runs last in registration order.
type Module struct {
	app             *fiber.App
	catalogProvider CatalogProvider
	exportProvider  ExportProvider
	auditProvider   AuditProvider
	service         *catalog.Service
	export          *export.Service
	audit           AuditPort
	port            int
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new API module listening on the given port.
func NewModule(port int) *Module {
	return &Module{port: port}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// SetCatalogProvider wires the catalog facade.
func (m *Module) SetCatalogProvider(p CatalogProvider) {
	m.catalogProvider = p
}

// SetExportProvider wires the file export collaborator.
func (m *Module) SetExportProvider(p ExportProvider) {
	m.exportProvider = p
}

// SetAuditProvider wires the audit journal reader. Optional.
func (m *Module) SetAuditProvider(p AuditProvider) {
	m.auditProvider = p
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.catalogProvider == nil {
		return fmt.Errorf("catalog dependency not set")
	}
	if m.exportProvider == nil {
		return fmt.Errorf("export dependency not set")
	}
	m.service = m.catalogProvider.Service()
	if m.service == nil {
		return fmt.Errorf("catalog service not started")
	}
	m.export = m.exportProvider.Service()
	if m.export == nil {
		return fmt.Errorf("export service not started")
	}
	if m.auditProvider != nil {
		if r := m.auditProvider.Recorder(); r != nil {
			m.audit = r
		}
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%d", m.port)
	return nil
}

// Stop shuts down the HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health reports the module status.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all API routes.
func (m *Module) setupRoutes() {
	handlers := NewHandlers(m.service, m.export, m.audit)

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	v1 := m.app.Group("/api/v1")

	v1.Get("/catalog", handlers.GetCatalog)

	v1.Post("/products", handlers.AddProduct)
	v1.Put("/products/:id", handlers.UpdateProduct)
	v1.Delete("/products/:id", handlers.DeleteProduct)
	v1.Post("/products/:id/sales", handlers.RecordSale)
	v1.Post("/products/:id/reviews", handlers.AddReview)

	v1.Get("/leaderboard", handlers.PublicLeaderboard)

	v1.Put("/settings/theme", handlers.SetTheme)
	v1.Post("/settings/demo-mode/toggle", handlers.ToggleDemoMode)

	v1.Get("/export", handlers.Export)
	v1.Post("/export/file", handlers.ExportFile)
	v1.Post("/import", handlers.Import)

	admin := v1.Group("/admin")
	admin.Post("/pin", handlers.SetPin)
	admin.Post("/login", handlers.Login)

	protected := admin.Group("")
	protected.Use(AdminPinMiddleware(m.service))
	protected.Get("/leaderboard", handlers.AdminLeaderboard)
	protected.Get("/audit", handlers.Audit)
}

// errorHandler handles Fiber errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
