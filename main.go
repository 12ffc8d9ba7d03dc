package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	apimod "github.com/example/catalog-store-demo/modules/api"
	auditmod "github.com/example/catalog-store-demo/modules/audit"
	catalogmod "github.com/example/catalog-store-demo/modules/catalog"
	exportmod "github.com/example/catalog-store-demo/modules/export"
	storemod "github.com/example/catalog-store-demo/modules/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	keyPrefix := getEnv("CATALOG_KEY_PREFIX", "catalog:")
	catalogKey := getEnv("CATALOG_KEY", "main")
	auditDBPath := getEnv("AUDIT_DB_PATH", "./catalog_audit.db")
	exportDir := getEnv("EXPORT_DIR", "")
	httpPort := getEnvInt("HTTP_PORT", 3000)

	log.Println("=== Catalog Store ===")
	log.Printf("Redis: %s", redisAddr)
	log.Printf("Document key: %s%s", keyPrefix, catalogKey)
	log.Printf("Audit DB: %s", auditDBPath)
	log.Printf("HTTP Port: %d", httpPort)

	// Create modules
	storeModule := storemod.NewModule(redisAddr, keyPrefix, catalogKey)
	catalogModule := catalogmod.NewModule()
	auditModule := auditmod.NewModule(auditDBPath)
	exportModule := exportmod.NewModule(exportDir)
	apiModule := apimod.NewModule(httpPort)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Wire dependencies; each module resolves its collaborators during
	// Start, which runs in registration order.
	catalogModule.SetStoreProvider(storeModule)
	apiModule.SetCatalogProvider(catalogModule)
	apiModule.SetExportProvider(exportModule)
	apiModule.SetAuditProvider(auditModule)

	// Register modules. Order: independent modules first, then modules
	// with dependencies.
	app.Register(storeModule)
	app.Register(auditModule)
	app.Register(exportModule)
	app.Register(catalogModule)
	app.Register(apiModule)

	// Start modules
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	// The audit journal hooks in after start; recording is best-effort
	// and mutations never depend on it.
	catalogModule.Service().SetAudit(auditModule.Recorder())

	log.Println("=== Application Started ===")
	log.Printf("API available at http://localhost:%d", httpPort)
	log.Println("Endpoints:")
	log.Println("  GET    /health                           - Health check")
	log.Println("  GET    /api/v1/catalog                   - Full catalog document")
	log.Println("  POST   /api/v1/products                  - Add product")
	log.Println("  PUT    /api/v1/products/:id              - Update product")
	log.Println("  DELETE /api/v1/products/:id              - Delete product")
	log.Println("  POST   /api/v1/products/:id/sales        - Record sale")
	log.Println("  POST   /api/v1/products/:id/reviews      - Add review")
	log.Println("  GET    /api/v1/leaderboard               - Public leaderboard")
	log.Println("  GET    /api/v1/admin/leaderboard         - Admin leaderboard")
	log.Println("  POST   /api/v1/admin/pin                 - Set admin PIN")
	log.Println("  POST   /api/v1/admin/login               - Verify admin PIN")
	log.Println("  GET    /api/v1/admin/audit               - Mutation journal")
	log.Println("  PUT    /api/v1/settings/theme            - Switch theme")
	log.Println("  POST   /api/v1/settings/demo-mode/toggle - Toggle demo mode")
	log.Println("  GET    /api/v1/export                    - Download .bb document")
	log.Println("  POST   /api/v1/export/file               - Save .bb to export dir")
	log.Println("  POST   /api/v1/import                    - Merge imported document")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown")

	// Setup graceful shutdown using gelmium/graceful-shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
