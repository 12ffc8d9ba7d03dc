package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"

	"github.com/example/catalog-store-demo/modules/store"
)

// StoreProvider yields the blob store once the persistence module has
// initialized. Resolved during Start, which runs after the store
// module's Init in registration order.
type StoreProvider interface {
	Store() *store.Store
}

// Module provides the catalog document service as a mono module.
type Module struct {
	storeProvider StoreProvider
	service       *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new catalog module. The blob store is wired via
// SetStoreProvider before the application starts.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// SetStoreProvider wires the persistence collaborator.
func (m *Module) SetStoreProvider(p StoreProvider) {
	m.storeProvider = p
}

// Start creates the service and loads the stored document.
func (m *Module) Start(ctx context.Context) error {
	var blob BlobStore
	if m.storeProvider != nil {
		if s := m.storeProvider.Store(); s != nil {
			blob = s
		}
	}
	m.service = NewService(blob)
	if err := m.service.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalog document: %w", err)
	}
	log.Println("[catalog] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[catalog] Module stopped")
	return nil
}

// Health reports the module status.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "service not initialized",
		}
	}
	doc := m.service.Catalog()
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"products":  len(doc.Products),
			"demo_mode": doc.Settings.DemoMode,
		},
	}
}

// Service returns the catalog service instance.
func (m *Module) Service() *Service {
	return m.service
}
