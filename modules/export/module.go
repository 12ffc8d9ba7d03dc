package export

import (
	"context"
	"log"

	"github.com/go-monolith/mono"
)

// Module provides catalog file export/import as a mono module.
type Module struct {
	service *Service
	dir     string
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new export module. An empty dir declines
// filesystem saves; the HTTP download endpoint still works.
func NewModule(dir string) *Module {
	return &Module{dir: dir}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "export"
}

// Start creates the service.
func (m *Module) Start(_ context.Context) error {
	m.service = NewService(m.dir)
	if m.dir == "" {
		log.Println("[export] Module started (no export directory, filesystem saves declined)")
	} else {
		log.Printf("[export] Module started (export directory: %s)", m.dir)
	}
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[export] Module stopped")
	return nil
}

// Service returns the export service instance.
func (m *Module) Service() *Service {
	return m.service
}
