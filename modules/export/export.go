// Package export reads and writes the catalog's portable file form: the
// document's JSON, pretty-printed, under the brand's .bb extension. The
// extension is a brand-specific suffix, not a new format; the payload is
// plain JSON.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

const (
	// FileName is the suggested name for exported documents.
	FileName = "anand_greenwich.bb"

	// FileExtension marks exported catalog files.
	FileExtension = ".bb"
)

// ErrExportDeclined is returned by Save when no export directory is
// configured. The caller falls back to the HTTP download endpoint.
var ErrExportDeclined = errors.New("export declined: no export directory configured")

// Service saves and loads catalog export files.
type Service struct {
	dir string
}

// NewService creates a Service writing into dir. An empty dir declines
// all saves.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Encode renders the document in the export format: two-space-indented
// JSON, stable for a given document.
func Encode(c domain.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}

// Decode parses an exported document. Unknown fields are tolerated for
// forward compatibility; missing optional fields decode to their unset
// values.
func Decode(data []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return c, nil
}

// Save writes the document into the export directory and returns the
// written path. Returns ErrExportDeclined when no directory is
// configured.
func (s *Service) Save(c domain.Catalog) (string, error) {
	if s.dir == "" {
		return "", ErrExportDeclined
	}

	data, err := Encode(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(s.dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// Load reads and decodes an exported document from disk.
func (s *Service) Load(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read export file: %w", err)
	}
	return Decode(data)
}
