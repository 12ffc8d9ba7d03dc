package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// BlobStore is the persistence collaborator: an opaque key-value store
// holding the whole document under a single key.
type BlobStore interface {
	Load(ctx context.Context) (*domain.Catalog, bool, error)
	Save(ctx context.Context, c domain.Catalog) error
}

// AuditLog receives one entry per committed mutation. Recording is
// best-effort and never blocks a mutation.
type AuditLog interface {
	Record(ctx context.Context, operation, productID, detail string) error
}

// Service owns the single authoritative catalog document. Every mutation
// runs the pure document operation under the writer lock, swaps in the
// resulting document, then persists it. The in-memory document is
// authoritative the instant the swap happens: a failed save is surfaced
// as a warning, never as a failed mutation.
type Service struct {
	mu      sync.Mutex
	current domain.Catalog
	store   BlobStore
	hasher  *PinHasher
	audit   AuditLog
}

// NewService creates a Service backed by the given blob store. The store
// may be nil (purely in-memory operation, used in tests).
func NewService(store BlobStore) *Service {
	return &Service{
		current: CreateEmpty(),
		store:   store,
		hasher:  NewPinHasher(),
	}
}

// SetAudit wires the audit log. Safe to leave unset.
func (s *Service) SetAudit(a AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = a
}

// Load pulls the document from the blob store. An absent document seeds
// the demo catalog on first run, matching the storefront's first-launch
// behavior.
func (s *Service) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	stored, found, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if found {
		s.current = stored.Clone()
		log.Printf("[catalog] Loaded document (%d products)", len(s.current.Products))
		return nil
	}

	seeded := CreateEmpty()
	seeded.Settings.DemoMode = true
	seeded.Products = DemoProducts()
	s.current = seeded
	s.persist(ctx)
	log.Printf("[catalog] No stored document, seeded demo catalog (%d products)", len(seeded.Products))
	return nil
}

// Catalog returns a deep copy of the current document.
func (s *Service) Catalog() domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Product returns a copy of the product with the given id.
func (s *Service) Product(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.current.Products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// AddProduct creates a product from the draft.
func (s *Service) AddProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, product, err := AddProduct(s.current, draft)
	if err != nil {
		return domain.Product{}, err
	}
	s.commit(ctx, next, "product.add", product.ID, product.Name)
	return product, nil
}

// UpdateProduct replaces an existing product wholesale.
func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := UpdateProduct(s.current, p)
	if err != nil {
		return err
	}
	s.commit(ctx, next, "product.update", p.ID, p.Name)
	return nil
}

// DeleteProduct removes a product; unknown ids are a no-op.
func (s *Service) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := DeleteProduct(s.current, id)
	s.commit(ctx, next, "product.delete", id, "")
}

// RecordSale applies a sale to a product.
func (s *Service) RecordSale(ctx context.Context, id string, quantity int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, product, err := RecordProductSale(s.current, id, quantity)
	if err != nil {
		return domain.Product{}, err
	}
	s.commit(ctx, next, "sale.record", id, fmt.Sprintf("quantity=%d", quantity))
	return product, nil
}

// AddReview appends a review to a product.
func (s *Service) AddReview(ctx context.Context, id string, draft domain.ReviewDraft) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, product, err := AddProductReview(s.current, id, draft)
	if err != nil {
		return domain.Product{}, err
	}
	s.commit(ctx, next, "review.add", id, fmt.Sprintf("rating=%d", draft.Rating))
	return product, nil
}

// ImportMerge merges an imported document into the current one.
func (s *Service) ImportMerge(ctx context.Context, imported domain.Catalog) domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ImportMerge(s.current, imported)
	s.commit(ctx, next, "catalog.import", "", fmt.Sprintf("imported_products=%d", len(imported.Products)))
	return next.Clone()
}

// Leaderboard derives both tiers of the best-seller ranking.
func (s *Service) Leaderboard() domain.Leaderboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Rank(s.current.Products)
}

// SetTheme switches the storefront theme.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := SetTheme(s.current, theme)
	if err != nil {
		return err
	}
	s.commit(ctx, next, "settings.theme", "", theme)
	return nil
}

// ToggleDemoMode flips demo mode, swapping the product set accordingly.
func (s *Service) ToggleDemoMode(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ToggleDemoMode(s.current)
	s.commit(ctx, next, "settings.demo_mode", "", fmt.Sprintf("enabled=%t", next.Settings.DemoMode))
	return next.Settings.DemoMode
}

// SetAdminPin hashes and stores the admin PIN.
func (s *Service) SetAdminPin(ctx context.Context, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := SetAdminPin(s.current, pin, s.hasher)
	if err != nil {
		return err
	}
	s.commit(ctx, next, "settings.pin", "", "")
	return nil
}

// VerifyAdminPin checks a login attempt against the stored digest.
// Returns ErrPinNotSet when no PIN has been configured: an empty digest
// is "authentication not yet configured", never a wildcard match.
func (s *Service) VerifyAdminPin(pin string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Settings.AdminPinHash == "" {
		return false, ErrPinNotSet
	}
	return s.hasher.Verify(pin, s.current.Settings.AdminPinHash), nil
}

// commit swaps in the new document, persists it and records the audit
// entry. Callers must hold the lock.
func (s *Service) commit(ctx context.Context, next domain.Catalog, operation, productID, detail string) {
	s.current = next
	s.persist(ctx)
	if s.audit != nil {
		if err := s.audit.Record(ctx, operation, productID, detail); err != nil {
			log.Printf("[catalog] Warning: audit record failed: %v", err)
		}
	}
}

// persist saves the current document. Callers must hold the lock.
func (s *Service) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.current); err != nil {
		log.Printf("[catalog] Warning: document save failed, in-memory state remains authoritative: %v", err)
	}
}
