// Package audit keeps a sqlite journal of committed catalog mutations.
// The journal is advisory: recording is best-effort and a failed write
// never fails the mutation it describes.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one committed mutation.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Operation string    `gorm:"index" json:"operation"`
	ProductID string    `gorm:"index" json:"product_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder appends and queries journal entries.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder creates a Recorder on the given database.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Migrate creates the journal table.
func (r *Recorder) Migrate() error {
	if err := r.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate audit schema: %w", err)
	}
	return nil
}

// Record appends one entry.
func (r *Recorder) Record(ctx context.Context, operation, productID, detail string) error {
	entry := Entry{
		ID:        uuid.New().String(),
		Operation: operation,
		ProductID: productID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []Entry
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
