package usecase

import (
	"context"

	"qr-redirect/internal/redirect/domain"
)

// Registry is the storage contract the redirect service depends on.
type Registry interface {
	// Upsert creates or updates the entry for uniqueID and reports
	// whether it was created.
	Upsert(ctx context.Context, uniqueID, finalURL string) (*domain.Entry, bool, error)

	// FindByUniqueID returns the entry for uniqueID, or ErrEntryNotFound.
	FindByUniqueID(ctx context.Context, uniqueID string) (*domain.Entry, error)

	// FindBySlug returns the entry whose slug matches, or ErrEntryNotFound.
	FindBySlug(ctx context.Context, slug string) (*domain.Entry, error)

	// List returns all entries sorted by unique ID.
	List(ctx context.Context) ([]*domain.Entry, error)
}
