package usecase

import (
	"context"
	"strings"

	"qr-redirect/internal/redirect/domain"

	"go.uber.org/zap"
)

// Registration outcomes reported by Register.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
)

// RedirectService implements redirect registration and resolution.
type RedirectService struct {
	registry Registry
	logger   *zap.Logger
}

// NewRedirectService creates a new redirect service.
func NewRedirectService(registry Registry, logger *zap.Logger) *RedirectService {
	return &RedirectService{
		registry: registry,
		logger:   logger,
	}
}

// Register validates the input and creates or updates the entry for
// uniqueID. Validation happens before any state mutation. The returned
// status is StatusCreated for a new entry and StatusUpdated when an
// existing entry had its final URL overwritten (the slug is preserved).
func (s *RedirectService) Register(ctx context.Context, uniqueID, finalURL string) (*domain.Entry, string, error) {
	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return nil, "", domain.ErrUniqueIDRequired
	}
	if finalURL == "" {
		return nil, "", domain.ErrFinalURLRequired
	}

	entry, created, err := s.registry.Upsert(ctx, uniqueID, finalURL)
	if err != nil {
		return nil, "", err
	}

	status := StatusUpdated
	if created {
		status = StatusCreated
	}

	s.logger.Info("redirect registered",
		zap.String("unique_id", entry.UniqueID),
		zap.String("slug", entry.Slug),
		zap.String("status", status),
	)

	return entry, status, nil
}

// Resolve returns the entry whose slug matches, or ErrEntryNotFound.
func (s *RedirectService) Resolve(ctx context.Context, slug string) (*domain.Entry, error) {
	return s.registry.FindBySlug(ctx, slug)
}

// Get returns the entry registered under uniqueID, or ErrEntryNotFound.
func (s *RedirectService) Get(ctx context.Context, uniqueID string) (*domain.Entry, error) {
	return s.registry.FindByUniqueID(ctx, uniqueID)
}

// List returns all entries sorted by unique ID.
func (s *RedirectService) List(ctx context.Context) ([]*domain.Entry, error) {
	return s.registry.List(ctx)
}

// BuildRedirectURL joins a base URL with a slug, tolerating trailing
// slashes on the base.
func BuildRedirectURL(base, slug string) string {
	return strings.TrimRight(base, "/") + "/" + slug
}
