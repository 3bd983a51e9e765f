// Package memory provides the in-memory redirect registry. It is the
// single owner of all registered entries; callers only ever see copies.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"qr-redirect/internal/redirect/domain"
)

// Registry maps unique IDs to redirect entries and maintains a secondary
// slug index so slug resolution does not scan all entries. All access
// goes through one RWMutex; Upsert holds the write lock for the whole
// read-modify-write, which keeps slug assignment and insertion atomic.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*domain.Entry // unique ID -> entry
	slugs   map[string]string        // slug -> unique ID
	now     func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*domain.Entry),
		slugs:   make(map[string]string),
		now:     time.Now,
	}
}

// Upsert registers uniqueID -> finalURL. A new entry gets a slug derived
// from the unique ID, deduplicated against every slug currently in use.
// An existing entry has its final URL overwritten in place and keeps its
// slug. The second return value reports whether the entry was created.
func (r *Registry) Upsert(ctx context.Context, uniqueID, finalURL string) (*domain.Entry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[uniqueID]; ok {
		e.FinalURL = finalURL
		e.UpdatedAt = r.now()
		cp := *e
		return &cp, false, nil
	}

	slug := domain.EnsureUnique(domain.Sanitize(uniqueID), func(s string) bool {
		_, used := r.slugs[s]
		return used
	})

	now := r.now()
	e := &domain.Entry{
		UniqueID:  uniqueID,
		FinalURL:  finalURL,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.entries[uniqueID] = e
	r.slugs[slug] = uniqueID

	cp := *e
	return &cp, true, nil
}

// FindByUniqueID returns the entry registered under uniqueID.
func (r *Registry) FindByUniqueID(ctx context.Context, uniqueID string) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[uniqueID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

// FindBySlug returns the entry whose slug equals slug.
func (r *Registry) FindBySlug(ctx context.Context, slug string) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uniqueID, ok := r.slugs[slug]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cp := *r.entries[uniqueID]
	return &cp, nil
}

// List returns a snapshot of all entries sorted by unique ID.
func (r *Registry) List(ctx context.Context) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		entries = append(entries, &cp)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UniqueID < entries[j].UniqueID
	})
	return entries, nil
}
