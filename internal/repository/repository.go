package repository

import (
	"ad-ledger/internal/aderrors"
	model "ad-ledger/internal/models"
	"context"
	"fmt"
	"sort"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AdStore defines the ad record storage interface. Ads are keyed by ID.
type AdStore interface {
	Get(ctx context.Context, id string) (model.Ad, error)
	Insert(ctx context.Context, ad model.Ad) error
	Remove(ctx context.Context, id string) (model.Ad, error)
	Values(ctx context.Context) ([]model.Ad, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AdStore
type MemoryRepo struct {
	mu  sync.RWMutex
	ads map[string]model.Ad // key: adID -> value: ad
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		ads: make(map[string]model.Ad),
	}
}

// Get returns a copy of the ad stored under id
func (r *MemoryRepo) Get(_ context.Context, id string) (model.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ad, ok := r.ads[id]
	if !ok {
		return model.Ad{}, fmt.Errorf("get ad %s: %w", id, aderrors.ErrNotFound)
	}
	return ad.Clone(), nil
}

// Insert stores ad under its ID, replacing any previous value
func (r *MemoryRepo) Insert(_ context.Context, ad model.Ad) error {
	if ad.ID == "" {
		return fmt.Errorf("insert ad: %w - empty ad ID", aderrors.ErrInvalidParameters)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[ad.ID] = ad.Clone()
	return nil
}

// Remove deletes the ad stored under id and returns it
func (r *MemoryRepo) Remove(_ context.Context, id string) (model.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ad, ok := r.ads[id]
	if !ok {
		return model.Ad{}, fmt.Errorf("remove ad %s: %w", id, aderrors.ErrNotFound)
	}
	delete(r.ads, id)
	return ad, nil
}

// Values returns every ad ordered by ID
func (r *MemoryRepo) Values(_ context.Context) ([]model.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

// Len returns the number of stored ads
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ads)
}

func (r *MemoryRepo) sortedLocked() []model.Ad {
	ids := make([]string, 0, len(r.ads))
	for id := range r.ads {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.Ad, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.ads[id].Clone())
	}
	return out
}
