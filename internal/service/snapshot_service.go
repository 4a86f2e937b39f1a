package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go-stock-admin/internal/model"
)

var ErrUnknownKey = errors.New("unknown product or color index")

// SnapshotService holds the most recently fetched product snapshot and
// throttles reloads behind a cooldown window. The cooldown state is owned
// here, with an injected clock, rather than living in package-level globals.
type SnapshotService interface {
	// Products returns the cached snapshot, re-fetching when the cooldown
	// has elapsed or the snapshot was invalidated.
	Products() ([]model.Product, error)
	// Refresh re-fetches unconditionally, bypassing the cooldown.
	Refresh() ([]model.Product, error)
	// Invalidate marks the snapshot stale so the next read re-fetches.
	Invalidate()
	// Variant resolves an edit key against the current snapshot.
	Variant(key model.EditKey) (model.Product, model.ColorVariant, error)
}

type snapshotService struct {
	source   CatalogSource
	cooldown time.Duration
	clock    Clock

	mu        sync.Mutex
	products  []model.Product
	fetchedAt time.Time
	fresh     bool
}

func NewSnapshotService(source CatalogSource, cooldown time.Duration, clock Clock) SnapshotService {
	if clock == nil {
		clock = time.Now
	}
	return &snapshotService{
		source:   source,
		cooldown: cooldown,
		clock:    clock,
	}
}

func (s *snapshotService) Products() ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fresh && s.clock().Sub(s.fetchedAt) < s.cooldown {
		return s.products, nil
	}
	return s.fetchLocked()
}

func (s *snapshotService) Refresh() ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked()
}

func (s *snapshotService) Invalidate() {
	s.mu.Lock()
	s.fresh = false
	s.mu.Unlock()
}

// fetchLocked re-fetches the full snapshot. On failure the previous
// snapshot and its cooldown state are left untouched; there is no
// automatic retry.
func (s *snapshotService) fetchLocked() ([]model.Product, error) {
	products, err := s.source.FetchProducts()
	if err != nil {
		return nil, err
	}
	s.products = products
	s.fetchedAt = s.clock()
	s.fresh = true
	return s.products, nil
}

func (s *snapshotService) Variant(key model.EditKey) (model.Product, model.ColorVariant, error) {
	products, err := s.Products()
	if err != nil {
		return model.Product{}, model.ColorVariant{}, err
	}
	for _, p := range products {
		if p.ID != key.ProductID {
			continue
		}
		if key.ColorIndex < 0 || key.ColorIndex >= len(p.Colors) {
			return model.Product{}, model.ColorVariant{}, fmt.Errorf("%w: color index %d", ErrUnknownKey, key.ColorIndex)
		}
		return p, p.Colors[key.ColorIndex], nil
	}
	return model.Product{}, model.ColorVariant{}, fmt.Errorf("%w: product %s", ErrUnknownKey, key.ProductID)
}
