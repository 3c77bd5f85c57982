package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"localxp-api/core/clock"
	"localxp-api/modules/experience/entity"
)

var (
	ErrDuplicateID       = errors.New("duplicate experience id")
	ErrInvalidExperience = errors.New("invalid experience")
)

// CatalogRepositoryInterface defines the catalog store contract
type CatalogRepositoryInterface interface {
	GetByID(id string) (entity.Experience, bool)
	GetAll() []entity.Experience
	ReplaceAll(records []entity.Experience) error
	Len() int
	Version() int64
	UpdatedAt() time.Time
}

type snapshot struct {
	records   []entity.Experience
	index     map[string]int
	version   int64
	updatedAt time.Time
}

// CatalogRepository holds the current experience set in memory. Readers see a
// whole snapshot; ReplaceAll swaps it in one step.
type CatalogRepository struct {
	mu    sync.RWMutex
	snap  *snapshot
	clock clock.Clock
}

// NewCatalogRepository creates an empty store
func NewCatalogRepository(clk clock.Clock) *CatalogRepository {
	return &CatalogRepository{
		clock: clk,
		snap:  &snapshot{index: map[string]int{}},
	}
}

func (r *CatalogRepository) current() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

func (r *CatalogRepository) GetByID(id string) (entity.Experience, bool) {
	snap := r.current()
	i, ok := snap.index[id]
	if !ok {
		return entity.Experience{}, false
	}
	return snap.records[i], true
}

// GetAll returns the experiences in catalog order. The slice is a copy.
func (r *CatalogRepository) GetAll() []entity.Experience {
	snap := r.current()
	out := make([]entity.Experience, len(snap.records))
	copy(out, snap.records)
	return out
}

// ReplaceAll validates the whole set and swaps it in. On error the current
// snapshot is left untouched.
func (r *CatalogRepository) ReplaceAll(records []entity.Experience) error {
	next := &snapshot{
		records: make([]entity.Experience, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(next.records, records)

	for i, exp := range next.records {
		if err := exp.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidExperience, err)
		}
		if _, exists := next.index[exp.ID]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, exp.ID)
		}
		next.index[exp.ID] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next.version = r.snap.version + 1
	next.updatedAt = r.clock.Now()
	r.snap = next
	return nil
}

func (r *CatalogRepository) Len() int {
	return len(r.current().records)
}

// Version increases by one on every successful ReplaceAll.
func (r *CatalogRepository) Version() int64 {
	return r.current().version
}

func (r *CatalogRepository) UpdatedAt() time.Time {
	return r.current().updatedAt
}
