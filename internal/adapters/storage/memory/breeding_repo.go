package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livestock-breeding/internal/domain/breeding"
)

type breedingRepo struct {
	mu   sync.RWMutex
	byID map[string]breeding.Record
}

func NewBreedingRepo() breeding.Repository {
	return &breedingRepo{
		byID: make(map[string]breeding.Record),
	}
}

func (r *breedingRepo) Create(ctx context.Context, rec breeding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *breedingRepo) Update(ctx context.Context, rec breeding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *breedingRepo) GetByID(ctx context.Context, id string) (breeding.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return breeding.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *breedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeding.Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID == ownerUserID {
			out = append(out, rec)
		}
	}

	// Orden por breeding_date desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].BreedingDate.After(out[j].BreedingDate)
	})

	return out, nil
}

func (r *breedingRepo) ListByMother(ctx context.Context, motherID string) ([]breeding.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeding.Record, 0)
	for _, rec := range r.byID {
		if rec.MotherID == motherID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].BreedingDate.After(out[j].BreedingDate)
	})

	return out, nil
}
