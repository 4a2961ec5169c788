package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"livestock-breeding/internal/domain/healthrecords"
)

type healthRecordsRepo struct {
	mu   sync.RWMutex
	byID map[string]healthrecords.HealthRecord
}

func NewHealthRecordsRepo() healthrecords.Repository {
	return &healthRecordsRepo{
		byID: make(map[string]healthrecords.HealthRecord),
	}
}

func (r *healthRecordsRepo) Create(ctx context.Context, h healthrecords.HealthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[h.ID]; exists {
		return errors.New("record already exists")
	}

	r.byID[h.ID] = h
	return nil
}

func (r *healthRecordsRepo) GetByID(ctx context.Context, id string) (healthrecords.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return healthrecords.HealthRecord{}, ErrNotFound
	}
	return h, nil
}

func (r *healthRecordsRepo) ListByAnimal(ctx context.Context, animalID string, filter healthrecords.ListFilter) ([]healthrecords.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]healthrecords.HealthRecord, 0)

	for _, h := range r.byID {
		if h.AnimalID != animalID {
			continue
		}

		// Type filter
		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if h.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		// Date filters (occurred_at)
		if filter.From != nil {
			if h.OccurredAt.Before((*filter.From).Add(-1 * time.Nanosecond)) {
				continue
			}
		}
		if filter.To != nil {
			if h.OccurredAt.After(*filter.To) {
				continue
			}
		}

		// Query filter
		if q := strings.TrimSpace(filter.Query); q != "" {
			hay := strings.ToLower(h.Title + " " + h.Notes)
			if !strings.Contains(hay, strings.ToLower(q)) {
				continue
			}
		}

		out = append(out, h)
	}

	// Orden por occurred_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *healthRecordsRepo) Void(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	h.Status = healthrecords.RecordStatusVoided
	r.byID[id] = h
	return nil
}
