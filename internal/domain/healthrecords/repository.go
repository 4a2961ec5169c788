package healthrecords

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h HealthRecord) error
	GetByID(ctx context.Context, id string) (HealthRecord, error)
	ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]HealthRecord, error)
	Void(ctx context.Context, id string) error
}

type ListFilter struct {
	Types []RecordType
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
}
