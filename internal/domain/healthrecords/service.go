package healthrecords

import (
	"context"
	"errors"
	"strings"
	"time"

	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/domain/healthrecords/details"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type            RecordType
	OccurredAt      time.Time
	Title           string
	Notes           string
	Veterinarian    string
	NewHealthStatus animals.HealthStatus

	Measurement *details.Measurement
	Vaccination *details.Vaccination
	Medication  *details.Medication
}

func (s *Service) Create(ctx context.Context, animalID string, in CreateInput) (HealthRecord, error) {
	if strings.TrimSpace(animalID) == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	if in.Type == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	if in.OccurredAt.IsZero() {
		return HealthRecord{}, ErrInvalidInput
	}

	h := HealthRecord{
		ID:              uuid.NewString(),
		AnimalID:        animalID,
		Type:            in.Type,
		OccurredAt:      in.OccurredAt,
		RecordedAt:      s.now(),
		Title:           strings.TrimSpace(in.Title),
		Notes:           strings.TrimSpace(in.Notes),
		Veterinarian:    strings.TrimSpace(in.Veterinarian),
		NewHealthStatus: in.NewHealthStatus,
		Measurement:     in.Measurement,
		Vaccination:     in.Vaccination,
		Medication:      in.Medication,
		Status:          RecordStatusActive,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return HealthRecord{}, err
	}
	return h, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (HealthRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]HealthRecord, error) {
	return s.repo.ListByAnimal(ctx, animalID, filter)
}

// Void anula la entrada (no se borra).
func (s *Service) Void(ctx context.Context, id string) (HealthRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	if err := s.repo.Void(ctx, id); err != nil {
		return HealthRecord{}, err
	}
	return s.repo.GetByID(ctx, id)
}
