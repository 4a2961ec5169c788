package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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
	Tag          string
	Name         string
	Species      string
	Gender       string
	Breed        string
	Color        string
	HealthStatus string
	BirthDate    *time.Time
	Weight       *float64
	Ancestry     Ancestry
	Notes        string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}

	status, err := normalizeHealthStatus(in.HealthStatus)
	if err != nil {
		return Animal{}, err
	}

	now := s.now()
	a := Animal{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Tag:          strings.TrimSpace(in.Tag),
		Name:         strings.TrimSpace(in.Name),
		Species:      strings.TrimSpace(in.Species),
		Gender:       strings.TrimSpace(in.Gender),
		Breed:        strings.TrimSpace(in.Breed),
		Color:        strings.TrimSpace(in.Color),
		HealthStatus: status,
		BirthDate:    in.BirthDate,
		Weight:       in.Weight,
		Ancestry:     trimAncestry(in.Ancestry),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Animal, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Tag          *string
	Name         *string
	Species      *string
	Gender       *string
	Breed        *string
	Color        *string
	HealthStatus *string
	BirthDate    patchDate
	Weight       patchWeight
	Ancestry     *Ancestry // si viene, reemplaza el bloque completo de 14 slots
	Notes        *string
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = name
	}
	if in.Tag != nil {
		a.Tag = strings.TrimSpace(*in.Tag)
	}
	if in.Species != nil {
		a.Species = strings.TrimSpace(*in.Species)
	}
	if in.Gender != nil {
		a.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Color != nil {
		a.Color = strings.TrimSpace(*in.Color)
	}
	if in.HealthStatus != nil {
		status, err := normalizeHealthStatus(*in.HealthStatus)
		if err != nil {
			return Animal{}, err
		}
		a.HealthStatus = status
	}
	if in.BirthDate.Present {
		a.BirthDate = in.BirthDate.Value
	}
	if in.Weight.Present {
		a.Weight = in.Weight.Value
	}
	if in.Ancestry != nil {
		a.Ancestry = trimAncestry(*in.Ancestry)
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}

	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateHealthStatus lo usan los flujos de registros de salud para
// propagar un nuevo estado sin pasar por el PATCH de perfil.
func (s *Service) UpdateHealthStatus(ctx context.Context, id string, status HealthStatus) (Animal, error) {
	normalized, err := normalizeHealthStatus(string(status))
	if err != nil {
		return Animal{}, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}

	a.HealthStatus = normalized
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// normalizeHealthStatus valida estrictamente contra el enum.
// Vacío => healthy (default histórico de la app).
func normalizeHealthStatus(raw string) (HealthStatus, error) {
	s := HealthStatus(strings.TrimSpace(raw))
	if s == "" {
		return StatusHealthy, nil
	}

	switch s {
	case StatusHealthy, StatusSick, StatusInjured,
		StatusPregnant, StatusPregnantHealthy, StatusPregnantSick,
		StatusRecovering, StatusTreatment:
		return s, nil
	default:
		return "", ErrInvalidInput
	}
}

func trimAncestry(in Ancestry) Ancestry {
	return Ancestry{
		Mother: strings.TrimSpace(in.Mother),
		Father: strings.TrimSpace(in.Father),

		MaternalGrandmother: strings.TrimSpace(in.MaternalGrandmother),
		MaternalGrandfather: strings.TrimSpace(in.MaternalGrandfather),
		PaternalGrandmother: strings.TrimSpace(in.PaternalGrandmother),
		PaternalGrandfather: strings.TrimSpace(in.PaternalGrandfather),

		MaternalGrandmotherMother: strings.TrimSpace(in.MaternalGrandmotherMother),
		MaternalGrandmotherFather: strings.TrimSpace(in.MaternalGrandmotherFather),
		MaternalGrandfatherMother: strings.TrimSpace(in.MaternalGrandfatherMother),
		MaternalGrandfatherFather: strings.TrimSpace(in.MaternalGrandfatherFather),
		PaternalGrandmotherMother: strings.TrimSpace(in.PaternalGrandmotherMother),
		PaternalGrandmotherFather: strings.TrimSpace(in.PaternalGrandmotherFather),
		PaternalGrandfatherMother: strings.TrimSpace(in.PaternalGrandfatherMother),
		PaternalGrandfatherFather: strings.TrimSpace(in.PaternalGrandfatherFather),
	}
}
