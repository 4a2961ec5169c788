package breeding

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"livestock-breeding/internal/platform/logger"
	"livestock-breeding/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     Repository
	notifier notify.Notifier // opcional; nil = sin hook de notificaciones
	log      logger.Logger   // opcional
	now      func() time.Time
}

func NewService(repo Repository, notifier notify.Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

type CreateInput struct {
	MotherID     string
	FatherID     string
	BreedingDate time.Time
	Method       Method
	Status       Status // opcional: planned (default) o completed si ya ocurrió

	// Opcional: el handler la precalcula desde la especie de la madre
	// cuando es resoluble; también puede venir editada a mano.
	ExpectedDueDate *time.Time

	Veterinarian string
	Cost         *float64
	Notes        string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.MotherID) == "" || strings.TrimSpace(in.FatherID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.BreedingDate.IsZero() {
		return Record{}, ErrInvalidInput
	}
	if !validMethod(in.Method) {
		return Record{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusPlanned
	}
	if !validStatus(status) {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	r := Record{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		MotherID:        strings.TrimSpace(in.MotherID),
		FatherID:        strings.TrimSpace(in.FatherID),
		BreedingDate:    DateOnly(in.BreedingDate),
		Method:          in.Method,
		Status:          status,
		ExpectedDueDate: dateOnlyPtr(in.ExpectedDueDate),
		Veterinarian:    strings.TrimSpace(in.Veterinarian),
		Cost:            in.Cost,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListByMother(ctx context.Context, motherID string) ([]Record, error) {
	motherID = strings.TrimSpace(motherID)
	if motherID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByMother(ctx, motherID)
}

type patchDate struct {
	Present bool
	Value   *time.Time
}

// PatchDate marca un campo fecha como presente en el PATCH (nil = limpiar).
func PatchDate(v *time.Time) patchDate {
	return patchDate{Present: true, Value: dateOnlyPtr(v)}
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	MotherID     *string
	FatherID     *string
	BreedingDate *time.Time
	Method       *Method

	// Cualquier estado válido se acepta desde cualquier estado: la app
	// original no valida transiciones y eso se preserva.
	Status *Status

	ExpectedDueDate           patchDate
	ActualBirthDate           patchDate
	PregnancyConfirmed        *bool
	PregnancyConfirmationDate patchDate

	OffspringCount *int

	Veterinarian *string
	Cost         *float64
	Notes        *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}

	wasConfirmed := r.PregnancyConfirmed || r.Status == StatusConfirmedPregnant

	if in.MotherID != nil {
		v := strings.TrimSpace(*in.MotherID)
		if v == "" {
			return Record{}, ErrInvalidInput
		}
		r.MotherID = v
	}
	if in.FatherID != nil {
		v := strings.TrimSpace(*in.FatherID)
		if v == "" {
			return Record{}, ErrInvalidInput
		}
		r.FatherID = v
	}
	if in.BreedingDate != nil {
		if in.BreedingDate.IsZero() {
			return Record{}, ErrInvalidInput
		}
		r.BreedingDate = DateOnly(*in.BreedingDate)
	}
	if in.Method != nil {
		if !validMethod(*in.Method) {
			return Record{}, ErrInvalidInput
		}
		r.Method = *in.Method
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return Record{}, ErrInvalidInput
		}
		r.Status = *in.Status
	}
	if in.ExpectedDueDate.Present {
		r.ExpectedDueDate = in.ExpectedDueDate.Value
	}
	if in.ActualBirthDate.Present {
		r.ActualBirthDate = in.ActualBirthDate.Value
	}
	if in.PregnancyConfirmed != nil {
		r.PregnancyConfirmed = *in.PregnancyConfirmed
	}
	if in.PregnancyConfirmationDate.Present {
		r.PregnancyConfirmationDate = in.PregnancyConfirmationDate.Value
	}
	if in.OffspringCount != nil {
		if *in.OffspringCount < 0 {
			return Record{}, ErrInvalidInput
		}
		r.OffspringCount = *in.OffspringCount
	}
	if in.Veterinarian != nil {
		r.Veterinarian = strings.TrimSpace(*in.Veterinarian)
	}
	if in.Cost != nil {
		r.Cost = in.Cost
	}
	if in.Notes != nil {
		r.Notes = strings.TrimSpace(*in.Notes)
	}

	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return Record{}, err
	}

	nowConfirmed := r.PregnancyConfirmed || r.Status == StatusConfirmedPregnant
	if !wasConfirmed && nowConfirmed {
		s.firePregnancyConfirmed(ctx, r)
	}

	return r, nil
}

// ConfirmPregnancy marca la preñez como confirmada. Idempotente:
// confirmar dos veces no duplica el aviso ni cambia el resultado.
func (s *Service) ConfirmPregnancy(ctx context.Context, id string) (Record, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}

	if r.PregnancyConfirmed && r.Status == StatusConfirmedPregnant {
		return r, nil
	}

	now := s.now()
	r.PregnancyConfirmed = true
	r.Status = StatusConfirmedPregnant
	if r.PregnancyConfirmationDate == nil {
		d := DateOnly(now)
		r.PregnancyConfirmationDate = &d
	}
	r.UpdatedAt = now

	if err := s.repo.Update(ctx, r); err != nil {
		return Record{}, err
	}

	s.firePregnancyConfirmed(ctx, r)
	return r, nil
}

type RecordBirthInput struct {
	BirthDate      time.Time
	OffspringCount int
}

// RecordBirth registra el parto y cierra la preñez.
func (s *Service) RecordBirth(ctx context.Context, id string, in RecordBirthInput) (Record, error) {
	if in.BirthDate.IsZero() {
		return Record{}, ErrInvalidInput
	}
	if in.OffspringCount < 0 {
		return Record{}, ErrInvalidInput
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}

	bd := DateOnly(in.BirthDate)
	r.ActualBirthDate = &bd
	r.OffspringCount = in.OffspringCount
	r.Status = StatusBirthCompleted
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// RecalculateDueDate es la acción manual "Recalcular según especie":
// sobreescribe la fecha probable con BreedingDate + gestación de la
// especie de la madre. Especie desconocida => la limpia. Idempotente:
// con entradas iguales no cambia nada (ni siquiera UpdatedAt).
func (s *Service) RecalculateDueDate(ctx context.Context, id, motherSpecies string) (Record, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}

	var next *time.Time
	if due, ok := DueDate(r.BreedingDate, motherSpecies); ok {
		next = &due
	}

	if sameDatePtr(r.ExpectedDueDate, next) {
		return r, nil
	}

	r.ExpectedDueDate = next
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// UpcomingBirths lista montas abiertas con parto probable dentro de la
// ventana [hoy, hoy+withinDays], ordenadas por fecha ascendente.
// Alimenta la vista de calendario.
func (s *Service) UpcomingBirths(ctx context.Context, ownerUserID string, withinDays int) ([]Record, error) {
	if withinDays <= 0 {
		withinDays = 30
	}

	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	today := DateOnly(s.now())
	horizon := today.AddDate(0, 0, withinDays)

	out := make([]Record, 0)
	for _, r := range items {
		if !r.IsOpen() || r.ExpectedDueDate == nil {
			continue
		}
		due := *r.ExpectedDueDate
		if due.Before(today) || due.After(horizon) {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpectedDueDate.Before(*out[j].ExpectedDueDate)
	})

	return out, nil
}

// firePregnancyConfirmed dispara el hook externo, best-effort: un fallo
// del despachador no revierte la escritura.
func (s *Service) firePregnancyConfirmed(ctx context.Context, r Record) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.PregnancyConfirmed(ctx, notify.PregnancyConfirmation{
		RecordID:        r.ID,
		OwnerUserID:     r.OwnerUserID,
		MotherID:        r.MotherID,
		ExpectedDueDate: r.ExpectedDueDate,
		ConfirmedAt:     r.UpdatedAt,
	})
	if err != nil && s.log != nil {
		s.log.Warn("pregnancy confirmation notify failed", map[string]any{
			"record_id": r.ID,
			"error":     err.Error(),
		})
	}
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOnly(*t)
	return &d
}

func sameDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
