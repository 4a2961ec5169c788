package breeding

import (
	"context"
	"errors"
	"testing"
	"time"

	"livestock-breeding/internal/ports/notify"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[rec.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[rec.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, errRepoNotFound
	}
	return rec, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error) {
	out := make([]Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID == ownerUserID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *testRepo) ListByMother(ctx context.Context, motherID string) ([]Record, error) {
	out := make([]Record, 0)
	for _, rec := range r.byID {
		if rec.MotherID == motherID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type testNotifier struct {
	calls []notify.PregnancyConfirmation
}

func (n *testNotifier) PregnancyConfirmed(ctx context.Context, c notify.PregnancyConfirmation) error {
	n.calls = append(n.calls, c)
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRecord(t *testing.T, svc *Service, breedingDate time.Time, due *time.Time) Record {
	t.Helper()

	rec, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MotherID:        "cow-1",
		FatherID:        "bull-1",
		BreedingDate:    breedingDate,
		Method:          MethodNatural,
		ExpectedDueDate: due,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return rec
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsToPlanned(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rec := seedRecord(t, svc, day(2026, 1, 10), nil)

	if rec.Status != StatusPlanned {
		t.Fatalf("expected planned, got %s", rec.Status)
	}
	if rec.CreatedAt != now || rec.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if !rec.BreedingDate.Equal(day(2026, 1, 10)) {
		t.Fatalf("expected breeding date truncated to day, got %s", rec.BreedingDate)
	}
}

func TestService_Create_RejectsUnknownMethod(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{
		MotherID:     "cow-1",
		FatherID:     "bull-1",
		BreedingDate: day(2026, 1, 10),
		Method:       Method("telepathy"),
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_ConfirmPregnancy_IdempotentAndNotifiesOnce(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, nil)

	now1 := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(5 * time.Minute)

	svc.now = func() time.Time { return now1 }
	rec := seedRecord(t, svc, day(2026, 1, 10), nil)

	svc.now = func() time.Time { return now2 }
	confirmed, err := svc.ConfirmPregnancy(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("ConfirmPregnancy error: %v", err)
	}
	if !confirmed.PregnancyConfirmed || confirmed.Status != StatusConfirmedPregnant {
		t.Fatalf("expected confirmed record, got %+v", confirmed)
	}
	if confirmed.PregnancyConfirmationDate == nil || !confirmed.PregnancyConfirmationDate.Equal(day(2026, 1, 15)) {
		t.Fatalf("expected confirmation date set to today")
	}

	// idempotente: segunda confirmación no cambia nada ni re-notifica
	confirmed2, err := svc.ConfirmPregnancy(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("ConfirmPregnancy #2 error: %v", err)
	}
	if confirmed2.UpdatedAt != confirmed.UpdatedAt {
		t.Fatalf("expected UpdatedAt unchanged on idempotent confirm")
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifier.calls))
	}
	if notifier.calls[0].RecordID != rec.ID || notifier.calls[0].MotherID != "cow-1" {
		t.Fatalf("unexpected notification payload: %+v", notifier.calls[0])
	}
}

func TestService_Update_NotifiesOnConfirmationTransitionOnly(t *testing.T) {
	repo := newTestRepo()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier, nil)

	rec := seedRecord(t, svc, day(2026, 1, 10), nil)

	confirmed := StatusConfirmedPregnant
	if _, err := svc.Update(context.Background(), rec.ID, UpdateInput{Status: &confirmed}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification after transition, got %d", len(notifier.calls))
	}

	// Otro update que sigue confirmado no vuelve a disparar.
	vet := "Dra. Rivas"
	if _, err := svc.Update(context.Background(), rec.ID, UpdateInput{Veterinarian: &vet}); err != nil {
		t.Fatalf("Update #2 error: %v", err)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected no extra notification, got %d", len(notifier.calls))
	}
}

func TestService_Update_AcceptsAnyStatusTransition(t *testing.T) {
	// La app no valida transiciones: birth_completed -> planned se acepta.
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	rec := seedRecord(t, svc, day(2026, 1, 10), nil)

	if _, err := svc.RecordBirth(context.Background(), rec.ID, RecordBirthInput{
		BirthDate:      day(2026, 10, 20),
		OffspringCount: 1,
	}); err != nil {
		t.Fatalf("RecordBirth error: %v", err)
	}

	planned := StatusPlanned
	back, err := svc.Update(context.Background(), rec.ID, UpdateInput{Status: &planned})
	if err != nil {
		t.Fatalf("Update back to planned error: %v", err)
	}
	if back.Status != StatusPlanned {
		t.Fatalf("expected planned, got %s", back.Status)
	}
}

func TestService_RecordBirth_ClosesPregnancy(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	rec := seedRecord(t, svc, day(2026, 1, 10), nil)
	if _, err := svc.ConfirmPregnancy(context.Background(), rec.ID); err != nil {
		t.Fatalf("ConfirmPregnancy error: %v", err)
	}

	born, err := svc.RecordBirth(context.Background(), rec.ID, RecordBirthInput{
		BirthDate:      day(2026, 10, 20),
		OffspringCount: 2,
	})
	if err != nil {
		t.Fatalf("RecordBirth error: %v", err)
	}

	if born.Status != StatusBirthCompleted {
		t.Fatalf("expected birth_completed, got %s", born.Status)
	}
	if born.ActualBirthDate == nil || !born.ActualBirthDate.Equal(day(2026, 10, 20)) {
		t.Fatalf("expected actual birth date set")
	}
	if born.OffspringCount != 2 {
		t.Fatalf("expected 2 offspring, got %d", born.OffspringCount)
	}
	if born.IsOpen() {
		t.Fatalf("expected record closed after birth")
	}
}

func TestService_RecalculateDueDate_KnownSpecies(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	manual := day(2026, 12, 31)
	rec := seedRecord(t, svc, day(2026, 1, 1), &manual)

	updated, err := svc.RecalculateDueDate(context.Background(), rec.ID, "vaca")
	if err != nil {
		t.Fatalf("RecalculateDueDate error: %v", err)
	}

	expected := day(2026, 1, 1).AddDate(0, 0, 283)
	if updated.ExpectedDueDate == nil || !updated.ExpectedDueDate.Equal(expected) {
		t.Fatalf("expected due %s, got %v", expected.Format("2006-01-02"), updated.ExpectedDueDate)
	}
}

func TestService_RecalculateDueDate_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	rec := seedRecord(t, svc, day(2026, 1, 1), nil)

	first, err := svc.RecalculateDueDate(context.Background(), rec.ID, "vaca")
	if err != nil {
		t.Fatalf("RecalculateDueDate #1 error: %v", err)
	}

	// Reloj avanzado: si la segunda pasada escribiera, UpdatedAt cambiaría.
	svc.now = func() time.Time { return first.UpdatedAt.Add(time.Hour) }
	second, err := svc.RecalculateDueDate(context.Background(), rec.ID, "vaca")
	if err != nil {
		t.Fatalf("RecalculateDueDate #2 error: %v", err)
	}
	if second.UpdatedAt != first.UpdatedAt {
		t.Fatalf("expected no write on idempotent recalculate")
	}
}

func TestService_RecalculateDueDate_UnknownSpeciesClears(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	manual := day(2026, 12, 31)
	rec := seedRecord(t, svc, day(2026, 1, 1), &manual)

	updated, err := svc.RecalculateDueDate(context.Background(), rec.ID, "capibara")
	if err != nil {
		t.Fatalf("RecalculateDueDate error: %v", err)
	}
	if updated.ExpectedDueDate != nil {
		t.Fatalf("expected due date cleared for unknown species, got %v", updated.ExpectedDueDate)
	}
}

func TestService_UpcomingBirths_WindowAndOrder(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	today := day(2026, 3, 1)
	svc.now = func() time.Time { return today }

	add := func(id string, due *time.Time, open bool) {
		rec := Record{
			ID:              id,
			OwnerUserID:     "owner-1",
			MotherID:        "cow-" + id,
			FatherID:        "bull-1",
			BreedingDate:    day(2025, 6, 1),
			Method:          MethodNatural,
			Status:          StatusConfirmedPregnant,
			ExpectedDueDate: due,
		}
		rec.PregnancyConfirmed = true
		if !open {
			bd := day(2026, 2, 1)
			rec.ActualBirthDate = &bd
			rec.Status = StatusBirthCompleted
		}
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	in10 := day(2026, 3, 11)
	in25 := day(2026, 3, 26)
	past := day(2026, 2, 20)
	far := day(2026, 5, 1)

	add("late", &in25, true)
	add("soon", &in10, true)
	add("past", &past, true)
	add("far", &far, true)
	add("closed", &in10, false)
	add("nodue", nil, true)

	got, err := svc.UpcomingBirths(context.Background(), "owner-1", 30)
	if err != nil {
		t.Fatalf("UpcomingBirths error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming births, got %d", len(got))
	}
	if got[0].ID != "soon" || got[1].ID != "late" {
		t.Fatalf("expected [soon late], got [%s %s]", got[0].ID, got[1].ID)
	}
}
