package breeding

import (
	"testing"
	"time"

	"livestock-breeding/internal/domain/animals"
)

func openRecord(motherID string) Record {
	return Record{
		ID:                 "rec-" + motherID,
		MotherID:           motherID,
		BreedingDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:             StatusConfirmedPregnant,
		PregnancyConfirmed: true,
	}
}

func TestEffectiveStatus_FoldsOpenPregnancy(t *testing.T) {
	cases := []struct {
		stored   animals.HealthStatus
		expected animals.HealthStatus
	}{
		{animals.StatusHealthy, animals.StatusPregnantHealthy},
		{"", animals.StatusPregnantHealthy},
		{animals.StatusSick, animals.StatusPregnantSick},
		{animals.StatusInjured, animals.StatusPregnant},
		{animals.StatusRecovering, animals.StatusPregnant},
	}

	for _, tc := range cases {
		a := animals.Animal{ID: "cow-1", HealthStatus: tc.stored}
		got := EffectiveStatus(a, []Record{openRecord("cow-1")})
		if got != tc.expected {
			t.Fatalf("stored=%q: expected %q, got %q", tc.stored, tc.expected, got)
		}
	}
}

func TestEffectiveStatus_NoOpenPregnancy(t *testing.T) {
	a := animals.Animal{ID: "cow-1", HealthStatus: animals.StatusSick}

	// Sin registros: estado guardado tal cual.
	if got := EffectiveStatus(a, nil); got != animals.StatusSick {
		t.Fatalf("expected sick, got %q", got)
	}

	// Estado guardado vacío se normaliza a healthy.
	blank := animals.Animal{ID: "cow-1"}
	if got := EffectiveStatus(blank, nil); got != animals.StatusHealthy {
		t.Fatalf("expected healthy for blank stored status, got %q", got)
	}

	// Monta de otra madre no cuenta.
	if got := EffectiveStatus(a, []Record{openRecord("cow-2")}); got != animals.StatusSick {
		t.Fatalf("expected sick with other mother's record, got %q", got)
	}
}

func TestEffectiveStatus_BirthClosesPregnancy(t *testing.T) {
	a := animals.Animal{ID: "cow-1", HealthStatus: animals.StatusHealthy}

	// Con fecha de parto real la monta nunca está abierta, aunque los
	// flags de confirmación sigan en true.
	rec := openRecord("cow-1")
	bd := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rec.ActualBirthDate = &bd

	if got := EffectiveStatus(a, []Record{rec}); got != animals.StatusHealthy {
		t.Fatalf("expected healthy after birth, got %q", got)
	}

	rec2 := openRecord("cow-1")
	rec2.Status = StatusBirthCompleted
	if got := EffectiveStatus(a, []Record{rec2}); got != animals.StatusHealthy {
		t.Fatalf("expected healthy for birth_completed, got %q", got)
	}
}

func TestFilterByStatus_PregnantPrefix(t *testing.T) {
	roster := []animals.Animal{
		{ID: "cow-1", Name: "Luna", HealthStatus: animals.StatusHealthy},
		{ID: "cow-2", Name: "Mora", HealthStatus: animals.StatusSick},
		{ID: "cow-3", Name: "Nube", HealthStatus: animals.StatusHealthy},
	}
	records := []Record{openRecord("cow-1"), openRecord("cow-2")}

	// "pregnant" matchea pregnant-healthy y pregnant-sick.
	got := FilterByStatus(roster, records, "pregnant")
	if len(got) != 2 {
		t.Fatalf("expected 2 pregnant animals, got %d", len(got))
	}

	// Variantes exactas.
	if got := FilterByStatus(roster, records, "pregnant-sick"); len(got) != 1 || got[0].ID != "cow-2" {
		t.Fatalf("expected only cow-2 for pregnant-sick, got %#v", got)
	}
	if got := FilterByStatus(roster, records, "healthy"); len(got) != 1 || got[0].ID != "cow-3" {
		t.Fatalf("expected only cow-3 for healthy, got %#v", got)
	}

	// Filtro vacío: padrón completo.
	if got := FilterByStatus(roster, records, ""); len(got) != 3 {
		t.Fatalf("expected full roster for empty filter, got %d", len(got))
	}
}
