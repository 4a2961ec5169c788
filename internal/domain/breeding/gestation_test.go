package breeding

import (
	"testing"
	"time"
)

func TestGestationDays_SynonymsSameProfile(t *testing.T) {
	cases := []struct {
		label string
		days  int
	}{
		{"vaca", 283},
		{"toro", 283},
		{"cattle", 283},
		{"COW", 283},
		{"  Vaca  ", 283},
		{"yegua", 340},
		{"horse", 340},
		{"oveja", 147},
		{"sheep", 147},
		{"cabra", 150},
		{"goat", 150},
		{"cerdo", 114},
		{"pig", 114},
		{"llama", 350},
		{"alpaca", 350},
		{"camelido", 350},
	}

	for _, tc := range cases {
		days, ok := GestationDays(tc.label)
		if !ok {
			t.Fatalf("GestationDays(%q): expected ok", tc.label)
		}
		if days != tc.days {
			t.Fatalf("GestationDays(%q) = %d, expected %d", tc.label, days, tc.days)
		}
	}
}

func TestGestationDays_UnknownSpecies(t *testing.T) {
	for _, label := range []string{"", "capibara", "bovine", "dog"} {
		if _, ok := GestationDays(label); ok {
			t.Fatalf("GestationDays(%q): expected ok=false", label)
		}
	}
}

func TestDueDate_CattleCrossesYearBoundaryOfMonths(t *testing.T) {
	breedingDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	due, ok := DueDate(breedingDate, "vaca")
	if !ok {
		t.Fatalf("expected due date for vaca")
	}
	expected := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !due.Equal(expected) {
		t.Fatalf("expected due %s, got %s", expected.Format("2006-01-02"), due.Format("2006-01-02"))
	}
}

func TestDueDate_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)

	due, ok := DueDate(late, "vaca")
	if !ok {
		t.Fatalf("expected due date for vaca")
	}
	// El cálculo parte del día calendario, no del instante.
	expected := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !due.Equal(expected) {
		t.Fatalf("expected due %s, got %s", expected.Format("2006-01-02"), due.Format("2006-01-02"))
	}
}

func TestDueDate_UnknownSpeciesNoResult(t *testing.T) {
	breedingDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := DueDate(breedingDate, "capibara"); ok {
		t.Fatalf("expected no due date for unknown species")
	}
}

func TestGestationDuration(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if got := GestationDuration(day(2024, 1, 1), day(2024, 10, 10)); got != 283 {
		t.Fatalf("expected 283, got %d", got)
	}
	if got := GestationDuration(day(2024, 1, 1), day(2024, 1, 1)); got != 0 {
		t.Fatalf("expected 0 for same day, got %d", got)
	}
	// Fechas invertidas: negativo, se reporta tal cual.
	if got := GestationDuration(day(2024, 1, 10), day(2024, 1, 1)); got != -9 {
		t.Fatalf("expected -9, got %d", got)
	}
}

func TestSpeciesDisplayLabel(t *testing.T) {
	if got := SpeciesDisplayLabel("vaca"); got != "bovino (283 días)" {
		t.Fatalf("expected 'bovino (283 días)', got %q", got)
	}
	if got := SpeciesDisplayLabel("horse"); got != "equino (340 días)" {
		t.Fatalf("expected 'equino (340 días)', got %q", got)
	}
	// Desconocida: la entrada tal cual.
	if got := SpeciesDisplayLabel("capibara"); got != "capibara" {
		t.Fatalf("expected passthrough for unknown species, got %q", got)
	}
}
