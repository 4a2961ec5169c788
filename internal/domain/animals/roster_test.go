package animals

import "testing"

func TestMatchesStatusFilter(t *testing.T) {
	// "pregnant" es filtro por prefijo.
	for _, s := range []HealthStatus{StatusPregnant, StatusPregnantHealthy, StatusPregnantSick} {
		if !MatchesStatusFilter(s, "pregnant") {
			t.Fatalf("expected %q to match filter pregnant", s)
		}
	}

	// El resto es match exacto.
	if MatchesStatusFilter(StatusPregnantHealthy, "pregnant-sick") {
		t.Fatalf("pregnant-healthy must not match pregnant-sick")
	}
	if !MatchesStatusFilter(StatusSick, "sick") {
		t.Fatalf("expected sick to match sick")
	}
	if MatchesStatusFilter(StatusHealthy, "sick") {
		t.Fatalf("healthy must not match sick")
	}
}

func TestGroupBySpecies(t *testing.T) {
	roster := []Animal{
		{ID: "1", Name: "Mora", Species: "vaca"},
		{ID: "2", Name: "Luna", Species: "vaca"},
		{ID: "3", Name: "Rex"},
		{ID: "4", Name: "Copito", Species: "Oveja"},
	}

	grouped := GroupBySpecies(roster)

	// La especie no se normaliza: "Oveja" es su propio bucket.
	if len(grouped) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(grouped))
	}

	vacas, ok := grouped["vaca"]
	if !ok || len(vacas) != 2 {
		t.Fatalf("expected 2 vacas, got %#v", grouped["vaca"])
	}
	// Orden por nombre ascendente dentro del grupo.
	if vacas[0].Name != "Luna" || vacas[1].Name != "Mora" {
		t.Fatalf("expected [Luna Mora], got [%s %s]", vacas[0].Name, vacas[1].Name)
	}

	otros, ok := grouped[SpeciesOther]
	if !ok || len(otros) != 1 || otros[0].Name != "Rex" {
		t.Fatalf("expected Rex in %q bucket, got %#v", SpeciesOther, grouped[SpeciesOther])
	}
}
