package animals

import (
	"testing"
)

const (
	lunaID = "5f0c1c2e-9d1a-4b6e-8f3a-2c7d9e1b4a6c"
	toroID = "7a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
)

func testRoster() []Animal {
	return []Animal{
		{ID: lunaID, Name: "Luna", Tag: "A-12", Species: "vaca"},
		{ID: toroID, Name: "Trueno", Species: "toro"},
		{ID: "9b8c7d6e-5f4a-4b3c-8d2e-1f0a9b8c7d6e", Name: "Bella", Tag: "B-03", Species: "vaca"},
	}
}

func rosterByID() map[string]Animal {
	byID := make(map[string]Animal)
	for _, a := range testRoster() {
		byID[a.ID] = a
	}
	return byID
}

func TestClassifyAncestorRef_Empty(t *testing.T) {
	ref := ClassifyAncestorRef("", rosterByID())
	if ref.Kind != AncestorEmpty {
		t.Fatalf("expected empty kind, got %s", ref.Kind)
	}
	if ref.DisplayName != NotRecordedLabel {
		t.Fatalf("expected %q, got %q", NotRecordedLabel, ref.DisplayName)
	}

	// Solo espacios también cuenta como vacío.
	if ref := ClassifyAncestorRef("   ", rosterByID()); ref.Kind != AncestorEmpty {
		t.Fatalf("expected empty kind for whitespace, got %s", ref.Kind)
	}
}

func TestClassifyAncestorRef_RegisteredResolvesDisplayName(t *testing.T) {
	ref := ClassifyAncestorRef(lunaID, rosterByID())
	if !ref.IsRegistered() {
		t.Fatalf("expected registered, got %s", ref.Kind)
	}
	if ref.AnimalID != lunaID {
		t.Fatalf("expected animal id %s, got %s", lunaID, ref.AnimalID)
	}
	if ref.DisplayName != "Luna (A-12)" {
		t.Fatalf("expected 'Luna (A-12)', got %q", ref.DisplayName)
	}

	// Sin arete, solo el nombre.
	if ref := ClassifyAncestorRef(toroID, rosterByID()); ref.DisplayName != "Trueno" {
		t.Fatalf("expected 'Trueno', got %q", ref.DisplayName)
	}
}

func TestClassifyAncestorRef_FreeTextStaysExternal(t *testing.T) {
	// "Bella" coincide con el nombre de un animal del padrón, pero un
	// nombre no es un ID: sigue siendo ancestro externo.
	ref := ClassifyAncestorRef("Bella", rosterByID())
	if ref.Kind != AncestorExternal {
		t.Fatalf("expected external, got %s", ref.Kind)
	}
	if ref.DisplayName != "Bella" {
		t.Fatalf("expected 'Bella', got %q", ref.DisplayName)
	}
	if ref.AnimalID != "" {
		t.Fatalf("expected no animal id for external ancestor")
	}
}

func TestClassifyAncestorRef_UnknownIDTreatedAsExternal(t *testing.T) {
	// Forma de ID pero no existe en el padrón (animal borrado): externo,
	// nunca error.
	ghost := "0e1d2c3b-4a5f-4e6d-8c7b-9a0f1e2d3c4b"
	ref := ClassifyAncestorRef(ghost, rosterByID())
	if ref.Kind != AncestorExternal {
		t.Fatalf("expected external for unknown id, got %s", ref.Kind)
	}
	if ref.DisplayName != ghost {
		t.Fatalf("expected raw id as display name, got %q", ref.DisplayName)
	}
}

func TestBuildPedigree_MixedSlots(t *testing.T) {
	calf := Animal{
		ID:   "calf-1",
		Name: "Manchas",
		Tag:  "C-07",
		Ancestry: Ancestry{
			Mother: lunaID,
			Father: "Toro del vecino",
			// Abuelos y bisabuelos sin registrar.
		},
	}

	p := BuildPedigree(calf, testRoster())

	if p.Animal.DisplayName != "Manchas (C-07)" || !p.Animal.IsRegistered() {
		t.Fatalf("unexpected root slot: %+v", p.Animal)
	}
	if !p.Mother.IsRegistered() || p.Mother.DisplayName != "Luna (A-12)" {
		t.Fatalf("unexpected mother slot: %+v", p.Mother)
	}
	if p.Father.Kind != AncestorExternal || p.Father.DisplayName != "Toro del vecino" {
		t.Fatalf("unexpected father slot: %+v", p.Father)
	}

	// Los 4 abuelos y 8 bisabuelos vacíos salen como placeholder.
	empties := []AncestorRef{
		p.MaternalGrandmother, p.MaternalGrandfather,
		p.PaternalGrandmother, p.PaternalGrandfather,
		p.MaternalGrandmotherMother, p.MaternalGrandmotherFather,
		p.MaternalGrandfatherMother, p.MaternalGrandfatherFather,
		p.PaternalGrandmotherMother, p.PaternalGrandmotherFather,
		p.PaternalGrandfatherMother, p.PaternalGrandfatherFather,
	}
	for i, ref := range empties {
		if ref.Kind != AncestorEmpty || ref.DisplayName != NotRecordedLabel {
			t.Fatalf("slot %d: expected placeholder, got %+v", i, ref)
		}
	}
}
