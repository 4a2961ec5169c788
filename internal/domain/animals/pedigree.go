package animals

import (
	"strings"

	"github.com/google/uuid"
)

// AncestorKind clasifica el contenido de un slot de pedigrí.
type AncestorKind string

const (
	// AncestorEmpty: slot sin registrar.
	AncestorEmpty AncestorKind = "empty"
	// AncestorRegistered: referencia a un animal del padrón.
	AncestorRegistered AncestorKind = "registered"
	// AncestorExternal: texto libre de un ancestro no digitalizado.
	AncestorExternal AncestorKind = "external"
)

// NotRecordedLabel es el sentinel para slots vacíos; la UI lo muestra
// como placeholder en vez de renderizar una tarjeta.
const NotRecordedLabel = "no registrado"

// AncestorRef es la unión etiquetada que resuelve un slot:
// Registered(animalID) | External(texto) | Empty.
type AncestorRef struct {
	Kind AncestorKind

	// AnimalID solo cuando Kind == registered.
	AnimalID string

	// DisplayName: "Nombre (arete)" para registrados, el texto tal cual
	// para externos, NotRecordedLabel para vacíos.
	DisplayName string
}

func (r AncestorRef) IsRegistered() bool { return r.Kind == AncestorRegistered }

// looksLikeAnimalID detecta la forma canónica de un ID (UUID de 36 chars).
// Cualquier otra cadena es texto libre, aunque coincida con el nombre
// de un animal real del padrón.
func looksLikeAnimalID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ClassifyAncestorRef resuelve un slot contra el padrón.
// Un valor con forma de ID que no existe en el padrón se trata como
// ancestro externo, nunca como error.
func ClassifyAncestorRef(fieldValue string, byID map[string]Animal) AncestorRef {
	v := strings.TrimSpace(fieldValue)
	if v == "" {
		return AncestorRef{Kind: AncestorEmpty, DisplayName: NotRecordedLabel}
	}

	if looksLikeAnimalID(v) {
		if a, ok := byID[v]; ok {
			return AncestorRef{
				Kind:        AncestorRegistered,
				AnimalID:    a.ID,
				DisplayName: registeredDisplayName(a),
			}
		}
	}

	return AncestorRef{Kind: AncestorExternal, DisplayName: v}
}

func registeredDisplayName(a Animal) string {
	if strings.TrimSpace(a.Tag) == "" {
		return a.Name
	}
	return a.Name + " (" + a.Tag + ")"
}

// Pedigree es el árbol de 3 generaciones listo para renderizar.
// Cada slot es opcional e independiente del resto.
type Pedigree struct {
	Animal AncestorRef

	Mother AncestorRef
	Father AncestorRef

	MaternalGrandmother AncestorRef
	MaternalGrandfather AncestorRef
	PaternalGrandmother AncestorRef
	PaternalGrandfather AncestorRef

	MaternalGrandmotherMother AncestorRef
	MaternalGrandmotherFather AncestorRef
	MaternalGrandfatherMother AncestorRef
	MaternalGrandfatherFather AncestorRef
	PaternalGrandmotherMother AncestorRef
	PaternalGrandmotherFather AncestorRef
	PaternalGrandfatherMother AncestorRef
	PaternalGrandfatherFather AncestorRef
}

// BuildPedigree arma el árbol del animal contra un snapshot del padrón.
// Función pura: no toca repos ni estado global.
func BuildPedigree(a Animal, roster []Animal) Pedigree {
	byID := make(map[string]Animal, len(roster))
	for _, other := range roster {
		byID[other.ID] = other
	}
	// El propio animal también puede aparecer como ancestro en datos sucios.
	byID[a.ID] = a

	anc := a.Ancestry
	return Pedigree{
		Animal: AncestorRef{
			Kind:        AncestorRegistered,
			AnimalID:    a.ID,
			DisplayName: registeredDisplayName(a),
		},

		Mother: ClassifyAncestorRef(anc.Mother, byID),
		Father: ClassifyAncestorRef(anc.Father, byID),

		MaternalGrandmother: ClassifyAncestorRef(anc.MaternalGrandmother, byID),
		MaternalGrandfather: ClassifyAncestorRef(anc.MaternalGrandfather, byID),
		PaternalGrandmother: ClassifyAncestorRef(anc.PaternalGrandmother, byID),
		PaternalGrandfather: ClassifyAncestorRef(anc.PaternalGrandfather, byID),

		MaternalGrandmotherMother: ClassifyAncestorRef(anc.MaternalGrandmotherMother, byID),
		MaternalGrandmotherFather: ClassifyAncestorRef(anc.MaternalGrandmotherFather, byID),
		MaternalGrandfatherMother: ClassifyAncestorRef(anc.MaternalGrandfatherMother, byID),
		MaternalGrandfatherFather: ClassifyAncestorRef(anc.MaternalGrandfatherFather, byID),
		PaternalGrandmotherMother: ClassifyAncestorRef(anc.PaternalGrandmotherMother, byID),
		PaternalGrandmotherFather: ClassifyAncestorRef(anc.PaternalGrandmotherFather, byID),
		PaternalGrandfatherMother: ClassifyAncestorRef(anc.PaternalGrandfatherMother, byID),
		PaternalGrandfatherFather: ClassifyAncestorRef(anc.PaternalGrandfatherFather, byID),
	}
}
