package animals

import "time"

// HealthStatus define los estados de salud soportados.
// Los estados pregnant-* normalmente no se guardan: los deriva el
// reconciliador de preñez a partir de los registros de monta abiertos.
// @Enum healthy, sick, injured, pregnant, pregnant-healthy, pregnant-sick, recovering, treatment
type HealthStatus string

const (
	StatusHealthy         HealthStatus = "healthy"
	StatusSick            HealthStatus = "sick"
	StatusInjured         HealthStatus = "injured"
	StatusPregnant        HealthStatus = "pregnant"
	StatusPregnantHealthy HealthStatus = "pregnant-healthy"
	StatusPregnantSick    HealthStatus = "pregnant-sick"
	StatusRecovering      HealthStatus = "recovering"
	StatusTreatment       HealthStatus = "treatment"
)

// SpeciesOther agrupa animales sin especie al agrupar por especie.
const SpeciesOther = "otros"

// Ancestry guarda las 14 referencias de pedigrí (3 generaciones).
// Cada slot puede estar vacío, contener el ID de otro animal registrado,
// o contener texto libre con el nombre de un ancestro externo
// (pedigrí no digitalizado). La clasificación vive en pedigree.go.
type Ancestry struct {
	Mother string
	Father string

	MaternalGrandmother string
	MaternalGrandfather string
	PaternalGrandmother string
	PaternalGrandfather string

	MaternalGrandmotherMother string
	MaternalGrandmotherFather string
	MaternalGrandfatherMother string
	MaternalGrandfatherFather string
	PaternalGrandmotherMother string
	PaternalGrandmotherFather string
	PaternalGrandfatherMother string
	PaternalGrandfatherFather string
}

// Animal representa un animal registrado en la finca.
type Animal struct {
	ID          string
	OwnerUserID string

	Tag  string // arete / código corto
	Name string

	Species string // texto libre: "bovino", "equino", etc.
	Gender  string // texto libre: male/female y variantes en otros idiomas
	Breed   string
	Color   string

	HealthStatus HealthStatus
	BirthDate    *time.Time
	Weight       *float64 // kg

	Ancestry Ancestry

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
