package healthrecords

import (
	"time"

	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/domain/healthrecords/details"
)

// HealthRecord es una entrada del historial clínico de un animal.
// Las entradas no se borran: se anulan (voided).
type HealthRecord struct {
	ID       string
	AnimalID string

	Type RecordType

	OccurredAt time.Time
	RecordedAt time.Time

	Title string
	Notes string

	Veterinarian string

	// NewHealthStatus opcional: si viene, el flujo propaga este estado
	// al animal (p.ej. ILLNESS => sick, TREATMENT => treatment).
	NewHealthStatus animals.HealthStatus

	// Detalles opcionales según el tipo de entrada.
	Measurement *details.Measurement
	Vaccination *details.Vaccination
	Medication  *details.Medication

	Status RecordStatus
}
