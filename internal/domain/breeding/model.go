package breeding

import "time"

// Record representa un evento de monta entre dos animales.
type Record struct {
	ID          string
	OwnerUserID string

	MotherID string
	FatherID string

	BreedingDate time.Time // solo fecha (medianoche UTC)
	Method       Method
	Status       Status

	// Derivada de BreedingDate + gestación de la especie, pero se guarda
	// y es editable de forma independiente. El recálculo es manual.
	ExpectedDueDate *time.Time

	ActualBirthDate           *time.Time
	PregnancyConfirmed        bool
	PregnancyConfirmationDate *time.Time

	OffspringCount int

	Veterinarian string
	Cost         *float64
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen indica preñez en curso: confirmada (por flag o por estado),
// sin fecha de parto real y sin estado birth_completed.
func (r Record) IsOpen() bool {
	confirmed := r.PregnancyConfirmed || r.Status == StatusConfirmedPregnant
	return confirmed && r.ActualBirthDate == nil && r.Status != StatusBirthCompleted
}
