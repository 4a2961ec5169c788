package details

import "time"

// Vaccination modela el detalle de una vacuna o desparasitación
// asociada a una entrada del historial.
type Vaccination struct {
	Product string `json:"product"`
	Dose    string `json:"dose"`

	NextDue *time.Time `json:"next_due,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}
