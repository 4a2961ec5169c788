package details

import "time"

type Medication struct {
	Name string `json:"name"`

	Dosage   string `json:"dosage"`    // "2"
	DoseUnit string `json:"dose_unit"` // "ml", "mg", etc.

	Frequency string `json:"frequency"` // texto por ahora: "cada 12h"

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Notes string `json:"notes,omitempty"`
}
