package breeding

import (
	"strings"

	"livestock-breeding/internal/domain/animals"
)

// Reconciliador de preñez: join entre dos colecciones ya traídas
// (padrón + montas). Funciones puras sin estado compartido; se pueden
// llamar cuantas veces haga falta con snapshots frescos. Si un registro
// creado hace un momento por otro actor todavía no es visible, el
// resultado es simplemente "sin preñez abierta" (consistencia eventual
// aceptada, no es un bug).

// EffectiveStatus deriva el estado de salud mostrado al usuario:
// el estado guardado, plegado con las montas abiertas donde el animal
// es la madre.
func EffectiveStatus(a animals.Animal, records []Record) animals.HealthStatus {
	open := false
	for _, r := range records {
		if r.MotherID == a.ID && r.IsOpen() {
			open = true
			break
		}
	}

	if !open {
		if a.HealthStatus == "" {
			return animals.StatusHealthy
		}
		return a.HealthStatus
	}

	switch a.HealthStatus {
	case animals.StatusHealthy, "":
		return animals.StatusPregnantHealthy
	case animals.StatusSick:
		return animals.StatusPregnantSick
	default:
		return animals.StatusPregnant
	}
}

// FilterByStatus filtra por estado efectivo usando la semántica de
// animals.MatchesStatusFilter ("pregnant" por prefijo, el resto exacto).
func FilterByStatus(roster []animals.Animal, records []Record, statusFilter string) []animals.Animal {
	filter := strings.TrimSpace(statusFilter)
	if filter == "" {
		return roster
	}

	out := make([]animals.Animal, 0)
	for _, a := range roster {
		if animals.MatchesStatusFilter(EffectiveStatus(a, records), filter) {
			out = append(out, a)
		}
	}
	return out
}
