package breeding

import (
	"fmt"
	"strings"
	"time"
)

// gestationProfile asocia una especie canónica con su gestación en días.
type gestationProfile struct {
	Canonical string
	Days      int
}

// gestationBySynonym mapea sinónimos normalizados (minúsculas, sin
// espacios alrededor) en inglés y español a su perfil de gestación.
// Match exacto: nada de fuzzy. "bovine" no matchea salvo que se agregue.
var gestationBySynonym = map[string]gestationProfile{
	// bovinos: 283 días
	"vaca":   {"bovino", 283},
	"toro":   {"bovino", 283},
	"bovino": {"bovino", 283},
	"cattle": {"bovino", 283},
	"cow":    {"bovino", 283},

	// equinos: 340 días
	"caballo": {"equino", 340},
	"yegua":   {"equino", 340},
	"equino":  {"equino", 340},
	"horse":   {"equino", 340},
	"mare":    {"equino", 340},

	// ovinos: 147 días
	"oveja":   {"ovino", 147},
	"ovino":   {"ovino", 147},
	"carnero": {"ovino", 147},
	"sheep":   {"ovino", 147},

	// caprinos: 150 días
	"cabra":   {"caprino", 150},
	"caprino": {"caprino", 150},
	"chivo":   {"caprino", 150},
	"goat":    {"caprino", 150},

	// porcinos: 114 días
	"cerdo":   {"porcino", 114},
	"porcino": {"porcino", 114},
	"marrano": {"porcino", 114},
	"pig":     {"porcino", 114},

	// camélidos: 350 días
	"llama":    {"camélido", 350},
	"alpaca":   {"camélido", 350},
	"camélido": {"camélido", 350},
	"camelido": {"camélido", 350},
}

// GestationDays devuelve la gestación en días para una especie.
// Especie desconocida => ok=false; nunca un default, nunca un error.
func GestationDays(speciesLabel string) (days int, ok bool) {
	p, ok := gestationBySynonym[normalizeSpecies(speciesLabel)]
	if !ok {
		return 0, false
	}
	return p.Days, true
}

// DueDate calcula la fecha probable de parto: fecha de monta + gestación.
// Aritmética de días calendario pura sobre medianoche UTC, para que el
// resultado no dependa de la zona horaria local.
func DueDate(breedingDate time.Time, speciesLabel string) (time.Time, bool) {
	if breedingDate.IsZero() {
		return time.Time{}, false
	}
	days, ok := GestationDays(speciesLabel)
	if !ok {
		return time.Time{}, false
	}
	return DateOnly(breedingDate).AddDate(0, 0, days), true
}

// GestationDuration es la diferencia en días enteros entre monta y parto
// real. Un parto anterior a la monta da negativo: es una señal de calidad
// de datos que se reporta tal cual, no se recorta a cero.
func GestationDuration(breedingDate, actualBirthDate time.Time) int {
	from := DateOnly(breedingDate)
	to := DateOnly(actualBirthDate)
	return int(to.Sub(from) / (24 * time.Hour))
}

// SpeciesDisplayLabel arma la etiqueta legible "canónico (N días)".
// Para especies desconocidas devuelve la entrada sin tocar.
func SpeciesDisplayLabel(speciesLabel string) string {
	p, ok := gestationBySynonym[normalizeSpecies(speciesLabel)]
	if !ok {
		return speciesLabel
	}
	return fmt.Sprintf("%s (%d días)", p.Canonical, p.Days)
}

// DateOnly trunca a medianoche UTC conservando año/mes/día.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeSpecies(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
