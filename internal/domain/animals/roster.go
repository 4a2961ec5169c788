package animals

import (
	"sort"
	"strings"
)

// MatchesStatusFilter decide si un estado efectivo pasa un filtro de
// estado. El filtro "pregnant" usa semántica de prefijo (matchea
// pregnant, pregnant-healthy y pregnant-sick); cualquier otro valor
// exige match exacto.
func MatchesStatusFilter(effective HealthStatus, filter string) bool {
	if filter == string(StatusPregnant) {
		return strings.HasPrefix(string(effective), filter)
	}
	return string(effective) == filter
}

// GroupBySpecies agrupa un snapshot del padrón por especie tal cual está
// escrita (sin normalizar). Animales sin especie van al bucket "otros".
// Cada grupo queda ordenado por nombre ascendente.
func GroupBySpecies(roster []Animal) map[string][]Animal {
	out := make(map[string][]Animal)
	for _, a := range roster {
		key := a.Species
		if key == "" {
			key = SpeciesOther
		}
		out[key] = append(out[key], a)
	}

	for key := range out {
		group := out[key]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
		out[key] = group
	}

	return out
}
