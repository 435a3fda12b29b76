package optimizer

import (
	"sort"

	"trayectoria-UDP/internal/domain"
)

// residencyShortCircuit: si algún curso elegible es una estadía, el
// optimizador evita el algoritmo genético por completo y retorna el grupo
// con menos inscritos de esa estadía que aún tenga capacidad. Si ninguno
// tiene capacidad, cae de vuelta al GA.
func residencyShortCircuit(eligible []int, cat Catalog) ([]int, bool) {
	for _, courseID := range eligible {
		course, ok := cat.Courses[courseID]
		if !ok || !course.IsResidency() {
			continue
		}

		candidates := make([]domain.Group, 0)
		for _, gid := range cat.GroupsByCourse[courseID] {
			if g, ok := cat.Groups[gid]; ok {
				candidates = append(candidates, g)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Enrollment < candidates[j].Enrollment
		})

		for _, g := range candidates {
			if g.HasCapacity() {
				return []int{g.ID}, true
			}
		}
	}
	return nil, false
}
