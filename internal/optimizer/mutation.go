package optimizer

import (
	"math/rand"

	"trayectoria-UDP/internal/domain"
)

// mutate aplica la mutación: con probabilidad mutation_rate, elige
// una posición y primero intenta cambiarla por otro grupo del mismo curso
// que no choque; si eso falla, intenta reemplazarla por un grupo de un
// curso elegible aún no inscrito, con cupo y sin choque; si tampoco es
// posible, deja el individuo sin cambios. La mutación nunca introduce
// cursos repetidos ni choques.
func mutate(student domain.Student, ind Individual, rate float64, cat Catalog, groupsByCourse map[int][]int, rng *rand.Rand) Individual {
	if rate <= 0 || len(ind) == 0 || rng.Float64() >= rate {
		return ind
	}

	pos := rng.Intn(len(ind))
	currentGID := ind[pos]
	current, ok := cat.Groups[currentGID]
	if !ok {
		return ind
	}

	rest := without(ind, pos)

	if alt, ok := pickSiblingGroup(current, rest, cat, groupsByCourse[current.CourseID], rng); ok {
		return withReplacement(ind, pos, alt)
	}

	if alt, ok := pickUnscheduledGroup(ind, rest, cat, groupsByCourse, rng); ok {
		return withReplacement(ind, pos, alt)
	}

	return ind
}

func pickSiblingGroup(current domain.Group, rest Individual, cat Catalog, siblings []int, rng *rand.Rand) (int, bool) {
	order := rng.Perm(len(siblings))
	for _, i := range order {
		gid := siblings[i]
		if gid == current.ID {
			continue
		}
		g, ok := cat.Groups[gid]
		if !ok || !g.HasCapacity() {
			continue
		}
		if conflictsWithIndividual(g, rest, cat) {
			continue
		}
		return gid, true
	}
	return 0, false
}

func pickUnscheduledGroup(ind Individual, rest Individual, cat Catalog, groupsByCourse map[int][]int, rng *rand.Rand) (int, bool) {
	scheduledCourses := make(map[int]bool, len(ind))
	for _, gid := range ind {
		if g, ok := cat.Groups[gid]; ok {
			scheduledCourses[g.CourseID] = true
		}
	}

	courseIDs := sortedCourseIDsOf(groupsByCourse)
	order := rng.Perm(len(courseIDs))
	for _, i := range order {
		courseID := courseIDs[i]
		if scheduledCourses[courseID] {
			continue
		}
		groups := groupsByCourse[courseID]
		gOrder := rng.Perm(len(groups))
		for _, j := range gOrder {
			gid := groups[j]
			g, ok := cat.Groups[gid]
			if !ok || !g.HasCapacity() {
				continue
			}
			if conflictsWithIndividual(g, rest, cat) {
				continue
			}
			return gid, true
		}
	}
	return 0, false
}

func without(ind Individual, pos int) Individual {
	result := make(Individual, 0, len(ind)-1)
	for i, gid := range ind {
		if i == pos {
			continue
		}
		result = append(result, gid)
	}
	return result
}

func withReplacement(ind Individual, pos int, newGID int) Individual {
	result := cloneIndividual(ind)
	result[pos] = newGID
	return result
}
