package optimizer

import (
	"math/rand"

	"trayectoria-UDP/internal/domain"
)

// initialPopulation construye la población inicial:
// cada individuo muestrea entre min(2,|cursos|) y min(8,|cursos|) cursos y,
// para cada uno, escoge un grupo con cupo que no choque con lo ya elegido
// en ese mismo individuo. Reintenta hasta 5·population_size veces en total
// y, si aún falta población, completa duplicando individuos existentes.
func initialPopulation(student domain.Student, cat Catalog, groupsByCourse map[int][]int, cfg Config, rng *rand.Rand) []Individual {
	courseIDs := sortedCourseIDsOf(groupsByCourse)
	if len(courseIDs) == 0 {
		return nil
	}

	population := make([]Individual, 0, cfg.PopulationSize)
	maxAttempts := 5 * cfg.PopulationSize
	attempts := 0

	for len(population) < cfg.PopulationSize && attempts < maxAttempts {
		attempts++
		ind, ok := buildIndividual(courseIDs, groupsByCourse, cat, rng)
		if ok {
			population = append(population, ind)
		}
	}

	if len(population) == 0 {
		return nil
	}
	for len(population) < cfg.PopulationSize {
		population = append(population, cloneIndividual(population[rng.Intn(len(population))]))
	}

	return population
}

func buildIndividual(courseIDs []int, groupsByCourse map[int][]int, cat Catalog, rng *rand.Rand) (Individual, bool) {
	minK := minInt(2, len(courseIDs))
	maxK := minInt(8, len(courseIDs))
	k := minK
	if maxK > minK {
		k = minK + rng.Intn(maxK-minK+1)
	}

	shuffled := append([]int(nil), courseIDs...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	picks := shuffled[:k]

	var individual Individual
	for _, courseID := range picks {
		groups := groupsByCourse[courseID]
		order := append([]int(nil), groups...)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, gid := range order {
			g, ok := cat.Groups[gid]
			if !ok || !g.HasCapacity() {
				continue
			}
			if conflictsWithIndividual(g, individual, cat) {
				continue
			}
			individual = append(individual, gid)
			break
		}
	}

	if len(individual) == 0 {
		return nil, false
	}
	return individual, true
}

// conflictsWithIndividual indica si g choca con algún grupo ya elegido
// dentro del mismo individuo (mismo curso o reuniones superpuestas).
func conflictsWithIndividual(g domain.Group, individual Individual, cat Catalog) bool {
	for _, gid := range individual {
		other, ok := cat.Groups[gid]
		if !ok {
			continue
		}
		if g.ID != other.ID && cat.groupsConflict(g, other) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
