package optimizer

import "math/rand"

// tournamentSelect implementa la selección por torneo: un torneo de tamaño
// min(3, |población|), muestreado sin reemplazo, donde gana el individuo
// de mayor fitness. Retorna nil si la población está vacía.
func tournamentSelect(population []Individual, scores []float64, rng *rand.Rand) Individual {
	if len(population) == 0 {
		return nil
	}

	size := minInt(3, len(population))
	idx := rng.Perm(len(population))[:size]

	bestIdx := idx[0]
	for _, i := range idx[1:] {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}
	return cloneIndividual(population[bestIdx])
}
