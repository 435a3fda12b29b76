package optimizer

import (
	"math/rand"

	"trayectoria-UDP/internal/domain"
)

// crossover aplica cruce de un punto: con probabilidad
// crossover_rate, corta ambos padres en una posición aleatoria dentro de
// [1, min(|p1|,|p2|)-1] e intercambia los sufijos. Padres de largo <= 1
// pasan sin cambios. El resultado se repara: un hijo nunca retiene un
// curso repetido ni dos grupos cuyas reuniones choquen, aunque eso no esté
// entre las condiciones que anulan el fitness.
func crossover(p1, p2 Individual, rate float64, cat Catalog, rng *rand.Rand) (Individual, Individual) {
	if rng.Float64() >= rate {
		return cloneIndividual(p1), cloneIndividual(p2)
	}

	shorter := minInt(len(p1), len(p2))
	if shorter <= 1 {
		return cloneIndividual(p1), cloneIndividual(p2)
	}

	point := 1 + rng.Intn(shorter-1)

	c1 := append(append(Individual{}, p1[:point]...), p2[point:]...)
	c2 := append(append(Individual{}, p2[:point]...), p1[point:]...)

	return repairSchedule(c1, cat), repairSchedule(c2, cat)
}

// repairSchedule recorre un individuo en orden y descarta cualquier grupo
// que repita un curso ya presente o choque en horario con uno ya aceptado,
// conservando siempre la primera ocurrencia.
func repairSchedule(ind Individual, cat Catalog) Individual {
	seenCourses := make(map[int]bool, len(ind))
	var kept []domain.Group
	result := make(Individual, 0, len(ind))

	for _, gid := range ind {
		g, ok := cat.Groups[gid]
		if !ok || seenCourses[g.CourseID] {
			continue
		}
		conflict := false
		for _, k := range kept {
			if cat.groupsConflict(g, k) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		seenCourses[g.CourseID] = true
		kept = append(kept, g)
		result = append(result, gid)
	}

	return result
}
