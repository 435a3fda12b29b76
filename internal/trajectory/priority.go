package trajectory

import "trayectoria-UDP/internal/domain"

// priorityScore implementa la heurística de prioridad usada para rankear
// los candidatos de un estudiante irregular antes de quedarse con los 5 de
// mayor puntaje.
func priorityScore(course domain.Course, student domain.Student, prereq domain.PrereqGraph) float64 {
	score := 0.0

	if backlog := student.CurrentTerm - course.Term; backlog > 0 {
		score += 15 * float64(backlog)
	}

	score += 10 * float64(prereq.OutDegree(course.ID))

	if course.IsIntegratorProject() {
		score += 20
	}
	if course.IsResidency() {
		score += 30
	}
	if course.Term == student.CurrentTerm {
		score += 8
	}

	if student.IsIrregular() && course.Term > student.CurrentTerm+2 {
		score -= 5
	}
	if student.IsRegular() && course.Term > student.CurrentTerm {
		score -= 15
	}

	return score
}

// rankByPriority ordena descendente por priorityScore, con desempate por
// orden de inserción (sort.SliceStable conserva el orden original entre
// iguales).
func rankByPriority(courseIDs []int, courses map[int]domain.Course, student domain.Student, prereq domain.PrereqGraph) []int {
	ranked := append([]int(nil), courseIDs...)
	scores := make(map[int]float64, len(ranked))
	for _, id := range ranked {
		scores[id] = priorityScore(courses[id], student, prereq)
	}
	stableSortDescending(ranked, scores)
	return ranked
}

func stableSortDescending(ids []int, scores map[int]float64) {
	// inserción estable O(n^2); las listas de candidatos por término son
	// pequeñas (decenas de cursos), no vale la pena un sort genérico con
	// comparador indirecto para este tamaño.
	for i := 1; i < len(ids); i++ {
		j := i
		for j > 0 && scores[ids[j]] > scores[ids[j-1]] {
			ids[j], ids[j-1] = ids[j-1], ids[j]
			j--
		}
	}
}
