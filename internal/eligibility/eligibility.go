// Package eligibility implementa el resolutor de elegibilidad: la
// función pura que, dado un estudiante y el catálogo, decide qué cursos
// puede tomar ahora.
package eligibility

import (
	"sort"

	"trayectoria-UDP/internal/domain"
)

// Catalog agrupa las referencias de solo-lectura que el resolutor necesita:
// la malla (cursos), los grafos de prerrequisito/dependencia y el índice
// curso → grupos derivado del catálogo de secciones.
type Catalog struct {
	Courses         map[int]domain.Course
	PrereqGraph     domain.PrereqGraph
	ProjectDepGraph domain.ProjectDepGraph
	GroupsByCourse  map[int][]int // course id -> group ids, solo para saber si "existe al menos un grupo"
}

// Eligible calcula la lista de ids de curso que el estudiante puede
// inscribir ahora, en orden estable de inserción (orden ascendente de id
// de curso, que es cómo se recorre el mapa de cursos tras ordenarlo).
//
// Resultado: inserción estable. Se ordena por id de curso
// para tener un orden determinístico, ya que iterar un map de Go no lo es.
func Eligible(student domain.Student, cat Catalog) []int {
	ids := sortedCourseIDs(cat.Courses)

	if hasActiveResidency(student, cat.Courses) {
		return nil
	}

	var eligible []int
	for _, id := range ids {
		course := cat.Courses[id]

		if student.IsApproved(id) {
			continue
		}
		if !hasOfferedGroup(id, cat.GroupsByCourse) {
			continue
		}
		if course.IsResidency() {
			if residencyEligible(course, student, cat) {
				eligible = append(eligible, id)
			}
			continue
		}
		if student.IsRegular() {
			if regularEligible(course, student, cat) {
				eligible = append(eligible, id)
			}
			continue
		}
		if irregularEligible(course, student, cat) {
			eligible = append(eligible, id)
		}
	}

	// Exclusividad de estadía: si alguna estadía quedó elegible, es lo
	// único que se ofrece este cuatrimestre (exclusividad de estadía).
	for _, id := range eligible {
		if cat.Courses[id].IsResidency() {
			return []int{id}
		}
	}

	return eligible
}

func regularEligible(course domain.Course, student domain.Student, cat Catalog) bool {
	if course.Term != student.CurrentTerm {
		return false
	}
	return cat.PrereqGraph.Satisfied(course.ID, student.Approved)
}

func irregularEligible(course domain.Course, student domain.Student, cat Catalog) bool {
	if course.Term > student.CurrentTerm {
		return false
	}
	if !cat.PrereqGraph.Satisfied(course.ID, student.Approved) {
		return false
	}
	if course.IsIntegratorProject() && !cat.ProjectDepGraph.Satisfied(course.ID, student.Approved) {
		return false
	}
	return true
}

// residencyEligible aplica el gating de estadías: la de término 6 requiere
// el proyecto integrador de término 5 y sus dependencias directas; la
// estadía final (término 10) acepta dos caminos, el estricto (término
// actual ≥ 10) y el de "completitud" (todos los cursos no-estadía
// aprobados más el proyecto integrador de término 9); ver DESIGN.md.
func residencyEligible(course domain.Course, student domain.Student, cat Catalog) bool {
	switch course.Term {
	case domain.ResidencyTermFirst:
		if student.CurrentTerm < domain.ResidencyTermFirst {
			return false
		}
		return term5ProjectSatisfied(student, cat)
	case domain.ResidencyTermFinal:
		if student.CurrentTerm >= domain.ResidencyTermFinal {
			return true
		}
		return completionPathSatisfied(student, cat)
	default:
		return false
	}
}

func term5ProjectSatisfied(student domain.Student, cat Catalog) bool {
	project, ok := findIntegratorProject(5, cat.Courses)
	if !ok {
		return false
	}
	if !student.IsApproved(project.ID) {
		return false
	}
	return cat.ProjectDepGraph.Satisfied(project.ID, student.Approved)
}

// completionPathSatisfied implementa la alternativa de "camino de
// completitud": todos los cursos no-estadía están aprobados y el proyecto
// integrador de término 9 también lo está.
func completionPathSatisfied(student domain.Student, cat Catalog) bool {
	project, ok := findIntegratorProject(9, cat.Courses)
	if !ok || !student.IsApproved(project.ID) {
		return false
	}
	for id, course := range cat.Courses {
		if course.IsResidency() {
			continue
		}
		if !student.IsApproved(id) {
			return false
		}
	}
	return true
}

func findIntegratorProject(term int, courses map[int]domain.Course) (domain.Course, bool) {
	for _, c := range courses {
		if c.Term == term && c.IsIntegratorProject() {
			return c, true
		}
	}
	return domain.Course{}, false
}

func hasActiveResidency(student domain.Student, courses map[int]domain.Course) bool {
	return student.HasActiveResidency(courses)
}

func hasOfferedGroup(courseID int, groupsByCourse map[int][]int) bool {
	return len(groupsByCourse[courseID]) > 0
}

func sortedCourseIDs(courses map[int]domain.Course) []int {
	ids := make([]int, 0, len(courses))
	for id := range courses {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
