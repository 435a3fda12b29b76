package trajectory

import (
	"math"
	"math/rand"

	"trayectoria-UDP/internal/domain"
)

// SimulateTerm proyecta un cuatrimestre futuro: a diferencia del
// optimizador, no consulta el catálogo real de secciones, sino que
// sintetiza reuniones plausibles para visualizar cómo se vería.
func SimulateTerm(student domain.Student, courseIDs []int, courses map[int]domain.Course, term int, rng *rand.Rand) domain.TermPlan {
	if residencyID, ok := findResidency(courseIDs, courses); ok {
		return simulateResidencyTerm(courses[residencyID], term)
	}

	maxCourses := domain.MaxCoursesIrregular
	if student.IsRegular() {
		maxCourses = domain.MaxCoursesRegular
	}
	ids := courseIDs
	if len(ids) > maxCourses {
		ids = ids[:maxCourses]
	}

	loadPerDay := make(map[int]float64, domain.LastDay)
	var assignments []domain.CourseAssignment
	total := 0.0

	for _, id := range ids {
		course, ok := courses[id]
		if !ok {
			continue
		}
		meetings := synthesizeMeetings(course, student, loadPerDay, rng)
		assignments = append(assignments, domain.CourseAssignment{
			CourseID:   course.ID,
			CourseName: course.Name,
			GroupID:    domain.SynthesizedGroupID,
			Instructor: domain.UnassignedInstructor,
			Credits:    course.Credits,
			CourseTerm: course.Term,
			Kind:       course.Kind,
			Meetings:   meetings,
		})
		total += course.Credits
	}

	return domain.TermPlan{
		Term:         term,
		Courses:      assignments,
		TotalCredits: total,
		CourseCount:  len(assignments),
		WeeklyGrid:   gridFromAssignments(assignments),
		LoadPerDay:   loadPerDay,
	}
}

func findResidency(courseIDs []int, courses map[int]domain.Course) (int, bool) {
	for _, id := range courseIDs {
		if c, ok := courses[id]; ok && c.IsResidency() {
			return id, true
		}
	}
	return 0, false
}

// simulateResidencyTerm produce el término de estadía a tiempo completo:
// 5 días x 2 bloques (08:00-12:00 y 13:00-17:00), sin otros cursos.
func simulateResidencyTerm(course domain.Course, term int) domain.TermPlan {
	var meetings []domain.Meeting
	loadPerDay := make(map[int]float64, domain.LastDay)
	for day := domain.FirstDay; day <= domain.LastDay; day++ {
		meetings = append(meetings,
			domain.Meeting{Day: day, StartHour: 8, EndHour: 12, Room: "ESTADÍA"},
			domain.Meeting{Day: day, StartHour: 13, EndHour: 17, Room: "ESTADÍA"},
		)
		loadPerDay[day] = 8
	}

	assignment := domain.CourseAssignment{
		CourseID:   course.ID,
		CourseName: course.Name,
		GroupID:    domain.SynthesizedGroupID,
		Instructor: domain.UnassignedInstructor,
		Credits:    course.Credits,
		CourseTerm: course.Term,
		Kind:       course.Kind,
		Meetings:   meetings,
	}

	return domain.TermPlan{
		Term:         term,
		Courses:      []domain.CourseAssignment{assignment},
		TotalCredits: course.Credits,
		CourseCount:  1,
		WeeklyGrid:   gridFromAssignments([]domain.CourseAssignment{assignment}),
		LoadPerDay:   loadPerDay,
		FullTime:     true,
	}
}

// isAdvanced decide si un curso puede tomar cualquier franja horaria sin
// ponderación: a partir del séptimo cuatrimestre los horarios sintetizados
// dejan de concentrarse en la mañana (ver DESIGN.md).
func isAdvanced(course domain.Course) bool {
	return course.Term >= 7
}

// synthesizeMeetings construye las sesiones de un curso para un término
// simulado: cantidad de sesiones y duración derivadas de las horas
// semanales, asignadas a los días menos cargados; la primera sesión elige
// la hora de inicio (ponderada por franja salvo para cursos avanzados) y
// las siguientes la reutilizan por continuidad.
func synthesizeMeetings(course domain.Course, student domain.Student, loadPerDay map[int]float64, rng *rand.Rand) []domain.Meeting {
	weeklyHours := course.WeeklyHours()
	sessions := sessionCount(weeklyHours)
	duration := sessionDuration(weeklyHours, sessions)

	var meetings []domain.Meeting
	startHour := 0

	for s := 0; s < sessions; s++ {
		day := leastLoadedDay(loadPerDay)
		if s == 0 {
			startHour = chooseStartHour(course, rng)
		}
		if startHour+duration > domain.LatestBound {
			startHour = domain.LatestBound - duration
		}

		meetings = append(meetings, domain.Meeting{
			Day:       day,
			StartHour: startHour,
			EndHour:   startHour + duration,
			Room:      randomRoomTag(rng),
		})
		loadPerDay[day] += float64(duration)
	}

	return meetings
}

func sessionCount(weeklyHours float64) int {
	switch {
	case weeklyHours <= 3:
		return 1
	case weeklyHours <= 5:
		return 2
	default:
		return 3 // ≤8h -> 3; más también se limita a 3
	}
}

func sessionDuration(weeklyHours float64, sessions int) int {
	if sessions == 0 {
		return 0
	}
	d := math.Ceil(weeklyHours / float64(sessions))
	if d < 2 {
		d = 2
	}
	if d > 4 {
		d = 4
	}
	return int(d)
}

func leastLoadedDay(loadPerDay map[int]float64) int {
	best := domain.FirstDay
	for d := domain.FirstDay + 1; d <= domain.LastDay; d++ {
		if loadPerDay[d] < loadPerDay[best] {
			best = d
		}
	}
	return best
}

// chooseStartHour elige la hora de inicio de la primera sesión. Los cursos
// avanzados (término >= 7) permiten cualquier franja; el resto pondera
// [08,12)=0.6, [12,16)=0.3, [16,20)=0.1.
func chooseStartHour(course domain.Course, rng *rand.Rand) int {
	if isAdvanced(course) {
		return 8 + rng.Intn(12) // cualquier hora entre 08:00 y 19:00
	}

	r := rng.Float64()
	switch {
	case r < 0.6:
		return 8 + rng.Intn(4)
	case r < 0.9:
		return 12 + rng.Intn(4)
	default:
		return 16 + rng.Intn(4)
	}
}

// randomRoomTag asigna una sala ficticia a una reunión sintetizada: las
// sesiones proyectadas son solo para visualización, no reservan salas
// reales.
func randomRoomTag(rng *rand.Rand) string {
	letters := "ABCDE"
	letter := letters[rng.Intn(len(letters))]
	return string(letter) + itoa3(100+rng.Intn(400))
}

func itoa3(n int) string {
	digits := [3]byte{}
	for i := 2; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[:])
}
