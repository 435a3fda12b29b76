// Package trajectory implementa el planificador de trayectoria y el
// simulador de términos: la simulación hacia adelante que avanza una
// instantánea virtual del estudiante término a término hasta egresar.
package trajectory

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trayectoria-UDP/internal/domain"
	"trayectoria-UDP/internal/eligibility"
)

// Catalog agrupa las referencias de solo lectura que el planificador
// necesita: la malla y sus grafos, más el índice curso → grupos (solo
// usado para resolver elegibilidad de estadías reales). MaxTerms e
// IterationCap acotan el bucle de simulación; en cero toman los valores
// nominales.
type Catalog struct {
	Courses         map[int]domain.Course
	GroupsByCourse  map[int][]int
	PrereqGraph     domain.PrereqGraph
	ProjectDepGraph domain.ProjectDepGraph

	MaxTerms     int
	IterationCap int
}

func (c Catalog) maxTerms() int {
	if c.MaxTerms > 0 {
		return c.MaxTerms
	}
	return domain.MaxTerms
}

func (c Catalog) iterationCap() int {
	if c.IterationCap > 0 {
		return c.IterationCap
	}
	return domain.PlannerIterationCap
}

func (c Catalog) eligibilityCatalog() eligibility.Catalog {
	return eligibility.Catalog{
		Courses:         c.Courses,
		PrereqGraph:     c.PrereqGraph,
		ProjectDepGraph: c.ProjectDepGraph,
		GroupsByCourse:  c.GroupsByCourse,
	}
}

// PlanTrajectory corre el bucle de simulación completo: clona al
// estudiante en una instantánea virtual y avanza término a término hasta
// que el pool de pendientes se vacía, el tope de términos, o el resguardo
// de seguridad de iteraciones.
func PlanTrajectory(student domain.Student, cat Catalog, rng *rand.Rand, now time.Time, log *zap.SugaredLogger) domain.TrajectoryPlan {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	virtual := student.CloneAsVirtual()
	pending := pendingCourseSet(cat.Courses, virtual.Approved)

	plan := domain.TrajectoryPlan{
		RunID:       uuid.NewString(),
		PlanPerTerm: make(map[int]domain.TermPlan),
	}

	term := student.CurrentTerm
	stalled := false
	maxTerms := cat.maxTerms()
	iterationCap := cat.iterationCap()

	for iteration := 0; iteration < iterationCap; iteration++ {
		if len(pending) == 0 {
			break
		}
		if term > maxTerms {
			stalled = true
			log.Warnw("planificador alcanzó el tope de términos con pendientes", "student", student.ID, "pending", len(pending))
			break
		}

		termPlan, placedAny := planOneTerm(&virtual, cat, pending, term, rng)

		if !placedAny && len(pending) > 0 {
			termPlan.Warning = domain.WarningPlannerStall
			log.Warnw("no se pudo ubicar ningún curso este término", "student", student.ID, "term", term)
		}

		plan.TermOrder = append(plan.TermOrder, term)
		plan.PlanPerTerm[term] = termPlan
		term++

		if iteration == iterationCap-1 && len(pending) > 0 {
			stalled = true
		}
	}

	approvedCount := len(virtual.Approved)
	pendingCount := len(pending)
	total := approvedCount + pendingCount
	percent := 100.0
	if total > 0 {
		percent = 100.0 * float64(approvedCount) / float64(total)
	}

	plan.Stats = domain.TrajectoryStats{
		ApprovedCount:   approvedCount,
		PendingCount:    pendingCount,
		PercentProgress: percent,
	}
	plan.EstimatedGraduation = estimateGraduation(now, len(plan.TermOrder))

	if stalled {
		plan.Warning = domain.WarningPlannerStall
	}

	return plan
}

// planOneTerm resuelve un único término del bucle de simulación y retorna
// el TermPlan resultante más si se pudo ubicar al menos un curso.
func planOneTerm(virtual *domain.Student, cat Catalog, pending map[int]bool, term int, rng *rand.Rand) (domain.TermPlan, bool) {
	// Paso 1: fijación de estadía en la vía regular, sin re-chequear gating.
	if virtual.IsRegular() && (term == domain.ResidencyTermFirst || term == domain.ResidencyTermFinal) {
		if residency, ok := findTermResidency(term, cat.Courses); ok && pending[residency.ID] {
			return placeResidency(virtual, residency, term, pending)
		}
	}

	// Paso 2: estadías elegibles vía el resolutor completo. La
	// exclusividad de estadía aplica a inscripciones del término en curso;
	// un término simulado arranca sin inscripciones, así que el resolutor
	// no debe ver las inscripciones acumuladas de términos anteriores.
	termView := *virtual
	termView.SimulatedEnrollments = nil
	eligible := eligibility.Eligible(termView, cat.eligibilityCatalog())
	for _, id := range eligible {
		if c, ok := cat.Courses[id]; ok && c.IsResidency() && pending[id] {
			return placeResidency(virtual, c, term, pending)
		}
	}

	// Pasos 3/4: recolectar candidatos según la vía regular o irregular.
	var candidates []int
	if virtual.IsRegular() {
		candidates = regularCandidates(virtual, cat, pending, term)
	} else {
		candidates = irregularCandidates(virtual, cat, pending, term)
		candidates = rankByPriority(candidates, cat.Courses, *virtual, cat.PrereqGraph)
		if len(candidates) > domain.MaxCoursesIrregular {
			candidates = candidates[:domain.MaxCoursesIrregular]
		}
	}

	termPlan := SimulateTerm(*virtual, candidates, cat.Courses, term, rng)

	for _, assignment := range termPlan.Courses {
		virtual.MarkApproved(assignment.CourseID)
		delete(pending, assignment.CourseID)
	}

	return termPlan, len(termPlan.Courses) > 0
}

func placeResidency(virtual *domain.Student, residency domain.Course, term int, pending map[int]bool) (domain.TermPlan, bool) {
	termPlan := simulateResidencyTerm(residency, term)
	virtual.MarkApproved(residency.ID)
	delete(pending, residency.ID)
	return termPlan, true
}

func findTermResidency(term int, courses map[int]domain.Course) (domain.Course, bool) {
	for _, c := range courses {
		if c.Term == term && c.IsResidency() {
			return c, true
		}
	}
	return domain.Course{}, false
}

func regularCandidates(virtual *domain.Student, cat Catalog, pending map[int]bool, term int) []int {
	var candidates []int
	for id := range pending {
		course, ok := cat.Courses[id]
		if !ok || course.Term != term {
			continue
		}
		if !cat.PrereqGraph.Satisfied(id, virtual.Approved) {
			continue
		}
		candidates = append(candidates, id)
	}
	sort.Ints(candidates)
	return candidates
}

// irregularCandidates recolecta los pendientes alcanzables por la vía
// irregular. Las estadías nunca entran acá: solo se ubican por la vía del
// resolutor de elegibilidad, que aplica su gating completo.
func irregularCandidates(virtual *domain.Student, cat Catalog, pending map[int]bool, term int) []int {
	var candidates []int
	for id := range pending {
		course, ok := cat.Courses[id]
		if !ok || course.Term > term || course.IsResidency() {
			continue
		}
		if !cat.PrereqGraph.Satisfied(id, virtual.Approved) {
			continue
		}
		if course.IsIntegratorProject() && !cat.ProjectDepGraph.Satisfied(id, virtual.Approved) {
			continue
		}
		candidates = append(candidates, id)
	}
	sort.Ints(candidates)
	return candidates
}

func pendingCourseSet(courses map[int]domain.Course, approved map[int]bool) map[int]bool {
	pending := make(map[int]bool, len(courses))
	for id := range courses {
		if !approved[id] {
			pending[id] = true
		}
	}
	return pending
}
