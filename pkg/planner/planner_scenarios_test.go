package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/catalog"
	"trayectoria-UDP/internal/domain"
)

// Las pruebas de este archivo corren de punta a punta sobre la malla de
// muestra completa (diez cuatrimestres, estadías en 6 y 10, tres
// proyectos integradores) en vez de catálogos mínimos construidos a mano.

func sampleOptimizer(t *testing.T, seed int64) *Optimizer {
	t.Helper()

	courses := catalog.Courses()
	groups := catalog.Groups()

	courseList := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		courseList = append(courseList, c)
	}
	groupList := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		groupList = append(groupList, g)
	}

	o, err := New(courseList, groupList, catalog.PrereqGraph(), catalog.ProjectDepGraph(),
		WithSeed(seed),
		WithClock(func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)
	return o
}

func TestEligibleCourses_FreshRegularSeesOnlyFirstTerm(t *testing.T) {
	o := sampleOptimizer(t, 1)
	student := catalog.SampleStudent()

	eligible := o.EligibleCourses(student)
	require.Len(t, eligible, 7)
	for _, id := range eligible {
		assert.Equal(t, 1, catalog.Courses()[id].Term)
	}
}

func TestOptimizeTerm_FreshRegularFillsFirstTerm(t *testing.T) {
	o := sampleOptimizer(t, 42)
	student := catalog.SampleStudent()

	groups, warning := o.OptimizeTerm(student, DefaultOptimizeConfig())
	assert.Equal(t, domain.WarningNone, warning)
	require.Len(t, groups, 7, "los siete cursos de primer término no chocan entre sí")

	// Nunca dos grupos del mismo curso ni reuniones superpuestas.
	allGroups := catalog.Groups()
	seenCourses := make(map[int]bool)
	for i, gid := range groups {
		g := allGroups[gid]
		assert.False(t, seenCourses[g.CourseID])
		seenCourses[g.CourseID] = true
		for j := i + 1; j < len(groups); j++ {
			assert.False(t, g.ConflictsWith(allGroups[groups[j]]))
		}
	}
}

func TestOptimizeTerm_ResidencyShortCircuit(t *testing.T) {
	o := sampleOptimizer(t, 5)

	// Términos 1-5 completos, incluyendo el Proyecto Integrador II y sus
	// dependencias: la única oferta debe ser la Estadía I y el optimizador
	// la resuelve sin correr el GA.
	approved := map[int]bool{}
	for id, c := range catalog.Courses() {
		if c.Term <= 5 {
			approved[id] = true
		}
	}
	student := domain.Student{
		ID: 3, CurrentTerm: 6, Status: domain.StatusRegular, CreditCap: 40,
		Approved: approved,
	}

	eligible := o.EligibleCourses(student)
	require.Equal(t, []int{36}, eligible)

	groups, warning := o.OptimizeTerm(student, DefaultOptimizeConfig())
	assert.Equal(t, domain.WarningNone, warning)
	assert.Equal(t, []int{360}, groups)
}

func TestEligibleCourses_ResidencyClosedWithoutProject(t *testing.T) {
	o := sampleOptimizer(t, 5)

	// Igual que arriba pero sin el Proyecto Integrador II aprobado: la
	// estadía no se ofrece.
	approved := map[int]bool{}
	for id, c := range catalog.Courses() {
		if c.Term <= 5 && id != 35 {
			approved[id] = true
		}
	}
	student := domain.Student{
		ID: 3, CurrentTerm: 6, Status: domain.StatusRegular, CreditCap: 40,
		Approved: approved,
	}

	assert.NotContains(t, o.EligibleCourses(student), 36)
}

func TestPlanTrajectory_FreshRegularGraduatesInTenTerms(t *testing.T) {
	o := sampleOptimizer(t, 99)
	plan := o.PlanTrajectory(catalog.SampleStudent())

	require.Len(t, plan.TermOrder, 10)
	assert.Equal(t, domain.WarningNone, plan.Warning)
	assert.Equal(t, 100.0, plan.Stats.PercentProgress)
	assert.NotEmpty(t, plan.RunID)
	assert.NotEmpty(t, plan.EstimatedGraduation)

	for _, term := range []int{domain.ResidencyTermFirst, domain.ResidencyTermFinal} {
		tp := plan.PlanPerTerm[term]
		require.Len(t, tp.Courses, 1)
		assert.Equal(t, domain.KindResidency, tp.Courses[0].Kind)
	}
}

func TestPlanTrajectory_PrereqsSatisfiedByEarlierTerms(t *testing.T) {
	o := sampleOptimizer(t, 17)
	student := catalog.SampleIrregularStudent()
	plan := o.PlanTrajectory(student)

	prereq := catalog.PrereqGraph()
	seen := make(map[int]bool, len(student.Approved))
	for id := range student.Approved {
		seen[id] = true
	}

	for _, term := range plan.TermOrder {
		scheduled := plan.PlanPerTerm[term].Courses
		for _, a := range scheduled {
			assert.True(t, prereq.Satisfied(a.CourseID, seen),
				"curso %d en término %d con prerrequisitos incompletos", a.CourseID, term)
		}
		for _, a := range scheduled {
			seen[a.CourseID] = true
		}
	}
}

func TestPlanTrajectory_IrregularNeverExceedsFiveCourses(t *testing.T) {
	o := sampleOptimizer(t, 23)
	plan := o.PlanTrajectory(catalog.SampleIrregularStudent())

	for _, term := range plan.TermOrder {
		tp := plan.PlanPerTerm[term]
		if tp.FullTime {
			continue
		}
		assert.LessOrEqual(t, tp.CourseCount, domain.MaxCoursesIrregular)
	}
}
