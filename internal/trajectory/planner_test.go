package trajectory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/domain"
)

func tenTermCurriculum() map[int]domain.Course {
	courses := make(map[int]domain.Course)
	id := 1
	for term := 1; term <= 10; term++ {
		if term == domain.ResidencyTermFirst || term == domain.ResidencyTermFinal {
			courses[id] = domain.Course{ID: id, Name: "estadía", Term: term, Kind: domain.KindResidency}
			id++
			continue
		}
		for c := 0; c < 2; c++ {
			courses[id] = domain.Course{ID: id, Name: "curso", Term: term, Credits: 4, Hours: 60, Kind: domain.KindRegular}
			id++
		}
	}
	return courses
}

func regularFreshStudent() domain.Student {
	return domain.Student{
		ID: 1, CurrentTerm: 1, Status: domain.StatusRegular, CreditCap: 40,
		Approved: map[int]bool{},
		Preferences: domain.Preferences{TimeOfDay: domain.Morning, PreferredDays: map[int]bool{}},
	}
}

// A fresh term-1 regular student yields exactly 10 TermPlans; terms 6 and
// 10 each hold exactly one Residency; progress ends at 100%.
func TestPlanTrajectory_FreshRegularStudent(t *testing.T) {
	courses := tenTermCurriculum()
	cat := Catalog{Courses: courses, PrereqGraph: domain.PrereqGraph{}, ProjectDepGraph: domain.ProjectDepGraph{}, GroupsByCourse: map[int][]int{}}

	plan := PlanTrajectory(regularFreshStudent(), cat, rand.New(rand.NewSource(99)), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), nil)

	require.Len(t, plan.TermOrder, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, plan.TermOrder)

	for _, term := range []int{domain.ResidencyTermFirst, domain.ResidencyTermFinal} {
		tp := plan.PlanPerTerm[term]
		require.Len(t, tp.Courses, 1)
		assert.Equal(t, domain.KindResidency, tp.Courses[0].Kind)
		assert.True(t, tp.FullTime)
	}

	assert.Equal(t, 100.0, plan.Stats.PercentProgress)
	assert.Equal(t, 0, plan.Stats.PendingCount)
}

// PlanPerTerm keys are a strictly increasing sequence starting at the
// student's current term.
func TestPlanTrajectory_TermsStrictlyIncreasing(t *testing.T) {
	courses := tenTermCurriculum()
	cat := Catalog{Courses: courses, PrereqGraph: domain.PrereqGraph{}, ProjectDepGraph: domain.ProjectDepGraph{}}

	plan := PlanTrajectory(regularFreshStudent(), cat, rand.New(rand.NewSource(1)), time.Now(), nil)

	require.NotEmpty(t, plan.TermOrder)
	assert.Equal(t, plan.TermOrder[0], 1)
	for i := 1; i < len(plan.TermOrder); i++ {
		assert.Greater(t, plan.TermOrder[i], plan.TermOrder[i-1])
	}
}

// Una estadía ya simulada en un término anterior no bloquea la
// elegibilidad de la estadía final en términos posteriores.
func TestPlanTrajectory_IrregularReachesBothResidencies(t *testing.T) {
	courses := map[int]domain.Course{
		1: {ID: 1, Term: 1, Credits: 4, Hours: 60, Kind: domain.KindRegular},
		2: {ID: 2, Term: 2, Credits: 4, Hours: 60, Kind: domain.KindRegular},
		3: {ID: 3, Term: 3, Credits: 4, Hours: 60, Kind: domain.KindRegular},
		4: {ID: 4, Term: 4, Credits: 4, Hours: 60, Kind: domain.KindRegular},
		5: {ID: 5, Term: 5, Credits: 4, Hours: 60, Kind: domain.KindIntegratorProject},
		6: {ID: 6, Term: 6, Kind: domain.KindResidency},
		7: {ID: 7, Term: 9, Credits: 4, Hours: 60, Kind: domain.KindIntegratorProject},
		8: {ID: 8, Term: 10, Kind: domain.KindResidency},
	}
	byCourse := map[int][]int{}
	for id := range courses {
		byCourse[id] = []int{id * 100}
	}
	cat := Catalog{
		Courses:         courses,
		GroupsByCourse:  byCourse,
		PrereqGraph:     domain.PrereqGraph{},
		ProjectDepGraph: domain.ProjectDepGraph{},
	}

	student := domain.Student{
		ID: 2, CurrentTerm: 6, Status: domain.StatusIrregular, CreditCap: 40,
		Approved: map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true},
	}

	plan := PlanTrajectory(student, cat, rand.New(rand.NewSource(3)), time.Now(), nil)

	require.Equal(t, 0, plan.Stats.PendingCount)
	assert.Len(t, plan.PlanPerTerm[6].Courses, 1)
	assert.Equal(t, domain.KindResidency, plan.PlanPerTerm[6].Courses[0].Kind)
	assert.Len(t, plan.PlanPerTerm[10].Courses, 1)
	assert.Equal(t, domain.KindResidency, plan.PlanPerTerm[10].Courses[0].Kind)
}

func TestEstimateGraduation_ProjectsForward(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) // calendar term 1
	assert.Equal(t, "August 2026", estimateGraduation(now, 1))
	assert.Equal(t, "April 2027", estimateGraduation(now, 3))
}
