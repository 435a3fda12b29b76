package optimizer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/domain"
)

func sevenTermOneCourses() (map[int]domain.Course, map[int]domain.Group, map[int][]int) {
	courses := make(map[int]domain.Course)
	groups := make(map[int]domain.Group)
	byCourse := make(map[int][]int)

	for i := 1; i <= 7; i++ {
		courses[i] = domain.Course{ID: i, Name: "curso", Term: 1, Credits: 4, Hours: 60, Kind: domain.KindRegular}
		gid := 100 + i
		// día 1..5 rotando, franja 8-10 para los primeros cinco y 10-12
		// para los restantes: siete bloques sin ningún choque entre sí.
		start := 8 + 2*((i-1)/5)
		groups[gid] = domain.Group{
			ID: gid, CourseID: i, Instructor: "x", MaxCapacity: 30,
			Meetings: []domain.Meeting{{Day: (i-1)%5 + 1, StartHour: start, EndHour: start + 2, Room: "A1"}},
		}
		byCourse[i] = []int{gid}
	}
	return courses, groups, byCourse
}

func baseStudent() domain.Student {
	return domain.Student{
		ID: 1, CurrentTerm: 1, Status: domain.StatusRegular,
		CreditCap: 40, Approved: map[int]bool{},
		Preferences: domain.Preferences{TimeOfDay: domain.Morning, PreferredDays: map[int]bool{1: true}},
	}
}

// 7 term-1 courses, one group each, no conflicts -> exactly 7 groups.
func TestOptimize_SevenCoursesNoConflicts(t *testing.T) {
	courses, groups, byCourse := sevenTermOneCourses()
	cat := Catalog{Courses: courses, Groups: groups, GroupsByCourse: byCourse, PrereqGraph: domain.PrereqGraph{}, ProjectDepGraph: domain.ProjectDepGraph{}}
	cfg := Config{PopulationSize: 40, Generations: 15, CrossoverRate: 0.8, MutationRate: 0.2}
	rng := rand.New(rand.NewSource(42))

	result := Optimize(baseStudent(), cat, cfg, rng, nil)

	require.Equal(t, domain.WarningNone, result.Warning)
	assert.Len(t, result.Groups, 7)

	courseIDs := make(map[int]bool)
	for _, gid := range result.Groups {
		courseIDs[groups[gid].CourseID] = true
	}
	assert.Len(t, courseIDs, 7)
}

// A residency schedule is a single group, so it carries no overlaps. The
// term-5 integrator project is approved so the term-6 residency is open.
func TestOptimize_NoOverlapsAndResidencyIsSolo(t *testing.T) {
	courses, groups, byCourse := sevenTermOneCourses()
	courses[8] = domain.Course{ID: 8, Name: "estadía", Term: 6, Credits: 0, Kind: domain.KindResidency}
	courses[9] = domain.Course{ID: 9, Name: "proyecto integrador", Term: 5, Credits: 4, Kind: domain.KindIntegratorProject}
	groups[900] = domain.Group{ID: 900, CourseID: 8, MaxCapacity: 50, Enrollment: 1}
	byCourse[8] = []int{900}

	cat := Catalog{Courses: courses, Groups: groups, GroupsByCourse: byCourse, PrereqGraph: domain.PrereqGraph{}, ProjectDepGraph: domain.ProjectDepGraph{}}
	student := baseStudent()
	student.CurrentTerm = 6
	student.Approved = map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 9: true}
	student.SimulatedEnrollments = map[int]bool{}

	cfg := Config{PopulationSize: 20, Generations: 5, CrossoverRate: 0.8, MutationRate: 0.2}
	result := Optimize(student, cat, cfg, rand.New(rand.NewSource(1)), nil)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, 900, result.Groups[0])
}

// Two groups of the same course overlap exactly -> never both chosen.
func TestOptimize_IdenticalMeetingsNeverBothChosen(t *testing.T) {
	groups := map[int]domain.Group{
		10: {ID: 10, CourseID: 1, MaxCapacity: 30, Meetings: []domain.Meeting{{Day: 1, StartHour: 10, EndHour: 12}}},
		11: {ID: 11, CourseID: 1, MaxCapacity: 30, Meetings: []domain.Meeting{{Day: 1, StartHour: 10, EndHour: 12}}},
	}
	byCourse := map[int][]int{1: {10, 11}}

	individual, ok := buildIndividual([]int{1}, byCourse, Catalog{Groups: groups}, rand.New(rand.NewSource(7)))
	require.True(t, ok)
	assert.Len(t, individual, 1)
}

func TestFitness_ZeroWhenOverCreditCap(t *testing.T) {
	courses, groups, _ := sevenTermOneCourses()
	cat := Catalog{Courses: courses, Groups: groups}
	student := baseStudent()
	student.CreditCap = 1 // imposible de cumplir con 4 créditos por curso

	terms := Fitness(student, []int{101}, cat)
	assert.Equal(t, 0.0, terms.Score)
}

func TestFitness_ResidencyAloneScoresOne(t *testing.T) {
	courses := map[int]domain.Course{1: {ID: 1, Kind: domain.KindResidency}}
	groups := map[int]domain.Group{10: {ID: 10, CourseID: 1}}
	cat := Catalog{Courses: courses, Groups: groups}

	terms := Fitness(baseStudent(), []int{10}, cat)
	assert.Equal(t, 1.0, terms.Score)
}
