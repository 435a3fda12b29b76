package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/domain"
)

func TestCourses_CoversTenTerms(t *testing.T) {
	courses := Courses()
	require.Len(t, courses, 58)

	terms := map[int]bool{}
	for _, c := range courses {
		terms[c.Term] = true
	}
	for term := 1; term <= 10; term++ {
		assert.True(t, terms[term], "falta el término %d", term)
	}
}

func TestCourses_ResidenciesAtSixAndTen(t *testing.T) {
	courses := Courses()
	assert.Equal(t, domain.KindResidency, courses[36].Kind)
	assert.Equal(t, 6, courses[36].Term)
	assert.Equal(t, domain.KindResidency, courses[58].Kind)
	assert.Equal(t, 10, courses[58].Term)
}

func TestCourses_IntegratorProjectsAtThreeFiveNine(t *testing.T) {
	courses := Courses()
	for _, id := range []int{21, 35, 57} {
		assert.True(t, courses[id].IsIntegratorProject(), "curso %d debería ser proyecto integrador", id)
	}
}

func TestGroups_NonResidencyCoursesHaveValidMeetings(t *testing.T) {
	courses := Courses()
	groups := Groups()

	require.NoError(t, domain.ValidateCatalog(courses, groups))

	for _, g := range groups {
		course := courses[g.CourseID]
		if course.IsResidency() {
			continue
		}
		assert.NotEmpty(t, g.Meetings)
	}
}

func TestPrereqGraph_IsAcyclicByTermOrdering(t *testing.T) {
	graph := PrereqGraph()
	courses := Courses()
	for id, prereqs := range graph {
		for _, p := range prereqs {
			assert.Less(t, courses[p].Term, courses[id].Term)
		}
	}
}

func TestProjectDepGraph_ResolvesKnownIDs(t *testing.T) {
	courses := Courses()
	deps := ProjectDepGraph()
	for id, depIDs := range deps {
		_, ok := courses[id]
		assert.True(t, ok, "curso %d no existe en la malla", id)
		for _, d := range depIDs {
			_, ok := courses[d]
			assert.True(t, ok, "dependencia %d no existe en la malla", d)
		}
	}
}

func TestGroupsByCourse_IndexesEveryGroup(t *testing.T) {
	groups := Groups()
	byCourse := GroupsByCourse(groups)

	total := 0
	for _, ids := range byCourse {
		total += len(ids)
	}
	assert.Equal(t, len(groups), total)
}

func TestSampleStudent_FreshAndEmpty(t *testing.T) {
	s := SampleStudent()
	assert.True(t, s.IsRegular())
	assert.Empty(t, s.Approved)
	assert.Equal(t, 1, s.CurrentTerm)
}

func TestSampleIrregularStudent_HasPartialApproval(t *testing.T) {
	s := SampleIrregularStudent()
	assert.True(t, s.IsIrregular())
	assert.False(t, s.IsApproved(11))
	assert.True(t, s.IsApproved(1))
}
