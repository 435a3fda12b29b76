package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/domain"
)

func TestBuildFromGroups_OverlapsBecomeEdges(t *testing.T) {
	groups := map[int]domain.Group{
		10: {ID: 10, CourseID: 1, Meetings: []domain.Meeting{{Day: 1, StartHour: 8, EndHour: 10}}},
		20: {ID: 20, CourseID: 2, Meetings: []domain.Meeting{{Day: 1, StartHour: 9, EndHour: 11}}},
		30: {ID: 30, CourseID: 3, Meetings: []domain.Meeting{{Day: 2, StartHour: 8, EndHour: 10}}},
	}

	g := BuildFromGroups(groups)

	require.Equal(t, 3, g.NumVertices())
	assert.True(t, g.HasEdge(10, 20))
	assert.False(t, g.HasEdge(10, 30))
	assert.False(t, g.HasEdge(20, 30))
	assert.Equal(t, 1, g.NumEdges())
}

func TestBuildFromGroups_SameCourseAlwaysConflicts(t *testing.T) {
	groups := map[int]domain.Group{
		10: {ID: 10, CourseID: 1, Meetings: []domain.Meeting{{Day: 1, StartHour: 8, EndHour: 10}}},
		11: {ID: 11, CourseID: 1, Meetings: []domain.Meeting{{Day: 3, StartHour: 15, EndHour: 17}}},
	}

	g := BuildFromGroups(groups)

	assert.True(t, g.HasEdge(10, 11), "dos secciones del mismo curso no conviven aunque no choquen en horario")
	assert.Equal(t, 1, g.Degree(10))
	assert.Equal(t, []int{10}, g.Neighbors(11))
}
