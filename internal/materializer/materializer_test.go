package materializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayectoria-UDP/internal/domain"
)

func fixtureCatalog() (map[int]domain.Group, map[int]domain.Course) {
	courses := map[int]domain.Course{
		1: {ID: 1, Name: "programación", Term: 1, Credits: 5, Hours: 75, Kind: domain.KindRegular},
	}
	groups := map[int]domain.Group{
		10: {
			ID: 10, CourseID: 1, Instructor: "Ríos", MaxCapacity: 30,
			Meetings: []domain.Meeting{
				{Day: 1, StartHour: 8, EndHour: 10, Room: "A203"},
				{Day: 3, StartHour: 8, EndHour: 10, Room: "A203"},
			},
		},
	}
	return groups, courses
}

func TestMaterialize_PlacesOccupant(t *testing.T) {
	groups, courses := fixtureCatalog()
	grid := Materialize([]int{10}, groups, courses)

	occ := grid["Lunes"]["8:00"]
	require.NotNil(t, occ)
	assert.Equal(t, 1, occ.CourseID)
	assert.Equal(t, 10, occ.GroupID)
	assert.Nil(t, grid["Martes"]["8:00"])
}

func TestMaterialize_DropsInvalidMeetingsSilently(t *testing.T) {
	courses := map[int]domain.Course{1: {ID: 1, Name: "x", Kind: domain.KindRegular}}
	groups := map[int]domain.Group{
		10: {ID: 10, CourseID: 1, Meetings: []domain.Meeting{
			{Day: 6, StartHour: 8, EndHour: 10}, // día fuera de rango
			{Day: 1, StartHour: 10, EndHour: 9}, // start >= end
		}},
	}

	assert.NotPanics(t, func() {
		Materialize([]int{10}, groups, courses)
	})
}

func TestMaterialize_Idempotent(t *testing.T) {
	groups, courses := fixtureCatalog()
	g1 := Materialize([]int{10}, groups, courses)
	g2 := Materialize([]int{10}, groups, courses)
	assert.Equal(t, g1, g2)
}
