package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trayectoria-UDP/internal/domain"
)

func TestRenderEligible_EmptyAndNonEmpty(t *testing.T) {
	student := domain.Student{Name: "Ana", CurrentTerm: 2, Status: domain.StatusRegular}
	courses := map[int]domain.Course{
		8: {ID: 8, Name: "INGLÉS II", Term: 2, Credits: 5, Kind: domain.KindRegular},
	}

	out := RenderEligible(student, nil, courses)
	assert.Contains(t, out, "Sin cursos elegibles")

	out = RenderEligible(student, []int{8}, courses)
	assert.Contains(t, out, "INGLÉS II")
	assert.Contains(t, out, "T2")
}

func TestRenderTermPlan_ShowsWarningAndCourses(t *testing.T) {
	plan := domain.TermPlan{
		Term:        3,
		CourseCount: 1,
		Courses: []domain.CourseAssignment{{
			CourseID:   19,
			CourseName: "BASES DE DATOS",
			Instructor: domain.UnassignedInstructor,
			Meetings:   []domain.Meeting{{Day: 1, StartHour: 8, EndHour: 10, Room: "B201"}},
		}},
		Warning: domain.WarningPlannerStall,
	}

	out := RenderTermPlan(plan)
	assert.Contains(t, out, "Término 3")
	assert.Contains(t, out, "BASES DE DATOS")
	assert.Contains(t, out, "pendientes")
	assert.Contains(t, out, "Lun 08:00-10:00 B201")
}

func TestRenderWeeklyGrid_OnlyOccupiedRows(t *testing.T) {
	grid := domain.NewWeeklyGrid()
	grid["Lunes"][domain.SlotKey(9)] = &domain.Occupant{CourseName: "FÍSICA", Room: "C105"}

	out := RenderWeeklyGrid(grid)
	assert.Contains(t, out, "9:00")
	assert.Contains(t, out, "FÍSICA (C105)")
	assert.NotContains(t, out, "15:00", "las horas sin ocupantes no se dibujan")
}
