// Package materializer proyecta un conjunto de Group ids elegido sobre una
// grilla semanal. Es una proyección pura: no introduce restricciones
// nuevas, solo dibuja lo que ya fue decidido por el optimizer. El
// simulador de términos arma su propia grilla (internal/trajectory).
package materializer

import "trayectoria-UDP/internal/domain"

// Materialize vuelca cada reunión de cada grupo elegido sobre la grilla.
// Reuniones cuyo día cae fuera de [1,5], cuyas horas caen fuera de [7,22]
// o que violan start < end se descartan silenciosamente.
func Materialize(groupIDs []int, groups map[int]domain.Group, courses map[int]domain.Course) domain.WeeklyGrid {
	grid := domain.NewWeeklyGrid()

	for _, gid := range groupIDs {
		group, ok := groups[gid]
		if !ok {
			continue
		}
		course := courses[group.CourseID]

		for _, m := range group.Meetings {
			if !m.Valid() {
				continue
			}
			placeMeeting(grid, m, group, course)
		}
	}

	return grid
}

func placeMeeting(grid domain.WeeklyGrid, m domain.Meeting, group domain.Group, course domain.Course) {
	day := domain.DayName(m.Day)
	slots, ok := grid[day]
	if !ok {
		return
	}
	for hour := m.StartHour; hour < m.EndHour; hour++ {
		key := domain.SlotKey(hour)
		if _, exists := slots[key]; !exists {
			continue // fuera de la grilla dibujable [7,21], descartar silenciosamente
		}
		slots[key] = &domain.Occupant{
			CourseID:   course.ID,
			CourseName: course.Name,
			Instructor: group.Instructor,
			Room:       m.Room,
			GroupID:    group.ID,
		}
	}
}
