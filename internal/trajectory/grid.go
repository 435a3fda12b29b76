package trajectory

import "trayectoria-UDP/internal/domain"

// gridFromAssignments proyecta las reuniones sintetizadas de un TermPlan
// sobre una grilla semanal. No reusa internal/materializer porque ese
// paquete indexa por Group id real y todas las reuniones sintetizadas
// comparten el mismo id de grupo ficticio (domain.SynthesizedGroupID).
func gridFromAssignments(assignments []domain.CourseAssignment) domain.WeeklyGrid {
	grid := domain.NewWeeklyGrid()

	for _, a := range assignments {
		for _, m := range a.Meetings {
			if !m.Valid() {
				continue
			}
			day := domain.DayName(m.Day)
			slots, ok := grid[day]
			if !ok {
				continue
			}
			for hour := m.StartHour; hour < m.EndHour; hour++ {
				key := domain.SlotKey(hour)
				if _, exists := slots[key]; !exists {
					continue
				}
				slots[key] = &domain.Occupant{
					CourseID:   a.CourseID,
					CourseName: a.CourseName,
					Instructor: a.Instructor,
					Room:       m.Room,
					GroupID:    a.GroupID,
				}
			}
		}
	}

	return grid
}
