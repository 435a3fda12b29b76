// Package report renderiza los resultados del planificador (horarios de un
// término, trayectorias completas, grillas semanales) como tablas de
// terminal estilizadas. Es una capa de presentación pura: recibe los
// valores que retorna el núcleo y nunca los modifica.
package report

import (
	"fmt"
	"strings"

	"trayectoria-UDP/internal/domain"
)

// TermSchedule describe un horario real ya resuelto por el optimizador:
// los grupos elegidos con su curso asociado.
type TermSchedule struct {
	GroupIDs []int
	Groups   map[int]domain.Group
	Courses  map[int]domain.Course
}

// RenderEligible lista los cursos elegibles de un estudiante.
func RenderEligible(student domain.Student, courseIDs []int, courses map[int]domain.Course) string {
	var b strings.Builder
	b.WriteString(styleSection.Render(fmt.Sprintf("Cursos elegibles para %s (término %d, %s)", student.Name, student.CurrentTerm, student.Status)))
	b.WriteString("\n\n")

	if len(courseIDs) == 0 {
		b.WriteString(styleDim.Render("Sin cursos elegibles este cuatrimestre."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(courseIDs))
	for _, id := range courseIDs {
		c := courses[id]
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			fmt.Sprintf("T%d", c.Term),
			string(c.Kind),
			fmt.Sprintf("%.0f", c.Credits),
		})
	}
	b.WriteString(renderTable([]string{"ID", "CURSO", "TÉRMINO", "TIPO", "CRÉDITOS"}, rows))
	return b.String()
}

// RenderTermSchedule presenta el resultado de la optimización de un
// término: la tabla de grupos elegidos y el total de créditos.
func RenderTermSchedule(sched TermSchedule, warning domain.Warning) string {
	var b strings.Builder
	b.WriteString(styleSection.Render("Horario optimizado"))
	b.WriteString("\n\n")

	if w := renderWarning(warning); w != "" {
		b.WriteString(w)
		b.WriteString("\n")
	}
	if len(sched.GroupIDs) == 0 {
		b.WriteString(styleDim.Render("Sin grupos asignados."))
		b.WriteString("\n")
		return b.String()
	}

	total := 0.0
	rows := make([][]string, 0, len(sched.GroupIDs))
	for _, gid := range sched.GroupIDs {
		g, ok := sched.Groups[gid]
		if !ok {
			continue
		}
		c := sched.Courses[g.CourseID]
		total += c.Credits
		rows = append(rows, []string{
			fmt.Sprintf("%d", gid),
			c.Name,
			g.Instructor,
			formatMeetings(g.Meetings),
			fmt.Sprintf("%.0f", c.Credits),
		})
	}
	b.WriteString(renderTable([]string{"GRUPO", "CURSO", "INSTRUCTOR", "REUNIONES", "CRÉDITOS"}, rows))
	b.WriteString("\n")
	b.WriteString(styleGreen.Render(fmt.Sprintf("Créditos totales: %.0f", total)))
	b.WriteString("\n")
	return b.String()
}

// RenderTermPlan presenta un TermPlan (real o sintetizado hacia adelante).
func RenderTermPlan(plan domain.TermPlan) string {
	var b strings.Builder

	title := fmt.Sprintf("Término %d — %d cursos, %.0f créditos", plan.Term, plan.CourseCount, plan.TotalCredits)
	if plan.FullTime {
		title += " (estadía, tiempo completo)"
	}
	b.WriteString(styleSection.Render(title))
	b.WriteString("\n")

	if w := renderWarning(plan.Warning); w != "" {
		b.WriteString(w)
	}
	if len(plan.Courses) == 0 {
		b.WriteString(styleDim.Render("  (sin cursos ubicables)"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(plan.Courses))
	for _, a := range plan.Courses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", a.CourseID),
			a.CourseName,
			a.Instructor,
			formatMeetings(a.Meetings),
		})
	}
	b.WriteString(renderTable([]string{"ID", "CURSO", "INSTRUCTOR", "REUNIONES"}, rows))
	return b.String()
}

// RenderTrajectory presenta la trayectoria completa: un bloque por término
// en orden, seguido de las estadísticas agregadas y la graduación estimada.
func RenderTrajectory(plan domain.TrajectoryPlan) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Plan de trayectoria"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  (corrida %s)", plan.RunID)))
	b.WriteString("\n\n")

	for _, term := range plan.TermOrder {
		b.WriteString(RenderTermPlan(plan.PlanPerTerm[term]))
		b.WriteString("\n")
	}

	b.WriteString(styleSection.Render("Resumen"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Aprobados: %s   Pendientes: %s   Avance: %s\n",
		styleGreen.Render(fmt.Sprintf("%d", plan.Stats.ApprovedCount)),
		styleYellow.Render(fmt.Sprintf("%d", plan.Stats.PendingCount)),
		styleBlue.Render(fmt.Sprintf("%.1f%%", plan.Stats.PercentProgress)),
	))
	b.WriteString(fmt.Sprintf("  Graduación estimada: %s\n", styleBlue.Render(plan.EstimatedGraduation)))

	if w := renderWarning(plan.Warning); w != "" {
		b.WriteString(w)
	}
	return b.String()
}

// RenderWeeklyGrid dibuja la grilla semanal como tabla hora × día.
func RenderWeeklyGrid(grid domain.WeeklyGrid) string {
	headers := append([]string{"HORA"}, domain.DayNames...)

	rows := make([][]string, 0, domain.LatestHour-domain.EarliestHour+1)
	for h := domain.EarliestHour; h <= domain.LatestHour; h++ {
		row := []string{domain.SlotKey(h)}
		empty := true
		for _, day := range domain.DayNames {
			occ := grid[day][domain.SlotKey(h)]
			if occ == nil {
				row = append(row, styleDim.Render("·"))
				continue
			}
			empty = false
			row = append(row, stylePlain.Render(fmt.Sprintf("%s (%s)", occ.CourseName, occ.Room)))
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return styleDim.Render("Grilla semanal vacía.") + "\n"
	}
	return renderTable(headers, rows)
}

func renderWarning(w domain.Warning) string {
	switch w {
	case domain.WarningNone:
		return ""
	case domain.WarningEmptyEligibility:
		return styleYellow.Render("⚠ sin cursos elegibles") + "\n"
	case domain.WarningNoFeasibleIndividual:
		return styleYellow.Render("⚠ no se encontró un horario factible") + "\n"
	case domain.WarningPlannerStall:
		return styleYellow.Render("⚠ el planificador se detuvo con cursos pendientes") + "\n"
	default:
		return styleYellow.Render("⚠ "+string(w)) + "\n"
	}
}

func formatMeetings(meetings []domain.Meeting) string {
	if len(meetings) == 0 {
		return styleDim.Render("—")
	}
	parts := make([]string, 0, len(meetings))
	for _, m := range meetings {
		parts = append(parts, fmt.Sprintf("%s %02d:00-%02d:00 %s", shortDay(m.Day), m.StartHour, m.EndHour, m.Room))
	}
	return strings.Join(parts, ", ")
}

func shortDay(day int) string {
	name := domain.DayName(day)
	if name == "" {
		return "?"
	}
	// "Miércoles" lleva tilde en su tercera letra (dos bytes); cortar por runas.
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}
