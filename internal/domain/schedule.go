package domain

import "fmt"

// Schedule es el resultado de optimizar un término: una lista de Group
// ids. Invariantes (validadas por el optimizer, nunca por este tipo): sin
// solapes de reuniones, créditos totales dentro del tope, cantidad de
// cursos distintos dentro del límite de estado, exclusividad de estadía.
type Schedule []int

// Occupant es lo que ocupa un slot de la grilla semanal: una clase concreta
// (real o sintetizada) en ese día/hora.
type Occupant struct {
	CourseID   int
	CourseName string
	Instructor string
	Room       string
	GroupID    int
}

// WeeklyGrid es la proyección de un conjunto de grupos sobre una grilla de
// 5 días × horas [7,21]: nombre de día → slot "H:00" → ocupante o nil.
type WeeklyGrid map[string]map[string]*Occupant

// NewWeeklyGrid inicializa una grilla vacía con todos los días y horas ya
// presentes (en nil), de modo que la materialización nunca necesita crear
// llaves sobre la marcha fuera de su propio loop de asignación.
func NewWeeklyGrid() WeeklyGrid {
	grid := make(WeeklyGrid, len(DayNames))
	for _, day := range DayNames {
		slots := make(map[string]*Occupant, LatestHour-EarliestHour+1)
		for h := EarliestHour; h <= LatestHour; h++ {
			slots[slotKey(h)] = nil
		}
		grid[day] = slots
	}
	return grid
}

// slotKey formatea una hora entera como la llave "H:00" que usa la grilla.
func slotKey(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}

// SlotKey expone slotKey para los consumidores fuera del paquete (el
// materializer y los reportes necesitan la misma convención de llave).
func SlotKey(hour int) string {
	return slotKey(hour)
}

// DayName traduce un día numérico (1..5) a su nombre en la grilla.
func DayName(day int) string {
	if day < FirstDay || day > LastDay {
		return ""
	}
	return DayNames[day-1]
}
