package trajectory

import (
	"fmt"
	"time"
)

// monthNames son los tres meses de cierre de cuatrimestre que usa la
// estimación gruesa de graduación.
var monthNames = []string{"April", "August", "December"}

// calendarTermOf mapea un mes calendario al cuatrimestre al que pertenece:
// Jan-Abr=1, May-Ago=2, Sep-Dic=3.
func calendarTermOf(month time.Month) int {
	switch {
	case month <= time.April:
		return 1
	case month <= time.August:
		return 2
	default:
		return 3
	}
}

// estimateGraduation proyecta termsRemaining cuatrimestres hacia adelante
// desde el mes calendario actual, devolviendo un par "Mes Año".
func estimateGraduation(now time.Time, termsRemaining int) string {
	calendarTerm := calendarTermOf(now.Month())
	year := now.Year()

	for i := 0; i < termsRemaining; i++ {
		calendarTerm++
		if calendarTerm > 3 {
			calendarTerm = 1
			year++
		}
	}

	return fmt.Sprintf("%s %d", monthNames[calendarTerm-1], year)
}
