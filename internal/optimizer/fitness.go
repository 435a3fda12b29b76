package optimizer

import (
	"math"
	"sort"

	"trayectoria-UDP/internal/domain"
)

// FitnessTerms desglosa los componentes del puntaje, para que los reportes
// puedan mostrar por qué un individuo obtuvo el puntaje que obtuvo. El
// puntaje escalar combina solo los términos que la fórmula ponderada de
// cada estado de estudiante nombra; PreferenceSatisfaction se calcula y se
// expone igual, pero queda fuera de la suma ponderada (ver DESIGN.md).
type FitnessTerms struct {
	CourseCountFit         float64
	DayBalance             float64
	CreditUtilization      float64
	BacklogPriority        float64
	ConsecutiveBonus       float64
	TypeDiversity          float64
	DistributionPenalty    float64
	PreferenceSatisfaction float64
	Score                  float64
}

// Fitness mapea un individuo a un puntaje en [0,1]. Las condiciones
// invalidantes retornan 0 inmediatamente.
func Fitness(student domain.Student, individual []int, cat Catalog) FitnessTerms {
	courses, totalCredits, distinctKinds := scheduledCourses(individual, cat)
	n := len(courses)

	if student.IsRegular() && n > domain.MaxCoursesRegular {
		return FitnessTerms{}
	}
	if student.IsIrregular() && n > domain.MaxCoursesIrregular {
		return FitnessTerms{}
	}
	if totalCredits > student.CreditCap {
		return FitnessTerms{}
	}
	residencyCount := 0
	for _, c := range courses {
		if c.IsResidency() {
			residencyCount++
		}
	}
	if residencyCount > 1 || (residencyCount == 1 && n > 1) {
		return FitnessTerms{}
	}
	if residencyCount == 1 && n == 1 {
		return FitnessTerms{Score: 1.0}
	}

	hoursPerDay := make(map[int]float64, 5)
	occupiedHoursPerDay := make(map[int]map[int]bool, 5)
	var meetings []domain.Meeting
	for _, gid := range individual {
		g, ok := cat.Groups[gid]
		if !ok {
			continue
		}
		for _, m := range g.Meetings {
			meetings = append(meetings, m)
			hoursPerDay[m.Day] += float64(m.Hours())
			if occupiedHoursPerDay[m.Day] == nil {
				occupiedHoursPerDay[m.Day] = make(map[int]bool)
			}
			for h := m.StartHour; h < m.EndHour; h++ {
				occupiedHoursPerDay[m.Day][h] = true
			}
		}
	}

	terms := FitnessTerms{
		CourseCountFit:         courseCountFit(student, n),
		DayBalance:             dayBalance(hoursPerDay),
		CreditUtilization:      creditUtilization(totalCredits, student.CreditCap),
		BacklogPriority:        backlogPriority(student, courses),
		ConsecutiveBonus:       consecutiveBonus(occupiedHoursPerDay),
		TypeDiversity:          typeDiversity(distinctKinds),
		DistributionPenalty:    distributionPenalty(hoursPerDay),
		PreferenceSatisfaction: preferenceSatisfaction(student, meetings),
	}

	if student.IsRegular() {
		terms.Score = 0.40*terms.CourseCountFit +
			0.20*terms.DayBalance +
			0.15*terms.CreditUtilization +
			0.15*terms.ConsecutiveBonus +
			0.10*terms.TypeDiversity -
			terms.DistributionPenalty
	} else {
		terms.Score = 0.30*terms.CourseCountFit +
			0.15*terms.DayBalance +
			0.30*terms.BacklogPriority +
			0.15*terms.ConsecutiveBonus +
			0.10*terms.TypeDiversity -
			terms.DistributionPenalty
	}

	terms.Score = clamp01(terms.Score)
	return terms
}

func scheduledCourses(individual []int, cat Catalog) ([]domain.Course, float64, map[domain.CourseKind]bool) {
	seen := make(map[int]bool)
	var courses []domain.Course
	total := 0.0
	kinds := make(map[domain.CourseKind]bool)

	for _, gid := range individual {
		g, ok := cat.Groups[gid]
		if !ok {
			continue
		}
		if seen[g.CourseID] {
			continue
		}
		seen[g.CourseID] = true
		c, ok := cat.Courses[g.CourseID]
		if !ok {
			continue
		}
		courses = append(courses, c)
		total += c.Credits
		kinds[c.Kind] = true
	}

	return courses, total, kinds
}

func courseCountFit(student domain.Student, n int) float64 {
	if student.IsRegular() {
		if n == domain.MaxCoursesRegular {
			return 1.0
		}
		return 1.0 - 0.1*float64(domain.MaxCoursesRegular-n)
	}
	return float64(n) / float64(domain.MaxCoursesIrregular)
}

func dayBalance(hoursPerDay map[int]float64) float64 {
	values := make([]float64, domain.LastDay)
	for d := domain.FirstDay; d <= domain.LastDay; d++ {
		values[d-1] = hoursPerDay[d]
	}
	return 1.0 / (1.0 + stdev(values))
}

func creditUtilization(totalCredits, cap float64) float64 {
	if cap <= 0 {
		return 0
	}
	return totalCredits / cap
}

func backlogPriority(student domain.Student, courses []domain.Course) float64 {
	if student.IsRegular() {
		return 0
	}
	total := 0.0
	for _, c := range courses {
		if diff := student.CurrentTerm - c.Term; diff > 0 {
			total += float64(diff)
		}
	}
	return total
}

// consecutiveBonus cuenta corridas de horas contiguas ocupadas (largo >= 2)
// contra horas aisladas (largo == 1), por día.
func consecutiveBonus(occupiedHoursPerDay map[int]map[int]bool) float64 {
	consecutive := 0.0
	isolated := 0.0

	for _, hours := range occupiedHoursPerDay {
		sorted := make([]int, 0, len(hours))
		for h := range hours {
			sorted = append(sorted, h)
		}
		sort.Ints(sorted)

		runStart := 0
		for i := 1; i <= len(sorted); i++ {
			if i == len(sorted) || sorted[i] != sorted[i-1]+1 {
				runLen := i - runStart
				if runLen >= 2 {
					consecutive += float64(runLen)
				} else {
					isolated += float64(runLen)
				}
				runStart = i
			}
		}
	}

	return consecutive / (consecutive + isolated + 1)
}

func typeDiversity(kinds map[domain.CourseKind]bool) float64 {
	return math.Min(1.0, float64(len(kinds))/3.0)
}

func distributionPenalty(hoursPerDay map[int]float64) float64 {
	over8 := 0
	shallow := 0
	for d := domain.FirstDay; d <= domain.LastDay; d++ {
		h := hoursPerDay[d]
		if h > 8 {
			over8++
		}
		if h == 1 || h == 2 {
			shallow++
		}
	}
	return 0.05 * float64(over8+shallow)
}

func preferenceSatisfaction(student domain.Student, meetings []domain.Meeting) float64 {
	score := 0.0
	daysUsed := make(map[int]bool)
	for _, m := range meetings {
		daysUsed[m.Day] = true
		if inPreferredBand(student.Preferences.TimeOfDay, m.StartHour) {
			score += 1
		}
	}
	if len(daysUsed) > 0 {
		inPref := 0
		for d := range daysUsed {
			if student.Preferences.PrefersDay(d) {
				inPref++
			}
		}
		score += 0.5 * (float64(inPref) / float64(len(daysUsed)))
	}
	return score
}

func inPreferredBand(pref domain.TimeOfDay, hour int) bool {
	switch pref {
	case domain.Morning:
		return hour >= 8 && hour < 12
	case domain.Afternoon:
		return hour >= 12 && hour < 18
	case domain.Evening:
		return hour >= 18
	default:
		return false
	}
}

func stdev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
