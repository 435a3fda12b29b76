package domain

// CourseAssignment es una fila del resultado de un TermPlan: el curso
// escogido, el grupo (real o sintetizado) y sus reuniones.
type CourseAssignment struct {
	CourseID   int
	CourseName string
	GroupID    int
	Instructor string
	Credits    float64
	CourseTerm int
	Kind       CourseKind
	Meetings   []Meeting
}

// TermPlan es el resultado de simular o materializar un cuatrimestre,
// real o sintetizado hacia adelante.
type TermPlan struct {
	Term         int
	Courses      []CourseAssignment
	TotalCredits float64
	CourseCount  int
	WeeklyGrid   WeeklyGrid
	LoadPerDay   map[int]float64 // día 1..5 → horas
	Warning      Warning
	FullTime     bool // true en un término de estadía
}

// TrajectoryStats resume el progreso del estudiante a lo largo del plan.
type TrajectoryStats struct {
	ApprovedCount   int
	PendingCount    int
	PercentProgress float64
}

// TrajectoryPlan es el resultado de plan_trajectory(): un TermPlan por
// cuatrimestre, en orden estrictamente creciente de término, más
// estadísticas agregadas y una estimación de graduación.
type TrajectoryPlan struct {
	RunID               string
	TermOrder           []int
	PlanPerTerm         map[int]TermPlan
	Stats               TrajectoryStats
	EstimatedGraduation string // "Month Year"
	Warning             Warning
}
