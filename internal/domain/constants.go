package domain

// CourseKind clasifica un curso dentro de la malla.
type CourseKind string

const (
	KindRegular           CourseKind = "Regular"
	KindIntegratorProject CourseKind = "IntegratorProject"
	KindResidency         CourseKind = "Residency"
)

// StudentStatus indica si el estudiante avanza en el plan nominal o fuera de él.
type StudentStatus string

const (
	StatusRegular   StudentStatus = "Regular"
	StatusIrregular StudentStatus = "Irregular"
)

// TimeOfDay es la franja horaria preferida por el estudiante.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
)

// Warning etiqueta un resultado parcial/vacío que no es un error de programación
// (son valores del dominio, no excepciones).
type Warning string

const (
	WarningNone                 Warning = ""
	WarningEmptyEligibility     Warning = "EmptyEligibility"
	WarningNoFeasibleIndividual Warning = "NoFeasibleIndividual"
	WarningPlannerStall         Warning = "PlannerStall"
)

// Grilla horaria: 5 días (Lunes..Viernes), bloques de 07:00 a 21:00.
const (
	FirstDay     = 1
	LastDay      = 5
	EarliestHour = 7
	LatestHour   = 21 // última hora de inicio graficable en la grilla
	LatestBound  = 22 // hora límite para el fin de una reunión
)

// DayNames son los nombres de día usados por el WeeklyGrid y los reportes,
// en el mismo idioma que la malla de origen.
var DayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

// UnassignedInstructor marca el instructor de una clase sintetizada por el
// simulador de términos, que no consulta el catálogo real de secciones.
const UnassignedInstructor = "Por asignar"

// SynthesizedGroupID es el id de grupo usado por las reuniones sintetizadas.
const SynthesizedGroupID = 0

// Términos en los que, por convención, aparece una Residencia.
const (
	ResidencyTermFirst = 6
	ResidencyTermFinal = 10
)

// Tope de cursos simultáneos por estado del estudiante.
const (
	MaxCoursesRegular   = 7
	MaxCoursesIrregular = 5
)

// Parámetros de terminación del planificador de trayectoria.
const (
	MaxTerms            = 15
	PlannerIterationCap = 20
)

// Slack de capacidad de un Group: un grupo "tiene capacidad" si su inscripción
// actual es menor al 110% de su cupo máximo.
const CapacitySlack = 1.1
