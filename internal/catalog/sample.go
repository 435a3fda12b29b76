// Package catalog contiene datos de ejemplo en memoria (malla, catálogo
// de secciones y estudiantes) usados por `cmd/planner demo` y por las
// pruebas de escenario. No hay carga de CSV/JSON aquí: el catálogo real
// lo provee un colaborador externo fuera del alcance del núcleo. La malla
// corresponde a un plan de ingeniería en sistemas computacionales de diez
// cuatrimestres, con estadías en los términos 6 y 10.
package catalog

import "trayectoria-UDP/internal/domain"

// courseSeed es una fila de la malla: id, nombre, término y horas totales
// del cuatrimestre (15 semanas).
type courseSeed struct {
	id    int
	name  string
	term  int
	hours float64
	kind  domain.CourseKind
}

// seeds es la malla completa: diez cuatrimestres, las dos estadías y los
// tres proyectos integradores.
var seeds = []courseSeed{
	{1, "INGLÉS I", 1, 75, domain.KindRegular},
	{2, "DESARROLLO HUMANO Y VALORES", 1, 60, domain.KindRegular},
	{3, "FUNDAMENTOS MATEMÁTICOS", 1, 105, domain.KindRegular},
	{4, "FUNDAMENTOS DE REDES", 1, 60, domain.KindRegular},
	{5, "FÍSICA", 1, 90, domain.KindRegular},
	{6, "FUNDAMENTOS DE PROGRAMACIÓN", 1, 60, domain.KindRegular},
	{7, "COMUNICACIÓN Y HABILIDADES DIGITALES", 1, 75, domain.KindRegular},

	{8, "INGLÉS II", 2, 75, domain.KindRegular},
	{9, "HABILIDADES SOCIOEMOCIONALES Y MANEJO DE CONFLICTOS", 2, 60, domain.KindRegular},
	{10, "CÁLCULO DIFERENCIAL", 2, 90, domain.KindRegular},
	{11, "CONMUTACIÓN Y ENRUTAMIENTO DE REDES", 2, 75, domain.KindRegular},
	{12, "PROBABILIDAD Y ESTADÍSTICA", 2, 75, domain.KindRegular},
	{13, "PROGRAMACIÓN ESTRUCTURADA", 2, 75, domain.KindRegular},
	{14, "SISTEMAS OPERATIVOS", 2, 75, domain.KindRegular},

	{15, "INGLÉS III", 3, 75, domain.KindRegular},
	{16, "DESARROLLO DEL PENSAMIENTO Y TOMA DE DECISIONES", 3, 60, domain.KindRegular},
	{17, "CÁLCULO INTEGRAL", 3, 60, domain.KindRegular},
	{18, "TÓPICOS DE CALIDAD PARA EL DISEÑO DE SOFTWARE", 3, 90, domain.KindRegular},
	{19, "BASES DE DATOS", 3, 75, domain.KindRegular},
	{20, "PROGRAMACIÓN ORIENTADA A OBJETOS", 3, 105, domain.KindRegular},
	{21, "PROYECTO INTEGRADOR I", 3, 60, domain.KindIntegratorProject},

	{22, "INGLÉS IV", 4, 75, domain.KindRegular},
	{23, "ÉTICA PROFESIONAL", 4, 60, domain.KindRegular},
	{24, "CÁLCULO DE VARIAS VARIABLES", 4, 75, domain.KindRegular},
	{25, "APLICACIONES WEB", 4, 75, domain.KindRegular},
	{26, "ESTRUCTURA DE DATOS", 4, 75, domain.KindRegular},
	{27, "DESARROLLO DE APLICACIONES MÓVILES", 4, 90, domain.KindRegular},
	{28, "ANÁLISIS Y DISEÑO DE SOFTWARE", 4, 75, domain.KindRegular},

	{29, "INGLÉS V", 5, 75, domain.KindRegular},
	{30, "LIDERAZGO DE EQUIPOS DE ALTO DESEMPEÑO", 5, 60, domain.KindRegular},
	{31, "ECUACIONES DIFERENCIALES", 5, 75, domain.KindRegular},
	{32, "APLICACIONES WEB ORIENTADAS A SERVICIOS", 5, 90, domain.KindRegular},
	{33, "BASES DE DATOS AVANZADAS", 5, 75, domain.KindRegular},
	{34, "ESTÁNDARES Y MÉTRICAS PARA EL DESARROLLO DE SOFTWARE", 5, 90, domain.KindRegular},
	{35, "PROYECTO INTEGRADOR II", 5, 60, domain.KindIntegratorProject},

	{36, "ESTADÍA I", 6, 600, domain.KindResidency},

	{37, "INGLÉS VI", 7, 75, domain.KindRegular},
	{38, "HABILIDADES GERENCIALES", 7, 60, domain.KindRegular},
	{39, "FORMULACIÓN DE PROYECTOS DE TECNOLOGÍA", 7, 60, domain.KindRegular},
	{40, "FUNDAMENTOS DE INTELIGENCIA ARTIFICIAL", 7, 90, domain.KindRegular},
	{41, "ÉTICA Y LEGISLACIÓN EN TECNOLOGÍAS DE LA INFORMACIÓN", 7, 60, domain.KindRegular},
	{42, "OPTATIVA I", 7, 90, domain.KindRegular},
	{43, "SEGURIDAD INFORMÁTICA", 7, 90, domain.KindRegular},

	{44, "INGLÉS VII", 8, 75, domain.KindRegular},
	{45, "ELECTRÓNICA DIGITAL", 8, 75, domain.KindRegular},
	{46, "GESTIÓN DE PROYECTOS DE TECNOLOGÍA", 8, 60, domain.KindRegular},
	{47, "PROGRAMACIÓN PARA INTELIGENCIA ARTIFICIAL", 8, 75, domain.KindRegular},
	{48, "ADMINISTRACIÓN DE SERVIDORES", 8, 75, domain.KindRegular},
	{49, "OPTATIVA II", 8, 90, domain.KindRegular},
	{50, "INFORMÁTICA FORENSE", 8, 75, domain.KindRegular},

	{51, "INGLÉS VIII", 9, 75, domain.KindRegular},
	{52, "INTERNET DE LAS COSAS", 9, 75, domain.KindRegular},
	{53, "EVALUACIÓN DE PROYECTOS DE TECNOLOGÍA", 9, 60, domain.KindRegular},
	{54, "CIENCIA DE DATOS", 9, 90, domain.KindRegular},
	{55, "TECNOLOGÍAS DISRUPTIVAS", 9, 75, domain.KindRegular},
	{56, "OPTATIVA III", 9, 90, domain.KindRegular},
	{57, "PROYECTO INTEGRADOR III", 9, 60, domain.KindIntegratorProject},

	{58, "ESTADÍA II", 10, 600, domain.KindResidency},
}

// creditsFromHours aproxima los créditos como horas/15, redondeado a la
// unidad más cercana (un cuatrimestre equivale a 15 semanas).
func creditsFromHours(hours float64) float64 {
	credits := hours / 15
	return float64(int(credits + 0.5))
}

// Courses retorna la malla completa indexada por id.
func Courses() map[int]domain.Course {
	courses := make(map[int]domain.Course, len(seeds))
	for _, s := range seeds {
		courses[s.id] = domain.Course{
			ID:      s.id,
			Name:    s.name,
			Term:    s.term,
			Credits: creditsFromHours(s.hours),
			Hours:   s.hours,
			Kind:    s.kind,
		}
	}
	return courses
}

// PrereqGraph encadena cada curso de un cuatrimestre a todos los cursos
// del cuatrimestre inmediatamente anterior — una seriación simplificada
// pero acíclica, suficiente para fines de demostración.
func PrereqGraph() domain.PrereqGraph {
	graph := make(domain.PrereqGraph)
	byTerm := make(map[int][]int)
	for _, s := range seeds {
		byTerm[s.term] = append(byTerm[s.term], s.id)
	}
	for term := 2; term <= 10; term++ {
		prev, ok := byTerm[term-1]
		if !ok {
			continue
		}
		for _, id := range byTerm[term] {
			graph[id] = prev
		}
	}
	return graph
}

// ProjectDepGraph ata cada proyecto integrador y estadía a un puñado de
// cursos técnicos previos, representando las dependencias temáticas que
// van más allá de la seriación estándar.
func ProjectDepGraph() domain.ProjectDepGraph {
	return domain.ProjectDepGraph{
		21: {19, 20},     // Proyecto Integrador I <- Bases de Datos, POO
		35: {32, 33, 34}, // Proyecto Integrador II <- cursos de quinto cuatrimestre
		36: {35},         // Estadía I <- Proyecto Integrador II
		57: {54, 55},     // Proyecto Integrador III <- Ciencia de Datos, Tecnologías Disruptivas
		58: {57},         // Estadía II <- Proyecto Integrador III
	}
}

// Groups construye un catálogo de secciones mínimo: una sección por curso
// no residencial, con reuniones de lunes/miércoles en una franja fija que
// rota por término para evitar choques entre cursos del mismo
// cuatrimestre. Las estadías no llevan reuniones reales.
func Groups() map[int]domain.Group {
	groups := make(map[int]domain.Group, len(seeds))
	slotsByTerm := make(map[int]int)

	for _, s := range seeds {
		if s.kind == domain.KindResidency {
			continue
		}
		slot := slotsByTerm[s.term]
		slotsByTerm[s.term]++
		start := 8 + (slot%7)*2

		groups[s.id*10] = domain.Group{
			ID:          s.id * 10,
			CourseID:    s.id,
			Instructor:  "Prof. " + s.name[:minLen(s.name, 8)],
			MaxCapacity: 35,
			Enrollment:  20,
			Meetings: []domain.Meeting{
				{Day: 1, StartHour: start, EndHour: start + 2, Room: "A101"},
				{Day: 3, StartHour: start, EndHour: start + 2, Room: "A101"},
			},
		}
	}

	// Las estadías tienen un único grupo "placeholder" de cupo amplio,
	// sin reuniones reales: el simulador de términos sintetiza su horario
	// al proyectarlas hacia adelante y el optimizador las toma por el
	// cortocircuito de estadía sin mirar Meetings.
	groups[360] = domain.Group{ID: 360, CourseID: 36, Instructor: "Coordinación de Estadías", MaxCapacity: 200, Enrollment: 40}
	groups[580] = domain.Group{ID: 580, CourseID: 58, Instructor: "Coordinación de Estadías", MaxCapacity: 200, Enrollment: 10}

	return groups
}

func minLen(s string, n int) int {
	if len(s) < n {
		return len(s)
	}
	return n
}

// GroupsByCourse deriva el índice curso → grupos a partir de Groups().
func GroupsByCourse(groups map[int]domain.Group) map[int][]int {
	byCourse := make(map[int][]int)
	for id, g := range groups {
		byCourse[g.CourseID] = append(byCourse[g.CourseID], id)
	}
	return byCourse
}

// SampleStudent retorna un estudiante regular recién ingresado, útil como
// punto de partida para `cmd/planner demo`.
func SampleStudent() domain.Student {
	return domain.Student{
		ID:          1,
		Name:        "Estudiante Demo",
		CurrentTerm: 1,
		Status:      domain.StatusRegular,
		CreditCap:   40,
		Approved:    map[int]bool{},
		Preferences: domain.Preferences{
			TimeOfDay:     domain.Morning,
			PreferredDays: map[int]bool{1: true, 2: true, 3: true},
		},
	}
}

// SampleIrregularStudent retorna un estudiante irregular de cuarto
// cuatrimestre con un avance desparejo, para ejercitar la vía irregular.
func SampleIrregularStudent() domain.Student {
	approved := map[int]bool{}
	for _, s := range seeds {
		if s.term <= 2 {
			approved[s.id] = true
		}
	}
	delete(approved, 11) // dejamos pendiente un curso de segundo, a propósito

	return domain.Student{
		ID:          2,
		Name:        "Estudiante Irregular Demo",
		CurrentTerm: 4,
		Status:      domain.StatusIrregular,
		CreditCap:   35,
		Approved:    approved,
		Preferences: domain.Preferences{
			TimeOfDay:     domain.Afternoon,
			PreferredDays: map[int]bool{2: true, 4: true},
		},
	}
}
