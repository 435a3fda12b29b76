// Package planner expone la fachada pública del núcleo: un Optimizer
// construido una sola vez sobre el modelo en memoria (malla, catálogo de
// secciones y grafos de seriación/dependencia) con las cuatro operaciones
// de planificación: elegibilidad, optimización de un término, grilla
// semanal y trayectoria completa.
package planner

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"trayectoria-UDP/internal/domain"
	"trayectoria-UDP/internal/eligibility"
	"trayectoria-UDP/internal/graph"
	"trayectoria-UDP/internal/materializer"
	"trayectoria-UDP/internal/optimizer"
	"trayectoria-UDP/internal/trajectory"
)

// Optimizer agrupa el modelo de solo lectura y los colaboradores
// inyectables (rng, logger, reloj). Es seguro compartirlo entre llamadas
// secuenciales; cada operación retorna valores frescos propiedad del
// llamador.
type Optimizer struct {
	courses    map[int]domain.Course
	groups     map[int]domain.Group
	byCourse   map[int][]int
	conflicts  *graph.ConflictGraph
	prereq     domain.PrereqGraph
	projectDep domain.ProjectDepGraph

	rng *rand.Rand
	log *zap.SugaredLogger
	now func() time.Time

	maxTerms     int
	iterationCap int
}

// OptimizeConfig son los parámetros del algoritmo genético para una
// llamada a OptimizeTerm. Los valores fuera de rango se normalizan en
// lugar de fallar: población mínima 1, generaciones mínimas 0, tasas
// recortadas a [0,1].
type OptimizeConfig struct {
	PopulationSize   int
	Generations      int
	CrossoverRate    float64
	MutationRate     float64
	RestrictToGroups []int
}

// DefaultOptimizeConfig retorna los parámetros nominales del GA.
func DefaultOptimizeConfig() OptimizeConfig {
	return OptimizeConfig{
		PopulationSize: 100,
		Generations:    30,
		CrossoverRate:  0.8,
		MutationRate:   0.2,
	}
}

// New construye el Optimizer validando el catálogo: ids de curso
// duplicados, grupos que referencian cursos inexistentes o reuniones
// malformadas retornan un error de invariante; después de una
// construcción exitosa ninguna operación retorna error.
func New(courses []domain.Course, groups []domain.Group, prereq domain.PrereqGraph, projectDep domain.ProjectDepGraph, opts ...Option) (*Optimizer, error) {
	courseIndex := make(map[int]domain.Course, len(courses))
	for _, c := range courses {
		if _, dup := courseIndex[c.ID]; dup {
			return nil, domain.NewInvariantViolation("duplicate course id %d", c.ID)
		}
		courseIndex[c.ID] = c
	}

	groupIndex := make(map[int]domain.Group, len(groups))
	byCourse := make(map[int][]int)
	for _, g := range groups {
		if _, dup := groupIndex[g.ID]; dup {
			return nil, domain.NewInvariantViolation("duplicate group id %d", g.ID)
		}
		groupIndex[g.ID] = g
		byCourse[g.CourseID] = append(byCourse[g.CourseID], g.ID)
	}

	if err := domain.ValidateCatalog(courseIndex, groupIndex); err != nil {
		return nil, err
	}

	o := &Optimizer{
		courses:      courseIndex,
		groups:       groupIndex,
		byCourse:     byCourse,
		conflicts:    graph.BuildFromGroups(groupIndex),
		prereq:       prereq,
		projectDep:   projectDep,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          zap.NewNop().Sugar(),
		now:          time.Now,
		maxTerms:     domain.MaxTerms,
		iterationCap: domain.PlannerIterationCap,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// EligibleCourses retorna los ids de curso que el estudiante puede
// inscribir ahora, en orden estable.
func (o *Optimizer) EligibleCourses(student domain.Student) []int {
	return eligibility.Eligible(student, o.eligibilityCatalog())
}

// MaterializeWeekly proyecta los grupos elegidos sobre la grilla semanal.
// Ids de grupo desconocidos se omiten.
func (o *Optimizer) MaterializeWeekly(groupIDs []int) domain.WeeklyGrid {
	return materializer.Materialize(groupIDs, o.groups, o.courses)
}

// OptimizeTerm corre el algoritmo genético para el término actual del
// estudiante y retorna los grupos elegidos más una advertencia de dominio
// cuando el resultado es vacío o parcial.
func (o *Optimizer) OptimizeTerm(student domain.Student, cfg OptimizeConfig) ([]int, domain.Warning) {
	result := optimizer.Optimize(student, o.optimizerCatalog(), sanitize(cfg), o.rng, o.log)
	return result.Groups, result.Warning
}

// PlanTrajectory simula la trayectoria completa del estudiante desde su
// término actual hasta egresar.
func (o *Optimizer) PlanTrajectory(student domain.Student) domain.TrajectoryPlan {
	return trajectory.PlanTrajectory(student, o.trajectoryCatalog(), o.rng, o.now(), o.log)
}

func sanitize(cfg OptimizeConfig) optimizer.Config {
	if cfg.PopulationSize < 1 {
		cfg.PopulationSize = 1
	}
	if cfg.Generations < 0 {
		cfg.Generations = 0
	}
	return optimizer.Config{
		PopulationSize:   cfg.PopulationSize,
		Generations:      cfg.Generations,
		CrossoverRate:    clampRate(cfg.CrossoverRate),
		MutationRate:     clampRate(cfg.MutationRate),
		RestrictToGroups: cfg.RestrictToGroups,
	}
}

func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (o *Optimizer) eligibilityCatalog() eligibility.Catalog {
	return eligibility.Catalog{
		Courses:         o.courses,
		PrereqGraph:     o.prereq,
		ProjectDepGraph: o.projectDep,
		GroupsByCourse:  o.byCourse,
	}
}

func (o *Optimizer) optimizerCatalog() optimizer.Catalog {
	return optimizer.Catalog{
		Courses:         o.courses,
		Groups:          o.groups,
		GroupsByCourse:  o.byCourse,
		PrereqGraph:     o.prereq,
		ProjectDepGraph: o.projectDep,
		Conflicts:       o.conflicts,
	}
}

func (o *Optimizer) trajectoryCatalog() trajectory.Catalog {
	return trajectory.Catalog{
		Courses:         o.courses,
		GroupsByCourse:  o.byCourse,
		PrereqGraph:     o.prereq,
		ProjectDepGraph: o.projectDep,
		MaxTerms:        o.maxTerms,
		IterationCap:    o.iterationCap,
	}
}
