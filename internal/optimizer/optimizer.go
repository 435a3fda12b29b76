// Package optimizer implementa el algoritmo genético de un solo término:
// selección de grupos que maximiza una función de aptitud multi-objetivo
// respetando los límites duros de cupo, conflicto horario y exclusividad
// de estadía.
package optimizer

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"trayectoria-UDP/internal/domain"
	"trayectoria-UDP/internal/eligibility"
	"trayectoria-UDP/internal/graph"
)

// Catalog agrupa las referencias de solo lectura que el optimizador
// necesita del catálogo de secciones y la malla curricular. Conflicts es
// opcional: si está presente, los chequeos de choque horario se resuelven
// por adyacencia precalculada en vez de comparar reuniones par a par.
type Catalog struct {
	Courses         map[int]domain.Course
	Groups          map[int]domain.Group
	GroupsByCourse  map[int][]int
	PrereqGraph     domain.PrereqGraph
	ProjectDepGraph domain.ProjectDepGraph
	Conflicts       *graph.ConflictGraph
}

// groupsConflict decide si dos grupos no pueden convivir en un mismo
// horario: mismo curso o reuniones superpuestas.
func (c Catalog) groupsConflict(a, b domain.Group) bool {
	if c.Conflicts != nil {
		return c.Conflicts.HasEdge(a.ID, b.ID)
	}
	return a.CourseID == b.CourseID || a.ConflictsWith(b)
}

// Config son los parámetros del algoritmo genético.
type Config struct {
	PopulationSize   int
	Generations      int
	CrossoverRate    float64
	MutationRate     float64
	RestrictToGroups []int // opcional; ids desconocidos se ignoran silenciosamente
}

// Individual es una lista de Group ids sin cursos repetidos y sin
// conflictos horarios entre sí.
type Individual []int

// Result es lo que retorna Optimize: el mejor individuo encontrado y, si
// corresponde, una advertencia de dominio (nunca un error).
type Result struct {
	Groups  []int
	Warning domain.Warning
}

// Optimize corre el algoritmo genético completo para un estudiante. Es
// síncrono, sin puntos de suspensión: recorre generations rondas
// sobre una población de population_size individuos.
func Optimize(student domain.Student, cat Catalog, cfg Config, rng *rand.Rand, log *zap.SugaredLogger) Result {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	eligCat := eligibility.Catalog{
		Courses:         cat.Courses,
		PrereqGraph:     cat.PrereqGraph,
		ProjectDepGraph: cat.ProjectDepGraph,
		GroupsByCourse:  cat.GroupsByCourse,
	}
	eligible := eligibility.Eligible(student, eligCat)
	if len(eligible) == 0 {
		log.Infow("sin cursos elegibles", "student", student.ID)
		return Result{Warning: domain.WarningEmptyEligibility}
	}

	if gids, ok := residencyShortCircuit(eligible, cat); ok {
		log.Infow("cortocircuito de estadía", "student", student.ID, "group", gids[0])
		return Result{Groups: gids}
	}

	groupsByCourse := restrictedGroupsByCourse(eligible, cat, cfg.RestrictToGroups)
	if len(groupsByCourse) == 0 {
		return Result{Warning: domain.WarningNoFeasibleIndividual}
	}

	population := initialPopulation(student, cat, groupsByCourse, cfg, rng)
	if len(population) == 0 {
		log.Warnw("no se pudo construir ningún individuo factible", "student", student.ID)
		return Result{Warning: domain.WarningNoFeasibleIndividual}
	}

	best := bestOf(student, population, cat)

	for gen := 0; gen < cfg.Generations; gen++ {
		scores := evaluatePopulation(student, population, cat)

		if gen == 0 && allZero(scores) {
			log.Warnw("toda la generación 0 tiene fitness 0, terminando temprano", "student", student.ID)
			break
		}

		next := make([]Individual, 0, len(population))
		next = append(next, cloneIndividual(best)) // elitismo

		for len(next) < len(population) {
			p1 := tournamentSelect(population, scores, rng)
			p2 := tournamentSelect(population, scores, rng)
			if p1 == nil || p2 == nil {
				break
			}

			c1, c2 := crossover(p1, p2, cfg.CrossoverRate, cat, rng)
			c1 = mutate(student, c1, cfg.MutationRate, cat, groupsByCourse, rng)
			c2 = mutate(student, c2, cfg.MutationRate, cat, groupsByCourse, rng)

			next = append(next, c1)
			if len(next) < len(population) {
				next = append(next, c2)
			}
		}

		population = next
		candidate := bestOf(student, population, cat)
		if Fitness(student, candidate, cat).Score > Fitness(student, best, cat).Score {
			best = candidate
		}
	}

	warning := domain.WarningNone
	if Fitness(student, best, cat).Score == 0 {
		warning = domain.WarningNoFeasibleIndividual
	}

	return Result{Groups: []int(best), Warning: warning}
}

func bestOf(student domain.Student, population []Individual, cat Catalog) Individual {
	var best Individual
	bestScore := -1.0
	for _, ind := range population {
		score := Fitness(student, ind, cat).Score
		if score > bestScore {
			bestScore = score
			best = ind
		}
	}
	return cloneIndividual(best)
}

func evaluatePopulation(student domain.Student, population []Individual, cat Catalog) []float64 {
	// La evaluación de una generación puede paralelizarse; es
	// equivalente en comportamiento a evaluar secuencialmente porque solo
	// se lee el catálogo compartido, nunca se escribe.
	scores := make([]float64, len(population))
	workers := runtimeWorkers()
	if workers > len(population) {
		workers = len(population)
	}
	if workers <= 1 {
		for i, ind := range population {
			scores[i] = Fitness(student, ind, cat).Score
		}
		return scores
	}

	jobs := make(chan int)
	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				scores[i] = Fitness(student, population[i], cat).Score
			}
			done <- struct{}{}
		}()
	}
	for i := range population {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}
	return scores
}

func allZero(scores []float64) bool {
	for _, s := range scores {
		if s != 0 {
			return false
		}
	}
	return true
}

func cloneIndividual(ind Individual) Individual {
	if ind == nil {
		return nil
	}
	clone := make(Individual, len(ind))
	copy(clone, ind)
	return clone
}

func restrictedGroupsByCourse(eligible []int, cat Catalog, restrict []int) map[int][]int {
	eligibleSet := make(map[int]bool, len(eligible))
	for _, id := range eligible {
		eligibleSet[id] = true
	}

	result := make(map[int][]int)

	if len(restrict) == 0 {
		for courseID, gids := range cat.GroupsByCourse {
			if !eligibleSet[courseID] {
				continue
			}
			result[courseID] = append(result[courseID], gids...)
		}
		return result
	}

	for _, gid := range restrict {
		g, ok := cat.Groups[gid]
		if !ok {
			continue // id desconocido, se ignora silenciosamente
		}
		if !eligibleSet[g.CourseID] {
			continue
		}
		result[g.CourseID] = append(result[g.CourseID], gid)
	}
	return result
}

// sortedCourseIDsOf retorna las llaves de un map[int][]int en orden, para
// iteración determinística dado el mismo rng.
func sortedCourseIDsOf(m map[int][]int) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
