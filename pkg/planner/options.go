package planner

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Option configura los colaboradores inyectables del Optimizer.
type Option func(*Optimizer)

// WithLogger instala un logger estructurado. Con nil se conserva el
// no-op por defecto: el núcleo no emite I/O propio salvo que el llamador
// opte por recibirlo.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Optimizer) {
		if log != nil {
			o.log = log
		}
	}
}

// WithSeed fija la semilla de la fuente pseudoaleatoria: con la misma
// semilla y las mismas entradas, OptimizeTerm y PlanTrajectory producen
// resultados idénticos.
func WithSeed(seed int64) Option {
	return func(o *Optimizer) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand inyecta una fuente pseudoaleatoria ya construida.
func WithRand(rng *rand.Rand) Option {
	return func(o *Optimizer) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithClock inyecta el reloj usado por la estimación de graduación; útil
// en pruebas para fijar la fecha de referencia.
func WithClock(now func() time.Time) Option {
	return func(o *Optimizer) {
		if now != nil {
			o.now = now
		}
	}
}

// WithPlannerLimits ajusta los topes de terminación del planificador de
// trayectoria. Valores no positivos conservan los nominales.
func WithPlannerLimits(maxTerms, iterationCap int) Option {
	return func(o *Optimizer) {
		if maxTerms > 0 {
			o.maxTerms = maxTerms
		}
		if iterationCap > 0 {
			o.iterationCap = iterationCap
		}
	}
}
