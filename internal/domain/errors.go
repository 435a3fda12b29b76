package domain

import "fmt"

// ErrInvariantViolation es el único error que el núcleo retorna: indica
// que el llamador construyó un catálogo malformado. Nunca se produce desde
// OptimizeTerm ni PlanTrajectory una vez que el Optimizer fue construido
// con éxito.
type ErrInvariantViolation struct {
	Reason string
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Reason)
}

// NewInvariantViolation construye el error con el mensaje dado.
func NewInvariantViolation(format string, args ...any) error {
	return &ErrInvariantViolation{Reason: fmt.Sprintf(format, args...)}
}
