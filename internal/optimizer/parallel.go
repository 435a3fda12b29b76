package optimizer

import "runtime"

// runtimeWorkers acota el pool de evaluación de fitness al número de CPUs
// disponibles. La evaluación no comparte estado mutable entre individuos,
// así que el resultado es idéntico al de una pasada secuencial.
func runtimeWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
