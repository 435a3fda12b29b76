// Package graph implementa un grafo de conflictos sobre el catálogo de
// secciones: los vértices son grupos y las aristas representan choques de
// horario entre sus reuniones semanales o grupos del mismo curso. Precalcularlo convierte cada
// chequeo de conflicto del optimizador en una consulta O(1) de adyacencia.
package graph

import (
	"sort"

	"trayectoria-UDP/internal/domain"
)

// ConflictGraph representa el grafo G = (V, E) donde los vértices son
// grupos y las aristas son pares de grupos cuyas reuniones se superponen
// o que pertenecen al mismo curso.
type ConflictGraph struct {
	Vertices  map[int]domain.Group // group id -> Group
	Adjacency map[int]map[int]bool // group id -> set de ids en conflicto
}

// New crea un grafo de conflictos vacío.
func New() *ConflictGraph {
	return &ConflictGraph{
		Vertices:  make(map[int]domain.Group),
		Adjacency: make(map[int]map[int]bool),
	}
}

// AddVertex agrega un grupo como vértice.
func (g *ConflictGraph) AddVertex(grp domain.Group) {
	g.Vertices[grp.ID] = grp
	if g.Adjacency[grp.ID] == nil {
		g.Adjacency[grp.ID] = make(map[int]bool)
	}
}

// AddEdge agrega una arista (conflicto) entre dos grupos.
func (g *ConflictGraph) AddEdge(id1, id2 int) {
	if g.Adjacency[id1] == nil {
		g.Adjacency[id1] = make(map[int]bool)
	}
	if g.Adjacency[id2] == nil {
		g.Adjacency[id2] = make(map[int]bool)
	}
	g.Adjacency[id1][id2] = true
	g.Adjacency[id2][id1] = true
}

// HasEdge verifica si existe una arista entre dos vértices.
func (g *ConflictGraph) HasEdge(id1, id2 int) bool {
	if adj, ok := g.Adjacency[id1]; ok {
		return adj[id2]
	}
	return false
}

// Degree retorna el grado de un vértice: con cuántos grupos choca.
func (g *ConflictGraph) Degree(id int) int {
	return len(g.Adjacency[id])
}

// Neighbors retorna los ids de los grupos en conflicto con id, ordenados
// para iteración determinística.
func (g *ConflictGraph) Neighbors(id int) []int {
	neighbors := make([]int, 0, len(g.Adjacency[id]))
	for n := range g.Adjacency[id] {
		neighbors = append(neighbors, n)
	}
	sort.Ints(neighbors)
	return neighbors
}

// NumVertices retorna el número de vértices.
func (g *ConflictGraph) NumVertices() int {
	return len(g.Vertices)
}

// NumEdges retorna el número de aristas (dividido por 2 porque es no dirigido).
func (g *ConflictGraph) NumEdges() int {
	total := 0
	for _, adj := range g.Adjacency {
		total += len(adj)
	}
	return total / 2
}

// BuildFromGroups construye el grafo a partir del catálogo de secciones,
// comparando cada par de grupos una sola vez. Dos grupos del mismo curso
// también se marcan en conflicto: un individuo nunca lleva un curso
// repetido, así que tratarlos como adyacentes unifica ambos chequeos.
func BuildFromGroups(groups map[int]domain.Group) *ConflictGraph {
	g := New()

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		g.AddVertex(groups[id])
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g1 := groups[ids[i]]
			g2 := groups[ids[j]]
			if areConflicting(g1, g2) {
				g.AddEdge(g1.ID, g2.ID)
			}
		}
	}

	return g
}

// areConflicting determina si dos grupos rompen una restricción dura.
func areConflicting(g1, g2 domain.Group) bool {
	// Mismo curso: a lo más una sección por curso en un horario
	if g1.CourseID == g2.CourseID {
		return true
	}

	// Reuniones superpuestas
	return g1.ConflictsWith(g2)
}
