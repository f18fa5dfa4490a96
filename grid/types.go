// Package grid defines the Topology type and sentinel errors for the
// grid subpackage of github.com/tkruke/roundtrip.
package grid

import "errors"

// MinDimension is the smallest accepted value for either grid dimension.
// A single row or column of dots cannot carry a closed tour.
const MinDimension = 2

// Sentinel errors for topology construction.
var (
	// ErrDimensionTooSmall indicates a dimension below MinDimension.
	ErrDimensionTooSmall = errors.New("grid: each dimension must be at least 2")
	// ErrOddVertexCount indicates an odd n*m, which admits no closed tour.
	ErrOddVertexCount = errors.New("grid: vertex count n*m must be even")
)

// Topology is the immutable graph structure of an n×m dot grid.
//
// The adjacency relation is directed and already carries the clockwise rim
// constraint: anticlockwise edges between consecutive rim vertices and
// interior→rim edges are absent. Vertex identifiers are row-major ints in
// [0, n*m). Topology is safe for concurrent readers; it is never mutated
// after construction.
type Topology struct {
	cols int // n — number of columns (dots per row)
	rows int // m — number of rows

	vertices int // cols*rows

	adj       []bool  // dense directed relation, adj[u*vertices+v]
	neighbors [][]int // per-vertex outgoing neighbours, ascending

	rim    []int // boundary vertices in clockwise order, len 2n+2m-4
	rimPos []int // vertex → index into rim, -1 for interior vertices
}

// Cols returns n, the number of columns.
func (t *Topology) Cols() int { return t.cols }

// Rows returns m, the number of rows.
func (t *Topology) Rows() int { return t.rows }

// Vertices returns the total vertex count n*m.
func (t *Topology) Vertices() int { return t.vertices }

// RimLen returns the number of rim vertices, 2n+2m-4.
func (t *Topology) RimLen() int { return len(t.rim) }

// RimVertex returns the k-th rim vertex in clockwise order.
// k must be in [0, RimLen()).
func (t *Topology) RimVertex(k int) int { return t.rim[k] }

// Rim returns a copy of the clockwise rim sequence.
func (t *Topology) Rim() []int {
	out := make([]int, len(t.rim))
	copy(out, t.rim)

	return out
}

// IsRim reports whether v lies on the outer boundary of the grid.
func (t *Topology) IsRim(v int) bool { return t.rimPos[v] >= 0 }

// IsCorner reports whether v is one of the four corner vertices.
func (t *Topology) IsCorner(v int) bool {
	return v == 0 || v == t.cols-1 || v == t.vertices-t.cols || v == t.vertices-1
}

// Row returns the row of vertex v.
func (t *Topology) Row(v int) int { return v / t.cols }

// Col returns the column of vertex v.
func (t *Topology) Col(v int) int { return v % t.cols }

// VertexAt returns the vertex identifier at (row, col).
func (t *Topology) VertexAt(row, col int) int { return row*t.cols + col }

// HasEdge reports whether the directed edge u→v is present.
func (t *Topology) HasEdge(u, v int) bool { return t.adj[u*t.vertices+v] }

// Neighbors returns the outgoing neighbours of v in ascending order.
// The slice is shared internal state; callers must not modify it.
func (t *Topology) Neighbors(v int) []int { return t.neighbors[v] }
