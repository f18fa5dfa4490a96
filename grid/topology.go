package grid

import "fmt"

// latticeOffsets enumerates the four orthogonal directions as (dRow, dCol)
// pairs. Order is irrelevant here; neighbour iteration order is fixed by
// the ascending-vertex sort in buildNeighbors.
var latticeOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NewTopology builds the pruned grid graph for a cols×rows dot matrix.
//
// Construction is a pure, total function of validated dimensions: lattice
// adjacency first, then the clockwise rim constraint, then the removal of
// interior→rim edges. The n ≤ m convention of the interactive shell is
// deliberately NOT enforced here: a transposed topology must build so that
// count(n,m) == count(m,n) can be exercised directly.
//
// Returns ErrDimensionTooSmall or ErrOddVertexCount on invalid dimensions.
// Complexity: O((n*m)²) time and memory.
func NewTopology(cols, rows int) (*Topology, error) {
	// 1. Validate loudly; the search engine assumes these invariants hold.
	if cols < MinDimension || rows < MinDimension {
		return nil, fmt.Errorf("grid: %d×%d: %w", cols, rows, ErrDimensionTooSmall)
	}
	if (cols*rows)&1 == 1 {
		return nil, fmt.Errorf("grid: %d×%d: %w", cols, rows, ErrOddVertexCount)
	}

	t := &Topology{
		cols:     cols,
		rows:     rows,
		vertices: cols * rows,
	}
	t.adj = make([]bool, t.vertices*t.vertices)

	// 2. Lattice adjacency, both directions, no wraparound at row/column edges.
	var v, row, col int
	for v = 0; v < t.vertices; v++ {
		row, col = v/cols, v%cols
		if col+1 < cols {
			t.setEdge(v, v+1)
			t.setEdge(v+1, v)
		}
		if row+1 < rows {
			t.setEdge(v, v+cols)
			t.setEdge(v+cols, v)
		}
	}

	// 3. Clockwise rim sequence and O(1) membership index.
	t.buildRim()

	// 4. Directional pruning of the rim.
	t.pruneRim()

	// 5. Freeze per-vertex neighbour lists for the search's hot loop.
	t.buildNeighbors()

	return t, nil
}

// Transpose builds the rows×cols topology. Grid graphs are isomorphic
// under transpose, so tour counts over both must agree.
func (t *Topology) Transpose() (*Topology, error) {
	return NewTopology(t.rows, t.cols)
}

// setEdge records the directed edge u→v.
func (t *Topology) setEdge(u, v int) { t.adj[u*t.vertices+v] = true }

// clearEdge removes the directed edge u→v.
func (t *Topology) clearEdge(u, v int) { t.adj[u*t.vertices+v] = false }

// buildRim walks the boundary clockwise — top row left→right, right column
// top→bottom, bottom row right→left, left column bottom→top — emitting each
// vertex once. The result has exactly 2n+2m-4 entries.
func (t *Topology) buildRim() {
	n, m := t.cols, t.rows
	t.rim = make([]int, 0, 2*n+2*m-4)
	var i int
	for i = 0; i < n; i++ { // top row
		t.rim = append(t.rim, i)
	}
	for i = 1; i < m; i++ { // right column, top corner already emitted
		t.rim = append(t.rim, i*n+n-1)
	}
	for i = n - 2; i >= 0; i-- { // bottom row, right→left
		t.rim = append(t.rim, (m-1)*n+i)
	}
	for i = m - 2; i >= 1; i-- { // left column, bottom→top
		t.rim = append(t.rim, i*n)
	}

	t.rimPos = make([]int, t.vertices)
	for i = range t.rimPos {
		t.rimPos[i] = -1
	}
	for i = range t.rim {
		t.rimPos[t.rim[i]] = i
	}
}

// pruneRim removes (a) the anticlockwise edge between every pair of
// consecutive rim vertices, including the pair closing the ring, and
// (b) every edge from an interior vertex out to a rim neighbour. The (b)
// edges are the ones a search re-enables dynamically, one at a time, as
// return edges; rim→interior edges stay, so excursions can still start.
func (t *Topology) pruneRim() {
	ringLen := len(t.rim)
	var k, a, b int
	for k = 0; k < ringLen; k++ {
		a = t.rim[k]
		b = t.rim[(k+1)%ringLen]
		t.clearEdge(b, a)
	}

	var r, u, row, col, nr, nc int
	var d [2]int
	for _, r = range t.rim {
		row, col = r/t.cols, r%t.cols
		for _, d = range latticeOffsets {
			nr, nc = row+d[0], col+d[1]
			if nr < 0 || nr >= t.rows || nc < 0 || nc >= t.cols {
				continue
			}
			u = nr*t.cols + nc
			if t.rimPos[u] < 0 {
				t.clearEdge(u, r)
			}
		}
	}
}

// buildNeighbors materializes the outgoing neighbour list of every vertex
// in ascending order, fixing the deterministic branch order of any search.
func (t *Topology) buildNeighbors() {
	t.neighbors = make([][]int, t.vertices)
	var u, v int
	for u = 0; u < t.vertices; u++ {
		row := make([]int, 0, 4)
		for v = 0; v < t.vertices; v++ {
			if t.adj[u*t.vertices+v] {
				row = append(row, v)
			}
		}
		t.neighbors[u] = row
	}
}
