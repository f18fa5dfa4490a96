// Package grid models an n×m dot matrix as a directed graph prepared for
// closed-tour enumeration.
//
// What:
//
//   - Topology: the fixed adjacency relation of the n×m grid graph
//     (vertices are lattice points, edges only the horizontal/vertical unit
//     segments) plus the clockwise rim sequence of boundary vertices.
//   - Directional pruning baked in at construction: edges between
//     consecutive rim vertices exist only in the clockwise direction, and
//     edges from a vertex one step inside the rim back out to its rim
//     neighbour are absent (a search re-enables them one at a time as
//     "return edges").
//   - Everything is immutable once built; one Topology can back any number
//     of sequential enumeration runs.
//
// Why:
//
//   - The clockwise constraint halves the search space: without it every
//     undirected tour would be found twice, once per traversal direction.
//   - The missing interior→rim edges force a tour to weave in and out of
//     the interior exactly in step with its progress around the boundary,
//     which is what makes the rim-progress pruning of package tour sound.
//
// Vertex numbering is row-major: vertex i sits at row i/n, column i%n,
// so the corners are 0, n-1, n*(m-1) and n*m-1. The rim sequence walks
// the top row left→right, the right column top→bottom, the bottom row
// right→left and the left column bottom→top; its length is 2n+2m-4.
//
// Complexity:
//
//   - NewTopology: O((n*m)²) time and memory for the dense relation.
//   - All accessors: O(1); Neighbors returns a precomputed slice.
//
// Errors:
//
//   - ErrDimensionTooSmall: a dimension is below 2.
//   - ErrOddVertexCount: n*m is odd — the grid graph is bipartite by
//     row+column parity, so no closed tour can exist and construction
//     refuses loudly rather than letting a search run to exhaustion.
package grid
