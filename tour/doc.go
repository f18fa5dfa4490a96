// Package tour enumerates the closed tours of a grid.Topology: directed
// paths from vertex 0 that visit every vertex exactly once and close back
// on themselves, i.e. the Hamiltonian cycles of the n×m grid graph.
//
// What:
//
//   - Enumerate: a single-threaded recursive depth-first search with three
//     pruning mechanisms layered on the topology's clockwise rim
//     constraint:
//   - Rim-progress rejection: visiting the last rim vertex while interior
//     vertices remain unvisited can never complete, and fails at once.
//   - Return edges: stepping off the rim into the interior is permitted
//     only when the edge from the interior back to the next expected rim
//     vertex can be opened, so every excursion keeps a way to resume the
//     clockwise walk. Each recursive frame opens at most one such edge
//     and is guaranteed to close it on unwind.
//   - Regional-split heuristics: interior steps whose local visited
//     pattern indicates the unvisited region is about to be cut in two
//     are skipped (see prune.go).
//   - Count: topology construction plus enumeration in one call.
//   - Metrics/Result: passive counters describing the search tree.
//
// Why:
//
//   - Unpruned Hamiltonian-cycle search dies around 6×6; with these rules
//     the same board takes tens of thousands of nodes instead.
//   - Accepting on vertex count alone (no final-edge check) is sound here:
//     the only edge into vertex 0 that survives the directional pruning is
//     the clockwise one from the last rim vertex, so a path covering all
//     vertices has nowhere else to end.
//
// Calibration (known Hamiltonian-cycle counts of grid graphs):
//
//	2×2 → 1     2×m → 1     3×4 → 2     3×6 → 4
//	4×4 → 6     4×5 → 14    4×6 → 37    5×6 → 154    6×6 → 1072
//
// Concurrency:
//
//   - One run owns all mutable state; recursion depth is bounded by n*m.
//     A Topology may back many runs, sequentially or from different
//     goroutines, since it is never written after construction.
//
// Complexity:
//
//   - Worst case exponential in n*m (exhaustive enumeration); the pruning
//     determines the practical reach. Per node: O(degree) work.
//   - Memory: O(n*m) for path, visited set and open return edges.
//
// Errors:
//
//   - ErrNilTopology: nil topology.
//   - context.Canceled / context.DeadlineExceeded: run cancelled via
//     WithContext; the partial Result is still returned.
package tour
