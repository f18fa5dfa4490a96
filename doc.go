// Package roundtrip counts the closed loops of a dot-matrix puzzle:
// connect every dot of an n×m grid with a single closed path using only
// horizontal and vertical unit segments, visiting every dot exactly once.
// In graph terms, it enumerates the Hamiltonian cycles of the n×m grid graph.
//
// 🚀 What is roundtrip?
//
//	A small, focused enumeration engine:
//		• grid — the immutable grid topology: adjacency relation plus the
//		  clockwise rim sequence that drives the search's direction constraint
//		• tour — the pruned depth-first backtracking search, its run metrics,
//		  and functional options (cancellation, progress, tour recording)
//		• cmd/roundtrip — a terminal shell that prompts for dimensions,
//		  validates them, runs the engine and prints the counters
//
// ✨ Why the pruning matters
//
//	Plain Hamiltonian-cycle enumeration blows up even for modest boards.
//	roundtrip halves the space by forcing clockwise rim traversal, bounds
//	interior excursions with a single dynamically opened "return edge" per
//	step off the rim, and rejects branches that would strand an unvisited
//	interior region. A 6×6 board finishes in well under a second.
//
// Quick ASCII example, the unique 2×2 tour:
//
//	•──•
//	│  │
//	•──•
//
// Dive into grid/doc.go and tour/doc.go for the full contract, complexity
// notes, and the calibration table of known counts.
//
//	go get github.com/tkruke/roundtrip
package roundtrip
