package tour

// Regional-split heuristics for interior→interior steps.
//
// Committing to an interior edge can cut the remaining unvisited interior
// into two regions that no single closed loop can stitch back together.
// The full condition is expensive; these checks approximate it with local
// visited/unvisited patterns around the target vertex, looking one step
// ahead in the travel direction, plus a "must go left" rule near the rim:
// when the rim lies immediately to the current vertex's left and is still
// unvisited, the rim itself acts as the single corridor back toward the
// endpoint, and turning right would strand it.
//
// The patterns are informal topological arguments, not a proven algorithm;
// the calibration counts in engine_test.go are the ground truth that keeps
// them honest.

// allowInteriorStep reports whether the step from interior vertex v to the
// unvisited interior vertex i may be explored. v and i are lattice
// neighbours, so exactly one of the four direction cases applies, and both
// being interior keeps every probed index in bounds.
func (e *engine) allowInteriorStep(v, i int) bool {
	n := e.topo.Cols()
	switch {
	case v-i == n: // north
		if !e.visited[v+n] && e.topo.IsRim(v-1) && !e.visited[v-1] {
			return false // must go left
		}
		if (e.visited[i-n] || e.visited[i-n-1] || e.visited[i-n+1]) &&
			!e.visited[i-1] && !e.visited[i+1] {
			return false // far side blocked, both flanks open: split ahead
		}
	case i-v == n: // south
		if !e.visited[v-n] && e.topo.IsRim(v+1) && !e.visited[v+1] {
			return false
		}
		if (e.visited[i+n] || e.visited[i+n-1] || e.visited[i+n+1]) &&
			!e.visited[i-1] && !e.visited[i+1] {
			return false
		}
	case v-i == 1: // west
		if !e.visited[v+1] && e.topo.IsRim(v+n) && !e.visited[v+n] {
			return false
		}
		if (e.visited[i-1] || e.visited[i-1+n] || e.visited[i-1-n]) &&
			!e.visited[i+n] && !e.visited[i-n] {
			return false
		}
	case i-v == 1: // east
		// Heading east is already the "left" turn relative to the clockwise
		// rim walk, so only the far-side pattern applies.
		if (e.visited[i+1] || e.visited[i+1+n] || e.visited[i+1-n]) &&
			!e.visited[i+n] && !e.visited[i-n] {
			return false
		}
	}

	return true
}
