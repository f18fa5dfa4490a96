package tour

import (
	"time"

	"github.com/tkruke/roundtrip/grid"
)

// cancelCheckMask gates context polling to every 4096 recursive calls,
// keeping cancellation support off the hot path.
const cancelCheckMask = 4095

// returnEdge is one dynamically re-enabled interior→rim edge. The edge
// points from the interior neighbour of the next expected rim vertex back
// to that rim vertex, so an excursion into the interior keeps exactly one
// way to resume the clockwise rim walk.
type returnEdge struct {
	from, to int
}

// engine holds all search data for one run. A dedicated engine struct
// (rather than closures over shared slices) keeps the hot-path state
// predictable and the unwind discipline visible.
type engine struct {
	topo *grid.Topology
	opts Options

	// Mutable search state, exclusively owned for the duration of the run.
	visited []bool       // per-vertex visitation, separate from adjacency
	path    []int        // tour under construction; len == recursion depth
	rimSeen int          // rim vertices on the current path, in clockwise order
	open    []returnEdge // currently opened return edges, innermost last

	met   Metrics
	tours [][]int

	start time.Time
	steps int  // sparse cancellation-check counter
	stop  bool // cancellation or first-tour stop signal
	err   error
}

// Enumerate runs one exhaustive depth-first search over topo from
// StartVertex and returns the accepted-tour count together with the run's
// metrics. The search is deterministic: a fixed start vertex and ascending
// neighbour order make repeated runs byte-identical.
//
// On context cancellation the partial Result gathered so far is returned
// along with the context's error.
func Enumerate(topo *grid.Topology, opts ...Option) (Result, error) {
	if topo == nil {
		return Result{}, ErrNilTopology
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.ProgressInterval < 1 {
		o.ProgressInterval = DefaultProgressInterval
	}

	e := &engine{
		topo:    topo,
		opts:    o,
		visited: make([]bool, topo.Vertices()),
		path:    make([]int, 0, topo.Vertices()),
		open:    make([]returnEdge, 0, topo.RimLen()),
	}

	e.start = time.Now()
	e.search(StartVertex)
	e.met.Duration = time.Since(e.start)

	res := Result{
		Solutions: e.met.Tours,
		Tours:     e.tours,
		Metrics:   e.met,
	}

	return res, e.err
}

// Count is a convenience wrapper: build the cols×rows topology and count
// its tours with default options.
func Count(cols, rows int) (int64, error) {
	topo, err := grid.NewTopology(cols, rows)
	if err != nil {
		return 0, err
	}
	res, err := Enumerate(topo)
	if err != nil {
		return 0, err
	}

	return res.Solutions, nil
}

// cancelled polls the context once every cancelCheckMask+1 calls.
func (e *engine) cancelled() bool {
	e.steps++
	if e.steps&cancelCheckMask != 0 {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.err = e.opts.Ctx.Err()
		e.stop = true

		return true
	default:
		return false
	}
}

// accept records a completed tour: the current path plus the vertex being
// entered. The closing edge back to StartVertex needs no check — the
// directional constraints leave no other way to have reached this depth.
func (e *engine) accept(last int) {
	e.met.Tours++
	if e.opts.RecordTours {
		t := make([]int, len(e.path)+1)
		copy(t, e.path)
		t[len(e.path)] = last
		e.tours = append(e.tours, t)
	}
	if e.opts.Progress != nil && e.met.Tours%e.opts.ProgressInterval == 0 {
		e.opts.Progress(time.Since(e.start), e.met.Tours)
	}
	if e.opts.FirstOnly {
		e.stop = true
	}
}

// search visits vertex v: the Enter / ExploreNeighbors / Backtrack states
// of one recursive frame. Rejections are ordinary returns, never errors.
func (e *engine) search(v int) {
	e.met.Calls++
	if e.stop || e.cancelled() {
		return
	}

	// Enter: advance rim progress; a tour must finish visiting rim vertices
	// exactly when it finishes visiting all vertices, so running out of rim
	// with interior remaining kills the branch immediately.
	atRim := e.topo.IsRim(v)
	if atRim {
		e.rimSeen++
		if e.rimSeen == e.topo.RimLen() && len(e.path)+1 < e.topo.Vertices() {
			e.met.RimExhausted++
			e.rimSeen--

			return
		}
	}

	// Completion: v is the last unvisited vertex.
	if len(e.path)+1 == e.topo.Vertices() {
		e.accept(v)
		if atRim {
			e.rimSeen--
		}

		return
	}

	e.visited[v] = true
	e.path = append(e.path, v)

	opened := false
	var i int
	for _, i = range e.topo.Neighbors(v) {
		if e.stop {
			break
		}
		if e.visited[i] {
			continue
		}
		ok := true
		if atRim {
			if !e.topo.IsRim(i) {
				// Leaving the rim is only allowed when a return edge can be
				// opened toward the next expected rim vertex.
				ok = e.openReturnEdge()
				opened = opened || ok
			}
		} else if !e.topo.IsRim(i) {
			ok = e.allowInteriorStep(v, i)
		}
		if ok {
			e.search(i)
		}
	}

	// Return edges opened by ancestors and pointing out of v.
	var k int
	for k = 0; k < len(e.open) && !e.stop; k++ {
		if e.open[k].from == v && !e.visited[e.open[k].to] {
			e.search(e.open[k].to)
		}
	}

	// Backtrack: undo everything this frame did, innermost first.
	e.visited[v] = false
	e.path = e.path[:len(e.path)-1]
	if opened {
		e.open = e.open[:len(e.open)-1]
	}
	if atRim {
		e.rimSeen--
	}
	e.met.Backtracks++
}

// openReturnEdge locates the unvisited interior neighbour of the next
// expected rim vertex and opens the edge from it back to that rim vertex.
// Reports false — forbidding the interior step — when no such neighbour
// exists (the next rim vertex is a corner, or its interior neighbour is
// already on the path). The caller's frame owns the opened edge and closes
// it on unwind.
func (e *engine) openReturnEdge() bool {
	next := e.topo.RimVertex(e.rimSeen)
	from := -1
	var j int
	for _, j = range e.topo.Neighbors(next) {
		if !e.topo.IsRim(j) && !e.visited[j] {
			from = j
		}
	}
	if from < 0 {
		return false
	}
	e.open = append(e.open, returnEdge{from: from, to: next})

	return true
}
