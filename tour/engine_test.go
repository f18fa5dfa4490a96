package tour_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkruke/roundtrip/grid"
	"github.com/tkruke/roundtrip/tour"
)

// mustTopology builds a topology or fails the test.
func mustTopology(t *testing.T, cols, rows int) *grid.Topology {
	t.Helper()
	topo, err := grid.NewTopology(cols, rows)
	require.NoError(t, err)

	return topo
}

// TestEnumerate_CalibrationCounts pins the engine against the known
// Hamiltonian-cycle counts of small grid graphs. Any drift here is a
// pruning-logic bug, not a stale expectation: the values were verified
// independently (2×m ladders have a unique cycle, 4×4 has 6, 6×6 has 1072).
func TestEnumerate_CalibrationCounts(t *testing.T) {
	cases := []struct {
		cols, rows int
		want       int64
	}{
		{2, 2, 1},
		{2, 4, 1},
		{2, 6, 1},
		{2, 8, 1},
		{3, 4, 2},
		{3, 6, 4},
		{4, 4, 6},
		{4, 5, 14},
		{4, 6, 37},
		{5, 6, 154},
		{6, 6, 1072},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.cols, tc.rows), func(t *testing.T) {
			res, err := tour.Enumerate(mustTopology(t, tc.cols, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Solutions)
			assert.Equal(t, tc.want, res.Metrics.Tours)
		})
	}
}

// TestEnumerate_TourValidity records the six 4×4 tours and checks every
// structural property a closed tour must have: full coverage, lattice
// adjacency between consecutive vertices, a closing edge, degree two at
// every vertex, and both incident edges used at each corner.
func TestEnumerate_TourValidity(t *testing.T) {
	topo := mustTopology(t, 4, 4)
	res, err := tour.Enumerate(topo, tour.WithTourRecording())
	require.NoError(t, err)
	require.Len(t, res.Tours, 6)

	adjacent := func(u, v int) bool {
		dr := topo.Row(u) - topo.Row(v)
		dc := topo.Col(u) - topo.Col(v)
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}

		return dr+dc == 1
	}

	for ti, tr := range res.Tours {
		require.Len(t, tr, topo.Vertices(), "tour %d length", ti)
		assert.Equal(t, tour.StartVertex, tr[0], "tour %d start", ti)

		seen := make(map[int]bool, len(tr))
		for _, v := range tr {
			assert.False(t, seen[v], "tour %d revisits vertex %d", ti, v)
			seen[v] = true
		}

		// Undirected edge set of the tour, including the closing edge.
		degree := make(map[int]int, len(tr))
		link := make(map[int]map[int]bool, len(tr))
		for k := range tr {
			u, v := tr[k], tr[(k+1)%len(tr)]
			require.True(t, adjacent(u, v), "tour %d: %d and %d not lattice-adjacent", ti, u, v)
			degree[u]++
			degree[v]++
			if link[u] == nil {
				link[u] = make(map[int]bool)
			}
			if link[v] == nil {
				link[v] = make(map[int]bool)
			}
			link[u][v] = true
			link[v][u] = true
		}
		for v := 0; v < topo.Vertices(); v++ {
			assert.Equal(t, 2, degree[v], "tour %d: vertex %d degree", ti, v)
		}

		// Corners have exactly two grid neighbours; both must carry the tour.
		n := topo.Cols()
		corners := map[int][2]int{
			0:                  {1, n},
			n - 1:              {n - 2, 2*n - 1},
			topo.Vertices() - n: {topo.Vertices() - 2*n, topo.Vertices() - n + 1},
			topo.Vertices() - 1: {topo.Vertices() - 2, topo.Vertices() - 1 - n},
		}
		for c, nb := range corners {
			assert.True(t, link[c][nb[0]] && link[c][nb[1]],
				"tour %d: corner %d does not use both incident edges", ti, c)
		}
	}
}

// TestEnumerate_TransposeSymmetry: grid graphs are isomorphic under
// transpose, so the counts must agree even though the shell normally
// insists on n ≤ m.
func TestEnumerate_TransposeSymmetry(t *testing.T) {
	for _, dims := range [][2]int{{3, 4}, {4, 5}, {4, 6}, {5, 6}} {
		topo := mustTopology(t, dims[0], dims[1])
		tr, err := topo.Transpose()
		require.NoError(t, err)

		a, err := tour.Enumerate(topo)
		require.NoError(t, err)
		b, err := tour.Enumerate(tr)
		require.NoError(t, err)
		assert.Equal(t, a.Solutions, b.Solutions, "%dx%d vs transpose", dims[0], dims[1])
	}
}

// TestEnumerate_Deterministic: two runs over the same topology must agree
// on every counter, not just the total.
func TestEnumerate_Deterministic(t *testing.T) {
	topo := mustTopology(t, 4, 5)
	a, err := tour.Enumerate(topo)
	require.NoError(t, err)
	b, err := tour.Enumerate(topo)
	require.NoError(t, err)

	assert.Equal(t, a.Solutions, b.Solutions)
	assert.Equal(t, a.Metrics.Calls, b.Metrics.Calls)
	assert.Equal(t, a.Metrics.RimExhausted, b.Metrics.RimExhausted)
	assert.Equal(t, a.Metrics.Backtracks, b.Metrics.Backtracks)
}

// TestEnumerate_MetricsShape pins the full counter block for 4×4. The
// search tree is deterministic, so these are exact, not approximate.
func TestEnumerate_MetricsShape(t *testing.T) {
	res, err := tour.Enumerate(mustTopology(t, 4, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(83), res.Metrics.Calls)
	assert.Equal(t, int64(4), res.Metrics.RimExhausted)
	assert.Equal(t, int64(73), res.Metrics.Backtracks)
	assert.Equal(t, int64(0), res.Metrics.ClosureFailures)
	assert.Equal(t, int64(6), res.Metrics.Tours)
	assert.Greater(t, res.Metrics.Duration, time.Duration(0))
}

// TestEnumerate_Progress checks the advisory callback fires at every
// crossing of the configured interval, with monotonic counts.
func TestEnumerate_Progress(t *testing.T) {
	var counts []int64
	_, err := tour.Enumerate(mustTopology(t, 5, 6),
		tour.WithProgressInterval(50),
		tour.WithProgress(func(elapsed time.Duration, tours int64) {
			assert.GreaterOrEqual(t, elapsed, time.Duration(0))
			counts = append(counts, tours)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 100, 150}, counts) // 5×6 has 154 tours
}

// TestEnumerate_FirstTourOnly stops after one accepted tour.
func TestEnumerate_FirstTourOnly(t *testing.T) {
	full, err := tour.Enumerate(mustTopology(t, 6, 6))
	require.NoError(t, err)

	res, err := tour.Enumerate(mustTopology(t, 6, 6), tour.WithFirstTourOnly(), tour.WithTourRecording())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Solutions)
	require.Len(t, res.Tours, 1)
	assert.Less(t, res.Metrics.Calls, full.Metrics.Calls)
}

// TestEnumerate_ContextCancelled: a pre-cancelled context aborts the run
// promptly; the partial metrics are still returned with the error.
func TestEnumerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tour.Enumerate(mustTopology(t, 6, 6), tour.WithContext(ctx))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, res.Metrics.Calls, int64(10_000)) // stopped at the first poll
}

// TestEnumerate_NilTopology returns the sentinel.
func TestEnumerate_NilTopology(t *testing.T) {
	_, err := tour.Enumerate(nil)
	assert.True(t, errors.Is(err, tour.ErrNilTopology))
}

// TestCount covers the construction+enumeration wrapper, including the
// loud refusal of odd boards.
func TestCount(t *testing.T) {
	got, err := tour.Count(4, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)

	_, err = tour.Count(3, 5)
	assert.True(t, errors.Is(err, grid.ErrOddVertexCount))
}
