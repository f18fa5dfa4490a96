package cli

import (
	"strings"
	"testing"

	"github.com/tkruke/roundtrip/grid"
	"github.com/tkruke/roundtrip/tour"
)

// TestRenderTour draws the unique 2×2 tour.
func TestRenderTour(t *testing.T) {
	topo, err := grid.NewTopology(2, 2)
	if err != nil {
		t.Fatalf("NewTopology error: %v", err)
	}
	got := renderTour(topo, []int{0, 1, 3, 2})
	want := "•──•\n│  │\n•──•\n"
	if got != want {
		t.Errorf("renderTour =\n%q\nwant\n%q", got, want)
	}
}

// TestRenderTour_SegmentCount checks a 4×4 tour: the drawing must contain
// exactly the 16 segments the tour uses.
func TestRenderTour_SegmentCount(t *testing.T) {
	topo, err := grid.NewTopology(4, 4)
	if err != nil {
		t.Fatalf("NewTopology error: %v", err)
	}
	res, err := tour.Enumerate(topo, tour.WithTourRecording())
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}
	out := renderTour(topo, res.Tours[0])

	horiz := strings.Count(out, "──")
	vert := strings.Count(out, "│")
	if horiz+vert != topo.Vertices() {
		t.Errorf("drawing uses %d horizontal + %d vertical segments; want %d total",
			horiz, vert, topo.Vertices())
	}
}

// TestRenderSummary checks the counter block carries every metric.
func TestRenderSummary(t *testing.T) {
	res := tour.Result{Solutions: 6}
	res.Metrics.Calls = 83
	res.Metrics.RimExhausted = 4
	res.Metrics.Backtracks = 73
	res.Metrics.Tours = 6

	out := renderSummary(4, 4, res)
	for _, want := range []string{"tours found", "search calls", "rim rejections", "backtracks", "closure checks", "duration", "83", "73"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
