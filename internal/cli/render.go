package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkruke/roundtrip/grid"
	"github.com/tkruke/roundtrip/tour"
)

var (
	colorCyan = lipgloss.Color("36")  // primary values
	colorGray = lipgloss.Color("245") // labels
	colorDim  = lipgloss.Color("240") // secondary counters

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

// renderSummary formats the counter block of one finished run.
func renderSummary(n, m int, res tour.Result) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%d×%d board: %s tours found",
		n, m, styleNumber.Render(fmt.Sprintf("%d", res.Solutions)))))
	b.WriteByte('\n')

	counters := []struct {
		label string
		value int64
	}{
		{"search calls", res.Metrics.Calls},
		{"rim rejections", res.Metrics.RimExhausted},
		{"backtracks", res.Metrics.Backtracks},
		{"closure checks", res.Metrics.ClosureFailures},
	}
	for _, c := range counters {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-14s", c.label)),
			styleDim.Render(fmt.Sprintf("%d", c.value))))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-14s", "duration")),
		styleDim.Render(res.Metrics.Duration.String())))

	return b.String()
}

// renderTour draws one closed tour as a box-drawing diagram: dots joined
// by the segments the tour uses, the loop closing back to the top-left
// corner. Example, the unique 2×2 tour:
//
//	•──•
//	│  │
//	•──•
func renderTour(topo *grid.Topology, path []int) string {
	horiz := make(map[int]bool) // key: left vertex of a used horizontal edge
	vert := make(map[int]bool)  // key: upper vertex of a used vertical edge
	for k := range path {
		u, v := path[k], path[(k+1)%len(path)]
		if u > v {
			u, v = v, u
		}
		if v-u == 1 {
			horiz[u] = true
		} else {
			vert[u] = true
		}
	}

	var b strings.Builder
	var row, col, v int
	for row = 0; row < topo.Rows(); row++ {
		for col = 0; col < topo.Cols(); col++ {
			v = topo.VertexAt(row, col)
			b.WriteRune('•')
			if col+1 < topo.Cols() {
				if horiz[v] {
					b.WriteString("──")
				} else {
					b.WriteString("  ")
				}
			}
		}
		b.WriteByte('\n')
		if row+1 == topo.Rows() {
			break
		}
		for col = 0; col < topo.Cols(); col++ {
			v = topo.VertexAt(row, col)
			if vert[v] {
				b.WriteRune('│')
			} else {
				b.WriteRune(' ')
			}
			if col+1 < topo.Cols() {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
