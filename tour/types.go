// Package tour defines options, metrics, and sentinel errors for the
// tour subpackage of github.com/tkruke/roundtrip.
package tour

import (
	"context"
	"errors"
	"time"
)

// StartVertex is the fixed origin of every enumeration run. Vertex 0 is
// the top-left corner; together with the clockwise rim constraint this
// pins one canonical traversal per undirected tour.
const StartVertex = 0

// DefaultProgressInterval is the accepted-tour spacing between progress
// callbacks when WithProgressInterval is not supplied.
const DefaultProgressInterval = 10_000

// ErrNilTopology is returned when a nil *grid.Topology is passed to
// Enumerate.
var ErrNilTopology = errors.New("tour: topology is nil")

// ProgressFunc receives advisory progress reports: elapsed wall-clock time
// since the run started and the number of tours accepted so far. It is
// called synchronously from the search; keep it cheap.
type ProgressFunc func(elapsed time.Duration, tours int64)

// Option configures optional behavior of an enumeration run.
// Use with Enumerate(topo, opts...).
type Option func(*Options)

// Options holds configurable parameters for one enumeration run.
// The zero value is not meaningful; start from DefaultOptions.
type Options struct {
	// Ctx allows cooperative cancellation; defaults to context.Background().
	// The search polls it sparsely (every few thousand recursive calls), so
	// cancellation is prompt but never on the hot path.
	Ctx context.Context

	// Progress, if non-nil, is invoked whenever the accepted-tour count
	// crosses a multiple of ProgressInterval. Purely advisory.
	Progress ProgressFunc

	// ProgressInterval is the tour-count spacing between Progress calls.
	// Values below 1 fall back to DefaultProgressInterval.
	ProgressInterval int64

	// RecordTours, if true, collects every accepted tour as a copy of the
	// solution path. Off by default: counting does not need the copies.
	RecordTours bool

	// FirstOnly, if true, stops the search after the first accepted tour.
	// Useful as a cheap feasibility probe.
	FirstOnly bool
}

// DefaultOptions returns the Options used when none are supplied:
// background context, no progress reporting, counting only.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Progress:         nil,
		ProgressInterval: DefaultProgressInterval,
		RecordTours:      false,
		FirstOnly:        false,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress returns an Option that installs fn as the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithProgressInterval returns an Option that sets the accepted-tour
// spacing between progress callbacks.
func WithProgressInterval(every int64) Option {
	return func(o *Options) {
		if every > 0 {
			o.ProgressInterval = every
		}
	}
}

// WithTourRecording returns an Option that enables collection of the
// accepted tours on the Result.
func WithTourRecording() Option {
	return func(o *Options) {
		o.RecordTours = true
	}
}

// WithFirstTourOnly returns an Option that stops the run after one
// accepted tour.
func WithFirstTourOnly() Option {
	return func(o *Options) {
		o.FirstOnly = true
	}
}

// Metrics describes the shape of one finished search tree. All counters
// are monotonic and owned by the run; the search only ever increments
// them, never branches on them.
type Metrics struct {
	// Calls counts recursive search invocations (nodes of the search tree).
	Calls int64

	// RimExhausted counts branches rejected because every rim vertex was
	// visited while interior vertices remained — the tour could no longer
	// close back toward the start.
	RimExhausted int64

	// Backtracks counts frames that exhausted all their neighbours and
	// unwound normally.
	Backtracks int64

	// ClosureFailures is reserved: the directional constraints guarantee
	// that a path visiting all vertices closes back to the start, so the
	// final-edge check this would count is never performed. Kept so the
	// reported counter block stays complete.
	ClosureFailures int64

	// Tours counts accepted tours.
	Tours int64

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Result is the aggregate outcome of one enumeration run.
type Result struct {
	// Solutions is the total number of accepted tours.
	Solutions int64

	// Tours holds the accepted tours when WithTourRecording is set; each
	// entry is the full vertex sequence starting at StartVertex, of length
	// Vertices(). The closing edge back to the start is implicit.
	Tours [][]int

	// Metrics is the search-tree shape of the run.
	Metrics Metrics
}
