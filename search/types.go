// File: types.go
// Role: result types, modes, options and sentinel errors.

package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tollway/core"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNegativeCoupons is returned by Tollway for a negative coupon budget.
	ErrNegativeCoupons = errors.New("search: coupon budget is negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode for an unrecognized name.
	ErrUnknownMode = errors.New("search: unknown mode")
)

// UnlimitedCoupons lifts the coupon budget. The effective budget is always
// capped at the graph's tolled edge count.
const UnlimitedCoupons = math.MaxInt

// Mode names a search strategy.
type Mode string

// Supported modes.
const (
	ModeBFS      Mode = "bfs"
	ModeDijkstra Mode = "dijkstra"
	ModeAStar    Mode = "astar"
	ModeTollway  Mode = "tollway"
)

// Modes lists every supported mode in a stable order.
func Modes() []Mode {
	return []Mode{ModeBFS, ModeDijkstra, ModeAStar, ModeTollway}
}

// ParseMode resolves a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// State is a search node of the coupon-aware search: a vertex together with
// the number of coupons still available on arrival. Two states of the same
// vertex with different budgets are distinct queue keys.
type State struct {
	Vertex  string
	Coupons int
}

// Leg is one traversed edge of a result path.
type Leg struct {
	From       string
	To         string
	Weight     float64 // full edge weight
	Toll       float64 // edge toll
	Cost       float64 // what was paid: Weight, or Weight-Toll when CouponUsed
	CouponUsed bool
}

// Result describes the outcome of a point-to-point search.
//
// An unreachable target is not an error: Found is false and Path is empty.
type Result struct {
	// Found reports whether target was reached.
	Found bool

	// Path lists the vertices from start to target inclusive.
	Path []string

	// Cost is the sum of Legs[i].Cost. For BFS it is the real weight of the
	// hop-minimal path that was chosen.
	Cost float64

	// Hops is len(Legs).
	Hops int

	// Legs holds one entry per traversed edge.
	Legs []Leg

	// Settled counts queue extractions.
	Settled int
}

// TollwayResult extends Result with coupon accounting.
type TollwayResult struct {
	Result

	// CouponsUsed counts legs paid with a coupon.
	CouponsUsed int

	// CouponsLeft is the requested budget minus CouponsUsed.
	CouponsLeft int
}

// Stats summarizes one finished search for an Observer.
type Stats struct {
	Mode     Mode
	Found    bool
	Settled  int // queue extractions
	Relaxed  int // successful relaxations
	Reopened int // settled states improved again
	Duration time.Duration
}

// Observer receives Stats after every successful search call.
type Observer interface {
	ObserveSearch(Stats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Stats)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Stats) { f(s) }

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the resolved configuration of one search call.
type Options struct {
	// Ctx allows cancellation; it is checked once per extraction.
	Ctx context.Context

	// Heuristic estimates the remaining cost from a vertex to the target.
	// nil selects the mode default (Euclidean for AStar, zero otherwise).
	Heuristic core.Metric

	// Logger receives debug events; zerolog.Nop() by default.
	Logger zerolog.Logger

	// Observer, if set, receives Stats after each search.
	Observer Observer

	err error
}

// DefaultOptions returns Options with a background context, no heuristic
// override, a no-op logger and no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// WithHeuristic overrides the heuristic. A nil metric is an option violation.
func WithHeuristic(h core.Metric) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers an Observer. nil clears it.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithContext sets a context for cancellation. A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: context is nil", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
