package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/tollway/builder"
	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/internal/config"
	"github.com/katalvlaran/tollway/internal/logging"
	"github.com/katalvlaran/tollway/matrix"
	"github.com/katalvlaran/tollway/metrics"
	"github.com/katalvlaran/tollway/search"
	"github.com/katalvlaran/tollway/spatial"
)

// errUsage marks flag errors already reported by the flag set.
var errUsage = errors.New("invalid usage")

// maxMatrixVertices bounds -matrix output.
const maxMatrixVertices = 16

type cliFlags struct {
	configPath string
	mode       string
	from, to   string
	fromXY     string
	toXY       string
	coupons    string
	heuristic  string
	dumpMatrix bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, map[string]bool, error) {
	var f cliFlags
	fs := flag.NewFlagSet("tollway", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	fs.StringVar(&f.mode, "mode", "", "search mode: bfs, dijkstra, astar or tollway")
	fs.StringVar(&f.from, "from", "", "start vertex id, e.g. 0,0")
	fs.StringVar(&f.to, "to", "", "target vertex id")
	fs.StringVar(&f.fromXY, "from-xy", "", "start coordinate x,y (snapped to the nearest vertex)")
	fs.StringVar(&f.toXY, "to-xy", "", "target coordinate x,y (snapped to the nearest vertex)")
	fs.StringVar(&f.coupons, "coupons", "", "coupon budget for tollway mode, or \"unlimited\"")
	fs.StringVar(&f.heuristic, "heuristic", "", "A* heuristic (astar mode only): euclidean, taxicab, greatcircle or zero")
	fs.BoolVar(&f.dumpMatrix, "matrix", false, "print the weight matrix of small networks")
	if err := fs.Parse(args); err != nil {
		return f, nil, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return f, nil, errUsage
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, set, nil
}

// resolveConfig layers flags over the loaded configuration.
func resolveConfig(f cliFlags, set map[string]bool) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if set["mode"] {
		cfg.Search.Mode = f.mode
	}
	if set["from"] {
		cfg.Query.From = f.from
	}
	if set["to"] {
		cfg.Query.To = f.to
	}
	if set["heuristic"] {
		cfg.Search.Heuristic = f.heuristic
	}
	if set["coupons"] {
		n, err := config.ParseCoupons(f.coupons)
		if err != nil {
			return cfg, err
		}
		cfg.Search.Coupons = n
	}

	return cfg, cfg.Validate()
}

// run is main without the process plumbing.
//
// Steps:
//  1. Load .env, parse flags, resolve and validate the configuration.
//  2. Build the grid network.
//  3. Resolve endpoints, snapping -from-xy/-to-xy through a spatial index.
//  4. Run the search with a logger and a metrics observer attached.
//  5. Print the route, then log the metrics snapshot.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// 1) Configuration
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(f, set)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging, stderr)

	// 2) Network
	g, err := builder.Build(builder.Grid(cfg.Network.Rows, cfg.Network.Cols), cfg.Network.BuilderOptions()...)
	if err != nil {
		return fmt.Errorf("build network: %w", err)
	}
	st := g.Stats()
	log.Info().
		Int("vertices", st.VertexCount).
		Int("edges", st.EdgeCount).
		Int("tolled", st.TolledEdgeCount).
		Float64("total_toll", st.TotalToll).
		Msg("network built")

	if f.dumpMatrix {
		if err = printMatrix(stdout, g); err != nil {
			return err
		}
	}

	// 3) Endpoints
	from, to, err := endpoints(g, cfg.Query, f, log)
	if err != nil {
		return err
	}

	// 4) Search
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg, "tollway")
	if err != nil {
		return err
	}
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(log),
		search.WithObserver(col),
	}
	mode, err := search.ParseMode(cfg.Search.Mode)
	if err != nil {
		return err
	}
	if mode == search.ModeAStar {
		h, err := cfg.Search.Metric()
		if err != nil {
			return err
		}
		if h != nil {
			opts = append(opts, search.WithHeuristic(h))
		}
	}
	var (
		res     search.Result
		tollRes *search.TollwayResult
	)
	switch mode {
	case search.ModeBFS:
		res, err = search.BFS(g, from, to, opts...)
	case search.ModeDijkstra:
		res, err = search.Dijkstra(g, from, to, opts...)
	case search.ModeAStar:
		res, err = search.AStar(g, from, to, opts...)
	case search.ModeTollway:
		var tr search.TollwayResult
		tr, err = search.Tollway(g, from, to, cfg.Search.CouponBudget(), opts...)
		res, tollRes = tr.Result, &tr
	}
	if err != nil {
		return fmt.Errorf("%s search: %w", mode, err)
	}

	// 5) Report
	printResult(stdout, mode, from, to, res, tollRes)

	samples, err := metrics.Snapshot(reg)
	if err != nil {
		return err
	}
	for _, s := range samples {
		log.Debug().Str("metric", s.Name).Str("labels", s.Labels).Float64("value", s.Value).Msg("metrics snapshot")
	}

	return nil
}

// endpoints picks the query vertices, preferring coordinates when given.
func endpoints(g *core.Graph, q config.Query, f cliFlags, log zerolog.Logger) (string, string, error) {
	from, to := q.From, q.To
	if f.fromXY == "" && f.toXY == "" {
		return from, to, nil
	}

	idx, err := spatial.NewIndex(g)
	if err != nil {
		return "", "", err
	}
	snap := func(flagName, raw string, dst *string) error {
		if raw == "" {
			return nil
		}
		p, err := parsePoint(raw)
		if err != nil {
			return fmt.Errorf("-%s: %w", flagName, err)
		}
		id, err := idx.Nearest(p)
		if err != nil {
			return err
		}
		log.Debug().Str("flag", flagName).Float64("x", p.X).Float64("y", p.Y).Str("vertex", id).Msg("snapped coordinate")
		*dst = id

		return nil
	}
	if err = snap("from-xy", f.fromXY, &from); err != nil {
		return "", "", err
	}
	if err = snap("to-xy", f.toXY, &to); err != nil {
		return "", "", err
	}

	return from, to, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (core.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("y in %q: %w", s, err)
	}

	return core.Point{X: x, Y: y}, nil
}

func printResult(w io.Writer, mode search.Mode, from, to string, res search.Result, tr *search.TollwayResult) {
	fmt.Fprintf(w, "mode: %s\n", mode)
	if !res.Found {
		fmt.Fprintf(w, "no route from %s to %s (settled %d)\n", from, to, res.Settled)
		return
	}
	fmt.Fprintf(w, "route: %s\n", strings.Join(res.Path, " -> "))
	fmt.Fprintf(w, "cost: %.3f  hops: %d  settled: %d\n", res.Cost, res.Hops, res.Settled)
	if tr != nil {
		fmt.Fprintf(w, "coupons used: %d  left: %s\n", tr.CouponsUsed, couponsLeft(tr.CouponsLeft))
	}
	for _, l := range res.Legs {
		mark := ""
		switch {
		case l.CouponUsed:
			mark = "  [coupon]"
		case l.Toll > 0:
			mark = fmt.Sprintf("  [toll %.3f]", l.Toll)
		}
		fmt.Fprintf(w, "  %s -> %s  %.3f%s\n", l.From, l.To, l.Cost, mark)
	}
}

func couponsLeft(n int) string {
	if n > math.MaxInt/2 {
		return config.Unlimited
	}

	return strconv.Itoa(n)
}

func printMatrix(w io.Writer, g *core.Graph) error {
	if g.VertexCount() > maxMatrixVertices {
		fmt.Fprintf(w, "matrix: skipped, %d vertices > %d\n", g.VertexCount(), maxMatrixVertices)
		return nil
	}
	am, err := matrix.ToMatrix(g)
	if err != nil {
		return err
	}
	for i, id := range am.VertexIDs {
		cells := make([]string, len(am.Weights[i]))
		for j, wt := range am.Weights[i] {
			switch {
			case math.IsInf(wt, 1):
				cells[j] = "    -"
			case am.Tolls[i][j] > 0:
				cells[j] = fmt.Sprintf("%4.2f$", wt)
			default:
				cells[j] = fmt.Sprintf("%5.2f", wt)
			}
		}
		fmt.Fprintf(w, "%-6s %s\n", id, strings.Join(cells, " "))
	}

	return nil
}
