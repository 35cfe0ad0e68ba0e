// Package config loads settings for the tollway command.
//
// Precedence, lowest first: built-in defaults, the YAML file named by the
// -config flag or TOLLWAY_CONFIG, then individual TOLLWAY_* variables.
// LoadDotEnv may be called first to populate the environment from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tollway/builder"
	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/search"
)

// Environment variables.
const (
	EnvConfig   = "TOLLWAY_CONFIG"
	EnvLogLevel = "TOLLWAY_LOG_LEVEL"
	EnvMode     = "TOLLWAY_MODE"
	EnvCoupons  = "TOLLWAY_COUPONS"
	EnvSeed     = "TOLLWAY_SEED"
)

// ErrInvalidConfig wraps every Validate and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Heuristic names accepted in search.heuristic.
const (
	HeuristicDefault     = ""
	HeuristicEuclidean   = "euclidean"
	HeuristicTaxicab     = "taxicab"
	HeuristicGreatCircle = "greatcircle"
	HeuristicZero        = "zero"
)

// Unlimited is the TOLLWAY_COUPONS value that lifts the budget.
const Unlimited = "unlimited"

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Search picks the search mode, coupon budget and A* heuristic.
type Search struct {
	Mode      string `yaml:"mode"`
	Coupons   int    `yaml:"coupons"` // -1 means unlimited
	Heuristic string `yaml:"heuristic"`
}

// Network describes the generated grid the command searches over.
type Network struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Seed            uint64  `yaml:"seed"`
	Spacing         float64 `yaml:"spacing"`
	TollProbability float64 `yaml:"toll_probability"`
	TollFractionMin float64 `yaml:"toll_fraction_min"`
	TollFractionMax float64 `yaml:"toll_fraction_max"`
	Detour          float64 `yaml:"detour"`
}

// Query names the start and target vertices.
type Query struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Config is the complete command configuration.
type Config struct {
	Logging Logging `yaml:"logging"`
	Search  Search  `yaml:"search"`
	Network Network `yaml:"network"`
	Query   Query   `yaml:"query"`
}

// Default returns the built-in configuration: a 10×10 grid with a third of
// the roads tolled, searched corner to corner with Tollway and two coupons.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Search.Mode = string(search.ModeTollway)
	c.Search.Coupons = 2
	c.Search.Heuristic = HeuristicDefault
	c.Network.Rows = 10
	c.Network.Cols = 10
	c.Network.Seed = 1
	c.Network.Spacing = 1
	c.Network.TollProbability = 0.3
	c.Network.TollFractionMin = builder.DefaultTollFractMin
	c.Network.TollFractionMax = builder.DefaultTollFractMax
	c.Network.Detour = 1.5
	c.Query.From = builder.GridID(0, 0)
	c.Query.To = builder.GridID(9, 9)

	return c
}

// Load builds a Config from defaults, the YAML file at path (or
// $TOLLWAY_CONFIG when path is empty) and environment overrides.
// A missing explicit file is an error; no file at all is not.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}

	return c, nil
}

// LoadDotEnv loads KEY=VALUE pairs from files (default ".env") into the
// process environment without overriding variables already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Search.Mode = v
	}
	if v := os.Getenv(EnvCoupons); v != "" {
		n, err := ParseCoupons(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCoupons, err)
		}
		c.Search.Coupons = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Network.Seed = n
	}

	return nil
}

// ParseCoupons accepts a non-negative integer or "unlimited" (returned as -1).
func ParseCoupons(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Unlimited) {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: coupons %q", ErrInvalidConfig, s)
	}

	return n, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	mode, err := search.ParseMode(c.Search.Mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Search.Coupons < -1 {
		return fmt.Errorf("%w: search.coupons=%d", ErrInvalidConfig, c.Search.Coupons)
	}
	if _, err = c.Search.Metric(); err != nil {
		return err
	}
	// Tollway stops at the first target state it extracts; a coordinate
	// heuristic can overestimate discounted costs there.
	if strings.TrimSpace(c.Search.Heuristic) != HeuristicDefault && mode != search.ModeAStar {
		return fmt.Errorf("%w: search.heuristic=%q applies to astar only, mode is %s", ErrInvalidConfig, c.Search.Heuristic, mode)
	}

	n := c.Network
	switch {
	case n.Rows < 1 || n.Cols < 1:
		return fmt.Errorf("%w: network %dx%d", ErrInvalidConfig, n.Rows, n.Cols)
	case !(n.Spacing > 0) || math.IsInf(n.Spacing, 0):
		return fmt.Errorf("%w: network.spacing=%v", ErrInvalidConfig, n.Spacing)
	case !(n.TollProbability >= 0 && n.TollProbability <= 1):
		return fmt.Errorf("%w: network.toll_probability=%v", ErrInvalidConfig, n.TollProbability)
	case !(n.TollFractionMin >= 0 && n.TollFractionMin <= n.TollFractionMax && n.TollFractionMax <= 1):
		return fmt.Errorf("%w: network.toll_fraction=[%v,%v]", ErrInvalidConfig, n.TollFractionMin, n.TollFractionMax)
	case !(n.Detour >= 1) || math.IsInf(n.Detour, 0):
		return fmt.Errorf("%w: network.detour=%v", ErrInvalidConfig, n.Detour)
	}

	return nil
}

// CouponBudget returns the budget for search.Tollway.
func (s Search) CouponBudget() int {
	if s.Coupons < 0 {
		return search.UnlimitedCoupons
	}

	return s.Coupons
}

// Metric resolves the heuristic name. The default name yields nil, which
// leaves the choice to the search mode.
func (s Search) Metric() (core.Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s.Heuristic)) {
	case HeuristicDefault:
		return nil, nil
	case HeuristicEuclidean:
		return core.EuclideanDistance, nil
	case HeuristicTaxicab:
		return core.TaxicabDistance, nil
	case HeuristicGreatCircle:
		return core.GreatCircleDistance, nil
	case HeuristicZero:
		return core.ZeroDistance, nil
	}

	return nil, fmt.Errorf("%w: search.heuristic=%q", ErrInvalidConfig, s.Heuristic)
}

// BuilderOptions translates the network section into builder options.
// Call Validate first: builder options panic on out-of-range values.
func (n Network) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(n.Seed),
		builder.WithSpacing(n.Spacing),
		builder.WithTollProbability(n.TollProbability),
		builder.WithTollFraction(n.TollFractionMin, n.TollFractionMax),
		builder.WithDetour(n.Detour),
	}
}
