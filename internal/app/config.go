package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	CellSize    int `json:"cell_size"`
	MinCellSize int `json:"min_cell_size"`
	MaxCellSize int `json:"max_cell_size"`

	TPS    int `json:"tps"`
	MinTPS int `json:"min_tps"`
	MaxTPS int `json:"max_tps"`

	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Run     bool    `json:"run"`

	PatternsDir    string `json:"patterns_dir"`
	PatternMaxSide int    `json:"pattern_max_side"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:          960,
		Height:         640,
		CellSize:       8,
		MinCellSize:    2,
		MaxCellSize:    64,
		TPS:            8,
		MinTPS:         1,
		MaxTPS:         64,
		Seed:           42,
		Density:        0.2,
		PatternMaxSide: 64,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with default settings; explicit flags win")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.MinCellSize, "cell-min", c.MinCellSize, "smallest cell size")
	fs.IntVar(&c.MaxCellSize, "cell-max", c.MaxCellSize, "largest cell size")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.MinTPS, "tps-min", c.MinTPS, "slowest rate")
	fs.IntVar(&c.MaxTPS, "tps-max", c.MaxTPS, "fastest rate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for random fills")
	fs.BoolVar(&c.Run, "run", c.Run, "start evolving immediately")
	fs.StringVar(&c.PatternsDir, "patterns", c.PatternsDir, "directory of pattern images to load")
	fs.IntVar(&c.PatternMaxSide, "pattern-max", c.PatternMaxSide, "downscale pattern images larger than this")
}

// Settings collects repeated key=value flags.
type Settings map[string]string

func (s Settings) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s Settings) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return errors.Errorf("[Settings.Set] expected key=value, got %q", kv)
	}
	s[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

// Load parses args into a fresh Config. Values come from, in increasing
// precedence: defaults, the -config JSON file, repeated -set key=value pairs,
// and the named flags. When a file or settings are given the arguments are
// parsed a second time so named flags win.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	settings := Settings{}
	fs.Var(settings, "set", "key=value override using config file keys (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to parse flags")
	}
	if c.ConfigFile == "" && len(settings) == 0 {
		c.Normalize()
		return c, nil
	}
	if c.ConfigFile != "" {
		if err := c.LoadFile(c.ConfigFile); err != nil {
			return nil, err
		}
	}
	c.Apply(settings)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to parse flags")
	}
	c.Normalize()
	return c, nil
}

// LoadFile overlays the JSON document in filename onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := *NewConfig()
	c.Apply(cfg)
	c.Normalize()
	return c
}

// Apply overlays the recognised keys of cfg onto c. Unknown keys and values
// that fail to parse are ignored.
func (c *Config) Apply(cfg map[string]string) {
	ints := map[string]*int{
		"width":            &c.Width,
		"height":           &c.Height,
		"cell_size":        &c.CellSize,
		"min_cell_size":    &c.MinCellSize,
		"max_cell_size":    &c.MaxCellSize,
		"tps":              &c.TPS,
		"min_tps":          &c.MinTPS,
		"max_tps":          &c.MaxTPS,
		"pattern_max_side": &c.PatternMaxSide,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["run"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Run = parsed
		}
	}
	if v, ok := cfg["patterns_dir"]; ok {
		c.PatternsDir = v
	}
}

// Normalize repairs inconsistent bounds so every value is usable.
func (c *Config) Normalize() {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.MinCellSize <= 0 {
		c.MinCellSize = 1
	}
	if c.MaxCellSize < c.MinCellSize {
		c.MaxCellSize = c.MinCellSize
	}
	c.CellSize = clampInt(c.CellSize, c.MinCellSize, c.MaxCellSize)
	if c.MinTPS <= 0 {
		c.MinTPS = 1
	}
	if c.MaxTPS < c.MinTPS {
		c.MaxTPS = c.MinTPS
	}
	c.TPS = clampInt(c.TPS, c.MinTPS, c.MaxTPS)
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
