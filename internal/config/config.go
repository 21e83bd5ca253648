// Package config holds the tunables shared by the driver and presenters.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"mazeglow/internal/maze"
)

// Config controls board dimensions, pacing and presentation.
type Config struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Seed   int64 `toml:"seed"`

	// TPS is the logical tick rate shared by carving bursts and wave steps.
	TPS int `toml:"tps"`
	// Burst is the number of carver iterations run per tick while carving.
	Burst int `toml:"burst"`
	// Budget is the candidate-visit allowance handed to each new carver.
	Budget int `toml:"budget"`

	Scale     int  `toml:"scale"`
	Alternate bool `toml:"alternate"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  420,
		Height: 420,
		Seed:   1337 + 420,
		TPS:    60,
		Burst:  120,
		Budget: maze.DefaultBudget,
		Scale:  2,
	}
}

// FromMap applies flag-style key/value overrides on top of c. Unknown keys
// and unparsable values are ignored.
func (c Config) FromMap(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["burst"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Burst = parsed
		}
	}
	if v, ok := cfg["budget"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Budget = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["alternate"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Alternate = parsed
		}
	}
	return c
}

// Validate reports the first setting the board cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("grid %dx%d is smaller than 3x3", c.Width, c.Height)
	case c.TPS < 1:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Burst < 1:
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	case c.Budget < 0:
		return fmt.Errorf("budget must not be negative, got %d", c.Budget)
	case c.Scale < 1:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// Parse decodes TOML content over the defaults.
func Parse(data []byte) (Config, error) {
	c := DefaultConfig()
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Config{}, fmt.Errorf("parsing TOML: %w", err)
	}
	return c, nil
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "logical ticks per second")
	fs.IntVar(&c.Burst, "burst", c.Burst, "carver iterations per tick")
	fs.IntVar(&c.Budget, "budget", c.Budget, "carver candidate-visit allowance")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Alternate, "alternate", c.Alternate, "start in the alternate hue mode")
}

var flagKeys = map[string]string{
	"width":     "w",
	"height":    "h",
	"seed":      "seed",
	"tps":       "tps",
	"burst":     "burst",
	"budget":    "budget",
	"scale":     "scale",
	"alternate": "alternate",
}

// Changed collects the bound flags that were set on the command line, keyed
// for FromMap.
func Changed(fs *pflag.FlagSet) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			m[key] = f.Value.String()
		}
	})
	return m
}

// ParseOverrides splits repeated key=value arguments into a FromMap map.
func ParseOverrides(kvs []string) (map[string]string, error) {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not in key=value form", kv)
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m, nil
}
