package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"sandmaker/internal/core"
	"sandmaker/internal/sims/sand"
)

var (
	// ErrUnknownMaterial is returned for color overrides naming a material
	// that cannot be painted.
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrInvalidColor is returned for malformed hex colors.
	ErrInvalidColor = errors.New("invalid color")
)

// EnvPrefix prefixes the environment variable fallback of every flag.
const EnvPrefix = "SANDMAKER_"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Seed     int64
	Brush    int
	Terrain  bool
	HUDWidth int
	LogLevel string

	Colors []ColorOverride

	explicit map[string]bool
}

// IsSet reports whether the named option came from a flag or the
// environment rather than its default.
func (c Config) IsSet(flagName string) bool { return c.explicit[flagName] }

// ColorOverride replaces the color of one paintable material at startup.
type ColorOverride struct {
	Kind  sand.Kind
	Color color.NRGBA
}

type configResolver struct {
	flagName    string
	defaultVal  string
	description string
	setter      func(*Config, string) error
}

func (r configResolver) envVarName() string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(r.flagName, "-", "_"))
}

var resolvers = []configResolver{
	{
		flagName:    "grid-w",
		defaultVal:  "150",
		description: "grid width in cells, border included",
		setter:      intSetter(func(c *Config, v int) { c.Width = v }),
	},
	{
		flagName:    "grid-h",
		defaultVal:  "150",
		description: "grid height in cells, border included",
		setter:      intSetter(func(c *Config, v int) { c.Height = v }),
	},
	{
		flagName:    "cell-size",
		defaultVal:  "4",
		description: "screen pixels per cell",
		setter:      intSetter(func(c *Config, v int) { c.CellSize = v }),
	},
	{
		flagName:    "tps",
		defaultVal:  "60",
		description: "simulation ticks per second",
		setter:      intSetter(func(c *Config, v int) { c.TPS = v }),
	},
	{
		flagName:    "seed",
		defaultVal:  "1",
		description: "seed for the random stream and terrain",
		setter: func(c *Config, v string) error {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			c.Seed = seed
			return nil
		},
	},
	{
		flagName:    "brush",
		defaultVal:  "1",
		description: "initial brush radius",
		setter: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("must not be negative, got %d", n)
			}
			c.Brush = n
			return nil
		},
	},
	{
		flagName:    "terrain",
		defaultVal:  "false",
		description: "seed generated terrain on start and reset",
		setter: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			c.Terrain = b
			return nil
		},
	},
	{
		flagName:    "hud-width",
		defaultVal:  "220",
		description: "width of the control panel in pixels; 0 hides it",
		setter: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			c.HUDWidth = max(n, 0)
			return nil
		},
	},
	{
		flagName:    "log-level",
		defaultVal:  "info",
		description: "log level: debug, info, warn, error",
		setter:      func(c *Config, v string) error { c.LogLevel = v; return nil },
	},
	{
		flagName:    "colors",
		defaultVal:  "",
		description: "comma separated color overrides, e.g. sand=#ff8800,water=#2040ff",
		setter: func(c *Config, v string) error {
			overrides, err := ParseColorOverrides(v)
			if err != nil {
				return err
			}
			c.Colors = overrides
			return nil
		},
	},
}

func intSetter(set func(*Config, int)) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		set(c, n)
		return nil
	}
}

// Load parses args and resolves every option from its flag, then the
// SANDMAKER_* environment variable, then the default. getenv may be nil.
func Load(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	values := make(map[string]*string, len(resolvers))
	for _, r := range resolvers {
		usage := fmt.Sprintf("%s (env %s)", r.description, r.envVarName())
		values[r.flagName] = fs.String(r.flagName, "", usage)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{explicit: make(map[string]bool)}
	for _, r := range resolvers {
		value := *values[r.flagName]
		if value == "" {
			value = getenv(r.envVarName())
		}
		if value == "" {
			value = r.defaultVal
		} else {
			cfg.explicit[r.flagName] = true
		}
		if err := r.setter(&cfg, value); err != nil {
			return Config{}, fmt.Errorf("invalid -%s %q: %w", r.flagName, value, err)
		}
	}
	return cfg, nil
}

// ParseColorOverrides parses a comma separated list of kind=#rrggbb pairs.
func ParseColorOverrides(s string) ([]ColorOverride, error) {
	var out []ColorOverride
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o, err := ParseColorOverride(part)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ParseColorOverride parses a single kind=#rrggbb pair.
func ParseColorOverride(s string) (ColorOverride, error) {
	name, hex, ok := strings.Cut(s, "=")
	if !ok {
		return ColorOverride{}, fmt.Errorf("%w: %q is not kind=#rrggbb", ErrInvalidColor, s)
	}
	kind, ok := sand.ParseKind(name)
	if !ok || !sand.IsPaintable(kind) {
		return ColorOverride{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return ColorOverride{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return ColorOverride{Kind: kind, Color: color.NRGBA{R: r, G: g, B: b, A: 255}}, nil
}

// SimOptions returns the options understood by sand.FromMap.
func (c Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"brush":   strconv.Itoa(c.Brush),
		"terrain": strconv.FormatBool(c.Terrain),
	}
}

// NewWorld builds the sandbox described by c through the sim registry and
// applies its color overrides.
func (c Config) NewWorld(log core.Logger) (*sand.World, error) {
	sim, err := core.New(sand.SimName, c.SimOptions())
	if err != nil {
		return nil, err
	}
	w, ok := sim.(*sand.World)
	if !ok {
		return nil, fmt.Errorf("sim %q is a %T, not a sandbox", sand.SimName, sim)
	}
	w.SetLogger(log)
	for _, o := range c.Colors {
		w.SetMaterialColor(o.Kind, o.Color)
	}
	return w, nil
}
