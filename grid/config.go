package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/tidycols/css"
)

// Base is the unit of the container width a grid is relative to.
type Base string

// Container bases.
const (
	BaseViewport Base = "vw"
	BasePercent  Base = "%"
)

// Value returns the full container width for a base, e.g. "100vw".
func (b Base) Value() string {
	return "100" + string(b)
}

// Options is the raw configuration of a grid, as delivered by a host or
// read from a configuration file. Every option is text; empty options are
// unset.
type Options struct {
	Columns string `mapstructure:"columns"`
	Gap     string `mapstructure:"gap"`
	Edge    string `mapstructure:"edge"`
	Base    string `mapstructure:"base"`
	Max     string `mapstructure:"max"`
}

// ConfigError is returned for grid configurations which cannot be used
// to build expressions.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("grid config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("grid config: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Config is a validated grid configuration. It is immutable; a changed
// configuration is a new Config.
type Config struct {
	columns  float64 // 0 if symbolic
	colToken string  // symbolic column count
	gap      css.FieldT
	edge     css.FieldT
	max      css.FieldT
	base     Base
}

// NewConfig validates raw options and creates a grid configuration.
func NewConfig(opts Options) (Config, error) {
	cfg := Config{base: BaseViewport}
	cols := strings.TrimSpace(opts.Columns)
	switch {
	case cols == "":
		return cfg, &ConfigError{Field: "columns", Reason: "missing column count"}
	case css.IsSymbolic(cols):
		cfg.colToken = cols
	default:
		n, unit, err := css.SplitLength(cols)
		if err != nil || unit != "" {
			return cfg, &ConfigError{Field: "columns", Value: cols, Reason: "not a number"}
		}
		if n <= 0 {
			return cfg, &ConfigError{Field: "columns", Value: cols, Reason: "column count must be positive"}
		}
		if n != math.Trunc(n) {
			return cfg, &ConfigError{Field: "columns", Value: cols, Reason: "column count must be an integer"}
		}
		cfg.columns = n
	}
	var err error
	if cfg.gap, err = parseField("gap", opts.Gap); err != nil {
		return cfg, err
	}
	if cfg.edge, err = parseField("edge", opts.Edge); err != nil {
		return cfg, err
	}
	if cfg.max, err = parseField("max", opts.Max); err != nil {
		return cfg, err
	}
	switch strings.TrimSpace(opts.Base) {
	case "", "vw":
		cfg.base = BaseViewport
	case "%":
		cfg.base = BasePercent
	default:
		return cfg, &ConfigError{Field: "base", Value: opts.Base, Reason: "base must be 'vw' or '%'"}
	}
	tracer().Debugf("grid config = %s", cfg)
	return cfg, nil
}

func parseField(name, value string) (css.FieldT, error) {
	f, err := css.ParseField(value)
	if err != nil {
		return f, &ConfigError{Field: name, Value: value, Reason: "expected a length or a var() reference"}
	}
	return f, nil
}

// Columns returns the column count as text, e.g. "12" or "var(--columns)".
func (cfg Config) Columns() string {
	if cfg.colToken != "" {
		return cfg.colToken
	}
	return css.FormatNumber(cfg.columns)
}

// Gap returns the gap field.
func (cfg Config) Gap() css.FieldT { return cfg.gap }

// Edge returns the edge field.
func (cfg Config) Edge() css.FieldT { return cfg.edge }

// Max returns the maximum container width field.
func (cfg Config) Max() css.FieldT { return cfg.max }

// Base returns the container base.
func (cfg Config) Base() Base { return cfg.base }

func (cfg Config) String() string {
	return fmt.Sprintf("{columns=%s gap=%#v edge=%#v base=%s max=%#v}",
		cfg.Columns(), cfg.gap, cfg.edge, cfg.base, cfg.max)
}
