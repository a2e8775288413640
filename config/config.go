// Package config holds the immutable-after-construction configuration
// consulted by every stage of the expression pipeline: numeric precision
// and rounding, angle mode, locale, and debug toggles.
package config

import (
	"golang.org/x/text/language"
)

// RoundingMode selects how a value is rounded to a MathContext's precision.
type RoundingMode int

const (
	HalfUp RoundingMode = iota
	HalfEven
	Down
	Up
	Floor
	Ceiling
)

func (r RoundingMode) String() string {
	switch r {
	case HalfUp:
		return "HALF_UP"
	case HalfEven:
		return "HALF_EVEN"
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case Floor:
		return "FLOOR"
	case Ceiling:
		return "CEILING"
	default:
		return "UNKNOWN"
	}
}

// ParseRoundingMode parses the canonical names used on the CLI and in
// MathContext literals.
func ParseRoundingMode(s string) (RoundingMode, bool) {
	switch s {
	case "HALF_UP", "half_up", "halfup":
		return HalfUp, true
	case "HALF_EVEN", "half_even", "halfeven", "banker":
		return HalfEven, true
	case "DOWN", "down":
		return Down, true
	case "UP", "up":
		return Up, true
	case "FLOOR", "floor":
		return Floor, true
	case "CEILING", "ceiling", "ceil":
		return Ceiling, true
	default:
		return 0, false
	}
}

// MathContext pairs a target precision (significant digits) with a
// rounding mode. Every numeric operation in the pipeline is handed a
// MathContext; Decimal carries no precision of its own.
type MathContext struct {
	Precision int
	Rounding  RoundingMode
}

// DefaultMathContext mirrors common decimal libraries' defaults: generous
// precision, round half up.
var DefaultMathContext = MathContext{Precision: 50, Rounding: HalfUp}

// AngleMode selects whether trigonometric functions interpret their
// arguments (and inverse-trig results) in degrees or radians.
type AngleMode int

const (
	Deg AngleMode = iota
	Rad
)

func (a AngleMode) String() string {
	if a == Deg {
		return "DEG"
	}
	return "RAD"
}

// A Config holds information about the configuration of the evaluator.
// The zero value holds sane defaults: 50 digits of precision, HALF_UP
// rounding, and degree-mode trigonometry. It is configured once, via the
// Set* methods, before being handed to an Evaluator; nothing in the core
// pipeline mutates it afterwards.
type Config struct {
	math  MathContext
	angle AngleMode
	tag   language.Tag
	debug map[string]bool
	extra map[string]any // host-registered extension elements; see RegisterFunction.
}

// New returns a Config with the given precision, rounding mode, angle
// mode, and locale tag.
func New(precision int, rounding RoundingMode, angle AngleMode, tag language.Tag) *Config {
	return &Config{
		math:  MathContext{Precision: precision, Rounding: rounding},
		angle: angle,
		tag:   tag,
	}
}

func (c *Config) MathContext() MathContext {
	if c == nil {
		return DefaultMathContext
	}
	mc := c.math
	mc.Precision = c.Precision()
	return mc
}

func (c *Config) SetMathContext(mc MathContext) {
	c.math = mc
}

func (c *Config) Precision() int {
	if c == nil {
		return DefaultMathContext.Precision
	}
	if c.math.Precision <= 0 {
		return DefaultMathContext.Precision
	}
	return c.math.Precision
}

func (c *Config) SetPrecision(p int) {
	c.math.Precision = p
}

func (c *Config) Rounding() RoundingMode {
	if c == nil {
		return DefaultMathContext.Rounding
	}
	return c.math.Rounding
}

func (c *Config) SetRounding(r RoundingMode) {
	c.math.Rounding = r
}

func (c *Config) AngleMode() AngleMode {
	if c == nil {
		return Deg
	}
	return c.angle
}

func (c *Config) SetAngleMode(a AngleMode) {
	c.angle = a
}

func (c *Config) Locale() language.Tag {
	if c == nil {
		return language.AmericanEnglish
	}
	return c.tag
}

func (c *Config) SetLocale(tag language.Tag) {
	c.tag = tag
}

func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// RegisterFunction records a host-supplied extension element under name,
// for consumption by registry.New(cfg), which adds every value that is a
// registry.Element under its name. The
// value is opaque to config and is type-asserted by the registry package.
func (c *Config) RegisterFunction(name string, element any) {
	if c.extra == nil {
		c.extra = make(map[string]any)
	}
	c.extra[name] = element
}

// Extensions returns the host-registered extension elements, keyed by
// symbol.
func (c *Config) Extensions() map[string]any {
	return c.extra
}
