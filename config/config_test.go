package config_test

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/evallang/numexpr/config"
)

func TestParseRoundingModeAliases(t *testing.T) {
	cases := map[string]config.RoundingMode{
		"HALF_UP":   config.HalfUp,
		"half_even": config.HalfEven,
		"banker":    config.HalfEven,
		"DOWN":      config.Down,
		"up":        config.Up,
		"FLOOR":     config.Floor,
		"ceil":      config.Ceiling,
	}
	for in, want := range cases {
		got, ok := config.ParseRoundingMode(in)
		if !ok {
			t.Errorf("ParseRoundingMode(%q): expected ok", in)
			continue
		}
		if got != want {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseRoundingModeUnknown(t *testing.T) {
	if _, ok := config.ParseRoundingMode("NEAREST"); ok {
		t.Error("expected ok=false for an unknown rounding mode")
	}
}

func TestNewConfigRoundTrip(t *testing.T) {
	cfg := config.New(20, config.HalfEven, config.Rad, language.AmericanEnglish)
	if cfg.Precision() != 20 {
		t.Errorf("Precision() = %d, want 20", cfg.Precision())
	}
	if cfg.Rounding() != config.HalfEven {
		t.Errorf("Rounding() = %v, want HalfEven", cfg.Rounding())
	}
	if cfg.AngleMode() != config.Rad {
		t.Errorf("AngleMode() = %v, want Rad", cfg.AngleMode())
	}
}

func TestConfigNilReceiverDefaults(t *testing.T) {
	var cfg *config.Config
	if cfg.Precision() != config.DefaultMathContext.Precision {
		t.Errorf("nil Config Precision() = %d, want default %d", cfg.Precision(), config.DefaultMathContext.Precision)
	}
	if cfg.Rounding() != config.DefaultMathContext.Rounding {
		t.Error("nil Config Rounding() should equal the default rounding mode")
	}
	if cfg.AngleMode() != config.Deg {
		t.Error("nil Config AngleMode() should default to Deg")
	}
	if cfg.Locale() != language.AmericanEnglish {
		t.Error("nil Config Locale() should default to en-US")
	}
	if cfg.Debug("anything") {
		t.Error("nil Config Debug() should always be false")
	}
}

func TestConfigPrecisionFallsBackWhenUnset(t *testing.T) {
	cfg := config.New(0, config.HalfUp, config.Deg, language.AmericanEnglish)
	if cfg.Precision() != config.DefaultMathContext.Precision {
		t.Errorf("Precision() with math.Precision<=0 = %d, want default", cfg.Precision())
	}
}

func TestConfigSettersMutateInPlace(t *testing.T) {
	cfg := config.New(10, config.HalfUp, config.Deg, language.AmericanEnglish)
	cfg.SetPrecision(30)
	cfg.SetRounding(config.Ceiling)
	cfg.SetAngleMode(config.Rad)
	cfg.SetDebug("lexer", true)

	if cfg.Precision() != 30 || cfg.Rounding() != config.Ceiling || cfg.AngleMode() != config.Rad {
		t.Error("setters did not update the config in place")
	}
	if !cfg.Debug("lexer") {
		t.Error("SetDebug(\"lexer\", true) should make Debug(\"lexer\") true")
	}
	if cfg.Debug("shuntingyard") {
		t.Error("Debug should be false for a key never set")
	}
}

func TestConfigRegisterFunctionExtensions(t *testing.T) {
	cfg := config.New(10, config.HalfUp, config.Deg, language.AmericanEnglish)
	cfg.RegisterFunction("double", "placeholder")
	ext := cfg.Extensions()
	if v, ok := ext["double"]; !ok || v != "placeholder" {
		t.Errorf("Extensions()[%q] = %v, %v; want %q, true", "double", v, ok, "placeholder")
	}
}
