package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/evallang/numexpr"
	"github.com/evallang/numexpr/config"
)

var (
	logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	flagPrecision int
	flagRounding  string
	flagAngle     string
	flagLocale    string
)

var rootCmd = &cobra.Command{
	Use:   "numexpr",
	Short: "Arbitrary-precision mathematical expression evaluator",
	Long: logoStyle.Render("numexpr") + ` - an arbitrary-precision mathematical expression evaluator.

Supports a full operator/function registry (trig, log, power,
combinatorics), user-supplied variable bindings with cycle detection, and
configurable precision, rounding, and angle mode.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagPrecision, "precision", config.DefaultMathContext.Precision, "significant digits of precision")
	rootCmd.PersistentFlags().StringVar(&flagRounding, "rounding", "HALF_UP", "rounding mode: HALF_UP, HALF_EVEN, DOWN, UP, FLOOR, CEILING")
	rootCmd.PersistentFlags().StringVar(&flagAngle, "angle", "DEG", "angle mode for trig functions: DEG or RAD")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "en-US", "BCP 47 locale tag")
}

// newEvaluator builds an Evaluator from the persistent flags, shared by
// every subcommand.
func newEvaluator() (*numexpr.Evaluator, error) {
	rounding, ok := config.ParseRoundingMode(flagRounding)
	if !ok {
		return nil, fmt.Errorf("unknown rounding mode: %s", flagRounding)
	}
	angle := config.Deg
	if flagAngle == "RAD" || flagAngle == "rad" {
		angle = config.Rad
	}
	tag, err := language.Parse(flagLocale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	cfg := config.New(flagPrecision, rounding, angle, tag)
	return numexpr.New(cfg), nil
}
