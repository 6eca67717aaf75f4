package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	trig "github.com/kedicesur/trig-analyse"
)

var (
	evalTermsFlag  int
	evalDigitsFlag int
	evalAllFlag    bool
)

func init() {
	evalCmd.Flags().IntVar(&evalTermsFlag, "terms", 0, "continued fraction terms (default from config)")
	evalCmd.Flags().IntVar(&evalDigitsFlag, "digits", -1, "fixed-point digits to print (default from config)")
	evalCmd.Flags().BoolVar(&evalAllFlag, "all", false, "print every convergent, not just the result")
}

var evalCmd = &cobra.Command{
	Use:   "eval <angle>",
	Short: "Evaluate cos, sin and tan of one angle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		terms := evalTermsFlag
		if !cmd.Flags().Changed("terms") {
			terms = cfg.Defaults.Terms
		}
		digits := evalDigitsFlag
		if !cmd.Flags().Changed("digits") {
			digits = cfg.Defaults.Digits
		}
		if digits < 0 {
			return fmt.Errorf("--digits must not be negative")
		}

		angle, err := parseAngle(args[0])
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := trig.Expi(angle, terms)
		if err != nil {
			return err
		}
		logger.Debug("evaluated",
			zap.String("angle", angle.Radians().String()),
			zap.Int("terms", terms),
			zap.Int("limit_index", res.LimitIndex),
			zap.Duration("elapsed", time.Since(start)),
		)

		out := cmd.OutOrStdout()
		if evalAllFlag {
			printConvergents(out, res, digits)
		}
		value := color.New(color.FgCyan)
		fmt.Fprintf(out, "cos = %s\n", value.Sprintf("%.*f", digits, res.Cos()))
		fmt.Fprintf(out, "sin = %s\n", value.Sprintf("%.*f", digits, res.Sin()))
		fmt.Fprintf(out, "tan = %s\n", value.Sprintf("%.*f", digits, res.Tan()))
		return nil
	},
}

func printConvergents(out io.Writer, res trig.Result, digits int) {
	limit := color.New(color.FgGreen)
	for i := range res.Final {
		mark := ""
		if i == res.LimitIndex {
			mark = limit.Sprint("  <- math limit")
		}
		fmt.Fprintf(out, "%3d  base %s  final %s%s\n",
			i, res.Base[i].StringFixed(digits), res.Final[i].StringFixed(digits), mark)
	}
}

// parseAngle reads the CLI angle syntax: "p/q" is (p/q)*pi, a trailing
// "r" switches the fraction to radians, and a bare decimal value is
// always radians.
func parseAngle(s string) (trig.Angle, error) {
	s = strings.TrimSpace(s)
	radians := strings.HasSuffix(s, "r")
	if radians {
		s = strings.TrimSuffix(s, "r")
	}
	if s == "" {
		return trig.Angle{}, fmt.Errorf("empty angle")
	}

	if numStr, denStr, ok := strings.Cut(s, "/"); ok {
		num, okN := new(big.Int).SetString(numStr, 10)
		den, okD := new(big.Int).SetString(denStr, 10)
		if !okN || !okD {
			return trig.Angle{}, fmt.Errorf("invalid angle fraction %q", s)
		}
		if radians {
			return trig.AngleFromRadians(num, den)
		}
		return trig.AngleOfPi(num, den)
	}

	if num, ok := new(big.Int).SetString(s, 10); ok {
		if radians {
			return trig.AngleFromRadians(num, big.NewInt(1))
		}
		return trig.AngleOfPi(num, big.NewInt(1))
	}

	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return trig.Angle{}, fmt.Errorf("invalid angle %q", s)
	}
	return trig.AngleFromFloat(x)
}
