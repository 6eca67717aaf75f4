package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	trig "github.com/kedicesur/trig-analyse"
)

var (
	sweepFromFlag  float64
	sweepToFlag    float64
	sweepStepsFlag int
	sweepTermsFlag int
)

func init() {
	sweepCmd.Flags().Float64Var(&sweepFromFlag, "from", 0, "start of the radian range")
	sweepCmd.Flags().Float64Var(&sweepToFlag, "to", 6.283185307179586, "end of the radian range")
	sweepCmd.Flags().IntVar(&sweepStepsFlag, "steps", 16, "number of sample points")
	sweepCmd.Flags().IntVar(&sweepTermsFlag, "terms", 0, "continued fraction terms (default from config)")
}

type sweepRow struct {
	radians  float64
	cos, sin float64
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate cos and sin over a radian range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sweepStepsFlag < 2 {
			return fmt.Errorf("--steps must be at least 2")
		}
		terms := sweepTermsFlag
		if !cmd.Flags().Changed("terms") {
			terms = cfg.Defaults.Terms
		}

		rows := make([]sweepRow, sweepStepsFlag)
		step := (sweepToFlag - sweepFromFlag) / float64(sweepStepsFlag-1)

		start := time.Now()
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(runtime.NumCPU())
		for i := range rows {
			i := i
			g.Go(func() error {
				x := sweepFromFlag + float64(i)*step
				angle, err := trig.AngleFromFloat(x)
				if err != nil {
					return fmt.Errorf("sample %d (%g rad): %w", i, x, err)
				}
				res, err := trig.Expi(angle, terms)
				if err != nil {
					return fmt.Errorf("sample %d (%g rad): %w", i, x, err)
				}
				rows[i] = sweepRow{radians: x, cos: res.Cos(), sin: res.Sin()}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		logger.Debug("sweep done",
			zap.Int("steps", sweepStepsFlag),
			zap.Int("terms", terms),
			zap.Duration("elapsed", time.Since(start)),
		)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%14s %16s %16s\n", "radians", "cos", "sin")
		for _, r := range rows {
			fmt.Fprintf(out, "%14.6f %16.12f %16.12f\n", r.radians, r.cos, r.sin)
		}
		return nil
	},
}
