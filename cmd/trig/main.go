package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "trig",
	Short: "Trigonometry through exact rational continued fractions",
	Long: `trig evaluates cos, sin and tan by expanding e^(i*theta) as a complex
continued fraction over exact rationals. Angles written as fractions
("1/6") are multiples of pi; append "r" ("1/2r") or pass a decimal
value ("0.5") for radians.`,
	SilenceUsage: true,
}

var (
	flagColor   string
	flagVerbose bool
	flagConfig  string

	logger = zap.NewNop()
	cfg    = defaultConfig()
)

func main() {
	rootCmd.Version = versionString()

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log evaluation internals")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a config file (default "+defaultConfigFile+")")

	rootCmd.PersistentPreRunE = setup

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	switch flagColor {
	case "auto":
		// color's own terminal detection decides.
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported --color value %q (must be auto, on or off)", flagColor)
	}

	if flagVerbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}

	c, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}
