package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Build metadata, overridable via -ldflags.
var (
	versionMajor = "0"
	versionMinor = "1"
	versionPatch = "0"
	gitCommit    = ""
	buildDate    = ""
)

func versionString() string {
	major := color.New(color.FgYellow, color.Bold)
	minor := color.New(color.FgGreen, color.Bold)
	patch := color.New(color.FgBlue, color.Bold)
	return major.Sprint(versionMajor) + "." + minor.Sprint(versionMinor) + "." + patch.Sprint(versionPatch)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "trig %s\n", versionString())
		if gitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", gitCommit)
		}
		if buildDate != "" {
			fmt.Fprintf(out, "built:  %s\n", buildDate)
		}
		return nil
	},
}
