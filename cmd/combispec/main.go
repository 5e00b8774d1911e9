// Package main provides the combispec binary: it turns a reduced feature
// model and optional value maps into the combination specification an
// external covering-array sampler consumes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "combispec"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	output     string
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Build combination specifications for CIT sampling",
		Long: `Combispec builds the coverage obligation for a combinatorial
interaction testing sampler from a feature model and value maps.

Sampling modes:
- cardinality          clusters that must appear at least N times
- cluster-interaction  clusters paired with every (w-1)-combination outside them
- weighted             k-wise coverage over chosen variable subsets
- prioritized          explicit assignments plus priority ranks
- combined             all of the above over one variable space`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVarP(&g.output, "output", "o", "yaml", "Output format (yaml, text)")

	cmd.AddCommand(
		modeCmd(g, modeCardinality),
		modeCmd(g, modeClusterInteraction),
		modeCmd(g, modeWeighted),
		modeCmd(g, modePrioritized),
		modeCmd(g, modeCombined),
		valuemapCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
