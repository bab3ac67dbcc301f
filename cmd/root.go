// Package cmd is the command-line shell around the core packages: a
// coarse mode selector (generate/demo) plus flag and environment
// handling. All graph semantics live in builder, hamilton and dataset;
// this package only wires configuration, logging and process exit codes.
package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kul-sudo/graphs/graph"
)

const envPrefix = "GRAPHS"

// Execute is the entry point to running the CLI. Fatal configuration
// errors surface through cobra's error path and a non-zero exit code.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "graphs",
		Short:        "Synthesize labeled datasets of small graphs for Hamiltonicity classification.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if viper.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().IntP("nodes", "n", 11, "node count of every generated graph (>= 3)")
	rootCmd.PersistentFlags().IntP("edges", "e", 0, "exact edge count per graph; 0 means half the complete-graph bound")
	rootCmd.PersistentFlags().Int64P("seed", "s", 0, "random seed; 0 selects the fixed default stream")
	rootCmd.PersistentFlags().StringP("out", "o", ".", "output directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCommand(ctx), newDemoCommand(ctx))

	// Every flag is also settable via GRAPHS_* environment variables.
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Fatal("bind flags")
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// edgeTarget resolves the edge-count flag: 0 means half the
// complete-graph bound for the chosen node count, floored at the node
// count so small node counts stay within the valid parameter range.
func edgeTarget(nodes, edges int) int {
	if edges != 0 {
		return edges
	}
	if half := graph.MaxEdgeCount(nodes) / 2; half > nodes {
		return half
	}

	return nodes
}
