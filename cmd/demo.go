package cmd

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kul-sudo/graphs/builder"
	"github.com/kul-sudo/graphs/hamilton"
	"github.com/kul-sudo/graphs/render"
)

func newDemoCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Draw one graph of each class as SVG, highlighting the witness cycle.",
		RunE:  runDemo(ctx),
	}
}

func runDemo(ctx context.Context) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		nodes := viper.GetInt("nodes")
		edges := edgeTarget(nodes, viper.GetInt("edges"))
		seed := viper.GetInt64("seed")
		outDir := viper.GetString("out")

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		for _, class := range []struct {
			name        string
			hamiltonian bool
		}{
			{"hamiltonian.svg", true},
			{"non_hamiltonian.svg", false},
		} {
			if err := ctx.Err(); err != nil {
				return err
			}

			g, err := builder.RandomWithKind(nodes, edges, class.hamiltonian, builder.WithSeed(seed))
			if err != nil {
				return err
			}

			// The witness is present exactly for the Hamiltonian class;
			// render skips the overlay otherwise.
			cycle, ok := hamilton.FindCycle(g)
			log.WithFields(log.Fields{
				"file":        class.name,
				"hamiltonian": ok,
				"edges":       g.EdgeCount(),
			}).Debug("rendering graph")

			path := filepath.Join(outDir, class.name)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err = render.SVG(f, g, cycle); err != nil {
				_ = f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			log.WithField("path", path).Info("svg written")
		}

		return nil
	}
}
