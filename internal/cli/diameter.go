package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
)

func newDiameterCmd(opts *options) *cobra.Command {
	var (
		samples int
		depth   int
	)

	cmd := &cobra.Command{
		Use:   "diameter",
		Short: "Compute the God's number of the enabled faces",
		Long: `Sweep every corner permutation reachable with the enabled faces and report
the largest distance from solved, with the population of each distance.

Examples:
  gocube-corners diameter
  gocube-corners diameter --faces UFRLDB --samples 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("samples") {
				samples = opts.cfg.Samples
			}
			return runDiameter(cmd, opts, samples, depth)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 5, "Sample states to show per distance (default from config)")
	cmd.Flags().IntVar(&depth, "max-depth", 0, "Stop the sweep at this distance (0 for no limit)")

	return cmd
}

func runDiameter(cmd *cobra.Command, opts *options, samples, depth int) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	ms, err := opts.moveSet()
	if err != nil {
		return err
	}
	ctx, cancel := opts.searchContext(cmd)
	defer cancel()

	ex, err := gocube.NewExplorer(ms,
		gocube.WithContext(ctx),
		gocube.WithSampleSize(samples),
		gocube.WithMaxDepth(depth),
		gocube.WithOnLayer(func(distance, count int) {
			logger.Debug("layer complete", "distance", distance, "states", count)
		}),
	)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	layering, err := ex.Diameter()
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	prog.done("sweep complete", "states", layering.Total)

	printField(out, "Moves", ms)
	printField(out, "God's #", layering.Diameter)
	printField(out, "Total", layering.Total)
	fmt.Fprintln(out)
	printTitle(out, "Stats")
	for _, layer := range layering.Layers {
		line := fmt.Sprintf("%d: %d", layer.Distance, layer.Count)
		if len(layer.Samples) > 0 {
			names := make([]string, len(layer.Samples))
			for i, s := range layer.Samples {
				names[i] = s.String()
			}
			line += ": Ex. " + strings.Join(names, " ")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
