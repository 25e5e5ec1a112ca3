package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
)

func newPathCmd(opts *options) *cobra.Command {
	var (
		moves  string
		cycles string
		state  string
		depth  int
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the shortest turn sequence for a corner permutation",
		Long: `Find the shortest sequence of enabled face turns that permutes the corners
into the target. Give the target as a move sequence, as 0-based cycle
notation, or as a packed corner state (orientation is ignored).

Examples:
  gocube-corners path --cycles "(0 1)"
  gocube-corners path --moves "R U R' U'"
  gocube-corners path --faces UFRLDB --state 0x0706050403000201`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := pathTarget(moves, cycles, state)
			if err != nil {
				return err
			}
			return runPath(cmd, opts, target, depth)
		},
	}

	cmd.Flags().StringVar(&moves, "moves", "", "Target as the corner permutation of a move sequence")
	cmd.Flags().StringVar(&cycles, "cycles", "", "Target in 0-based cycle notation")
	cmd.Flags().StringVar(&state, "state", "", "Target as a packed corner state")
	cmd.Flags().IntVar(&depth, "max-depth", 0, "Give up beyond this many turns (0 for no limit)")
	cmd.MarkFlagsMutuallyExclusive("moves", "cycles", "state")
	cmd.MarkFlagsOneRequired("moves", "cycles", "state")

	return cmd
}

// pathTarget resolves whichever target flag was given.
func pathTarget(moves, cycles, state string) (gocube.Perm, error) {
	switch {
	case moves != "":
		t := gocube.NewTracker()
		if err := t.ApplyNotation(moves); err != nil {
			return gocube.Perm{}, err
		}
		return t.Perm(), nil
	case cycles != "":
		return gocube.ParsePerm(cycles)
	default:
		v, err := strconv.ParseUint(state, 0, 64)
		if err != nil {
			return gocube.Perm{}, fmt.Errorf("invalid state %q: %w", state, err)
		}
		s, err := gocube.Decode(v)
		if err != nil {
			return gocube.Perm{}, err
		}
		cubies, err := s.Positions()
		if err != nil {
			return gocube.Perm{}, err
		}
		return cubies.Inverse(), nil
	}
}

func runPath(cmd *cobra.Command, opts *options, target gocube.Perm, depth int) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	ms, err := opts.moveSet()
	if err != nil {
		return err
	}
	ctx, cancel := opts.searchContext(cmd)
	defer cancel()

	ex, err := gocube.NewExplorer(ms, gocube.WithContext(ctx), gocube.WithMaxDepth(depth))
	if err != nil {
		return err
	}

	logger.Debug("searching", "target", target, "moves", ms)
	prog := newProgress(logger)
	route, err := ex.ShortestPath(target)
	if errors.Is(err, gocube.ErrNotFound) {
		prog.done("search exhausted", "target", target)
		printField(out, "Target", target)
		fmt.Fprintln(out, failStyle.Render("IMPOSSIBLE"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	prog.done("route found", "length", len(route))

	printField(out, "Target", target)
	printField(out, "Moves", ms)
	printField(out, "Length", len(route))
	printField(out, "Route", route)
	return nil
}
