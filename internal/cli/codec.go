package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
)

func newEncodeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <pos:orient>...",
		Short: "Pack eight corners into a 64-bit state",
		Long: `Pack eight corners, given as position:orientation pairs in corner order,
into a 64-bit state. An orientation may be omitted and defaults to 0.

Example:
  gocube-corners encode 0:1 2 1:2 3 4 5 6 7`,
		Args: cobra.ExactArgs(gocube.NumCorners),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := parseCorners(args)
			if err != nil {
				return err
			}
			if err := state.Validate(); err != nil {
				return err
			}
			v := gocube.Encode(state)
			loggerFromContext(cmd.Context()).Debug("encoded", "state", v)
			printState(cmd, v, state)
			return nil
		},
	}
	return cmd
}

func newDecodeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <state>",
		Short: "Unpack a 64-bit state into its eight corners",
		Long: `Unpack a 64-bit state, given in hex (0x prefix) or decimal, and print each
corner's packed byte, orientation and cubie.

Example:
  gocube-corners decode 0x070d160304020910`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseState(args[0])
			if err != nil {
				return err
			}
			state, err := gocube.Decode(v)
			if err != nil {
				return err
			}
			printState(cmd, v, state)
			return nil
		},
	}
	return cmd
}

// parseCorners reads "pos" or "pos:orient" for each corner.
func parseCorners(args []string) (gocube.CornerState, error) {
	var state gocube.CornerState
	for i, arg := range args {
		pos, orient, hasOrient := strings.Cut(arg, ":")
		p, err := strconv.ParseUint(pos, 10, 8)
		if err != nil {
			return state, fmt.Errorf("%w: corner %d position %q", gocube.ErrInvalidState, i, pos)
		}
		var o uint64
		if hasOrient {
			o, err = strconv.ParseUint(orient, 10, 8)
			if err != nil {
				return state, fmt.Errorf("%w: corner %d orientation %q", gocube.ErrInvalidState, i, orient)
			}
		}
		state[i] = gocube.Corner{Position: uint8(p), Orientation: uint8(o)}
	}
	return state, nil
}

func parseState(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 64-bit value", gocube.ErrInvalidState, s)
	}
	return v, nil
}

func printState(cmd *cobra.Command, v uint64, state gocube.CornerState) {
	out := cmd.OutOrStdout()
	printField(out, "Packed", fmt.Sprintf("0x%016x", v))
	printField(out, "Decimal", v)
	if cubies, err := state.Positions(); err == nil {
		printField(out, "Cubies", cubies)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, state)
}
