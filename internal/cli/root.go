// Package cli implements the gocube-corners command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
	"github.com/SeamusWaldron/gocube_corners/internal/config"
)

const version = "0.1.0"

// options holds the persistent flags and the loaded config.
type options struct {
	configPath string
	dbPath     string
	faces      string
	verbose    bool
	timeout    time.Duration

	cfg     config.Config
	cfgFile string // resolved config path
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gocube-corners",
		Short: "Pocket cube corner search and state codec",
		Long: `gocube-corners explores the corner permutations reachable with a chosen
set of face turns, and packs corner configurations into 64-bit values.

Find the shortest turn sequence for a corner permutation, compute the
"God's number" of a face subset, and infer a cube's packed state from
the sticker colors of its eight corners.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: ~/.gocube_corners/config.toml)")
	pf.StringVar(&opts.dbPath, "db", "", "Scan database path (default: ~/.gocube_corners/corners.db)")
	pf.StringVar(&opts.faces, "faces", "", "Enabled faces for searches, e.g. UFR (default from config)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	pf.DurationVar(&opts.timeout, "timeout", 0, "Abort searches after this long (0 for no limit)")

	root.AddCommand(newPathCmd(opts))
	root.AddCommand(newDiameterCmd(opts))
	root.AddCommand(newEncodeCmd(opts))
	root.AddCommand(newDecodeCmd(opts))
	root.AddCommand(newInferCmd(opts))
	root.AddCommand(newScansCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// setup loads the config and attaches a logger to the command context.
func (o *options) setup(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if o.faces != "" {
		cfg.Faces = o.faces
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	o.cfg = cfg
	o.cfgFile = path

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if o.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("loaded config", "path", path, "faces", cfg.Faces, "samples", cfg.Samples)
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

// moveSet builds the generators for the configured faces.
func (o *options) moveSet() (gocube.MoveSet, error) {
	faces, err := gocube.ParseFaces(o.cfg.Faces)
	if err != nil {
		return gocube.MoveSet{}, err
	}
	return gocube.MoveSetFromFaces(faces...)
}

// searchContext applies --timeout to the command context.
func (o *options) searchContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if o.timeout > 0 {
		return context.WithTimeout(cmd.Context(), o.timeout)
	}
	return context.WithCancel(cmd.Context())
}
