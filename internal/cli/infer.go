package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
	"github.com/SeamusWaldron/gocube_corners/internal/storage"
)

func newInferCmd(opts *options) *cobra.Command {
	var (
		save bool
		note string
	)

	cmd := &cobra.Command{
		Use:   "infer <label>...",
		Short: "Infer the packed state from eight corner labels",
		Long: `Infer a corner state from the sticker colors of the eight corners, in
corner order. Each label lists three colors starting with the sticker on
the U or D side, then counter-clockwise. The last label must be the
corner already solved in the down-back-left slot.

Example:
  gocube-corners infer OGW OWB WGR YGO WRB RGY BYO YBR --save`,
		Args: cobra.ExactArgs(gocube.NumCorners),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, opts, args, save, note)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Record the scan in the database")
	cmd.Flags().StringVar(&note, "note", "", "Note stored with a saved scan")

	return cmd
}

func runInfer(cmd *cobra.Command, opts *options, labels []string, save bool, note string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	for i := range labels {
		labels[i] = strings.ToUpper(labels[i])
	}

	faces, err := gocube.InferFaces(labels)
	if err != nil {
		return err
	}
	state, err := gocube.InferFromLabels(labels)
	if err != nil {
		return err
	}
	v := gocube.Encode(state)
	logger.Debug("inferred", "faces", faces, "state", v)

	printField(out, "Faces", faces)
	printField(out, "Orientation", string(faces.OrientationColors()))
	printState(cmd, v, state)

	if !save {
		return nil
	}

	db, err := opts.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewScanRepository(db).Create(labels, v, faces.String(), note)
	if err != nil {
		return err
	}
	logger.Info("scan saved", "id", id, "db", db.Path())
	fmt.Fprintln(out)
	printField(out, "Scan", id)
	return nil
}

// openDB opens the configured scan database.
func (o *options) openDB() (*storage.DB, error) {
	path := o.cfg.DBPath
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.Open(path)
}
