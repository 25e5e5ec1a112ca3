package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_corners"
	"github.com/SeamusWaldron/gocube_corners/internal/storage"
)

func newScansCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Browse saved scans",
	}
	cmd.AddCommand(newScansListCmd(opts))
	cmd.AddCommand(newScansShowCmd(opts))
	return cmd
}

func newScansListCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewScanRepository(db)
			scans, err := repo.List(limit)
			if err != nil {
				return err
			}
			total, err := repo.Count()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Scans (%d of %d)", len(scans), total))
			for _, s := range scans {
				line := fmt.Sprintf("%s  %s  0x%016x", s.ScanID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.State)
				if s.Note != nil {
					line += "  " + *s.Note
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scans to list")
	return cmd
}

func newScansShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <scan-id>",
		Short: "Show a saved scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewScanRepository(db)
			s, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("scan %s: %w", args[0], gocube.ErrNotFound)
			}
			state, err := gocube.Decode(s.State)
			if err != nil {
				return err
			}
			same, err := repo.FindByState(s.State)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printField(out, "Scan", s.ScanID)
			printField(out, "Created", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			printField(out, "Labels", strings.Join(s.Labels, " "))
			printField(out, "Faces", s.Faces)
			if s.Note != nil {
				printField(out, "Note", *s.Note)
			}
			printField(out, "Same state", len(same))
			printState(cmd, s.State, state)
			return nil
		},
	}
}
