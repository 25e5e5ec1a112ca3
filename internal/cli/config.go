package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the settings file",
	}
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printField(out, "File", opts.cfgFile)
			printField(out, "Faces", opts.cfg.Faces)
			printField(out, "Samples", opts.cfg.Samples)
			db := opts.cfg.DBPath
			if db == "" {
				db = "(default)"
			}
			printField(out, "Database", db)
			printField(out, "Log level", opts.cfg.LogLevel)
			return nil
		},
	}
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.cfgFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if err := opts.cfg.Validate(); err != nil {
				return err
			}
			if err := opts.cfg.Save(opts.cfgFile); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("config written", "path", opts.cfgFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
