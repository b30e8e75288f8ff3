package main

import (
	"github.com/spf13/cobra"
)

var cleanDryRun bool

func init() {
	cmd := newCleanCmd()
	cmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Report what would be removed without saving")
	rootCmd.AddCommand(cmd)
}

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove denied keys and empty sections from every locale",
		Long: `The clean command prunes every locale document, the baseline included.
Keys under a deny entry are removed together with their subtrees and objects left
empty are dropped. Leaves missing from the usage list are kept and reported as
possibly unused.

The usage list and deny list come from the usage section of the config file or
from LOCALEKIT_USED_KEYS and LOCALEKIT_DENY.

Example:
  localekit clean --dry-run
  localekit clean --dir web/locales`,
		Args: cobra.NoArgs,
		RunE: runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	app, flush, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer flush()

	res, err := app.Clean(cmd.Context(), cleanDryRun)
	if err != nil {
		return err
	}
	return checkFailures(res.Failures)
}
