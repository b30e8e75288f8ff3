package main

import (
	"github.com/spf13/cobra"
)

var fillSections []string

func init() {
	cmd := newFillCmd()
	cmd.Flags().StringSliceVarP(&fillSections, "section", "s", nil, "Top-level section to copy (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Copy baseline sections into locales that lack them",
		Long: `The fill command copies whole top-level sections of the baseline into
every locale that does not have them yet, leaving the baseline text in place
for translators. Sections a locale already has are not touched.

Without --section the fill.sections list of the config file is used.

Example:
  localekit fill --section faq --section pricing`,
		Args: cobra.NoArgs,
		RunE: runFill,
	}
}

func runFill(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	app, flush, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer flush()

	res, err := app.Fill(cmd.Context(), fillSections...)
	if err != nil {
		return err
	}
	return checkFailures(res.Failures)
}
