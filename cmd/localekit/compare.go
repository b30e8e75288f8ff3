package main

import (
	"github.com/spf13/cobra"
)

var compareReportDir string

func init() {
	cmd := newCompareCmd()
	cmd.Flags().StringVar(&compareReportDir, "report-dir", "", "Write missing-keys-{locale}.json files to this directory")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare every locale against the baseline",
		Long: `The compare command lists the keys each locale is missing or has in excess
relative to the baseline, grouped by top-level section, followed by a
completeness summary.

Example:
  localekit compare
  localekit compare --baseline en --report-dir reports`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = compareReportDir
	}

	app, flush, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer flush()

	res, err := app.Compare(cmd.Context())
	if err != nil {
		return err
	}
	return checkFailures(res.Failures)
}
