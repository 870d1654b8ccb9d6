package cmd

import (
	"github.com/mouse-blink/textmig/internal/domain"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the latest rewrite run report",
		Long:  "Show the most recent run report saved in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Report(domain.ReportArgs{Reports: reportsDir()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
