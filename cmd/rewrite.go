package cmd

import (
	"github.com/mouse-blink/textmig/internal/domain"
	"github.com/spf13/cobra"
)

const rewriteLongDescription = `Rewrite every .text assignment under root (default: the configured root)
in three passes:

  1. formatted  x.text = string.Format(...);  ->  x.SetTextFormat(...);
  2. literal    x.text = "...";               ->  x.SetText("...");
  3. general    x.text = <expr>;              ->  x.SetText(<expr>);

Assignments inside tween/animation lambdas are skipped and logged. A
"// textmig:ignore [passes]" comment skips the next line, its own line when
trailing code, or the whole file when placed before the first line of code.

Use --dry-run to print unified diffs without writing any file.`

var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	var flags scanFlags

	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rewrite [root]",
		Short: "Rewrite .text assignments to SetText/SetTextFormat calls",
		Long:  rewriteLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				ScanArgs: scanArgs(cmd, args, &flags),
				DryRun:   dryRun,
				Reports:  reportsDir(),
			})

			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show diffs without writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}
