package cmd

import (
	"github.com/mouse-blink/textmig/internal/config"
	"github.com/mouse-blink/textmig/internal/domain"
	m "github.com/mouse-blink/textmig/internal/model"
	"github.com/spf13/cobra"
)

const extractLongDescription = `Collect the user-facing string literals of every script under root.

Literals on lines calling a filtered API (Debug.Log, Resources.Load, ...),
inside filtered methods, or failing the text rules (identifiers, paths,
numbers, colours, versions, placeholders) are dropped, as are texts already
present in the first column of the language table. The remaining unique
texts are written sorted, one per line.

Scripts named after, or declaring, a filtered class (IAPManager, LocalSave,
Launch) are skipped. --column adds the cells of that column from every
reference table, and --comments adds the prose of code comments.`

var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	var flags scanFlags

	var output, table, tableName, tableDir string

	var columns []string

	var comments bool

	cmd := &cobra.Command{
		Use:   "extract [root]",
		Short: "Extract untranslated UI texts from scripts",
		Long:  extractLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extract := settings.Extract

			if cmd.Flags().Changed("output") {
				extract.Output = output
			}

			if cmd.Flags().Changed("table") {
				extract.LanguageTable = table
			}

			if cmd.Flags().Changed("table-name") {
				extract.TableName = tableName
			}

			if cmd.Flags().Changed("table-dir") {
				extract.TableDir = tableDir
			}

			if cmd.Flags().Changed("column") {
				extract.TargetColumns = columns
			}

			if cmd.Flags().Changed("comments") {
				extract.IncludeComments = comments
			}

			_, err := workflow.Extract(cmd.Context(), domain.ExtractArgs{
				ScanArgs:        scanArgs(cmd, args, &flags),
				Output:          m.Path(extract.Output),
				LanguageTable:   m.Path(extract.LanguageTable),
				TableName:       extract.TableName,
				Filters:         extractFilters(extract),
				TableDir:        m.Path(extract.TableDir),
				TargetColumns:   extract.TargetColumns,
				IncludeComments: extract.IncludeComments,
			})

			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "extracted_texts.txt", "file the unique texts are written to")
	cmd.Flags().StringVarP(&table, "table", "t", "", "language table file, or a directory searched for it")
	cmd.Flags().StringVar(&tableName, "table-name", "language", "table file name searched for when --table is a directory")
	cmd.Flags().StringVar(&tableDir, "table-dir", "", "directory of reference tables read for --column (default: the language table's)")
	cmd.Flags().StringArrayVar(&columns, "column", nil, "reference table column whose cells are extracted (repeatable)")
	cmd.Flags().BoolVar(&comments, "comments", false, "also extract the prose of code comments")

	return cmd
}

// extractFilters keeps the built-in list for every filter left unset.
func extractFilters(extract config.ExtractConfig) domain.ExtractFilters {
	filters := domain.DefaultExtractFilters()

	if extract.CallFilters != nil {
		filters.Calls = extract.CallFilters
	}

	if extract.MethodFilters != nil {
		filters.Methods = extract.MethodFilters
	}

	if extract.TextFilters != nil {
		filters.Texts = extract.TextFilters
	}

	if extract.ClassFilters != nil {
		filters.Classes = extract.ClassFilters
	}

	return filters
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
