package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mouse-blink/textmig/internal/config"
	"github.com/mouse-blink/textmig/internal/domain"
	"github.com/mouse-blink/textmig/internal/domain/lexer"
	"github.com/spf13/cobra"
)

var errConfigExists = errors.New("config file already exists")

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the default settings",
		Long: `Write the config file named by --config with every default spelled out:
scan settings, lambda heuristic windows and markers, and the extract filter
lists, ready to be edited.`,
		Args: cobra.ExactArgs(0),
		// The file may be missing or invalid; it is about to be replaced.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(configFlag); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, configFlag)
			}

			if err := defaultProjectConfig().Save(configFlag); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configFlag)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}

// defaultProjectConfig is DefaultConfig with the built-in lists and windows
// filled in, so the written file shows what is in effect.
func defaultProjectConfig() *config.Config {
	cfg := config.DefaultConfig()

	lambda := lexer.DefaultLambdaOptions()
	cfg.Lambda.LookBehind = lambda.LookBehind
	cfg.Lambda.MarkerWindow = lambda.MarkerWindow
	cfg.Lambda.FallbackWindow = lambda.FallbackWindow
	cfg.Lambda.Markers = lambda.Markers

	filters := domain.DefaultExtractFilters()
	cfg.Extract.CallFilters = filters.Calls
	cfg.Extract.MethodFilters = filters.Methods
	cfg.Extract.TextFilters = filters.Texts
	cfg.Extract.ClassFilters = filters.Classes

	return cfg
}

func init() {
	rootCmd.AddCommand(initCmd)
}
