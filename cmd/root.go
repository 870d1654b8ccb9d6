// Package cmd provides the root command and CLI setup for textmig.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/textmig/internal/adapter"
	"github.com/mouse-blink/textmig/internal/config"
	"github.com/mouse-blink/textmig/internal/controller"
	"github.com/mouse-blink/textmig/internal/domain"
	"github.com/mouse-blink/textmig/internal/domain/lexer"
	"github.com/mouse-blink/textmig/internal/logging"
	m "github.com/mouse-blink/textmig/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var workflow domain.Workflow
var logger *zap.Logger
var settings *config.Config

// shutdownSignals cancel the command context.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

var configFlag string
var verboseFlag bool
var reportsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textmig",
		Short: "Migrate UI .text assignments to SetText calls",
		Long: `textmig rewrites C# UI text assignments in a Unity project so that
localization hooks see every text change:

  label.text = string.Format(fmt, args);  ->  label.SetTextFormat(fmt, args);
  label.text = "literal";                  ->  label.SetText("literal");
  label.text = expression;                 ->  label.SetText(expression);

Assignments inside lambdas passed to tween calls are left alone. The extract
command collects the user-facing string literals that still need translating.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.FileName, "path to the config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentFlags().StringVar(&reportsFlag, "reports", "", "directory run reports are saved to and read from")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup loads the config and builds whatever collaborators are not already set.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg

	if logger == nil {
		logger, err = logging.New(verboseFlag)
		if err != nil {
			return err
		}
	}

	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, logger)
	}

	logger.Debug("config loaded", zap.String("path", configFlag), zap.String("root", cfg.Root))

	return nil
}

func newWorkflow(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	detector := lexer.NewLambdaDetector(lexer.LambdaOptions{
		LookBehind:     cfg.Lambda.LookBehind,
		MarkerWindow:   cfg.Lambda.MarkerWindow,
		FallbackWindow: cfg.Lambda.FallbackWindow,
		Markers:        cfg.Lambda.Markers,
	})

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		adapter.NewLocalTableAdapter(),
		ui,
		domain.NewRewriter(detector),
		domain.NewRunLog(cfg.LogLimit, log.Named("run")),
	)
}

// scanArgs merges the config with the scan flags of cmd; flags win.
func scanArgs(cmd *cobra.Command, args []string, flags *scanFlags) domain.ScanArgs {
	root := settings.Root
	if len(args) > 0 {
		root = args[0]
	}

	scan := domain.ScanArgs{
		Root:             m.Path(root),
		Extension:        settings.Extension,
		ExcludeFile:      settings.ExcludeFile,
		Exclude:          append([]string(nil), settings.ExcludePatterns...),
		RespectGitignore: settings.RespectGitignore,
	}

	if cmd.Flags().Changed("ext") {
		scan.Extension = flags.extension
	}

	if cmd.Flags().Changed("exclude-file") {
		scan.ExcludeFile = flags.excludeFile
	}

	if cmd.Flags().Changed("gitignore") {
		scan.RespectGitignore = flags.gitignore
	}

	scan.Exclude = append(scan.Exclude, flags.exclude...)

	return scan
}

func reportsDir() m.Path {
	if reportsFlag != "" {
		return m.Path(reportsFlag)
	}

	return m.Path(settings.Reports)
}

// scanFlags are the file selection flags shared by rewrite and extract.
type scanFlags struct {
	extension   string
	excludeFile string
	exclude     []string
	gitignore   bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.extension, "ext", ".cs", "script file extension")
	cmd.Flags().StringVar(&f.excludeFile, "exclude-file", "Util.cs", "file name that is never processed")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&f.gitignore, "gitignore", false, "skip files ignored by the root .gitignore")
}
