// Package cmd provides the root command and CLI setup for typest.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"typest.dev/pkg/typest/internal/adapter"
	"typest.dev/pkg/typest/internal/controller"
	"typest.dev/pkg/typest/internal/domain"
	m "typest.dev/pkg/typest/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var commentAdapter adapter.CommentAdapter
var checkerRunner adapter.CheckerRunnerAdapter
var reportStore adapter.ReportStore
var registry *adapter.CheckerRegistry
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	commentAdapter = adapter.NewLocalPythonCommentAdapter()
	checkerRunner = adapter.NewLocalCheckerRunnerAdapter(checkerTimeout())
	reportStore = adapter.NewLocalReportStore()
	registry = newCheckerRegistry()
	orchestrator = domain.NewOrchestrator(commentAdapter, checkerRunner)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		reportStore,
		ui,
		orchestrator,
		registry,
	)
}

const pathPatternsHelp = `Paths may be Python files (.py, .pyi) or directories:
  - .              scan the current directory recursively
  - ./...          same as above
  - ./tests ./pkg  scan multiple directories
  - case.py        check a single file`

const rootLongDescription = `Typest verifies type assertions embedded in Python sources. Comments
such as "# expect-type: int", "# expect-error" and
"# expect-mismatch: str <> int" are checked against what mypy and pyright
actually report for each line.

` + pathPatternsHelp

const runLongDescription = `Run the configured type checkers over the given paths (default: current
directory) and compare their findings with the expectations in comments.
Exits with status 1 when any file fails under any checker.

` + pathPatternsHelp

const listLongDescription = `List source files and the number of type assertions they carry.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "typest",
		Short:        "Type assertion testing for Python type checkers",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the root-level flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
