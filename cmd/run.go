package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typest.dev/pkg/typest/internal/domain"
	m "typest.dev/pkg/typest/internal/model"
)

var runParallelFlag int
var runCheckersFlag []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Check type assertions with mypy and pyright",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Paths:    parsePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Checkers: viper.GetStringSlice(runCheckersConfigKey),
				Threads:  parseThreads(viper.GetInt(runParallelConfigKey)),
				Reports:  m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files checked in parallel (checkers run in turn per file)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringSliceVarP(&runCheckersFlag, runCheckersFlagName, "c", viper.GetStringSlice(runCheckersConfigKey), "checkers to run (comma separated)")
	bindFlagToConfig(cmd.Flags().Lookup(runCheckersFlagName), runCheckersConfigKey)
}

func parseThreads(parallel int) uint {
	if parallel < 1 {
		return 1
	}

	return uint(parallel)
}
