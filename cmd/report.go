package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xperh004/air-quality-monitoring-prague/internal/report"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/logfile"
)

var reportCmd = &cobra.Command{
	Use:          "report [logfile]",
	Short:        "Summarize a recorded log",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("log.file")
		if len(args) == 1 {
			path = args[0]
		}
		readings, err := logfile.ReadAll(path)
		if err != nil {
			return err
		}
		report.Render(os.Stdout, path, report.Summarize(readings, limitsFromConfig()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
