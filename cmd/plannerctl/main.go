// Package main implements plannerctl, a read-only report of a planner day.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	driverFlag   string
	dsnFlag      string
	timezoneFlag string
	dateFlag     string
	taskFlag     uint64
)

var rootCmd = &cobra.Command{
	Use:          "plannerctl",
	Short:        "Inspect the tasks, time blocks and statistics of a day",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "database driver: sqlite, mysql or pgx (default from DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database DSN (default from DB_DSN)")
	rootCmd.PersistentFlags().StringVar(&timezoneFlag, "timezone", "", "civil timezone (default from PLANNER_TIMEZONE)")

	for _, cmd := range []*cobra.Command{tasksCmd, blocksCmd, statsCmd} {
		cmd.Flags().StringVar(&dateFlag, "date", "", "day to report as YYYY-MM-DD (default today)")
	}
	blocksCmd.Flags().Uint64Var(&taskFlag, "task", 0, "task id")
	_ = blocksCmd.MarkFlagRequired("task")

	rootCmd.AddCommand(tasksCmd, blocksCmd, statsCmd)
}
