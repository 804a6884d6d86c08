package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"dayplanner/internal/core/domain"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks visible on a day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		day, err := p.day()
		if err != nil {
			return err
		}
		tasks, err := p.tasks.ListTasks(cmd.Context(), day)
		if err != nil {
			return err
		}
		writeTasks(cmd.OutOrStdout(), tasks)
		return nil
	},
}

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the time blocks of a task touching a day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		day, err := p.day()
		if err != nil {
			return err
		}
		blocks, err := p.blocks.ListTimeBlocks(cmd.Context(), taskFlag, day)
		if err != nil {
			return err
		}
		writeBlocks(cmd.OutOrStdout(), blocks)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion and work-hour statistics for a day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		day, err := p.day()
		if err != nil {
			return err
		}
		stats, err := p.stats.DayStats(cmd.Context(), day)
		if err != nil {
			return err
		}
		writeStats(cmd.OutOrStdout(), stats)
		return nil
	},
}

func writeTasks(out io.Writer, tasks []domain.Task) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tCOMPLETED AT\tTITLE")
	for _, t := range tasks {
		completedAt := "-"
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Format(time.DateTime)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, yesNo(t.Completed), completedAt, truncateTitle(t.Title))
	}
	w.Flush()
}

func writeBlocks(out io.Writer, blocks []domain.TimeBlock) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTART\tEND\tHOURS")
	for _, b := range blocks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			b.ID,
			b.Date,
			b.Start.Format(time.DateTime),
			b.End.Format(time.DateTime),
			strconv.FormatFloat(b.End.Sub(b.Start).Hours(), 'f', 2, 64),
		)
	}
	w.Flush()
}

func writeStats(out io.Writer, stats domain.DayStats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "date\t%s\n", stats.Date)
	fmt.Fprintf(w, "tasks\t%d\n", stats.TotalTasks)
	fmt.Fprintf(w, "completed\t%d\n", stats.CompletedTasks)
	fmt.Fprintf(w, "completion rate\t%d%%\n", stats.CompletionRate)
	fmt.Fprintf(w, "work hours\t%.1f\n", stats.TotalWorkHours)
	fmt.Fprintf(w, "avg hours per task\t%.1f\n", stats.AvgWorkHours)
	w.Flush()
}

const maxTitleWidth = 50

// truncateTitle shortens title to maxTitleWidth runes.
func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= maxTitleWidth {
		return title
	}
	return string([]rune(title)[:maxTitleWidth-3]) + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
