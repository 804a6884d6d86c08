package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"dayplanner/internal/adapter/db"
	"dayplanner/internal/app/service"
	"dayplanner/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestRootCommandName(t *testing.T) {
	require.Equal(t, "plannerctl", rootCmd.Use)
}

// seed stores one task with a 90 minute block on 2024-06-01 and a completed
// task without blocks, and returns the DSN of the database file.
func seed(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "planner.db")

	conn, err := db.Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer conn.Close()

	cal, err := domain.LoadCalendar(domain.DefaultTimezone)
	require.NoError(t, err)
	taskRepository := db.NewTaskRepository(conn, cal)
	timeBlockRepository := db.NewTimeBlockRepository(conn, cal)
	tasks := service.NewTaskService(cal, taskRepository, timeBlockRepository)
	blocks := service.NewTimeBlockService(cal, timeBlockRepository)

	task, err := tasks.CreateTask(ctx, "Write report")
	require.NoError(t, err)
	_, err = blocks.CreateTimeBlock(ctx, domain.CreateTimeBlockInput{
		TaskID:    task.ID,
		StartTime: "2024-06-01T09:00:00",
		EndTime:   "2024-06-01T10:30:00",
	})
	require.NoError(t, err)

	done, err := tasks.CreateTask(ctx, "Archived")
	require.NoError(t, err)
	_, err = tasks.SetCompletion(ctx, done.ID, true)
	require.NoError(t, err)

	return dsn
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	driverFlag, dsnFlag, timezoneFlag, dateFlag, taskFlag = "", "", "", "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTasksCommand(t *testing.T) {
	dsn := seed(t)

	out, err := run(t, "--driver", "sqlite", "--dsn", dsn, "tasks", "--date", "2024-06-01")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, out)
	require.Contains(t, lines[0], "TITLE")
	require.Contains(t, lines[1], "Write report")
	require.NotContains(t, out, "Archived")
}

func TestBlocksCommand(t *testing.T) {
	dsn := seed(t)

	out, err := run(t, "--driver", "sqlite", "--dsn", dsn, "blocks", "--task", "1", "--date", "2024-06-01")
	require.NoError(t, err)
	require.Contains(t, out, "2024-06-01 09:00:00")
	require.Contains(t, out, "2024-06-01 10:30:00")
	require.Contains(t, out, "1.50")

	out, err = run(t, "--driver", "sqlite", "--dsn", dsn, "blocks", "--task", "1", "--date", "2024-06-02")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1, out)
}

func TestStatsCommand(t *testing.T) {
	dsn := seed(t)

	out, err := run(t, "--driver", "sqlite", "--dsn", dsn, "--timezone", "Asia/Shanghai", "stats", "--date", "2024-06-01")
	require.NoError(t, err)
	require.Contains(t, out, "2024-06-01")
	require.Regexp(t, `tasks\s+1\n`, out)
	require.Regexp(t, `completion rate\s+0%`, out)
	require.Regexp(t, `work hours\s+1\.5`, out)
}

func TestInvalidDate(t *testing.T) {
	dsn := seed(t)

	_, err := run(t, "--driver", "sqlite", "--dsn", dsn, "stats", "--date", "June 1st")
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestWriteTasks_TruncatesOnRuneBoundary(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Title: strings.Repeat("写", 17)},
		{ID: 2, Title: strings.Repeat("报告", 30)},
		{ID: 3, Title: strings.Repeat("x", 60)},
	}

	var out bytes.Buffer
	writeTasks(&out, tasks)

	require.True(t, utf8.Valid(out.Bytes()))
	require.Contains(t, out.String(), strings.Repeat("写", 17)+"\n")
	require.Contains(t, out.String(), string([]rune(strings.Repeat("报告", 30))[:47])+"...\n")
	require.Contains(t, out.String(), strings.Repeat("x", 47)+"...\n")
}
