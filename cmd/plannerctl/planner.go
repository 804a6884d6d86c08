package main

import (
	"context"
	"fmt"

	"dayplanner/internal/adapter/db"
	"dayplanner/internal/app/service"
	"dayplanner/internal/config"
	"dayplanner/internal/core/domain"

	"github.com/jmoiron/sqlx"
)

type planner struct {
	conn     *sqlx.DB
	calendar *domain.Calendar
	tasks    *service.TaskService
	blocks   *service.TimeBlockService
	stats    *service.StatsService
}

// openPlanner wires the services the same way the API server does. Flags win
// over the environment.
func openPlanner(ctx context.Context) (*planner, error) {
	cfg := config.LoadConfig()
	if driverFlag != "" {
		cfg.DbDriver = driverFlag
	}
	if dsnFlag != "" {
		cfg.DbDSN = dsnFlag
	}
	if timezoneFlag != "" {
		cfg.Timezone = timezoneFlag
	}

	calendar, err := domain.LoadCalendar(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	conn, err := db.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DbDriver, err)
	}

	taskRepository := db.NewTaskRepository(conn, calendar)
	timeBlockRepository := db.NewTimeBlockRepository(conn, calendar)
	return &planner{
		conn:     conn,
		calendar: calendar,
		tasks:    service.NewTaskService(calendar, taskRepository, timeBlockRepository),
		blocks:   service.NewTimeBlockService(calendar, timeBlockRepository),
		stats:    service.NewStatsService(calendar, taskRepository, timeBlockRepository),
	}, nil
}

func (p *planner) Close() error {
	return p.conn.Close()
}

func (p *planner) day() (domain.Date, error) {
	if dateFlag == "" {
		return p.calendar.Today(), nil
	}
	return p.calendar.ParseDate(dateFlag)
}
