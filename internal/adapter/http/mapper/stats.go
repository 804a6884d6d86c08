package mapper

import (
	"dayplanner/internal/adapter/http/dto"
	"dayplanner/internal/core/domain"
)

func ToDayStats(stats domain.DayStats) dto.DayStats {
	return dto.DayStats{
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		CompletionRate: stats.CompletionRate,
		TotalWorkHours: stats.TotalWorkHours,
		AvgWorkHours:   stats.AvgWorkHours,
	}
}
