package handlers

import (
	"net/http"

	"dayplanner/internal/adapter/http/mapper"
	"dayplanner/internal/adapter/http/validation"
	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
	"dayplanner/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService ports.StatsService
	calendar     *domain.Calendar
}

func NewStatsHandler(statsService ports.StatsService, calendar *domain.Calendar) *StatsHandler {
	return &StatsHandler{statsService: statsService, calendar: calendar}
}

func (h *StatsHandler) DayStats(c *gin.Context) {
	day, err := validation.ParseDay(h.calendar, c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	stats, err := h.statsService.DayStats(c.Request.Context(), day)
	if err != nil {
		respondError(c, err, apierrors.MsgFailStats, zap.Stringer("date", day))
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayStats(stats))
}
