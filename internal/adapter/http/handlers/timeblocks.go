package handlers

import (
	"net/http"

	"dayplanner/internal/adapter/http/dto"
	"dayplanner/internal/adapter/http/mapper"
	"dayplanner/internal/adapter/http/validation"
	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
	"dayplanner/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TimeBlockHandler struct {
	timeBlockService ports.TimeBlockService
	calendar         *domain.Calendar
}

func NewTimeBlockHandler(timeBlockService ports.TimeBlockService, calendar *domain.Calendar) *TimeBlockHandler {
	return &TimeBlockHandler{timeBlockService: timeBlockService, calendar: calendar}
}

func (h *TimeBlockHandler) ListTimeBlocks(c *gin.Context) {
	taskID, err := validation.ParseID(c.Query("task_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}
	day, err := validation.ParseDay(h.calendar, c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	blocks, err := h.timeBlockService.ListTimeBlocks(c.Request.Context(), taskID, day)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTimeBlocks, zap.Uint64("task_id", taskID), zap.Stringer("date", day))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItems(blocks))
}

func (h *TimeBlockHandler) CreateTimeBlock(c *gin.Context) {
	var req dto.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	input, err := validation.BuildCreateTimeBlockInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	block, err := h.timeBlockService.CreateTimeBlock(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTimeBlock, zap.Uint64("task_id", input.TaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeBlockItem(block))
}

func (h *TimeBlockHandler) DeleteTimeBlock(c *gin.Context) {
	blockID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	if err := h.timeBlockService.DeleteTimeBlock(c.Request.Context(), blockID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTimeBlock, zap.Uint64("block_id", blockID))
		return
	}

	c.Status(http.StatusNoContent)
}
