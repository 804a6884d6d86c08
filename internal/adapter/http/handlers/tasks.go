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

type TaskHandler struct {
	taskService ports.TaskService
	calendar    *domain.Calendar
}

func NewTaskHandler(taskService ports.TaskService, calendar *domain.Calendar) *TaskHandler {
	return &TaskHandler{taskService: taskService, calendar: calendar}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	day, err := validation.ParseDay(h.calendar, c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), day)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, zap.Stringer("date", day))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	title, err := validation.BuildCreateTaskTitle(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCreatedTask(task))
}

func (h *TaskHandler) SetCompletion(c *gin.Context) {
	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.SetCompletion(c.Request.Context(), taskID, *req.Completed)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
