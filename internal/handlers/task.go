package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-portal-api/internal/dto"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"github.com/yukikurage/client-portal-api/internal/services"
	"go.uber.org/zap"
)

// TaskHandler serves the shared task list. No authentication is required.
type TaskHandler struct {
	taskService *services.TaskService
	log         *zap.Logger
}

func NewTaskHandler(taskService *services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// ListTasks returns all tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Text string `json:"text"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(req.Text)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask sets the completion flag of a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Completed *bool `json:"completed"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Completed == nil {
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, "completed is required")
		return
	}

	task, err := h.taskService.SetCompleted(taskID, *req.Completed)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(taskID); err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted"})
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		apierrors.BadRequest(c, "Invalid task ID")
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTextRequired):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, "Task text is required")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		h.log.Error("task request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
