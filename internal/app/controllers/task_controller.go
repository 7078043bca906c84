package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/models/dto"
	"github.com/yigit/lmsdash/internal/app/services"
	"github.com/yigit/lmsdash/internal/middleware"
)

// TaskController handles the current user's to-do list
type TaskController struct {
	taskService services.TaskService
	userID      string
}

// NewTaskController creates a new TaskController acting for userID
func NewTaskController(taskService services.TaskService, userID string) *TaskController {
	return &TaskController{
		taskService: taskService,
		userID:      userID,
	}
}

// GetTasks lists the current user's tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch tasks"
// @Router /tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
	tasks, err := c.taskService.GetTasksByUser(ctx, c.userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch tasks")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// CreateTask adds a task to the current user's list
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} models.Task
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Failed to create task"
// @Router /tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid task data", err.Error()))
		return
	}

	task, err := c.taskService.CreateTask(ctx, req.ToModel(c.userID))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create task")
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task
// @Summary Update task
// @Description Shallow-merges the body into the task; any top-level field may be set
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Fields to overwrite"
// @Success 200 {object} models.Task
// @Failure 400 {object} dto.ErrorResponse "Invalid update payload"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update task"
// @Router /tasks/{id} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	// An empty body is an empty update
	partial := models.Partial{}
	if err := ctx.ShouldBindJSON(&partial); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid update payload", err.Error()))
		return
	}

	task, err := c.taskService.UpdateTask(ctx, ctx.Param("id"), partial)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update task")
		return
	}

	ctx.JSON(http.StatusOK, task)
}
