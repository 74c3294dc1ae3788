package handlers

import (
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const taskNotFound = "Task not found"

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ValidationError(c, "Invalid query parameters")
		return
	}

	tasks, err := h.taskService.GetTasks(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "list tasks", taskNotFound)
		return
	}
	utils.Success(c, tasks)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "get task", taskNotFound)
		return
	}
	utils.Success(c, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.TaskCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "create task", taskNotFound)
		return
	}
	utils.Created(c, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.TaskUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update task", taskNotFound)
		return
	}
	utils.Success(c, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "delete task", taskNotFound)
		return
	}
	deleted(c, "Task deleted successfully")
}
