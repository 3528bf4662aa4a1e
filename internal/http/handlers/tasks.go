package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskmanager/internal/domain"
	"taskmanager/internal/http/middleware"
	"taskmanager/internal/ws"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title   string  `json:"title"`
	DueDate *string `json:"dueDate"`
}

// Root describes the API for anyone hitting the bare host.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Task Manager API is running!",
		"endpoints": gin.H{
			"tasks":  "/tasks",
			"health": "/health",
		},
	})
}

// ListTasks returns every task in insertion order.
func (h *Handler) ListTasks(c *gin.Context) {
	middleware.TaskOperations.WithLabelValues("list").Inc()
	c.JSON(http.StatusOK, h.Store.List())
}

// CreateTask adds a task from {title, dueDate?}.
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.Store.Create(req.Title, req.DueDate)
	if err != nil {
		writeTaskError(c, err, "failed to create task")
		return
	}

	middleware.TaskOperations.WithLabelValues("create").Inc()
	h.Hub.Broadcast(ws.TaskCreated(task))
	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update from {title?, completed?, dueDate?}.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var patch domain.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.Store.Update(id, patch)
	if err != nil {
		writeTaskError(c, err, "failed to update task")
		return
	}

	middleware.TaskOperations.WithLabelValues("update").Inc()
	h.Hub.Broadcast(ws.TaskUpdated(task))
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task by id.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(id); err != nil {
		writeTaskError(c, err, "failed to delete task")
		return
	}

	middleware.TaskOperations.WithLabelValues("delete").Inc()
	h.Hub.Broadcast(ws.TaskDeleted(id))
	c.Status(http.StatusNoContent)
}

// taskID parses the :id parameter. A non-numeric id never matches any task,
// so it reports not found rather than bad request.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return 0, false
	}
	return id, true
}

func writeTaskError(c *gin.Context, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
