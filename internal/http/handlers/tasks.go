package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Desc     string `json:"desc"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

// ListTasks returns all of the caller's tasks in insertion order,
// regardless of status.
func (h *Handler) ListTasks(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	tasks, err := h.Tasks.ListByUser(c.Request.Context(), identity.ID)
	if err != nil {
		logger.Error("listing tasks failed", "user_id", identity.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil || req.Desc == "" || req.Deadline == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "desc and deadline required"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	task := &domain.Task{
		UserID:      identity.ID,
		Description: req.Desc,
		Deadline:    req.Deadline,
		Status:      domain.StatusInProgress,
		Priority:    priority,
	}
	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		logger.Error("creating task failed", "user_id", identity.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// CompleteTask marks an owned task done. Repeat calls are harmless: the
// status stays done and the notification flag is cleared each time.
func (h *Handler) CompleteTask(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if err := h.Tasks.MarkDone(c.Request.Context(), identity.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("completing task failed", "user_id", identity.ID, "task_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), identity.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("deleting task failed", "user_id", identity.ID, "task_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
