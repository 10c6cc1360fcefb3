// Package tasks handles all the task record requests
package tasks

import (
	"errors"
	"fmt"
	"net/http"

	"tasklink/domain/task"

	"github.com/labstack/echo/v4"
)

type (
	Handler struct {
		repo task.Repository
	}
	TaskRequest struct {
		Title       string `json:"title" validate:"required,min=3,max=100"`
		Description string `json:"description" validate:"omitempty,min=3,max=500"`
		Priority    *int   `json:"priority" validate:"omitnil,min=1,max=10"`
		Status      string `json:"status" validate:"required,oneof=done undone progress"`
	}
	UpdateTaskRequest struct {
		Title       *string `json:"title" validate:"omitnil,min=3,max=100"`
		Description *string `json:"description" validate:"omitnil,min_or_empty=3,max=500"`
		Priority    *int    `json:"priority" validate:"omitnil,min=1,max=10"`
		Status      *string `json:"status" validate:"omitnil,oneof=done undone progress"`
	}
	TaskCollection struct {
		Tasks []task.Task `json:"tasks"`
	}
)

func NewHandler(repo task.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h Handler) Create(c echo.Context) error {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	priority := task.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	newTask := &task.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      req.Status,
	}

	ctx := c.Request().Context()

	if err := h.repo.Insert(ctx, newTask); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save task: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, newTask)
}

func (h Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	tasks, err := h.repo.FindAll(ctx, task.MaxListLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch tasks: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, TaskCollection{Tasks: tasks})
}

func (h Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	taskID := c.Param("id")

	found, err := h.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, task.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid task id: " + taskID,
			})
		}
		if errors.Is(err, task.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("Task %s not found", taskID),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch task: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, found)
}

func (h Handler) Update(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	taskID := c.Param("id")

	patch := task.Patch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}

	updated, err := h.repo.UpdateFields(ctx, taskID, patch)
	if err != nil {
		if errors.Is(err, task.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid task id: " + taskID,
			})
		}
		if errors.Is(err, task.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("Task %s not found", taskID),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update task: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, updated)
}

func (h Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	taskID := c.Param("id")

	if err := h.repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, task.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid task id: " + taskID,
			})
		}
		if errors.Is(err, task.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("Task %s not found", taskID),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete task: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.Index)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
