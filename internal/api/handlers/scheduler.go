package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelpick/reelpick/internal/scheduler"
)

// SchedulerHandler exposes the background tasks for inspection and manual runs.
type SchedulerHandler struct {
	scheduler *scheduler.Scheduler
}

func NewSchedulerHandler(sched *scheduler.Scheduler) *SchedulerHandler {
	return &SchedulerHandler{scheduler: sched}
}

// RegisterRoutes mounts the task routes on g.
func (h *SchedulerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tasks", h.ListTasks)
	g.GET("/tasks/:id", h.GetTask)
	g.POST("/tasks/:id/run", h.RunTask)
}

// ListTasks returns every registered task ordered by ID.
// GET /api/v1/scheduler/tasks
func (h *SchedulerHandler) ListTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.scheduler.ListTasks())
}

// GET /api/v1/scheduler/tasks/:id
func (h *SchedulerHandler) GetTask(c echo.Context) error {
	task, err := h.scheduler.GetTask(c.Param("id"))
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

// RunTask starts a task in the background. A task that is already running
// is not started twice.
// POST /api/v1/scheduler/tasks/:id/run
func (h *SchedulerHandler) RunTask(c echo.Context) error {
	id := c.Param("id")
	if err := h.scheduler.RunNow(id); err != nil {
		return taskError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "Task started",
		"taskId":  id,
	})
}

func taskError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scheduler.ErrTaskNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scheduler.ErrTaskRunning):
		status = http.StatusConflict
	case errors.Is(err, scheduler.ErrNotStarted):
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
