package config

import (
	"tasklink/app"
	"tasklink/app/controller/health"
	"tasklink/app/controller/status"
	"tasklink/app/controller/tasks"
	"tasklink/internal/sysmetrics"

	"github.com/labstack/echo/v4"
)

// AddRoutes wires every handler with its dependencies from the container.
func AddRoutes(e *echo.Echo, container *app.Container) {
	root := e.Group("")

	health.Register(root)
	status.Register(root, container, sysmetrics.New())

	// Initialize handlers with dependencies
	tasksHandler := tasks.NewHandler(container.TaskRepository)
	tasksHandler.RegisterRoutes(e.Group("/tasks"))
}
