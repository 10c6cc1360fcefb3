// Package status reports database reachability and a host metrics
// snapshot next to the plain health route.
package status

import (
	"context"
	"net/http"

	"tasklink/internal/sysmetrics"
	"tasklink/version"

	"github.com/labstack/echo/v4"
)

type (
	DatabasePinger interface {
		Ping(ctx context.Context) error
	}
	Handler struct {
		db  DatabasePinger
		sys sysmetrics.Collector
	}
	Response struct {
		Status   string               `json:"status"`
		Version  string               `json:"version"`
		Database string               `json:"database"`
		System   *sysmetrics.Snapshot `json:"system,omitempty"`
	}
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"

	databaseReachable   = "reachable"
	databaseUnreachable = "unreachable"
)

func NewHandler(db DatabasePinger, sys sysmetrics.Collector) *Handler {
	return &Handler{db: db, sys: sys}
}

func (h Handler) GET(c echo.Context) error {
	ctx := c.Request().Context()

	resp := Response{
		Status:   statusOK,
		Version:  version.Version,
		Database: databaseReachable,
	}

	if err := h.db.Ping(ctx); err != nil {
		resp.Status = statusDegraded
		resp.Database = databaseUnreachable
	}

	if snapshot, err := h.sys.Collect(ctx); err == nil {
		resp.System = &snapshot
	}

	return c.JSON(http.StatusOK, resp)
}

func Register(g *echo.Group, db DatabasePinger, sys sysmetrics.Collector) {
	h := NewHandler(db, sys)

	g.GET("/status", h.GET)
}
