package handler

import (
	"net/http"
	"time"

	"campusconnect/config"
	"campusconnect/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness along with database connectivity.
type HealthHandler struct {
	cfg       *config.Config
	db        *gorm.DB
	startedAt time.Time
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		db:        db,
		startedAt: time.Now(),
	}
}

type healthStatus struct {
	Status      string  `json:"status"`
	Database    string  `json:"database"`
	Uptime      float64 `json:"uptime"` // seconds since process start
	Environment string  `json:"environment"`
}

// Check answers the health probe. The service reports "ok" even when the
// database is unreachable; the database field carries that state separately
// so load balancers and dashboards can tell the two apart.
func (h *HealthHandler) Check(c echo.Context) error {
	dbState := "connected"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		dbState = "disconnected"
	}

	return response.Success(c, http.StatusOK, healthStatus{
		Status:      "ok",
		Database:    dbState,
		Uptime:      time.Since(h.startedAt).Seconds(),
		Environment: h.cfg.Env.Env,
	}, "Service is healthy")
}
