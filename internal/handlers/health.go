package handlers

import (
	"context"
	"time"

	"xpressairtime/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// HealthCheckFunc reports the state of one dependency.
type HealthCheckFunc func(ctx context.Context) error

// DatabaseCheck pings the connection pool behind db.
func DatabaseCheck(db *gorm.DB) HealthCheckFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

type HealthHandler struct {
	version string
	checks  map[string]HealthCheckFunc
}

func NewHealthHandler(version string, checks map[string]HealthCheckFunc) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := "ok"
	services := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = "degraded"
			services[name] = "unavailable: " + err.Error()
			continue
		}
		services[name] = "connected"
	}

	body := fiber.Map{
		"status":   status,
		"version":  h.version,
		"services": services,
	}
	if status != "ok" {
		return utils.ServiceUnavailable(c, body)
	}
	return utils.Success(c, body)
}
