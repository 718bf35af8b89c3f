package controllers

import (
	"context"
	"time"

	"github.com/l3montree-dev/fixflow/database"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	db shared.DB
}

func NewHealthController(db shared.DB) *HealthController {
	return &HealthController{db: db}
}

type healthResponse struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	MigrationVersion *uint  `json:"migrationVersion,omitempty"`
	MigrationDirty   bool   `json:"migrationDirty,omitempty"`
}

func (c *HealthController) Health(ctx shared.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := c.db.DB()
	if err != nil {
		return echo.NewHTTPError(503, "database unavailable").WithInternal(err)
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return echo.NewHTTPError(503, "database unavailable").WithInternal(err)
	}

	resp := healthResponse{Status: "ok", Database: "ok"}
	if c.db.Dialector.Name() == "postgres" {
		if version, dirty, err := database.GetMigrationVersionWithDB(c.db); err == nil {
			resp.MigrationVersion = &version
			resp.MigrationDirty = dirty
		}
	}
	return ctx.JSON(200, resp)
}
