// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/l3montree-dev/orghub/cmd/orghub/api"
	"github.com/l3montree-dev/orghub/config"
	"github.com/l3montree-dev/orghub/middlewares"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV0Router struct {
	*echo.Group
}

// NewAPIV0Router mounts the /api/v0 group. Everything inside the group
// requires a valid session; /metrics, /health and /info stay
// unauthenticated on the root.
func NewAPIV0Router(e *echo.Echo, db shared.DB, cfg *config.Config) APIV0Router {
	e.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}
		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})
	e.GET("/info/", func(ctx echo.Context) error {
		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
		}
		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}
		return ctx.JSON(200, resp)
	})

	apiV0Router := e.Group("/api/v0", middlewares.SessionMiddleware(cfg.Auth.JWTSecret))
	return APIV0Router{
		Group: apiV0Router,
	}
}
