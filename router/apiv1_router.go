// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/l3montree-dev/fixflow/config"
	"github.com/l3montree-dev/fixflow/controllers"
	"github.com/l3montree-dev/fixflow/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

type APIV1Router struct {
	*echo.Group
}

// SessionRouter holds every route that needs an authenticated user.
type SessionRouter struct {
	*echo.Group
}

type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion"`
	NumGoroutines int    `json:"numGoroutines"`
	HeapAlloc     uint64 `json:"heapAlloc"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type InfoResponse struct {
	Build   BuildInfo   `json:"build"`
	Runtime RuntimeInfo `json:"runtime"`
	Process ProcessInfo `json:"process"`
}

func info(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			HeapAlloc:     mem.HeapAlloc,
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(startedAt).Seconds()),
		},
	}
	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}
	return c.JSON(200, resp)
}

func NewAPIV1Router(srv *echo.Echo, healthController *controllers.HealthController) APIV1Router {
	srv.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router := srv.Group("/api/v1")
	apiV1Router.GET("/health/", healthController.Health)
	apiV1Router.GET("/info/", info)

	return APIV1Router{Group: apiV1Router}
}

func NewSessionRouter(apiV1Router APIV1Router) SessionRouter {
	return SessionRouter{Group: apiV1Router.Group.Group("", middlewares.SessionMiddleware())}
}
