package server

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/errgroup"
)

// StartTime anchors the uptime reported by /health.
var StartTime = time.Now()

// SystemStatus is the GET /health payload.
type SystemStatus struct {
	Status             string  `json:"status"`
	UptimeSeconds      int64   `json:"uptime_seconds"`
	ProviderConfigured bool    `json:"provider_configured"`
	MemoryUsedPercent  float64 `json:"memory_used_percent"`
	CPUPercent         float64 `json:"cpu_percent"`
	Hostname           string  `json:"hostname"`
	Platform           string  `json:"platform"`
}

// healthHandler reports process and host health. The probes are independent
// and gathered concurrently; a failing probe logs a warning and leaves its
// field at the zero value rather than failing the endpoint.
func (s *Server) healthHandler(c echo.Context) error {
	status := SystemStatus{
		Status:             "up",
		UptimeSeconds:      int64(time.Since(StartTime).Seconds()),
		ProviderConfigured: os.Getenv("GROQ_API_KEY") != "",
	}

	g, ctx := errgroup.WithContext(c.Request().Context())

	g.Go(func() error {
		v, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Memory probe failed")
			return nil
		}
		status.MemoryUsedPercent = v.UsedPercent
		return nil
	})

	g.Go(func() error {
		percents, err := cpu.PercentWithContext(ctx, 0, false)
		if err != nil {
			log.Warn().Err(err).Msg("CPU probe failed")
			return nil
		}
		if len(percents) > 0 {
			status.CPUPercent = percents[0]
		}
		return nil
	})

	g.Go(func() error {
		info, err := host.InfoWithContext(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Host probe failed")
			return nil
		}
		status.Hostname = info.Hostname
		status.Platform = info.Platform
		return nil
	})

	_ = g.Wait()

	if !status.ProviderConfigured {
		status.Status = "degraded"
	}

	return c.JSON(http.StatusOK, status)
}
