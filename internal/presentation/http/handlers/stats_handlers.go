package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
)

// StatsHandlers exposes operation timing summaries to the admin panel.
type StatsHandlers struct {
	perfTracker *performance.Tracker
	startedAt   time.Time
}

// NewStatsHandlers creates stats handlers with dependency injection
func NewStatsHandlers(perfTracker *performance.Tracker) *StatsHandlers {
	return &StatsHandlers{
		perfTracker: perfTracker,
		startedAt:   time.Now().UTC(),
	}
}

// GetStats handles GET /api/admin/stats
func (h *StatsHandlers) GetStats(c *gin.Context) {
	stats := h.perfTracker.GetStats()
	respondData(c, http.StatusOK, gin.H{
		"uptime":           time.Since(h.startedAt).Round(time.Second).String(),
		"totalOperations":  stats.TotalOperations,
		"failedOperations": stats.FailedOperations,
		"averageDuration":  stats.AverageDuration.String(),
		"slowOperations":   stats.SlowOperations,
	})
}
