package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydrolens/aquaview-demo/services/api/alerts"
)

// handleV1RealtimeNow returns the polling snapshot with the active notice
// GET /api/v1/realtime/now
func (s *Server) handleV1RealtimeNow(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"notice":          state.Notice,
			"notice_seq":      state.NoticeSeq,
			"eco_points":      state.EcoPoints,
			"alerts_open":     alerts.CountByStatus(state.Alerts)[alerts.StatusOpen],
			"selected_cell":   state.SelectedCell,
			"last_updated_at": state.LastUpdated.UTC().Format(time.RFC3339),
		},
		"meta": gin.H{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
