package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydrolens/aquaview-demo/services/api/alerts"
	"github.com/hydrolens/aquaview-demo/services/api/session"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// handleV1ListAlerts returns the session's alert queue
// GET /api/v1/console/alerts
func (s *Server) handleV1ListAlerts(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"data": state.Alerts,
		"meta": gin.H{
			"count":     len(state.Alerts),
			"by_status": alerts.CountByStatus(state.Alerts),
		},
	})
}

// handleV1AcknowledgeAlert marks an open alert as seen by an operator
// POST /api/v1/console/alerts/:id/ack
func (s *Server) handleV1AcknowledgeAlert(c *gin.Context) {
	s.applyAlertAction(c, "ack", session.AcknowledgeAlert{AlertID: c.Param("id")})
}

// handleV1DispatchAlert assigns a field team to an alert
// POST /api/v1/console/alerts/:id/dispatch
func (s *Server) handleV1DispatchAlert(c *gin.Context) {
	var req dispatchAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.applyAlertAction(c, "dispatch", session.DispatchAlert{AlertID: c.Param("id"), Team: req.Team})
}

// handleV1ResolveAlert closes out an alert
// POST /api/v1/console/alerts/:id/resolve
func (s *Server) handleV1ResolveAlert(c *gin.Context) {
	s.applyAlertAction(c, "resolve", session.ResolveAlert{AlertID: c.Param("id")})
}

// applyAlertAction runs one workflow verb through the session and
// renders the alert it addressed. Transitions the state machine
// swallows come back as 200 with meta.changed=false.
func (s *Server) applyAlertAction(c *gin.Context, verb string, action session.Action) {
	_, ch, err := sessionFrom(c).Apply(action)
	if err != nil {
		renderApplyError(c, err)
		return
	}

	if ch.Applied {
		alertTransitions.WithLabelValues(verb).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ch.Alert,
		"meta": gin.H{"changed": ch.Applied},
	})
}

// handleV1ConsoleOverview summarizes grid health for the department dashboard
// GET /api/v1/console/overview
func (s *Server) handleV1ConsoleOverview(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	highRisk := make([]cellView, 0)
	poorQuality := make([]cellView, 0)
	for _, cell := range state.Cells {
		if watergrid.RiskTier(cell.LeakRisk) == watergrid.TierHigh {
			highRisk = append(highRisk, viewOf(cell))
		}
		if watergrid.QualityBand(cell.Quality) == watergrid.BandPoor {
			poorQuality = append(poorQuality, viewOf(cell))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"alerts_by_status":   alerts.CountByStatus(state.Alerts),
			"high_risk_cells":    highRisk,
			"poor_quality_cells": poorQuality,
		},
	})
}
