package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hydrolens/aquaview-demo/services/api/reports"
	"github.com/hydrolens/aquaview-demo/services/api/session"
	"github.com/hydrolens/aquaview-demo/services/api/usage"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// handleV1SubmitReport accepts a citizen report and credits the
// eco-points bonus in the same request
// POST /api/v1/portal/reports
func (s *Server) handleV1SubmitReport(c *gin.Context) {
	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := reports.ParseIssueType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := sessionFrom(c)
	_, ch, err := sess.Apply(session.SubmitReport{
		ReceiptID: uuid.NewString(),
		CellID:    req.CellID,
		Type:      issue,
		Notes:     req.Notes,
	})
	if err != nil {
		renderApplyError(c, err)
		return
	}

	state, _, err := sess.Apply(session.AwardPoints{Amount: s.cfg.ReportBonus})
	if err != nil {
		renderApplyError(c, err)
		return
	}

	reportsSubmitted.WithLabelValues(issue.String()).Inc()

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"receipt_id":     ch.Report.ID,
			"message":        ch.Notice,
			"points_awarded": s.cfg.ReportBonus,
			"points_total":   state.EcoPoints,
		},
	})
}

// handleV1ListReports returns the reports accepted this session
// GET /api/v1/portal/reports
func (s *Server) handleV1ListReports(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	list := state.Reports
	if list == nil {
		list = []reports.Report{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"meta": gin.H{"count": len(list)},
	})
}

// handleV1Usage returns the month-by-month usage history with totals
// GET /api/v1/portal/usage
func (s *Server) handleV1Usage(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	usedKL, billed := usage.Totals(state.Usage)
	c.JSON(http.StatusOK, gin.H{
		"data": state.Usage,
		"meta": gin.H{
			"months":       len(state.Usage),
			"total_kl":     usedKL,
			"total_billed": billed.StringFixed(2),
			"currency":     usage.Currency,
		},
	})
}

// handleV1AwardPoints credits eco-points to the session balance
// POST /api/v1/portal/points
func (s *Server) handleV1AwardPoints(c *gin.Context) {
	var req awardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, _, err := sessionFrom(c).Apply(session.AwardPoints{Amount: req.Amount})
	if err != nil {
		renderApplyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"eco_points": state.EcoPoints},
	})
}

// handleV1PortalSummary condenses the citizen-facing state into one payload
// GET /api/v1/portal/summary
func (s *Server) handleV1PortalSummary(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	var latest *usage.Record
	if n := len(state.Usage); n > 0 {
		latest = &state.Usage[n-1]
	}

	var selected *cellView
	if state.SelectedCell != "" {
		if cell, ok := watergrid.CellByID(state.Cells, state.SelectedCell); ok {
			v := viewOf(cell)
			selected = &v
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"eco_points":        state.EcoPoints,
			"reports_submitted": len(state.Reports),
			"latest_usage":      latest,
			"selected_cell":     selected,
			"notice":            state.Notice,
		},
	})
}
