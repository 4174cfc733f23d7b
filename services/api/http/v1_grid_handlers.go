package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydrolens/aquaview-demo/services/api/session"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// cellView decorates a cell with the derived bands the UIs render.
type cellView struct {
	watergrid.Cell
	QualityBand watergrid.Band `json:"quality_band"`
	RiskTier    watergrid.Tier `json:"risk_tier"`
}

func viewOf(cell watergrid.Cell) cellView {
	return cellView{
		Cell:        cell,
		QualityBand: watergrid.QualityBand(cell.Quality),
		RiskTier:    watergrid.RiskTier(cell.LeakRisk),
	}
}

// handleV1Grid returns the session's full grid
// GET /api/v1/grid
func (s *Server) handleV1Grid(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"data": state.Cells,
		"meta": gin.H{
			"rows":     watergrid.Rows,
			"cols":     watergrid.Cols,
			"count":    len(state.Cells),
			"selected": state.SelectedCell,
		},
	})
}

// handleV1GridCell returns one cell with its derived bands
// GET /api/v1/grid/cells/:id
func (s *Server) handleV1GridCell(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	cell, ok := watergrid.CellByID(state.Cells, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cell not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": viewOf(cell)})
}

// handleV1SelectCell focuses a cell for the rest of the session
// PUT /api/v1/grid/selection
func (s *Server) handleV1SelectCell(c *gin.Context) {
	var req selectCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, _, err := sessionFrom(c).Apply(session.SelectCell{CellID: req.CellID})
	if err != nil {
		renderApplyError(c, err)
		return
	}

	cell, _ := watergrid.CellByID(state.Cells, req.CellID)
	c.JSON(http.StatusOK, gin.H{"data": viewOf(cell)})
}

// handleV1Selection reports the currently focused cell, if any
// GET /api/v1/grid/selection
func (s *Server) handleV1Selection(c *gin.Context) {
	state := sessionFrom(c).Snapshot()

	if state.SelectedCell == "" {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	cell, _ := watergrid.CellByID(state.Cells, state.SelectedCell)
	c.JSON(http.StatusOK, gin.H{"data": viewOf(cell)})
}
