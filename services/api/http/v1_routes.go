package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/sessions, /api/v1/grid, /api/v1/portal, /api/v1/console, /api/v1/realtime
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Session lifecycle - the only v1 routes that work without X-Session-ID
	v1.POST("/sessions", s.handleV1CreateSession)
	v1.DELETE("/sessions/:id", s.handleV1EndSession)

	authed := v1.Group("", s.requireSession())

	// Grid endpoints - cells and the per-session selection
	grid := authed.Group("/grid")
	{
		grid.GET("", s.handleV1Grid)
		grid.GET("/cells/:id", s.handleV1GridCell)
		grid.PUT("/selection", s.handleV1SelectCell)
		grid.GET("/selection", s.handleV1Selection)
	}

	// Portal endpoints - citizen reports, usage history, eco-points
	portal := authed.Group("/portal")
	{
		portal.POST("/reports", s.handleV1SubmitReport)
		portal.GET("/reports", s.handleV1ListReports)
		portal.GET("/usage", s.handleV1Usage)
		portal.POST("/points", s.handleV1AwardPoints)
		portal.GET("/summary", s.handleV1PortalSummary)
	}

	// Console endpoints - the department's alert workflow
	console := authed.Group("/console")
	{
		console.GET("/alerts", s.handleV1ListAlerts)
		console.POST("/alerts/:id/ack", s.handleV1AcknowledgeAlert)
		console.POST("/alerts/:id/dispatch", s.handleV1DispatchAlert)
		console.POST("/alerts/:id/resolve", s.handleV1ResolveAlert)
		console.GET("/overview", s.handleV1ConsoleOverview)
	}

	// Realtime endpoints - poll surface for the transient notice
	realtime := authed.Group("/realtime")
	{
		realtime.GET("/now", s.handleV1RealtimeNow)
	}
}

// apiVersionMiddleware stamps every v1 response with the version header.
func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
