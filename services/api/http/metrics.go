package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aquaview",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route template and status.",
	}, []string{"method", "route", "status"})

	reportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aquaview",
		Name:      "reports_submitted_total",
		Help:      "Citizen reports accepted, by issue type.",
	}, []string{"type"})

	alertTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aquaview",
		Name:      "alert_transitions_total",
		Help:      "Alert workflow transitions applied, by verb.",
	}, []string{"verb"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "aquaview",
		Name:      "active_sessions",
		Help:      "Demo sessions currently held in memory.",
	})
)

// metricsMiddleware counts every request against its route template so
// path parameters do not explode the label space.
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		activeSessions.Set(float64(s.sessions.Len()))
	}
}
