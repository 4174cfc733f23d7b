package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// handleV1CreateSession opens a fresh session seeded with the demo dataset
// POST /api/v1/sessions
func (s *Server) handleV1CreateSession(c *gin.Context) {
	sess := s.sessions.Create()

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"session_id": sess.ID,
			"created_at": sess.CreatedAt.UTC().Format(time.RFC3339),
			"expires_at": sess.CreatedAt.Add(s.sessions.TTL()).UTC().Format(time.RFC3339),
		},
	})
}

// handleV1EndSession discards a session and everything it accumulated
// DELETE /api/v1/sessions/:id
func (s *Server) handleV1EndSession(c *gin.Context) {
	if err := s.sessions.End(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
