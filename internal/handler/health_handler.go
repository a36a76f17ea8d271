package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"revos/internal/host"
	"revos/internal/host/event"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db    *sqlx.DB // nil when the audit database is disabled
	doc   host.Document
	queue *event.Queue
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, doc host.Document, queue *event.Queue) *HealthHandler {
	return &HealthHandler{db: db, doc: doc, queue: queue}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Ready means the host thread answers and, if
// configured, the audit database is reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	elements := 0
	err := h.queue.Do(c.Request.Context(), "health.readiness", func() error {
		elements = len(h.doc.Elements())
		return nil
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "host not responding"})
		return
	}

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "elements": elements})
}
