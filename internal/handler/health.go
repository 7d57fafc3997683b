package handler

import (
	"context"
	"net/http"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness checks.
type HealthHandler struct {
	service string
	db      Pinger
}

// NewHealthHandler creates a health handler for the named service.
func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Register wires the health route onto the mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Check)
}

// Check handles GET /health. The service is degraded but alive when the
// database is down, so the response stays 200 with the detail inline.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	database := "UP"
	if err := h.db.Ping(r.Context()); err != nil {
		status = "DEGRADED"
		database = "DOWN"
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":   status,
		"service":  h.service,
		"database": database,
	})
}
