package handler

import (
	"fmt"
	"net/http"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/service"
)

// RegistrationHandler handles registration HTTP requests
type RegistrationHandler struct {
	svc *service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register wires the registration routes onto the mux.
func (h *RegistrationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /registrations", h.List)
	mux.HandleFunc("POST /registrations", h.Create)
	mux.HandleFunc("GET /registrations/{id}", h.Get)
	mux.HandleFunc("DELETE /registrations/{id}", h.Delete)
	mux.HandleFunc("PUT /registrations/{id}/status", h.UpdateStatus)
	mux.HandleFunc("GET /registrations/member/{memberId}", h.GetByMember)
	mux.HandleFunc("GET /registrations/event/{eventId}", h.GetByEvent)
	mux.HandleFunc("GET /registrations/statistics", h.Statistics)
	mux.HandleFunc("POST /registrations/event/{eventId}/member/{memberId}/register", h.RegisterPair)
	mux.HandleFunc("POST /registrations/event/{eventId}/member/{memberId}/unregister", h.UnregisterPair)
	mux.HandleFunc("POST /registrations/member/{memberId}/cleanup", h.CleanupByMember)
	mux.HandleFunc("POST /registrations/event/{eventId}/cleanup", h.CleanupByEvent)
	mux.HandleFunc("POST /registrations/club/{clubName}/cleanup", h.CleanupByClub)
}

// List handles GET /registrations
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, registrations)
}

// Create handles POST /registrations
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRegistrationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	registration, err := h.svc.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, registration)
}

// Get handles GET /registrations/{id}
func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	registration, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, registration)
}

// Delete handles DELETE /registrations/{id}. Deleting a confirmed
// registration releases its seat at the event service.
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Registration deleted successfully")
}

// UpdateStatus handles PUT /registrations/{id}/status?status=...
func (h *RegistrationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status := model.RegistrationStatus(r.URL.Query().Get("status"))
	if status == "" {
		WriteError(w, model.NewBadRequestError("status query parameter required"))
		return
	}

	registration, err := h.svc.UpdateStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, registration)
}

// GetByMember handles GET /registrations/member/{memberId}
func (h *RegistrationHandler) GetByMember(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.svc.GetByMember(r.Context(), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, registrations)
}

// GetByEvent handles GET /registrations/event/{eventId}
func (h *RegistrationHandler) GetByEvent(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.svc.GetByEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, registrations)
}

// Statistics handles GET /registrations/statistics
func (h *RegistrationHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// RegisterPair handles the event-service delegation endpoint
// POST /registrations/event/{eventId}/member/{memberId}/register. It
// runs the canonical create flow, including the capacity increment.
func (h *RegistrationHandler) RegisterPair(w http.ResponseWriter, r *http.Request) {
	registration, err := h.svc.RegisterPair(r.Context(), r.PathValue("eventId"), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, registration)
}

// UnregisterPair handles POST /registrations/event/{eventId}/member/{memberId}/unregister
func (h *RegistrationHandler) UnregisterPair(w http.ResponseWriter, r *http.Request) {
	err := h.svc.UnregisterPair(r.Context(), r.PathValue("eventId"), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Registration removed")
}

// CleanupByMember handles POST /registrations/member/{memberId}/cleanup,
// the member deletion cascade target.
func (h *RegistrationHandler) CleanupByMember(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupByMember(r.Context(), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, fmt.Sprintf("Deleted %d registrations", count))
}

// CleanupByEvent handles POST /registrations/event/{eventId}/cleanup,
// the event deletion cascade target.
func (h *RegistrationHandler) CleanupByEvent(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupByEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, fmt.Sprintf("Deleted %d registrations", count))
}

// CleanupByClub handles POST /registrations/club/{clubName}/cleanup, the
// club deletion cascade target: registrations on every event the club
// hosted are removed.
func (h *RegistrationHandler) CleanupByClub(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupByClub(r.Context(), r.PathValue("clubName"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, fmt.Sprintf("Deleted %d registrations", count))
}
