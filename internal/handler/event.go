package handler

import (
	"fmt"
	"net/http"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Register wires the event routes onto the mux.
func (h *EventHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /events", h.List)
	mux.HandleFunc("POST /events", h.Create)
	mux.HandleFunc("GET /events/{id}", h.Get)
	mux.HandleFunc("PUT /events/{id}", h.Update)
	mux.HandleFunc("DELETE /events/{id}", h.Delete)
	mux.HandleFunc("GET /events/club/{clubName}", h.GetByClub)
	mux.HandleFunc("GET /events/upcoming", h.GetUpcoming)
	mux.HandleFunc("GET /events/validate/{id}", h.Validate)
	mux.HandleFunc("POST /events/club/{clubName}/cleanup", h.CleanupByClub)
	// Literal patterns with a wildcard middle segment ({id}/capacity,
	// {id}/statistics, {id}/register/{memberId}, ...) conflict with the
	// club/ and validate/ routes above as ServeMux patterns, so the
	// segments after {id} are dispatched by hand. The literal-prefix
	// routes are strict subsets of these and keep precedence.
	mux.HandleFunc("GET /events/{id}/{action}", h.getAction)
	mux.HandleFunc("POST /events/{id}/{action}/{arg}", h.postAction)
}

func (h *EventHandler) getAction(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("action") {
	case "capacity":
		h.Capacity(w, r)
	case "statistics":
		h.Statistics(w, r)
	default:
		WriteError(w, model.NewNotFoundError("resource"))
	}
}

func (h *EventHandler) postAction(w http.ResponseWriter, r *http.Request) {
	action, arg := r.PathValue("action"), r.PathValue("arg")
	switch {
	case action == "capacity" && arg == "increment":
		h.IncrementCapacity(w, r)
	case action == "capacity" && arg == "decrement":
		h.DecrementCapacity(w, r)
	case action == "register":
		r.SetPathValue("memberId", arg)
		h.RegisterMember(w, r)
	case action == "unregister":
		r.SetPathValue("memberId", arg)
		h.UnregisterMember(w, r)
	default:
		WriteError(w, model.NewNotFoundError("resource"))
	}
}

// List handles GET /events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

// Create handles POST /events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, event)
}

// Get handles GET /events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

// Update handles PUT /events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Event deleted successfully")
}

// GetByClub handles GET /events/club/{clubName}, which the club and
// registration services call during enrichment and cascades.
func (h *EventHandler) GetByClub(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetByClub(r.Context(), r.PathValue("clubName"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

// GetUpcoming handles GET /events/upcoming
func (h *EventHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetUpcoming(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

// Validate handles GET /events/validate/{id}, the reference check the
// registration service polls before accepting an event soft reference.
func (h *EventHandler) Validate(w http.ResponseWriter, r *http.Request) {
	exists, err := h.svc.ValidateExists(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// Capacity handles GET /events/{id}/capacity
func (h *EventHandler) Capacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.svc.Capacity(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, capacity)
}

// IncrementCapacity handles POST /events/{id}/capacity/increment, sent
// by the registration service when a seat is confirmed.
func (h *EventHandler) IncrementCapacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.svc.IncrementCapacity(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, capacity)
}

// DecrementCapacity handles POST /events/{id}/capacity/decrement, sent
// by the registration service when a seat is released.
func (h *EventHandler) DecrementCapacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.svc.DecrementCapacity(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, capacity)
}

// RegisterMember handles POST /events/{id}/register/{memberId}. The
// registration row is owned by the registration service; this endpoint
// pre-checks the event locally and delegates.
func (h *EventHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RegisterMember(r.Context(), r.PathValue("id"), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Member registered for event")
}

// UnregisterMember handles POST /events/{id}/unregister/{memberId}
func (h *EventHandler) UnregisterMember(w http.ResponseWriter, r *http.Request) {
	err := h.svc.UnregisterMember(r.Context(), r.PathValue("id"), r.PathValue("memberId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Member unregistered from event")
}

// Statistics handles GET /events/{id}/statistics
func (h *EventHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// CleanupByClub handles POST /events/club/{clubName}/cleanup, the club
// deletion cascade target. Affected events are unassigned and cancelled.
func (h *EventHandler) CleanupByClub(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupByClub(r.Context(), r.PathValue("clubName"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, fmt.Sprintf("Cancelled %d events", count))
}
