package handler

import (
	"net/http"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/service"
)

// ClubHandler handles club HTTP requests
type ClubHandler struct {
	svc *service.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(svc *service.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// Register wires the club routes onto the mux.
func (h *ClubHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /clubs", h.List)
	mux.HandleFunc("POST /clubs", h.Create)
	mux.HandleFunc("GET /clubs/{id}", h.Get)
	mux.HandleFunc("PUT /clubs/{id}", h.Update)
	mux.HandleFunc("DELETE /clubs/{id}", h.Delete)
	mux.HandleFunc("GET /clubs/name/{name}", h.GetByName)
	mux.HandleFunc("GET /clubs/validate/{name}", h.Validate)
	// A literal "GET /clubs/{name}/statistics" pattern conflicts with the
	// name/ and validate/ routes above (neither is more specific), so the
	// second segment is dispatched by hand. The literal-prefix routes are
	// strict subsets of this one and keep precedence.
	mux.HandleFunc("GET /clubs/{name}/{action}", h.getAction)
}

func (h *ClubHandler) getAction(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("action") != "statistics" {
		WriteError(w, model.NewNotFoundError("resource"))
		return
	}
	h.Statistics(w, r)
}

// List handles GET /clubs
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, clubs)
}

// Create handles POST /clubs
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.svc.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, club)
}

// Get handles GET /clubs/{id}
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	club, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, club)
}

// Update handles PUT /clubs/{id}
func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	club, err := h.svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, club)
}

// Delete handles DELETE /clubs/{id}
func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Club deleted successfully")
}

// GetByName handles GET /clubs/name/{name}
func (h *ClubHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	club, err := h.svc.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, club)
}

// Validate handles GET /clubs/validate/{name}, the reference check peers
// poll before accepting a club soft reference.
func (h *ClubHandler) Validate(w http.ResponseWriter, r *http.Request) {
	exists, err := h.svc.ValidateExists(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// Statistics handles GET /clubs/{name}/statistics
func (h *ClubHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
