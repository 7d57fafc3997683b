package handler

import (
	"fmt"
	"net/http"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/service"
)

// MemberHandler handles member HTTP requests
type MemberHandler struct {
	svc *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// Register wires the member routes onto the mux.
func (h *MemberHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /members", h.List)
	mux.HandleFunc("POST /members", h.Create)
	mux.HandleFunc("GET /members/{id}", h.Get)
	mux.HandleFunc("PUT /members/{id}", h.Update)
	mux.HandleFunc("DELETE /members/{id}", h.Delete)
	mux.HandleFunc("GET /members/email/{email}", h.GetByEmail)
	mux.HandleFunc("GET /members/club/{clubName}", h.GetByClub)
	mux.HandleFunc("GET /members/validate/{id}", h.Validate)
	mux.HandleFunc("POST /members/club/{clubName}/cleanup", h.CleanupByClub)
	// A literal "GET /members/{id}/statistics" pattern conflicts with the
	// email/, club/, and validate/ routes above, so the second segment is
	// dispatched by hand. The literal-prefix routes are strict subsets of
	// this one and keep precedence.
	mux.HandleFunc("GET /members/{id}/{action}", h.getAction)
}

func (h *MemberHandler) getAction(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("action") != "statistics" {
		WriteError(w, model.NewNotFoundError("resource"))
		return
	}
	h.Statistics(w, r)
}

// List handles GET /members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, members)
}

// Create handles POST /members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.svc.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, member)
}

// Get handles GET /members/{id}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, member)
}

// Update handles PUT /members/{id}
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /members/{id}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, "Member deleted successfully")
}

// GetByEmail handles GET /members/email/{email}
func (h *MemberHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	member, err := h.svc.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, member)
}

// GetByClub handles GET /members/club/{clubName}, which the club service
// calls to list and count a club's membership.
func (h *MemberHandler) GetByClub(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.GetByClub(r.Context(), r.PathValue("clubName"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, members)
}

// Validate handles GET /members/validate/{id}, the reference check the
// registration service polls before accepting a member soft reference.
func (h *MemberHandler) Validate(w http.ResponseWriter, r *http.Request) {
	exists, err := h.svc.ValidateExists(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// Statistics handles GET /members/{id}/statistics
func (h *MemberHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// CleanupByClub handles POST /members/club/{clubName}/cleanup, the club
// deletion cascade target. Affected members are unassigned and marked
// inactive.
func (h *MemberHandler) CleanupByClub(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupByClub(r.Context(), r.PathValue("clubName"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteMessage(w, http.StatusOK, fmt.Sprintf("Unassigned %d members", count))
}
