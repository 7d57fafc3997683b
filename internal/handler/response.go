package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clubhub/api/internal/model"
)

// MessageResponse is the confirmation body for deletes and cleanups.
type MessageResponse struct {
	Message string `json:"message"`
}

// ExistsResponse is the body of the /validate/ endpoints peers poll to
// confirm soft references.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteMessage writes a confirmation message response
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
