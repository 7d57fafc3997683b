package handler

import (
	"errors"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrClubNotFound):
		return model.NewNotFoundError("club")
	case errors.Is(err, service.ErrMemberNotFound):
		return model.NewNotFoundError("member")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrRegistrationNotFound):
		return model.NewNotFoundError("registration")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrClubNameExists),
		errors.Is(err, service.ErrMemberEmailExists),
		errors.Is(err, service.ErrRegistrationExists):
		return model.NewConflictError(err.Error())

	// ===== Missing/Invalid Fields → 422 =====
	case errors.Is(err, service.ErrClubNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrMemberNameRequired),
		errors.Is(err, service.ErrEventNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrMemberEmailRequired):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidMemberStatus),
		errors.Is(err, service.ErrInvalidRegistrationStatus):
		return model.NewValidationError([]model.FieldError{{Field: "status", Message: err.Error()}})
	case errors.Is(err, service.ErrNegativeCapacity):
		return model.NewValidationError([]model.FieldError{{Field: "maxCapacity", Message: err.Error()}})

	// ===== Broken Soft References → 422 =====
	case errors.Is(err, service.ErrClubReferenceNotFound):
		return model.NewValidationError([]model.FieldError{{Field: "clubName", Message: err.Error()}})
	case errors.Is(err, service.ErrMemberReferenceNotFound):
		return model.NewValidationError([]model.FieldError{{Field: "memberId", Message: err.Error()}})
	case errors.Is(err, service.ErrEventReferenceNotFound):
		return model.NewValidationError([]model.FieldError{{Field: "eventId", Message: err.Error()}})

	// ===== State Errors → 422 =====
	case errors.Is(err, service.ErrEventDateInPast),
		errors.Is(err, service.ErrEventAlreadyStarted),
		errors.Is(err, service.ErrCapacityBelowCurrent),
		errors.Is(err, service.ErrEventFull),
		errors.Is(err, service.ErrRegistrationNotAccepted):
		return model.NewInvalidStateError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
