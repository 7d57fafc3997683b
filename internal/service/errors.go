package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Club Errors =====
var (
	ErrClubNotFound     = errors.New("club not found")
	ErrClubNameRequired = errors.New("club name is required")
	ErrClubNameExists   = errors.New("a club with this name already exists")
)

// ===== Member Errors =====
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberNameRequired  = errors.New("member name is required")
	ErrMemberEmailRequired = errors.New("member email is required")
	ErrMemberEmailExists   = errors.New("member with this email already exists")
	ErrInvalidMemberStatus = errors.New("invalid member status")
)

// ===== Event Errors =====
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventNameRequired    = errors.New("event name is required")
	ErrEventDateInPast      = errors.New("event date must be in the future")
	ErrEventAlreadyStarted  = errors.New("event has already started")
	ErrNegativeCapacity     = errors.New("event capacity cannot be negative")
	ErrCapacityBelowCurrent = errors.New("cannot reduce capacity below current registrations")
	ErrEventFull            = errors.New("event is full, cannot register")
)

// ===== Registration Errors =====
var (
	ErrRegistrationNotFound      = errors.New("registration not found")
	ErrRegistrationExists        = errors.New("registration already exists for this member and event")
	ErrRegistrationNotAccepted   = errors.New("registration service did not accept the registration")
	ErrInvalidRegistrationStatus = errors.New("invalid registration status")
)

// ===== Soft Reference Errors =====
// Returned when a write names a peer-owned entity that the owning
// service does not know (or cannot confirm — reference validation fails
// closed when the peer is down).
var (
	ErrClubReferenceNotFound   = errors.New("referenced club does not exist")
	ErrMemberReferenceNotFound = errors.New("referenced member does not exist")
	ErrEventReferenceNotFound  = errors.New("referenced event does not exist")
)
