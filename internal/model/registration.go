package model

import "time"

// RegistrationStatus is the lifecycle state of a registration.
type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
)

// IsValid returns true if the status is a known registration status.
func (s RegistrationStatus) IsValid() bool {
	return s == RegistrationStatusConfirmed || s == RegistrationStatusCancelled
}

// Registration represents a member's seat on an event. MemberID and
// EventID are soft references to peer-owned entities. MemberName and
// EventName are denormalized at creation time so listings stay readable
// even when the owning services are unreachable.
//
// At most one registration exists per (MemberID, EventID) pair; a
// cancelled seat is re-confirmed by flipping Status, not by inserting a
// second row.
type Registration struct {
	ID               string             `json:"id"`
	MemberID         string             `json:"memberId"`
	EventID          string             `json:"eventId"`
	RegistrationDate time.Time          `json:"registrationDate"`
	Status           RegistrationStatus `json:"status"`
	MemberName       string             `json:"memberName,omitempty"`
	EventName        string             `json:"eventName,omitempty"`
}

// Counted reports whether the registration occupies a seat.
func (r *Registration) Counted() bool {
	return r.Status == RegistrationStatusConfirmed
}

// RegistrationDTO is the enriched view of a registration with member and
// event details fetched from the owning services.
type RegistrationDTO struct {
	Registration
	MemberEmail      string     `json:"memberEmail"`
	MemberPhone      string     `json:"memberPhone"`
	EventLocation    string     `json:"eventLocation"`
	EventDateTime    *time.Time `json:"eventDateTime,omitempty"`
	EventDescription string     `json:"eventDescription"`
	ClubName         string     `json:"clubName"`
}

// Sentinel values used when a peer cannot be reached during enrichment.
const (
	EmailUnavailable     = "Email unavailable"
	PhoneUnavailable     = "Phone unavailable"
	LocationUnavailable  = "Location unavailable"
	EventDescUnavailable = "Event description unavailable"
)

// Sentinels for the denormalized names when the owning service cannot
// be reached at creation time.
const (
	UnknownMember = "Unknown Member"
	UnknownEvent  = "Unknown Event"
)

// CreateRegistrationRequest is the payload for creating a registration.
type CreateRegistrationRequest struct {
	MemberID string `json:"memberId"`
	EventID  string `json:"eventId"`
}

// RegistrationStatistics summarizes registrations for the statistics
// endpoint.
type RegistrationStatistics struct {
	TotalRegistrations     int     `json:"totalRegistrations"`
	ConfirmedRegistrations int     `json:"confirmedRegistrations"`
	CancelledRegistrations int     `json:"cancelledRegistrations"`
	CancellationRate       float64 `json:"cancellationRate"`
}
