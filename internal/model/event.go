package model

import "time"

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// OngoingWindow is how long before the start time an event is reported
// as ONGOING.
const OngoingWindow = time.Hour

// Event represents a scheduled activity hosted by a club. ClubName is a
// soft reference to a club owned by the club service.
//
// CurrentCapacity counts CONFIRMED registrations and must stay within
// [0, MaxCapacity]. The event store enforces the bounds on every
// adjustment; the registration service drives adjustments over HTTP.
type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	DateTime        time.Time   `json:"dateTime"`
	ClubName        string      `json:"clubName"`
	Status          EventStatus `json:"status"`
	MaxCapacity     int         `json:"maxCapacity"`
	CurrentCapacity int         `json:"currentCapacity"`
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.CurrentCapacity >= e.MaxCapacity
}

// AvailableSpots returns the number of open seats.
func (e *Event) AvailableSpots() int {
	return e.MaxCapacity - e.CurrentCapacity
}

// DerivedStatus computes the externally visible status at time now.
// UPCOMING becomes ONGOING within OngoingWindow of the start and
// COMPLETED once the start time has passed. CANCELLED is terminal and
// set only by cascade cleanup, so it is never overridden here. The
// derived value is computed on every read and never written back.
func (e *Event) DerivedStatus(now time.Time) EventStatus {
	if e.Status == EventStatusCancelled {
		return EventStatusCancelled
	}
	if now.After(e.DateTime) {
		return EventStatusCompleted
	}
	if !e.DateTime.After(now.Add(OngoingWindow)) {
		return EventStatusOngoing
	}
	return EventStatusUpcoming
}

// EventDTO is the enriched view of an event with club details fetched
// from the club service plus locally derived capacity fields.
type EventDTO struct {
	Event
	ClubID          *string `json:"clubId"`
	ClubDescription string  `json:"clubDescription"`
	ClubCategory    string  `json:"clubCategory"`
	AvailableSpots  int     `json:"availableSpots"`
	Full            bool    `json:"full"`
}

// CreateEventRequest is the payload for creating or fully replacing an
// event. DateTime must be strictly in the future on create.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
	ClubName    string    `json:"clubName"`
	MaxCapacity int       `json:"maxCapacity"`
}

// EventStatistics summarizes an event's seat usage for the statistics
// endpoint.
type EventStatistics struct {
	EventName       string      `json:"eventName"`
	ClubName        string      `json:"clubName"`
	MaxCapacity     int         `json:"maxCapacity"`
	CurrentCapacity int         `json:"currentCapacity"`
	AvailableSpots  int         `json:"availableSpots"`
	Full            bool        `json:"full"`
	Status          EventStatus `json:"status"`
}

// CapacityInfo is the body of GET /events/{id}/capacity, consumed by the
// registration service before accepting a registration.
type CapacityInfo struct {
	EventID         string `json:"eventId"`
	MaxCapacity     int    `json:"maxCapacity"`
	CurrentCapacity int    `json:"currentCapacity"`
	Full            bool   `json:"isFull"`
}
