package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/peer"
)

// EventRepositoryInterface defines the repository interface
type EventRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	FindByClubName(ctx context.Context, clubName string) ([]model.Event, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]model.Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, event *model.Event) (*model.Event, error)
	DeleteByID(ctx context.Context, id string) error
	AdjustCapacity(ctx context.Context, id string, delta int) (*model.Event, error)
	CancelByClub(ctx context.Context, clubName string) (int, error)
}

// EventService orchestrates event reads and writes. Events carry a soft
// reference to their club and own the capacity counter that the
// registration service adjusts over HTTP.
type EventService struct {
	*Orchestrator[model.Event, model.EventDTO]
	repo  EventRepositoryInterface
	peers peer.Lookup
}

// NewEventService creates a new event service
func NewEventService(repo EventRepositoryInterface, peers peer.Lookup) *EventService {
	s := &EventService{repo: repo, peers: peers}
	s.Orchestrator = NewOrchestrator[model.Event, model.EventDTO]("event", repo, s, ErrEventNotFound)
	return s
}

// Create validates and persists a new event. New events start UPCOMING
// with an empty capacity counter.
func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.EventDTO, error) {
	event := &model.Event{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime,
		ClubName:    req.ClubName,
		Status:      model.EventStatusUpcoming,
		MaxCapacity: req.MaxCapacity,
	}
	return s.Orchestrator.Create(ctx, event)
}

// Update fully replaces an event's editable fields. Status and the
// capacity counter are not editable here; the counter only moves through
// the capacity endpoints.
func (s *EventService) Update(ctx context.Context, id string, req model.CreateEventRequest) (*model.EventDTO, error) {
	incoming := &model.Event{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime,
		ClubName:    req.ClubName,
		MaxCapacity: req.MaxCapacity,
	}
	return s.Orchestrator.Update(ctx, id, incoming)
}

// GetByClub returns the enriched events hosted by a club.
func (s *EventService) GetByClub(ctx context.Context, clubName string) ([]model.EventDTO, error) {
	events, err := s.repo.FindByClubName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, *s.Enrich(ctx, &events[i]))
	}
	return dtos, nil
}

// GetUpcoming returns the enriched events that have not started yet.
func (s *EventService) GetUpcoming(ctx context.Context) ([]model.EventDTO, error) {
	events, err := s.repo.FindUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	dtos := make([]model.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, *s.Enrich(ctx, &events[i]))
	}
	return dtos, nil
}

// ValidateExists reports whether an event with the given ID is stored.
// Peers call this through GET /events/validate/{id}.
func (s *EventService) ValidateExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Capacity reports the current seat usage of an event. The registration
// service reads this before accepting a registration.
func (s *EventService) Capacity(ctx context.Context, id string) (*model.CapacityInfo, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return &model.CapacityInfo{
		EventID:         event.ID,
		MaxCapacity:     event.MaxCapacity,
		CurrentCapacity: event.CurrentCapacity,
		Full:            event.IsFull(),
	}, nil
}

// IncrementCapacity records one more confirmed seat. The store clamps
// the counter to [0, MaxCapacity], so the call is idempotent at the
// bounds.
func (s *EventService) IncrementCapacity(ctx context.Context, id string) (*model.CapacityInfo, error) {
	return s.adjustCapacity(ctx, id, 1)
}

// DecrementCapacity releases one confirmed seat.
func (s *EventService) DecrementCapacity(ctx context.Context, id string) (*model.CapacityInfo, error) {
	return s.adjustCapacity(ctx, id, -1)
}

func (s *EventService) adjustCapacity(ctx context.Context, id string, delta int) (*model.CapacityInfo, error) {
	event, err := s.repo.AdjustCapacity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return &model.CapacityInfo{
		EventID:         event.ID,
		MaxCapacity:     event.MaxCapacity,
		CurrentCapacity: event.CurrentCapacity,
		Full:            event.IsFull(),
	}, nil
}

// RegisterMember is the event-side convenience entry for registering a
// member. It pre-checks what it can locally (the event must exist, have
// seats, and not have started) and then delegates to the registration
// service, which owns the canonical create flow including the capacity
// increment. Nothing is written locally here.
func (s *EventService) RegisterMember(ctx context.Context, eventID, memberID string) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.IsFull() {
		return ErrEventFull
	}
	if !event.DateTime.After(time.Now().UTC()) {
		return ErrEventAlreadyStarted
	}

	path := "registrations/event/" + url.PathEscape(eventID) + "/member/" + url.PathEscape(memberID) + "/register"
	if !s.peers.Notify(ctx, peer.RegistrationService, path) {
		return ErrRegistrationNotAccepted
	}
	return nil
}

// UnregisterMember delegates seat release to the registration service.
func (s *EventService) UnregisterMember(ctx context.Context, eventID, memberID string) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	path := "registrations/event/" + url.PathEscape(eventID) + "/member/" + url.PathEscape(memberID) + "/unregister"
	if !s.peers.Notify(ctx, peer.RegistrationService, path) {
		return ErrRegistrationNotAccepted
	}
	return nil
}

// Statistics summarizes an event's seat usage.
func (s *EventService) Statistics(ctx context.Context, id string) (*model.EventStatistics, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return &model.EventStatistics{
		EventName:       event.Name,
		ClubName:        event.ClubName,
		MaxCapacity:     event.MaxCapacity,
		CurrentCapacity: event.CurrentCapacity,
		AvailableSpots:  event.AvailableSpots(),
		Full:            event.IsFull(),
		Status:          event.DerivedStatus(time.Now().UTC()),
	}, nil
}

// CleanupByClub handles a club deletion cascade: every event of the club
// is moved to UNASSIGNED and CANCELLED. Returns how many events were
// touched.
func (s *EventService) CleanupByClub(ctx context.Context, clubName string) (int, error) {
	return s.repo.CancelByClub(ctx, clubName)
}

// ValidateCreate enforces required fields, a future start time,
// non-negative capacity, and the club soft reference.
func (s *EventService) ValidateCreate(ctx context.Context, event *model.Event) error {
	if event.Name == "" {
		return ErrEventNameRequired
	}
	if event.MaxCapacity < 0 {
		return ErrNegativeCapacity
	}
	if !event.DateTime.After(time.Now().UTC()) {
		return ErrEventDateInPast
	}
	return s.validateClubReference(ctx, event.ClubName)
}

// ValidateUpdate re-checks the club reference when it changes and
// refuses to shrink capacity below the seats already taken.
func (s *EventService) ValidateUpdate(ctx context.Context, existing, incoming *model.Event) error {
	if incoming.Name == "" {
		return ErrEventNameRequired
	}
	if incoming.MaxCapacity < 0 {
		return ErrNegativeCapacity
	}
	if incoming.MaxCapacity < existing.CurrentCapacity {
		return ErrCapacityBelowCurrent
	}
	if incoming.ClubName != existing.ClubName {
		return s.validateClubReference(ctx, incoming.ClubName)
	}
	return nil
}

// ApplyUpdate overwrites the editable event fields.
func (s *EventService) ApplyUpdate(existing, incoming *model.Event) {
	existing.Name = incoming.Name
	existing.Description = incoming.Description
	existing.Location = incoming.Location
	existing.DateTime = incoming.DateTime
	existing.ClubName = incoming.ClubName
	existing.MaxCapacity = incoming.MaxCapacity
}

// Enrich builds the event DTO: club details from the club service plus
// the locally derived status and seat fields. The stored status is never
// mutated; the DTO carries the time-derived one.
func (s *EventService) Enrich(ctx context.Context, event *model.Event) *model.EventDTO {
	dto := &model.EventDTO{
		Event:           *event,
		ClubDescription: model.ClubInfoUnavailable,
		ClubCategory:    model.UnknownCategory,
		AvailableSpots:  event.AvailableSpots(),
		Full:            event.IsFull(),
	}
	dto.Status = event.DerivedStatus(time.Now().UTC())

	if event.ClubName == "" || event.ClubName == model.UnassignedClub {
		return dto
	}

	club := s.peers.Fetch(ctx, peer.ClubService, "clubs/name/"+url.PathEscape(event.ClubName))
	if club == nil {
		return dto
	}

	if id, ok := club["id"].(string); ok && id != "" {
		dto.ClubID = &id
	}
	if desc, ok := club["description"].(string); ok {
		dto.ClubDescription = desc
	}
	if cat, ok := club["category"].(string); ok {
		dto.ClubCategory = cat
	}
	return dto
}

// Cleanup asks the registration service to drop the deleted event's
// registrations. Best effort.
func (s *EventService) Cleanup(ctx context.Context, event *model.Event) {
	report := NewCascadeReport("event", event.ID)
	report.Add(peer.RegistrationService, "delete registrations",
		s.peers.Notify(ctx, peer.RegistrationService, "registrations/event/"+url.PathEscape(event.ID)+"/cleanup"))
	report.Log()
}

// validateClubReference fails closed: an unreachable club service means
// the reference cannot be confirmed and the write is rejected.
func (s *EventService) validateClubReference(ctx context.Context, clubName string) error {
	if clubName == "" || clubName == model.UnassignedClub {
		return nil
	}
	if !s.peers.CheckExists(ctx, peer.ClubService, "clubs/validate/"+url.PathEscape(clubName)) {
		return ErrClubReferenceNotFound
	}
	return nil
}
