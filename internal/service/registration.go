package service

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/peer"
)

// RegistrationRepositoryInterface defines the repository interface
type RegistrationRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Registration, error)
	FindByID(ctx context.Context, id string) (*model.Registration, error)
	FindByMemberID(ctx context.Context, memberID string) ([]model.Registration, error)
	FindByEventID(ctx context.Context, eventID string) ([]model.Registration, error)
	FindByMemberAndEvent(ctx context.Context, memberID, eventID string) (*model.Registration, error)
	Save(ctx context.Context, registration *model.Registration) (*model.Registration, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByMemberID(ctx context.Context, memberID string) (int, error)
	DeleteByEventID(ctx context.Context, eventID string) (int, error)
	DeleteByEventIDs(ctx context.Context, eventIDs []string) (int, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status model.RegistrationStatus) (int, error)
}

// RegistrationService owns the canonical registration flow. Both soft
// references are validated against their owning services before a row is
// written, and every confirmed-seat transition is mirrored to the event
// service's capacity counter with a best-effort notification.
type RegistrationService struct {
	*Orchestrator[model.Registration, model.RegistrationDTO]
	repo  RegistrationRepositoryInterface
	peers peer.Lookup
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo RegistrationRepositoryInterface, peers peer.Lookup) *RegistrationService {
	s := &RegistrationService{repo: repo, peers: peers}
	s.Orchestrator = NewOrchestrator[model.Registration, model.RegistrationDTO]("registration", repo, s, ErrRegistrationNotFound)
	return s
}

// Create validates references and capacity, persists the registration as
// CONFIRMED, and then notifies the event service to take the seat. The
// notify is best effort: if it is lost, the counter drifts low until the
// next reconciling adjustment, which is the accepted failure mode.
func (s *RegistrationService) Create(ctx context.Context, req model.CreateRegistrationRequest) (*model.RegistrationDTO, error) {
	registration := &model.Registration{
		MemberID: req.MemberID,
		EventID:  req.EventID,
	}

	dto, err := s.Orchestrator.Create(ctx, registration)
	if err != nil {
		return nil, err
	}

	s.notifyCapacity(ctx, registration.EventID, "increment")
	return dto, nil
}

// GetByMember returns the enriched registrations held by a member.
func (s *RegistrationService) GetByMember(ctx context.Context, memberID string) ([]model.RegistrationDTO, error) {
	registrations, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.RegistrationDTO, 0, len(registrations))
	for i := range registrations {
		dtos = append(dtos, *s.Enrich(ctx, &registrations[i]))
	}
	return dtos, nil
}

// GetByEvent returns the enriched registrations on an event.
func (s *RegistrationService) GetByEvent(ctx context.Context, eventID string) ([]model.RegistrationDTO, error) {
	registrations, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.RegistrationDTO, 0, len(registrations))
	for i := range registrations {
		dtos = append(dtos, *s.Enrich(ctx, &registrations[i]))
	}
	return dtos, nil
}

// UpdateStatus flips a registration between CONFIRMED and CANCELLED.
// Re-confirming a cancelled seat re-checks event capacity first; either
// direction mirrors the seat change to the event service after the save.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id string, status model.RegistrationStatus) (*model.RegistrationDTO, error) {
	if !status.IsValid() {
		return nil, ErrInvalidRegistrationStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRegistrationNotFound
	}
	if existing.Status == status {
		return s.Enrich(ctx, existing), nil
	}

	if status == model.RegistrationStatusConfirmed {
		if err := s.checkCapacity(ctx, existing.EventID); err != nil {
			return nil, err
		}
	}

	incoming := *existing
	incoming.Status = status
	dto, err := s.Orchestrator.Update(ctx, id, &incoming)
	if err != nil {
		return nil, err
	}

	if status == model.RegistrationStatusConfirmed {
		s.notifyCapacity(ctx, existing.EventID, "increment")
	} else {
		s.notifyCapacity(ctx, existing.EventID, "decrement")
	}
	return dto, nil
}

// RegisterPair runs the canonical create flow for the event-service
// delegation endpoint.
func (s *RegistrationService) RegisterPair(ctx context.Context, eventID, memberID string) (*model.RegistrationDTO, error) {
	return s.Create(ctx, model.CreateRegistrationRequest{MemberID: memberID, EventID: eventID})
}

// UnregisterPair removes the registration for a (member, event) pair,
// releasing the seat if it was confirmed.
func (s *RegistrationService) UnregisterPair(ctx context.Context, eventID, memberID string) error {
	registration, err := s.repo.FindByMemberAndEvent(ctx, memberID, eventID)
	if err != nil {
		return err
	}
	if registration == nil {
		return ErrRegistrationNotFound
	}
	return s.Orchestrator.Delete(ctx, registration.ID)
}

// Statistics summarizes stored registrations by status.
func (s *RegistrationService) Statistics(ctx context.Context) (*model.RegistrationStatistics, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.repo.CountByStatus(ctx, model.RegistrationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.repo.CountByStatus(ctx, model.RegistrationStatusCancelled)
	if err != nil {
		return nil, err
	}

	stats := &model.RegistrationStatistics{
		TotalRegistrations:     total,
		ConfirmedRegistrations: confirmed,
		CancelledRegistrations: cancelled,
	}
	if total > 0 {
		stats.CancellationRate = float64(cancelled) / float64(total) * 100
	}
	return stats, nil
}

// CleanupByMember handles a member deletion cascade: confirmed seats are
// released at the event service, then every row for the member is
// removed. Returns how many rows went away.
func (s *RegistrationService) CleanupByMember(ctx context.Context, memberID string) (int, error) {
	registrations, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		return 0, err
	}
	for i := range registrations {
		if registrations[i].Counted() {
			s.notifyCapacity(ctx, registrations[i].EventID, "decrement")
		}
	}
	return s.repo.DeleteByMemberID(ctx, memberID)
}

// CleanupByEvent handles an event deletion cascade. The event is going
// away, so no capacity adjustments are sent.
func (s *RegistrationService) CleanupByEvent(ctx context.Context, eventID string) (int, error) {
	return s.repo.DeleteByEventID(ctx, eventID)
}

// CleanupByClub handles a club deletion cascade: the event service is
// asked which events the club hosted, and every registration on those
// events is removed in one batch. An unreachable event service cleans
// nothing, which the cascade report at the club service will surface.
func (s *RegistrationService) CleanupByClub(ctx context.Context, clubName string) (int, error) {
	events := s.peers.FetchList(ctx, peer.EventService, "events/club/"+url.PathEscape(clubName))
	eventIDs := collectIDs(events)
	if len(eventIDs) == 0 {
		return 0, nil
	}
	return s.repo.DeleteByEventIDs(ctx, eventIDs)
}

// ValidateCreate enforces both soft references, the one-row-per-pair
// rule, and available capacity, then fills the creation defaults and
// denormalizes the member and event names.
func (s *RegistrationService) ValidateCreate(ctx context.Context, registration *model.Registration) error {
	if !s.peers.CheckExists(ctx, peer.MemberService, "members/validate/"+url.PathEscape(registration.MemberID)) {
		return ErrMemberReferenceNotFound
	}
	if !s.peers.CheckExists(ctx, peer.EventService, "events/validate/"+url.PathEscape(registration.EventID)) {
		return ErrEventReferenceNotFound
	}

	existing, err := s.repo.FindByMemberAndEvent(ctx, registration.MemberID, registration.EventID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrRegistrationExists
	}

	if err := s.checkCapacity(ctx, registration.EventID); err != nil {
		return err
	}

	registration.Status = model.RegistrationStatusConfirmed
	registration.RegistrationDate = time.Now().UTC()

	registration.MemberName = model.UnknownMember
	registration.EventName = model.UnknownEvent
	if member := s.peers.Fetch(ctx, peer.MemberService, "members/"+url.PathEscape(registration.MemberID)); member != nil {
		if name, ok := member["name"].(string); ok && name != "" {
			registration.MemberName = name
		}
	}
	if event := s.peers.Fetch(ctx, peer.EventService, "events/"+url.PathEscape(registration.EventID)); event != nil {
		if name, ok := event["name"].(string); ok && name != "" {
			registration.EventName = name
		}
	}
	return nil
}

// ValidateUpdate only admits known statuses; the referenced member and
// event are immutable once the row exists.
func (s *RegistrationService) ValidateUpdate(ctx context.Context, existing, incoming *model.Registration) error {
	if !incoming.Status.IsValid() {
		return ErrInvalidRegistrationStatus
	}
	return nil
}

// ApplyUpdate carries over the status, the only mutable field.
func (s *RegistrationService) ApplyUpdate(existing, incoming *model.Registration) {
	existing.Status = incoming.Status
}

// Enrich builds the registration DTO with member contact details and
// event logistics from the owning services, degrading each side to its
// sentinel values independently.
func (s *RegistrationService) Enrich(ctx context.Context, registration *model.Registration) *model.RegistrationDTO {
	dto := &model.RegistrationDTO{
		Registration:     *registration,
		MemberEmail:      model.EmailUnavailable,
		MemberPhone:      model.PhoneUnavailable,
		EventLocation:    model.LocationUnavailable,
		EventDescription: model.EventDescUnavailable,
	}

	if member := s.peers.Fetch(ctx, peer.MemberService, "members/"+url.PathEscape(registration.MemberID)); member != nil {
		if email, ok := member["email"].(string); ok {
			dto.MemberEmail = email
		}
		if phone, ok := member["phone"].(string); ok {
			dto.MemberPhone = phone
		}
		if name, ok := member["name"].(string); ok && name != "" {
			dto.MemberName = name
		}
	}

	if event := s.peers.Fetch(ctx, peer.EventService, "events/"+url.PathEscape(registration.EventID)); event != nil {
		if location, ok := event["location"].(string); ok {
			dto.EventLocation = location
		}
		if desc, ok := event["description"].(string); ok {
			dto.EventDescription = desc
		}
		if clubName, ok := event["clubName"].(string); ok {
			dto.ClubName = clubName
		}
		if name, ok := event["name"].(string); ok && name != "" {
			dto.EventName = name
		}
		if raw, ok := event["dateTime"].(string); ok {
			if dateTime, err := time.Parse(time.RFC3339, raw); err == nil {
				dto.EventDateTime = &dateTime
			}
		}
	}
	return dto
}

// Cleanup releases the seat at the event service when a confirmed
// registration is deleted. Best effort.
func (s *RegistrationService) Cleanup(ctx context.Context, registration *model.Registration) {
	if !registration.Counted() {
		return
	}
	report := NewCascadeReport("registration", registration.ID)
	report.Add(peer.EventService, "release seat",
		s.peers.Notify(ctx, peer.EventService, "events/"+url.PathEscape(registration.EventID)+"/capacity/decrement"))
	report.Log()
}

// checkCapacity fails closed: if the event service cannot report
// capacity, the registration is refused rather than risk overbooking.
func (s *RegistrationService) checkCapacity(ctx context.Context, eventID string) error {
	capacity := s.peers.Fetch(ctx, peer.EventService, "events/"+url.PathEscape(eventID)+"/capacity")
	if capacity == nil {
		return ErrEventFull
	}
	if full, ok := capacity["isFull"].(bool); ok && full {
		return ErrEventFull
	}
	return nil
}

func (s *RegistrationService) notifyCapacity(ctx context.Context, eventID, direction string) {
	if !s.peers.Notify(ctx, peer.EventService, "events/"+url.PathEscape(eventID)+"/capacity/"+direction) {
		slog.Warn("capacity notification lost",
			slog.String("event_id", eventID),
			slog.String("direction", direction),
		)
	}
}
