package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/peer"
)

// ClubRepositoryInterface defines the repository interface
type ClubRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Club, error)
	FindByID(ctx context.Context, id string) (*model.Club, error)
	FindByName(ctx context.Context, name string) (*model.Club, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, club *model.Club) (*model.Club, error)
	DeleteByID(ctx context.Context, id string) error
}

// ClubService orchestrates club reads and writes. Clubs hold no soft
// references themselves, but everything else points at them, so deletes
// fan out cleanup to every peer service.
type ClubService struct {
	*Orchestrator[model.Club, model.ClubDTO]
	repo  ClubRepositoryInterface
	peers peer.Lookup
}

// NewClubService creates a new club service
func NewClubService(repo ClubRepositoryInterface, peers peer.Lookup) *ClubService {
	s := &ClubService{repo: repo, peers: peers}
	s.Orchestrator = NewOrchestrator[model.Club, model.ClubDTO]("club", repo, s, ErrClubNotFound)
	return s
}

// Create validates and persists a new club and returns its enriched view.
func (s *ClubService) Create(ctx context.Context, req model.CreateClubRequest) (*model.ClubDTO, error) {
	club := &model.Club{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
	}
	return s.Orchestrator.Create(ctx, club)
}

// Update fully replaces a club's editable fields.
func (s *ClubService) Update(ctx context.Context, id string, req model.CreateClubRequest) (*model.ClubDTO, error) {
	incoming := &model.Club{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
	}
	return s.Orchestrator.Update(ctx, id, incoming)
}

// GetByName returns the enriched club with the given unique name.
func (s *ClubService) GetByName(ctx context.Context, name string) (*model.ClubDTO, error) {
	club, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return s.Enrich(ctx, club), nil
}

// ValidateExists reports whether a club with the given name is stored.
// Peers call this through GET /clubs/validate/{name}.
func (s *ClubService) ValidateExists(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}

// Statistics summarizes a club with live counts from the peer services.
func (s *ClubService) Statistics(ctx context.Context, name string) (*model.ClubStatistics, error) {
	club, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	dto := s.Enrich(ctx, club)
	return &model.ClubStatistics{
		ClubName:    club.Name,
		Category:    club.Category,
		MemberCount: dto.MemberCount,
		EventCount:  dto.EventCount,
	}, nil
}

// ValidateCreate enforces the unique required name.
func (s *ClubService) ValidateCreate(ctx context.Context, club *model.Club) error {
	if club.Name == "" {
		return ErrClubNameRequired
	}
	exists, err := s.repo.ExistsByName(ctx, club.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrClubNameExists
	}
	return nil
}

// ValidateUpdate re-checks name uniqueness when the name changes.
func (s *ClubService) ValidateUpdate(ctx context.Context, existing, incoming *model.Club) error {
	if incoming.Name == "" {
		return ErrClubNameRequired
	}
	if incoming.Name != existing.Name {
		exists, err := s.repo.ExistsByName(ctx, incoming.Name)
		if err != nil {
			return err
		}
		if exists {
			return ErrClubNameExists
		}
	}
	return nil
}

// ApplyUpdate overwrites all editable club fields.
func (s *ClubService) ApplyUpdate(existing, incoming *model.Club) {
	existing.Name = incoming.Name
	existing.Description = incoming.Description
	existing.Category = incoming.Category
}

// Enrich builds the club DTO with member and event listings fetched from
// the owning services. Either peer being down degrades its fields to an
// empty list; the read still succeeds.
func (s *ClubService) Enrich(ctx context.Context, club *model.Club) *model.ClubDTO {
	dto := &model.ClubDTO{
		Club:      *club,
		MemberIDs: []string{},
		EventIDs:  []string{},
	}

	name := url.PathEscape(club.Name)

	if members := s.peers.FetchList(ctx, peer.MemberService, "members/club/"+name); members != nil {
		dto.MemberIDs = collectIDs(members)
	}
	dto.MemberCount = len(dto.MemberIDs)

	if events := s.peers.FetchList(ctx, peer.EventService, "events/club/"+name); events != nil {
		dto.EventIDs = collectIDs(events)
	}
	dto.EventCount = len(dto.EventIDs)

	return dto
}

// Cleanup fans the club deletion out to every dependent service: members
// are unassigned, events cancelled, registrations removed. Best effort;
// the club row goes away regardless.
func (s *ClubService) Cleanup(ctx context.Context, club *model.Club) {
	name := url.PathEscape(club.Name)
	report := NewCascadeReport("club", club.Name)

	report.Add(peer.MemberService, "unassign members",
		s.peers.Notify(ctx, peer.MemberService, "members/club/"+name+"/cleanup"))
	report.Add(peer.EventService, "cancel events",
		s.peers.Notify(ctx, peer.EventService, "events/club/"+name+"/cleanup"))
	report.Add(peer.RegistrationService, "delete registrations",
		s.peers.Notify(ctx, peer.RegistrationService, "registrations/club/"+name+"/cleanup"))

	report.Log()
}

// collectIDs pulls the id field out of a list of peer records.
func collectIDs(records []map[string]interface{}) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if id, ok := rec["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
