package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/peer"
)

// MemberRepositoryInterface defines the repository interface
type MemberRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Member, error)
	FindByID(ctx context.Context, id string) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	FindByClubName(ctx context.Context, clubName string) ([]model.Member, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, member *model.Member) (*model.Member, error)
	DeleteByID(ctx context.Context, id string) error
	ReassignClub(ctx context.Context, clubName string) (int, error)
}

// MemberService orchestrates member reads and writes. Members carry a
// soft reference to their club, validated against the club service on
// every write and resolved into club details on every read.
type MemberService struct {
	*Orchestrator[model.Member, model.MemberDTO]
	repo  MemberRepositoryInterface
	peers peer.Lookup
}

// NewMemberService creates a new member service
func NewMemberService(repo MemberRepositoryInterface, peers peer.Lookup) *MemberService {
	s := &MemberService{repo: repo, peers: peers}
	s.Orchestrator = NewOrchestrator[model.Member, model.MemberDTO]("member", repo, s, ErrMemberNotFound)
	return s
}

// Create validates and persists a new member. New members always start
// ACTIVE with the join date set to now.
func (s *MemberService) Create(ctx context.Context, req model.CreateMemberRequest) (*model.MemberDTO, error) {
	member := &model.Member{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		ClubName: req.ClubName,
		JoinDate: time.Now().UTC(),
		Status:   model.MemberStatusActive,
	}
	return s.Orchestrator.Create(ctx, member)
}

// Update fully replaces a member's editable fields. JoinDate is
// immutable.
func (s *MemberService) Update(ctx context.Context, id string, req model.CreateMemberRequest) (*model.MemberDTO, error) {
	incoming := &model.Member{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		ClubName: req.ClubName,
		Status:   req.Status,
	}
	return s.Orchestrator.Update(ctx, id, incoming)
}

// GetByEmail returns the enriched member with the given unique email.
func (s *MemberService) GetByEmail(ctx context.Context, email string) (*model.MemberDTO, error) {
	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return s.Enrich(ctx, member), nil
}

// GetByClub returns the enriched members assigned to a club. The club
// service calls this to count and list membership.
func (s *MemberService) GetByClub(ctx context.Context, clubName string) ([]model.MemberDTO, error) {
	members, err := s.repo.FindByClubName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.MemberDTO, 0, len(members))
	for i := range members {
		dtos = append(dtos, *s.Enrich(ctx, &members[i]))
	}
	return dtos, nil
}

// ValidateExists reports whether a member with the given ID is stored.
// Peers call this through GET /members/validate/{id}.
func (s *MemberService) ValidateExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Statistics summarizes a member with their registration count from the
// registration service. An unreachable registration service degrades
// the count to zero; the local fields still report.
func (s *MemberService) Statistics(ctx context.Context, id string) (*model.MemberStatistics, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	registrations := s.peers.FetchList(ctx, peer.RegistrationService, "registrations/member/"+url.PathEscape(id))
	return &model.MemberStatistics{
		MemberName:        member.Name,
		Email:             member.Email,
		ClubName:          member.ClubName,
		Status:            member.Status,
		RegistrationCount: len(registrations),
	}, nil
}

// CleanupByClub handles a club deletion cascade: every member of the
// club is moved to UNASSIGNED and marked INACTIVE. Returns how many
// members were touched.
func (s *MemberService) CleanupByClub(ctx context.Context, clubName string) (int, error) {
	return s.repo.ReassignClub(ctx, clubName)
}

// ValidateCreate enforces required fields, email uniqueness, and the
// club soft reference.
func (s *MemberService) ValidateCreate(ctx context.Context, member *model.Member) error {
	if member.Name == "" {
		return ErrMemberNameRequired
	}
	if member.Email == "" {
		return ErrMemberEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, member.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrMemberEmailExists
	}

	return s.validateClubReference(ctx, member.ClubName)
}

// ValidateUpdate re-checks email uniqueness and the club reference when
// they change, and rejects unknown statuses.
func (s *MemberService) ValidateUpdate(ctx context.Context, existing, incoming *model.Member) error {
	if incoming.Name == "" {
		return ErrMemberNameRequired
	}
	if incoming.Email == "" {
		return ErrMemberEmailRequired
	}
	if incoming.Status != "" && !incoming.Status.IsValid() {
		return ErrInvalidMemberStatus
	}

	if incoming.Email != existing.Email {
		other, err := s.repo.FindByEmail(ctx, incoming.Email)
		if err != nil {
			return err
		}
		if other != nil {
			return ErrMemberEmailExists
		}
	}

	if incoming.ClubName != existing.ClubName {
		if err := s.validateClubReference(ctx, incoming.ClubName); err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdate overwrites the editable member fields. An empty status in
// the payload keeps the stored one.
func (s *MemberService) ApplyUpdate(existing, incoming *model.Member) {
	existing.Name = incoming.Name
	existing.Email = incoming.Email
	existing.Phone = incoming.Phone
	existing.ClubName = incoming.ClubName
	if incoming.Status != "" {
		existing.Status = incoming.Status
	}
}

// Enrich builds the member DTO with club details from the club service,
// degrading to sentinel values when it is unreachable.
func (s *MemberService) Enrich(ctx context.Context, member *model.Member) *model.MemberDTO {
	dto := &model.MemberDTO{
		Member:          *member,
		ClubDescription: model.ClubInfoUnavailable,
		ClubCategory:    model.UnknownCategory,
	}

	if member.ClubName == "" || member.ClubName == model.UnassignedClub {
		return dto
	}

	club := s.peers.Fetch(ctx, peer.ClubService, "clubs/name/"+url.PathEscape(member.ClubName))
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

// Cleanup asks the registration service to drop the departing member's
// registrations. Best effort.
func (s *MemberService) Cleanup(ctx context.Context, member *model.Member) {
	report := NewCascadeReport("member", member.ID)
	report.Add(peer.RegistrationService, "delete registrations",
		s.peers.Notify(ctx, peer.RegistrationService, "registrations/member/"+url.PathEscape(member.ID)+"/cleanup"))
	report.Log()
}

// validateClubReference fails closed: an unreachable club service means
// the reference cannot be confirmed and the write is rejected.
func (s *MemberService) validateClubReference(ctx context.Context, clubName string) error {
	if clubName == "" || clubName == model.UnassignedClub {
		return nil
	}
	if !s.peers.CheckExists(ctx, peer.ClubService, "clubs/validate/"+url.PathEscape(clubName)) {
		return ErrClubReferenceNotFound
	}
	return nil
}
