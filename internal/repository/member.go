package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubhub/api/internal/database"
	"github.com/clubhub/api/internal/model"
)

// MemberRepository handles member data access
type MemberRepository struct {
	db database.Database
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db database.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// FindAll returns every member in store order
func (r *MemberRepository) FindAll(ctx context.Context) ([]model.Member, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM member`, nil)
	if err != nil {
		return nil, fmt.Errorf("find all members: %w", err)
	}
	return membersFromResult(result), nil
}

// FindByID returns a member or (nil, nil) when absent
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM ONLY type::thing('member', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find member by id: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	member := memberFromRecord(m)
	return &member, nil
}

// FindByEmail returns a member by unique email or (nil, nil) when absent
func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM member WHERE email = $email LIMIT 1`,
		map[string]interface{}{"email": email},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find member by email: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	member := memberFromRecord(m)
	return &member, nil
}

// FindByClubName returns all members soft-referencing the given club
func (r *MemberRepository) FindByClubName(ctx context.Context, clubName string) ([]model.Member, error) {
	result, err := r.db.Query(ctx,
		`SELECT * FROM member WHERE club_name = $club_name`,
		map[string]interface{}{"club_name": clubName},
	)
	if err != nil {
		return nil, fmt.Errorf("find members by club: %w", err)
	}
	return membersFromResult(result), nil
}

// ExistsByID reports whether the member is stored
func (r *MemberRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	member, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// Save inserts the member when it has no ID and fully replaces it otherwise
func (r *MemberRepository) Save(ctx context.Context, member *model.Member) (*model.Member, error) {
	vars := map[string]interface{}{
		"name":      member.Name,
		"email":     member.Email,
		"phone":     member.Phone,
		"club_name": member.ClubName,
		"join_date": member.JoinDate,
		"status":    string(member.Status),
	}

	if member.ID == "" {
		member.ID = uuid.New().String()
		vars["id"] = member.ID
		err := r.db.Execute(ctx,
			`CREATE type::thing('member', $id) SET
				name = $name,
				email = $email,
				phone = $phone,
				club_name = $club_name,
				join_date = <datetime> $join_date,
				status = $status`,
			vars,
		)
		if err != nil {
			if isUniqueConstraintError(err) {
				return nil, database.ErrDuplicate
			}
			return nil, fmt.Errorf("insert member: %w", err)
		}
		return member, nil
	}

	vars["id"] = member.ID
	err := r.db.Execute(ctx,
		`UPDATE type::thing('member', $id) SET
			name = $name,
			email = $email,
			phone = $phone,
			club_name = $club_name,
			join_date = <datetime> $join_date,
			status = $status`,
		vars,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return member, nil
}

// DeleteByID removes a member; deleting an absent member is a no-op
func (r *MemberRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.Execute(ctx,
		`DELETE type::thing('member', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// ReassignClub moves every member of the given club to the UNASSIGNED
// sentinel and marks them INACTIVE. Used by cascade cleanup when a club
// is deleted. Returns the number of members touched.
func (r *MemberRepository) ReassignClub(ctx context.Context, clubName string) (int, error) {
	result, err := r.db.Query(ctx,
		`UPDATE member SET club_name = $unassigned, status = $status WHERE club_name = $club_name`,
		map[string]interface{}{
			"unassigned": model.UnassignedClub,
			"status":     string(model.MemberStatusInactive),
			"club_name":  clubName,
		},
	)
	if err != nil {
		return 0, fmt.Errorf("reassign members: %w", err)
	}
	records, _ := extractQueryResults(result)
	return len(records), nil
}

func membersFromResult(result []interface{}) []model.Member {
	records, _ := extractQueryResults(result)
	members := make([]model.Member, 0, len(records))
	for _, rec := range records {
		if m, ok := rec.(map[string]interface{}); ok {
			members = append(members, memberFromRecord(m))
		}
	}
	return members
}

func memberFromRecord(m map[string]interface{}) model.Member {
	return model.Member{
		ID:       recordID(m["id"]),
		Name:     getString(m, "name"),
		Email:    getString(m, "email"),
		Phone:    getString(m, "phone"),
		ClubName: getString(m, "club_name"),
		JoinDate: getTime(m, "join_date"),
		Status:   model.MemberStatus(getString(m, "status")),
	}
}
