package model

import "time"

// MemberStatus is the lifecycle state of a member.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

// IsValid returns true if the status is a known member status.
func (s MemberStatus) IsValid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive
}

// Member represents a club member. Email is unique. ClubName is a soft
// reference to a club owned by the club service.
type Member struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone,omitempty"`
	ClubName string       `json:"clubName"`
	JoinDate time.Time    `json:"joinDate"`
	Status   MemberStatus `json:"status"`
}

// MemberDTO is the enriched view of a member with club details fetched
// from the club service.
type MemberDTO struct {
	Member
	ClubID          *string `json:"clubId"`
	ClubDescription string  `json:"clubDescription"`
	ClubCategory    string  `json:"clubCategory"`
}

// Sentinel values used when the club service cannot be reached during
// enrichment. Reads still succeed with these in place of peer data.
const (
	ClubInfoUnavailable = "Club information unavailable"
	UnknownCategory     = "Unknown"
)

// MemberStatistics summarizes a member for the statistics endpoint. The
// registration count comes from the registration service and degrades
// to zero when it is unreachable.
type MemberStatistics struct {
	MemberName        string       `json:"memberName"`
	Email             string       `json:"email"`
	ClubName          string       `json:"clubName"`
	Status            MemberStatus `json:"status"`
	RegistrationCount int          `json:"registrationCount"`
}

// CreateMemberRequest is the payload for creating or fully replacing a
// member. Status is only honored on update; creation always starts the
// member as ACTIVE.
type CreateMemberRequest struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	ClubName string       `json:"clubName"`
	Status   MemberStatus `json:"status,omitempty"`
}
