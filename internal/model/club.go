package model

// Club represents a community group. Name is unique and doubles as the
// key other services store when they reference a club.
type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ClubDTO is the enriched view of a club, augmented with membership and
// event data owned by the member and event services.
type ClubDTO struct {
	Club
	MemberIDs   []string `json:"memberIds"`
	MemberCount int      `json:"memberCount"`
	EventIDs    []string `json:"eventIds"`
	EventCount  int      `json:"eventCount"`
}

// CreateClubRequest is the payload for creating or fully replacing a club.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ClubStatistics summarizes a club for the statistics endpoint.
type ClubStatistics struct {
	ClubName    string `json:"clubName"`
	Category    string `json:"category"`
	MemberCount int    `json:"memberCount"`
	EventCount  int    `json:"eventCount"`
}

// UnassignedClub is the sentinel written to dependents when their club
// is deleted.
const UnassignedClub = "UNASSIGNED"
