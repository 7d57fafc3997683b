package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub/api/internal/model"
	"github.com/clubhub/api/internal/peer"
	"github.com/clubhub/api/internal/service"
)

// Empty stub repositories. The routing tests only need the handlers to
// resolve; entity behavior is covered in the service packages.

type stubMemberRepo struct{}

func (stubMemberRepo) FindAll(ctx context.Context) ([]model.Member, error) { return nil, nil }
func (stubMemberRepo) FindByID(ctx context.Context, id string) (*model.Member, error) {
	return &model.Member{ID: id, Name: "Ada", Status: model.MemberStatusActive}, nil
}
func (stubMemberRepo) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return nil, nil
}
func (stubMemberRepo) FindByClubName(ctx context.Context, clubName string) ([]model.Member, error) {
	return nil, nil
}
func (stubMemberRepo) ExistsByID(ctx context.Context, id string) (bool, error) { return true, nil }
func (stubMemberRepo) Save(ctx context.Context, member *model.Member) (*model.Member, error) {
	return member, nil
}
func (stubMemberRepo) DeleteByID(ctx context.Context, id string) error { return nil }
func (stubMemberRepo) ReassignClub(ctx context.Context, clubName string) (int, error) {
	return 0, nil
}

type stubEventRepo struct{}

func (stubEventRepo) FindAll(ctx context.Context) ([]model.Event, error) { return nil, nil }
func (stubEventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return &model.Event{ID: id, Name: "Spring Tournament", DateTime: time.Now().UTC().Add(48 * time.Hour), MaxCapacity: 10}, nil
}
func (stubEventRepo) FindByClubName(ctx context.Context, clubName string) ([]model.Event, error) {
	return nil, nil
}
func (stubEventRepo) FindUpcoming(ctx context.Context, after time.Time) ([]model.Event, error) {
	return nil, nil
}
func (stubEventRepo) ExistsByID(ctx context.Context, id string) (bool, error) { return true, nil }
func (stubEventRepo) Save(ctx context.Context, event *model.Event) (*model.Event, error) {
	return event, nil
}
func (stubEventRepo) DeleteByID(ctx context.Context, id string) error { return nil }
func (stubEventRepo) AdjustCapacity(ctx context.Context, id string, delta int) (*model.Event, error) {
	return &model.Event{ID: id, MaxCapacity: 10, CurrentCapacity: 1}, nil
}
func (stubEventRepo) CancelByClub(ctx context.Context, clubName string) (int, error) {
	return 0, nil
}

type stubRegistrationRepo struct{}

func (stubRegistrationRepo) FindAll(ctx context.Context) ([]model.Registration, error) {
	return nil, nil
}
func (stubRegistrationRepo) FindByID(ctx context.Context, id string) (*model.Registration, error) {
	return nil, nil
}
func (stubRegistrationRepo) FindByMemberID(ctx context.Context, memberID string) ([]model.Registration, error) {
	return nil, nil
}
func (stubRegistrationRepo) FindByEventID(ctx context.Context, eventID string) ([]model.Registration, error) {
	return nil, nil
}
func (stubRegistrationRepo) FindByMemberAndEvent(ctx context.Context, memberID, eventID string) (*model.Registration, error) {
	return nil, nil
}
func (stubRegistrationRepo) Save(ctx context.Context, registration *model.Registration) (*model.Registration, error) {
	return registration, nil
}
func (stubRegistrationRepo) DeleteByID(ctx context.Context, id string) error { return nil }
func (stubRegistrationRepo) DeleteByMemberID(ctx context.Context, memberID string) (int, error) {
	return 0, nil
}
func (stubRegistrationRepo) DeleteByEventID(ctx context.Context, eventID string) (int, error) {
	return 0, nil
}
func (stubRegistrationRepo) DeleteByEventIDs(ctx context.Context, eventIDs []string) (int, error) {
	return 0, nil
}
func (stubRegistrationRepo) Count(ctx context.Context) (int, error) { return 0, nil }
func (stubRegistrationRepo) CountByStatus(ctx context.Context, status model.RegistrationStatus) (int, error) {
	return 0, nil
}

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

// newFullMux registers every handler's complete route set, the way each
// service binary does at startup. Registering alone is the assertion
// that no patterns conflict.
func newFullMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHealthHandler(peer.ClubService, stubPinger{}).Register(mux)
	NewClubHandler(service.NewClubService(&stubClubRepo{club: &model.Club{ID: "club-1", Name: "Chess Club"}}, stubLookup{})).Register(mux)
	NewMemberHandler(service.NewMemberService(stubMemberRepo{}, stubLookup{})).Register(mux)
	NewEventHandler(service.NewEventService(stubEventRepo{}, stubLookup{})).Register(mux)
	NewRegistrationHandler(service.NewRegistrationService(stubRegistrationRepo{}, stubLookup{})).Register(mux)
	return mux
}

func TestRoutes_RegisterAllHandlers(t *testing.T) {
	// Panics on conflicting patterns would surface here.
	newFullMux(t)
}

func TestRoutes_ClubSubrouteDispatch(t *testing.T) {
	mux := newFullMux(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"lookup by name", "/clubs/name/Chess%20Club", http.StatusOK},
		{"statistics", "/clubs/Chess%20Club/statistics", http.StatusOK},
		{"validate", "/clubs/validate/Chess%20Club", http.StatusOK},
		{"unknown action", "/clubs/Chess%20Club/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code, tt.path)
		})
	}
}

func TestRoutes_EventSubrouteDispatch(t *testing.T) {
	mux := newFullMux(t)

	// The wildcard-middle patterns must not swallow the literal-prefix
	// routes: /events/club/capacity is a club listing, not a capacity
	// read on an event named "club".
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/club/capacity", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.EventDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Empty(t, list)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/event-1/capacity", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var capacity model.CapacityInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&capacity))
	assert.Equal(t, "event-1", capacity.EventID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/event-1/statistics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/validate/event-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var exists ExistsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&exists))
	assert.True(t, exists.Exists)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/event-1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/event-1/capacity/increment", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// stubLookup refuses every notification, so a dispatched register
	// surfaces the delegation failure rather than a routing miss.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/event-1/register/member-1", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/event-1/bogus/thing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_MemberStatistics(t *testing.T) {
	mux := newFullMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/members/member-1/statistics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.MemberStatistics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, "Ada", stats.MemberName)
	assert.Zero(t, stats.RegistrationCount)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/members/member-1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
