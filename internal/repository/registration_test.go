package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/clubhub/api/internal/service"
)

// Compile-time checks that each repository satisfies the interface its
// service declares. The services only see these interfaces, so a
// signature drift here would otherwise surface at binary wiring time.
var (
	_ service.ClubRepositoryInterface         = (*ClubRepository)(nil)
	_ service.MemberRepositoryInterface       = (*MemberRepository)(nil)
	_ service.EventRepositoryInterface        = (*EventRepository)(nil)
	_ service.RegistrationRepositoryInterface = (*RegistrationRepository)(nil)
)

// fakeDB is a func-field database.Database for repository tests.
type fakeDB struct {
	queryFunc    func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
}

func (f *fakeDB) Connect(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                      { return nil }
func (f *fakeDB) Ping(ctx context.Context) error    { return nil }

func (f *fakeDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if f.queryFunc != nil {
		return f.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

func (f *fakeDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if f.queryOneFunc != nil {
		return f.queryOneFunc(ctx, query, vars)
	}
	return nil, nil
}

func (f *fakeDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	if f.executeFunc != nil {
		return f.executeFunc(ctx, query, vars)
	}
	return nil
}

func TestRegistrationRepository_DeleteByEventIDs_CountsAcrossEvents(t *testing.T) {
	var gotQuery string
	db := &fakeDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			gotQuery = query
			return []interface{}{
				map[string]interface{}{"result": []interface{}{
					map[string]interface{}{"id": "registration:r1"},
					map[string]interface{}{"id": "registration:r2"},
				}},
				map[string]interface{}{"result": []interface{}{
					map[string]interface{}{"id": "registration:r3"},
				}},
			}, nil
		},
	}
	repo := NewRegistrationRepository(db)

	count, err := repo.DeleteByEventIDs(context.Background(), []string{"event-1", "event-2"})
	if err != nil {
		t.Fatalf("DeleteByEventIDs failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 rows deleted, got %d", count)
	}
	if !strings.Contains(gotQuery, "BEGIN TRANSACTION") || !strings.Contains(gotQuery, "COMMIT TRANSACTION") {
		t.Errorf("expected an atomic batch, got query %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "RETURN BEFORE") {
		t.Errorf("expected RETURN BEFORE so deletions are countable, got query %q", gotQuery)
	}
}

func TestRegistrationRepository_DeleteByEventIDs_Empty(t *testing.T) {
	db := &fakeDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			t.Error("no query should run for an empty ID list")
			return nil, nil
		},
	}
	repo := NewRegistrationRepository(db)

	count, err := repo.DeleteByEventIDs(context.Background(), nil)
	if err != nil || count != 0 {
		t.Errorf("expected 0 rows for empty list, got %d, %v", count, err)
	}
}
