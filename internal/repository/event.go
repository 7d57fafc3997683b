package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clubhub/api/internal/database"
	"github.com/clubhub/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// FindAll returns every event in store order
func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM event`, nil)
	if err != nil {
		return nil, fmt.Errorf("find all events: %w", err)
	}
	return eventsFromResult(result), nil
}

// FindByID returns an event or (nil, nil) when absent
func (r *EventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM ONLY type::thing('event', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	event := eventFromRecord(m)
	return &event, nil
}

// FindByClubName returns all events soft-referencing the given club
func (r *EventRepository) FindByClubName(ctx context.Context, clubName string) ([]model.Event, error) {
	result, err := r.db.Query(ctx,
		`SELECT * FROM event WHERE club_name = $club_name`,
		map[string]interface{}{"club_name": clubName},
	)
	if err != nil {
		return nil, fmt.Errorf("find events by club: %w", err)
	}
	return eventsFromResult(result), nil
}

// FindUpcoming returns events starting after the given time
func (r *EventRepository) FindUpcoming(ctx context.Context, after time.Time) ([]model.Event, error) {
	result, err := r.db.Query(ctx,
		`SELECT * FROM event WHERE date_time > <datetime> $after`,
		map[string]interface{}{"after": after},
	)
	if err != nil {
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	return eventsFromResult(result), nil
}

// ExistsByID reports whether the event is stored
func (r *EventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return event != nil, nil
}

// Save inserts the event when it has no ID and fully replaces it otherwise
func (r *EventRepository) Save(ctx context.Context, event *model.Event) (*model.Event, error) {
	vars := map[string]interface{}{
		"name":             event.Name,
		"description":      event.Description,
		"location":         event.Location,
		"date_time":        event.DateTime,
		"club_name":        event.ClubName,
		"status":           string(event.Status),
		"max_capacity":     event.MaxCapacity,
		"current_capacity": event.CurrentCapacity,
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
		vars["id"] = event.ID
		err := r.db.Execute(ctx,
			`CREATE type::thing('event', $id) SET
				name = $name,
				description = $description,
				location = $location,
				date_time = <datetime> $date_time,
				club_name = $club_name,
				status = $status,
				max_capacity = $max_capacity,
				current_capacity = $current_capacity`,
			vars,
		)
		if err != nil {
			return nil, fmt.Errorf("insert event: %w", err)
		}
		return event, nil
	}

	vars["id"] = event.ID
	err := r.db.Execute(ctx,
		`UPDATE type::thing('event', $id) SET
			name = $name,
			description = $description,
			location = $location,
			date_time = <datetime> $date_time,
			club_name = $club_name,
			status = $status,
			max_capacity = $max_capacity,
			current_capacity = $current_capacity`,
		vars,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteByID removes an event; deleting an absent event is a no-op
func (r *EventRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.Execute(ctx,
		`DELETE type::thing('event', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// AdjustCapacity moves the seat counter by delta in a single statement,
// clamped to [0, max_capacity] so the invariant holds no matter how
// concurrent adjustments interleave inside this store. Returns the event
// after the adjustment, or (nil, nil) when absent.
func (r *EventRepository) AdjustCapacity(ctx context.Context, id string, delta int) (*model.Event, error) {
	result, err := r.db.QueryOne(ctx,
		`UPDATE ONLY type::thing('event', $id) SET
			current_capacity = math::max(0, math::min(max_capacity, current_capacity + $delta))
		RETURN AFTER`,
		map[string]interface{}{"id": id, "delta": delta},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust event capacity: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	event := eventFromRecord(m)
	return &event, nil
}

// CancelByClub moves every event of the given club to the UNASSIGNED
// sentinel and marks them CANCELLED. Used by cascade cleanup when a club
// is deleted. Returns the number of events touched.
func (r *EventRepository) CancelByClub(ctx context.Context, clubName string) (int, error) {
	result, err := r.db.Query(ctx,
		`UPDATE event SET club_name = $unassigned, status = $status WHERE club_name = $club_name`,
		map[string]interface{}{
			"unassigned": model.UnassignedClub,
			"status":     string(model.EventStatusCancelled),
			"club_name":  clubName,
		},
	)
	if err != nil {
		return 0, fmt.Errorf("cancel events by club: %w", err)
	}
	records, _ := extractQueryResults(result)
	return len(records), nil
}

func eventsFromResult(result []interface{}) []model.Event {
	records, _ := extractQueryResults(result)
	events := make([]model.Event, 0, len(records))
	for _, rec := range records {
		if m, ok := rec.(map[string]interface{}); ok {
			events = append(events, eventFromRecord(m))
		}
	}
	return events
}

func eventFromRecord(m map[string]interface{}) model.Event {
	return model.Event{
		ID:              recordID(m["id"]),
		Name:            getString(m, "name"),
		Description:     getString(m, "description"),
		Location:        getString(m, "location"),
		DateTime:        getTime(m, "date_time"),
		ClubName:        getString(m, "club_name"),
		Status:          model.EventStatus(getString(m, "status")),
		MaxCapacity:     getInt(m, "max_capacity"),
		CurrentCapacity: getInt(m, "current_capacity"),
	}
}
