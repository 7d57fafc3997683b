package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubhub/api/internal/database"
	"github.com/clubhub/api/internal/model"
)

// RegistrationRepository handles registration data access
type RegistrationRepository struct {
	db database.Database
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db database.Database) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// FindAll returns every registration in store order
func (r *RegistrationRepository) FindAll(ctx context.Context) ([]model.Registration, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM registration`, nil)
	if err != nil {
		return nil, fmt.Errorf("find all registrations: %w", err)
	}
	return registrationsFromResult(result), nil
}

// FindByID returns a registration or (nil, nil) when absent
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*model.Registration, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM ONLY type::thing('registration', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration by id: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	reg := registrationFromRecord(m)
	return &reg, nil
}

// FindByMemberID returns all registrations for a member
func (r *RegistrationRepository) FindByMemberID(ctx context.Context, memberID string) ([]model.Registration, error) {
	result, err := r.db.Query(ctx,
		`SELECT * FROM registration WHERE member_id = $member_id`,
		map[string]interface{}{"member_id": memberID},
	)
	if err != nil {
		return nil, fmt.Errorf("find registrations by member: %w", err)
	}
	return registrationsFromResult(result), nil
}

// FindByEventID returns all registrations for an event
func (r *RegistrationRepository) FindByEventID(ctx context.Context, eventID string) ([]model.Registration, error) {
	result, err := r.db.Query(ctx,
		`SELECT * FROM registration WHERE event_id = $event_id`,
		map[string]interface{}{"event_id": eventID},
	)
	if err != nil {
		return nil, fmt.Errorf("find registrations by event: %w", err)
	}
	return registrationsFromResult(result), nil
}

// FindByMemberAndEvent returns the registration for a (member, event)
// pair or (nil, nil) when absent. At most one row exists per pair.
func (r *RegistrationRepository) FindByMemberAndEvent(ctx context.Context, memberID, eventID string) (*model.Registration, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM registration WHERE member_id = $member_id AND event_id = $event_id LIMIT 1`,
		map[string]interface{}{"member_id": memberID, "event_id": eventID},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration by member and event: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	reg := registrationFromRecord(m)
	return &reg, nil
}

// Save inserts the registration when it has no ID and fully replaces it
// otherwise
func (r *RegistrationRepository) Save(ctx context.Context, reg *model.Registration) (*model.Registration, error) {
	vars := map[string]interface{}{
		"member_id":         reg.MemberID,
		"event_id":          reg.EventID,
		"registration_date": reg.RegistrationDate,
		"status":            string(reg.Status),
		"member_name":       reg.MemberName,
		"event_name":        reg.EventName,
	}

	if reg.ID == "" {
		reg.ID = uuid.New().String()
		vars["id"] = reg.ID
		err := r.db.Execute(ctx,
			`CREATE type::thing('registration', $id) SET
				member_id = $member_id,
				event_id = $event_id,
				registration_date = <datetime> $registration_date,
				status = $status,
				member_name = $member_name,
				event_name = $event_name`,
			vars,
		)
		if err != nil {
			if isUniqueConstraintError(err) {
				return nil, database.ErrDuplicate
			}
			return nil, fmt.Errorf("insert registration: %w", err)
		}
		return reg, nil
	}

	vars["id"] = reg.ID
	err := r.db.Execute(ctx,
		`UPDATE type::thing('registration', $id) SET
			member_id = $member_id,
			event_id = $event_id,
			registration_date = <datetime> $registration_date,
			status = $status,
			member_name = $member_name,
			event_name = $event_name`,
		vars,
	)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return reg, nil
}

// DeleteByID removes a registration; deleting an absent one is a no-op
func (r *RegistrationRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.Execute(ctx,
		`DELETE type::thing('registration', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

// DeleteByMemberID removes every registration for a member. Used by
// cascade cleanup when a member is deleted. Returns the rows removed.
func (r *RegistrationRepository) DeleteByMemberID(ctx context.Context, memberID string) (int, error) {
	result, err := r.db.Query(ctx,
		`DELETE registration WHERE member_id = $member_id RETURN BEFORE`,
		map[string]interface{}{"member_id": memberID},
	)
	if err != nil {
		return 0, fmt.Errorf("delete registrations by member: %w", err)
	}
	records, _ := extractQueryResults(result)
	return len(records), nil
}

// DeleteByEventID removes every registration for an event. Used by
// cascade cleanup when an event is deleted. Returns the rows removed.
func (r *RegistrationRepository) DeleteByEventID(ctx context.Context, eventID string) (int, error) {
	result, err := r.db.Query(ctx,
		`DELETE registration WHERE event_id = $event_id RETURN BEFORE`,
		map[string]interface{}{"event_id": eventID},
	)
	if err != nil {
		return 0, fmt.Errorf("delete registrations by event: %w", err)
	}
	records, _ := extractQueryResults(result)
	return len(records), nil
}

// DeleteByEventIDs removes registrations for several events in one
// atomic batch. Used by cascade cleanup when a whole club disappears and
// its events are being cancelled together. Returns the rows removed
// across all events.
func (r *RegistrationRepository) DeleteByEventIDs(ctx context.Context, eventIDs []string) (int, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}
	batch := database.NewAtomicBatch()
	for _, eventID := range eventIDs {
		batch.Add(
			`DELETE registration WHERE event_id = $event_id RETURN BEFORE`,
			map[string]interface{}{"event_id": eventID},
		)
	}
	results, err := batch.Execute(ctx, r.db)
	if err != nil {
		return 0, fmt.Errorf("delete registrations by events: %w", err)
	}

	deleted := 0
	for _, res := range results {
		if m, ok := res.(map[string]interface{}); ok {
			if rows, ok := m["result"].([]interface{}); ok {
				deleted += len(rows)
			}
		}
	}
	return deleted, nil
}

// Count returns the total number of registrations
func (r *RegistrationRepository) Count(ctx context.Context) (int, error) {
	return r.countWhere(ctx, `SELECT count() AS count FROM registration GROUP ALL`, nil)
}

// CountByStatus returns the number of registrations in the given status
func (r *RegistrationRepository) CountByStatus(ctx context.Context, status model.RegistrationStatus) (int, error) {
	return r.countWhere(ctx,
		`SELECT count() AS count FROM registration WHERE status = $status GROUP ALL`,
		map[string]interface{}{"status": string(status)},
	)
}

func (r *RegistrationRepository) countWhere(ctx context.Context, query string, vars map[string]interface{}) (int, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return extractCount(result), nil
}

func registrationsFromResult(result []interface{}) []model.Registration {
	records, _ := extractQueryResults(result)
	regs := make([]model.Registration, 0, len(records))
	for _, rec := range records {
		if m, ok := rec.(map[string]interface{}); ok {
			regs = append(regs, registrationFromRecord(m))
		}
	}
	return regs
}

func registrationFromRecord(m map[string]interface{}) model.Registration {
	return model.Registration{
		ID:               recordID(m["id"]),
		MemberID:         getString(m, "member_id"),
		EventID:          getString(m, "event_id"),
		RegistrationDate: getTime(m, "registration_date"),
		Status:           model.RegistrationStatus(getString(m, "status")),
		MemberName:       getString(m, "member_name"),
		EventName:        getString(m, "event_name"),
	}
}
