package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubhub/api/internal/database"
	"github.com/clubhub/api/internal/model"
)

// ClubRepository handles club data access
type ClubRepository struct {
	db database.Database
}

// NewClubRepository creates a new club repository
func NewClubRepository(db database.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

// FindAll returns every club in store order
func (r *ClubRepository) FindAll(ctx context.Context) ([]model.Club, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM club`, nil)
	if err != nil {
		return nil, fmt.Errorf("find all clubs: %w", err)
	}

	records, _ := extractQueryResults(result)
	clubs := make([]model.Club, 0, len(records))
	for _, rec := range records {
		if m, ok := rec.(map[string]interface{}); ok {
			clubs = append(clubs, clubFromRecord(m))
		}
	}
	return clubs, nil
}

// FindByID returns a club or (nil, nil) when absent
func (r *ClubRepository) FindByID(ctx context.Context, id string) (*model.Club, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM ONLY type::thing('club', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find club by id: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	club := clubFromRecord(m)
	return &club, nil
}

// FindByName returns a club by its unique name or (nil, nil) when absent
func (r *ClubRepository) FindByName(ctx context.Context, name string) (*model.Club, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM club WHERE name = $name LIMIT 1`,
		map[string]interface{}{"name": name},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find club by name: %w", err)
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	club := clubFromRecord(m)
	return &club, nil
}

// ExistsByName reports whether a club with the given name is stored
func (r *ClubRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT count() AS count FROM club WHERE name = $name GROUP ALL`,
		map[string]interface{}{"name": name},
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("club exists: %w", err)
	}
	return extractCount(result) > 0, nil
}

// Save inserts the club when it has no ID and fully replaces it otherwise
func (r *ClubRepository) Save(ctx context.Context, club *model.Club) (*model.Club, error) {
	if club.ID == "" {
		club.ID = uuid.New().String()
		err := r.db.Execute(ctx,
			`CREATE type::thing('club', $id) SET
				name = $name,
				description = $description,
				category = $category`,
			map[string]interface{}{
				"id":          club.ID,
				"name":        club.Name,
				"description": club.Description,
				"category":    club.Category,
			},
		)
		if err != nil {
			if isUniqueConstraintError(err) {
				return nil, database.ErrDuplicate
			}
			return nil, fmt.Errorf("insert club: %w", err)
		}
		return club, nil
	}

	err := r.db.Execute(ctx,
		`UPDATE type::thing('club', $id) SET
			name = $name,
			description = $description,
			category = $category`,
		map[string]interface{}{
			"id":          club.ID,
			"name":        club.Name,
			"description": club.Description,
			"category":    club.Category,
		},
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, fmt.Errorf("update club: %w", err)
	}
	return club, nil
}

// DeleteByID removes a club; deleting an absent club is a no-op
func (r *ClubRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.Execute(ctx,
		`DELETE type::thing('club', $id)`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return fmt.Errorf("delete club: %w", err)
	}
	return nil
}

func clubFromRecord(m map[string]interface{}) model.Club {
	return model.Club{
		ID:          recordID(m["id"]),
		Name:        getString(m, "name"),
		Description: getString(m, "description"),
		Category:    getString(m, "category"),
	}
}
