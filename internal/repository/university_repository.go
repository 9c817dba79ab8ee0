package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/unitrack/unimatch-api/internal/models"
)

const listUniversitiesQuery = `
		SELECT id, name, location, ranking, rating, tuition, acceptance_rate,
			   programs, image, highlights, deadline, created_at, updated_at
		FROM universities
		ORDER BY created_at, id
	`

// universityRepository implements UniversityRepository
type universityRepository struct {
	db dbExecutor
}

// NewUniversityRepository creates a new university repository
func NewUniversityRepository(db dbExecutor) UniversityRepository {
	return &universityRepository{db: db}
}

// ListAll retrieves every university in the catalog
func (r *universityRepository) ListAll(ctx context.Context) ([]models.University, error) {
	rows, err := r.db.QueryContext(ctx, listUniversitiesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query universities: %w", err)
	}
	defer rows.Close()

	universities := []models.University{}
	for rows.Next() {
		var u models.University
		err := rows.Scan(
			&u.ID, &u.Name, &u.Location, &u.Ranking, &u.Rating, &u.Tuition,
			&u.AcceptanceRate, pq.Array(&u.Programs), &u.Image,
			pq.Array(&u.Highlights), &u.Deadline, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate universities: %w", err)
	}

	return universities, nil
}
