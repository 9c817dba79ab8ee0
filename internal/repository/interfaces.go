package repository

import (
	"context"
	"database/sql"

	"github.com/unitrack/unimatch-api/internal/models"
)

// UniversityRepository defines read access to the university catalog
type UniversityRepository interface {
	// ListAll returns the whole catalog in insertion order
	ListAll(ctx context.Context) ([]models.University, error)
}

// Repositories groups all repository interfaces
type Repositories struct {
	University UniversityRepository
}

// dbExecutor is an interface that both *sql.DB and *sql.Tx implement
type dbExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// NewRepositories creates a new repository collection
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		University: NewUniversityRepository(db),
	}
}
