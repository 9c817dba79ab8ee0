package services

import (
	"context"
	"database/sql"

	"github.com/unitrack/unimatch-api/internal/logger"
	"github.com/unitrack/unimatch-api/internal/repository"
	"github.com/unitrack/unimatch-api/internal/scoring"
	"github.com/unitrack/unimatch-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Match MatchService
}

// MatchService defines the interface for university suggestion logic
type MatchService interface {
	// Suggest reads the catalog once and returns the scored suggestions
	// for the profile. It fails as a whole; there are no partial results.
	Suggest(ctx context.Context, profile scoring.ApplicantProfile) ([]scoring.MatchResult, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Match: NewMatchService(repos, log, cfg.CatalogTimeout),
	}
}
