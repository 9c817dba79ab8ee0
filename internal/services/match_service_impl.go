package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/unitrack/unimatch-api/internal/errors"
	"github.com/unitrack/unimatch-api/internal/logger"
	"github.com/unitrack/unimatch-api/internal/metrics"
	"github.com/unitrack/unimatch-api/internal/models"
	"github.com/unitrack/unimatch-api/internal/repository"
	"github.com/unitrack/unimatch-api/internal/scoring"
)

type catalogScorer interface {
	Score(profile scoring.ApplicantProfile, catalog []models.University) []scoring.MatchResult
}

// matchServiceImpl implements MatchService
type matchServiceImpl struct {
	repos          *repository.Repositories
	scorer         catalogScorer
	logger         logger.Logger
	catalogTimeout time.Duration
}

// NewMatchService creates a match service. A non-positive catalogTimeout
// leaves the catalog read bounded only by the caller's context.
func NewMatchService(repos *repository.Repositories, log logger.Logger, catalogTimeout time.Duration) MatchService {
	return &matchServiceImpl{
		repos:          repos,
		scorer:         scoring.NewScorer(),
		logger:         log,
		catalogTimeout: catalogTimeout,
	}
}

// Suggest loads the catalog and scores it against the profile
func (s *matchServiceImpl) Suggest(ctx context.Context, profile scoring.ApplicantProfile) ([]scoring.MatchResult, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		metrics.SuggestionsTotal.WithLabelValues(metrics.OutcomeCatalogError).Inc()
		s.logger.Error("Failed to load university catalog", err)

		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Timeout("university catalog read timed out", err).
				WithOperation("Suggest").
				WithDetails(fmt.Sprintf("catalog timeout %s", s.catalogTimeout))
		}
		return nil, errors.DatabaseError("failed to load university catalog", err).WithOperation("Suggest")
	}
	metrics.CatalogSize.Set(float64(len(catalog)))

	start := time.Now()
	results, err := s.score(profile, catalog)
	if err != nil {
		metrics.SuggestionsTotal.WithLabelValues(metrics.OutcomeScoringError).Inc()
		s.logger.Error("Failed to score university catalog", err, "catalog_size", len(catalog))
		return nil, err
	}
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	metrics.SuggestionResults.Observe(float64(len(results)))
	metrics.SuggestionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	s.logger.Info("Generated university suggestions",
		"catalog_size", len(catalog),
		"results", len(results),
		"major", profile.IntendedMajor,
	)

	return results, nil
}

// score runs the scorer and reports a panic as an internal error so the
// request fails as a whole
func (s *matchServiceImpl) score(profile scoring.ApplicantProfile, catalog []models.University) (results []scoring.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = errors.InternalError("failed to score university catalog", fmt.Errorf("panic: %v", r)).
				WithOperation("Suggest")
		}
	}()
	return s.scorer.Score(profile, catalog), nil
}

func (s *matchServiceImpl) loadCatalog(ctx context.Context) ([]models.University, error) {
	if s.catalogTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.catalogTimeout)
		defer cancel()
	}
	return s.repos.University.ListAll(ctx)
}
