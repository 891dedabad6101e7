package service

import (
	"context"

	"github.com/danielstewart77/LeaderboardBot/internal/facet"
	"github.com/danielstewart77/LeaderboardBot/internal/metrics"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
)

// ScoringService is the sole write path for scores.
type ScoringService interface {
	// Award validates the facet, resolves a nil amount to the facet's
	// default point value, and accumulates onto the ledger. Returns the
	// new score for the (user, facet) pair.
	Award(ctx context.Context, userID, facetName string, amount *int) (int, error)
}

type scoringService struct {
	scores  repository.ScoreRepository
	catalog *facet.Catalog
}

func NewScoringService(scores repository.ScoreRepository, catalog *facet.Catalog) ScoringService {
	return &scoringService{scores: scores, catalog: catalog}
}

func (s *scoringService) Award(ctx context.Context, userID, facetName string, amount *int) (int, error) {
	points, ok := s.catalog.Default(facetName)
	if !ok {
		return 0, ErrUnknownFacet
	}
	if amount != nil {
		points = *amount
	}
	score, err := s.scores.Accumulate(ctx, userID, facetName, points)
	if err != nil {
		metrics.ScoringErrors.Inc()
		return 0, err
	}
	// counters reject negative increments; corrective awards still apply
	// to the ledger, they just don't move the points counter
	if points > 0 {
		metrics.ScoresAwarded.WithLabelValues(facetName).Add(float64(points))
	}
	return score, nil
}
