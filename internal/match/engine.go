// Package match implements the best-match scan over enrolled identity
// records. The scan is exhaustive and exact: every candidate is compared
// to the query with cosine similarity and the strict maximum wins.
// Tenant scopes stay small enough that a linear scan is fine.
package match

import (
	"go.uber.org/zap"

	"github.com/example/faceid/internal/embedding"
	"github.com/example/faceid/internal/repository"
)

// NoMatchScore is returned when no candidate qualifies.
const NoMatchScore = -1.0

// Engine scans candidate records for the best similarity match. It is
// scope-agnostic: tenant filtering and self-exclusion are the caller's
// responsibility, performed before the scan.
type Engine struct {
	logger *zap.Logger
}

// NewEngine constructs a match engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("match_engine")}
}

// FindBestMatch returns the candidate most similar to query and its
// score, or (nil, NoMatchScore) when no candidate qualifies. Candidates
// whose user ID is excluded, whose embedding is absent, or whose
// embedding does not match the query dimension are skipped, not fatal.
// The first candidate wins ties, so results are deterministic for a
// given candidate order.
func (e *Engine) FindBestMatch(query embedding.Vector, candidates []repository.IdentityRecord, exclude map[string]struct{}) (*repository.IdentityRecord, float64) {
	var best *repository.IdentityRecord
	bestScore := NoMatchScore

	for i := range candidates {
		candidate := &candidates[i]
		if _, skip := exclude[candidate.UserID]; skip {
			continue
		}
		if len(candidate.Embedding) == 0 {
			e.logger.Debug("skipping record without embedding", zap.String("user_id", candidate.UserID))
			continue
		}

		score, err := embedding.Cosine(query, candidate.Embedding)
		if err != nil {
			e.logger.Warn("skipping incomparable record",
				zap.String("user_id", candidate.UserID),
				zap.Int("dimension", len(candidate.Embedding)),
				zap.Error(err))
			continue
		}

		if score > bestScore || best == nil {
			best = candidate
			bestScore = score
		}
	}

	if best == nil {
		return nil, NoMatchScore
	}
	return best, bestScore
}
