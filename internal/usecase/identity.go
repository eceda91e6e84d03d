package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/faceid/internal/config"
	"github.com/example/faceid/internal/embedding"
	"github.com/example/faceid/internal/extractor"
	"github.com/example/faceid/internal/logging"
	"github.com/example/faceid/internal/match"
	"github.com/example/faceid/internal/repository"
)

// IdentityRepository defines the persistence operations needed by the
// use case.
type IdentityRepository interface {
	FindCandidates(ctx context.Context, filter repository.CandidateFilter) ([]repository.IdentityRecord, error)
	UpsertByUserID(ctx context.Context, userID string, tenantID *string, emb embedding.Vector) (bool, error)
	ListUserIDs(ctx context.Context, tenantID *string) ([]string, error)
	SaveEvent(ctx context.Context, event *repository.VerificationEvent) error
	AggregateMetrics(ctx context.Context) (repository.MetricsAggregation, error)
}

// VerifyResult is the outcome of one verification request.
type VerifyResult struct {
	RequestID string
	Verified  bool
	UserID    string
	Score     float64
}

// IdentityUseCase implements the enrollment and verification policies
// over the record store and the external extractor.
type IdentityUseCase struct {
	repo       IdentityRepository
	cache      Cache
	extractor  extractor.Client
	engine     *match.Engine
	logger     *zap.Logger
	thresholds config.Thresholds
	cacheTTL   time.Duration
}

// NewIdentityUseCase constructs a new use case instance. cache may be
// nil, in which case extraction results are never cached.
func NewIdentityUseCase(repo IdentityRepository, cache Cache, client extractor.Client, logger *zap.Logger, thresholds config.Thresholds, cacheTTL time.Duration) *IdentityUseCase {
	return &IdentityUseCase{
		repo:       repo,
		cache:      cache,
		extractor:  client,
		engine:     match.NewEngine(logger),
		logger:     logger.Named("identity_usecase"),
		thresholds: thresholds,
		cacheTTL:   cacheTTL,
	}
}

// Enroll associates the single face in image with userID, scoped to
// tenantID when given. The enrollment is rejected entirely when the face
// collides with another enrolled identity; there are no partial writes.
func (uc *IdentityUseCase) Enroll(ctx context.Context, userID string, tenantID *string, image []byte) error {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.enroll", requestID).With(zap.String("user_id", userID))

	faces, err := uc.detect(ctx, requestID, image)
	if err != nil {
		return err
	}
	if len(faces) == 0 {
		return ErrNoFaceDetected
	}
	if len(faces) > 1 {
		return ErrAmbiguousInput
	}
	face := extractor.Largest(faces)

	// Duplicate scope: with a tenant the scan is limited to that tenant;
	// without one it covers the entire store, across all tenants.
	filter := repository.CandidateFilter{
		EmbeddingRequired: true,
		ExcludeUserID:     userID,
	}
	if tenantID != nil {
		filter.TenantScoped = true
		filter.TenantID = tenantID
	}
	candidates, err := uc.repo.FindCandidates(ctx, filter)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.enroll.find_candidates", requestID, err)
		opLogger.Error("candidate scan failed", zap.Error(wrapped))
		return wrapped
	}

	best, score := uc.engine.FindBestMatch(face.Embedding, candidates, nil)
	if best != nil && score > uc.thresholds.Duplicate {
		opLogger.Info("enrollment rejected as duplicate",
			zap.String("conflicting_user_id", best.UserID),
			zap.Float64("score", score))
		return &DuplicateFaceError{ConflictingUserID: best.UserID}
	}
	// The duplicate-check score is informational only.
	opLogger.Info("duplicate check passed", zap.Float64("best_score", score), zap.Int("candidates", len(candidates)))

	matchedExisting, err := uc.repo.UpsertByUserID(ctx, userID, tenantID, face.Embedding)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.enroll.upsert", requestID, err)
		opLogger.Error("failed to persist identity record", zap.Error(wrapped))
		return wrapped
	}

	opLogger.Info("face enrolled", zap.Bool("replaced_existing", matchedExisting))
	return nil
}

// Verify matches the dominant face in image against the records of the
// given tenant scope. A nil tenantID matches only records outside any
// tenant partition; verification never crosses scopes.
func (uc *IdentityUseCase) Verify(ctx context.Context, tenantID *string, image []byte) (VerifyResult, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.verify", requestID)

	faces, err := uc.detect(ctx, requestID, image)
	if err != nil {
		return VerifyResult{}, err
	}
	if len(faces) == 0 {
		return VerifyResult{}, ErrNoFaceDetected
	}
	// Multiple faces are acceptable here; the largest box is taken as the
	// subject.
	face := extractor.Largest(faces)

	candidates, err := uc.repo.FindCandidates(ctx, repository.CandidateFilter{
		EmbeddingRequired: true,
		TenantScoped:      true,
		TenantID:          tenantID,
	})
	if err != nil {
		wrapped := logging.NewOperationError("usecase.verify.find_candidates", requestID, err)
		opLogger.Error("candidate scan failed", zap.Error(wrapped))
		return VerifyResult{}, wrapped
	}

	best, score := uc.engine.FindBestMatch(face.Embedding, candidates, nil)

	result := VerifyResult{RequestID: requestID, Score: score}
	if best != nil && score >= uc.thresholds.Verify {
		result.Verified = true
		result.UserID = best.UserID
	}

	event := &repository.VerificationEvent{
		RequestID:     requestID,
		TenantID:      tenantID,
		MatchedUserID: result.UserID,
		Score:         score,
		Verified:      result.Verified,
		CreatedAt:     time.Now().UTC(),
	}
	// Audit is best effort; a failed write must not fail the lookup.
	if err := uc.repo.SaveEvent(ctx, event); err != nil {
		opLogger.Warn("failed to record verification event", zap.Error(err))
	}

	opLogger.Info("verification completed",
		zap.Bool("verified", result.Verified),
		zap.Float64("score", score),
		zap.Int("candidates", len(candidates)))
	return result, nil
}

// RegisteredUserIDs lists enrolled user IDs, restricted to one tenant
// when tenantID is non-nil.
func (uc *IdentityUseCase) RegisteredUserIDs(ctx context.Context, tenantID *string) ([]string, error) {
	userIDs, err := uc.repo.ListUserIDs(ctx, tenantID)
	if err != nil {
		return nil, logging.NewOperationError("usecase.list_user_ids", "", err)
	}
	return userIDs, nil
}

// detect runs feature extraction, consulting the cache first. Extraction
// is a pure function of the image bytes, so results are cached keyed by
// content hash; the candidate scan itself always reads storage fresh.
func (uc *IdentityUseCase) detect(ctx context.Context, requestID string, image []byte) ([]extractor.DetectedFace, error) {
	opLogger := logging.WithOperation(uc.logger, "usecase.detect", requestID)

	var cacheKey string
	if uc.cache != nil && uc.cacheTTL > 0 {
		hash := sha1.Sum(image)
		cacheKey = fmt.Sprintf("extraction:%s", hex.EncodeToString(hash[:]))
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var faces []extractor.DetectedFace
			if err := json.Unmarshal([]byte(cached), &faces); err != nil {
				opLogger.Warn("discarding undecodable cached extraction", zap.Error(err))
			} else {
				return faces, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			opLogger.Warn("extraction cache read failed", zap.Error(err))
		}
	}

	faces, err := uc.extractor.Detect(ctx, image)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.detect", requestID, err)
		opLogger.Error("feature extraction failed", zap.Error(wrapped))
		return nil, wrapped
	}

	if cacheKey != "" {
		if serialized, err := json.Marshal(faces); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(serialized), uc.cacheTTL); err != nil {
				opLogger.Warn("extraction cache write failed", zap.Error(err))
			}
		}
	}
	return faces, nil
}
