package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/faceid/internal/config"
	"github.com/example/faceid/internal/embedding"
	"github.com/example/faceid/internal/extractor"
	"github.com/example/faceid/internal/logging"
	"github.com/example/faceid/internal/repository"
)

var testThresholds = config.Thresholds{Verify: 0.40, Duplicate: 0.50}

// stubRepository keeps records in memory and applies the same filter
// semantics as the storage adapter.
type stubRepository struct {
	records      []repository.IdentityRecord
	events       []*repository.VerificationEvent
	findErr      error
	upsertErr    error
	saveEventErr error
	aggregation  repository.MetricsAggregation
}

func (s *stubRepository) FindCandidates(ctx context.Context, filter repository.CandidateFilter) ([]repository.IdentityRecord, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []repository.IdentityRecord
	for _, r := range s.records {
		if filter.EmbeddingRequired && len(r.Embedding) == 0 {
			continue
		}
		if filter.ExcludeUserID != "" && r.UserID == filter.ExcludeUserID {
			continue
		}
		if filter.TenantScoped {
			if filter.TenantID == nil {
				if r.TenantID != nil {
					continue
				}
			} else if r.TenantID == nil || *r.TenantID != *filter.TenantID {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRepository) UpsertByUserID(ctx context.Context, userID string, tenantID *string, emb embedding.Vector) (bool, error) {
	if s.upsertErr != nil {
		return false, s.upsertErr
	}
	for i, r := range s.records {
		if r.UserID == userID {
			s.records[i].TenantID = tenantID
			s.records[i].Embedding = emb
			s.records[i].UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	s.records = append(s.records, repository.IdentityRecord{UserID: userID, TenantID: tenantID, Embedding: emb})
	return false, nil
}

func (s *stubRepository) ListUserIDs(ctx context.Context, tenantID *string) ([]string, error) {
	var out []string
	for _, r := range s.records {
		if tenantID != nil && (r.TenantID == nil || *r.TenantID != *tenantID) {
			continue
		}
		out = append(out, r.UserID)
	}
	return out, nil
}

func (s *stubRepository) SaveEvent(ctx context.Context, event *repository.VerificationEvent) error {
	if s.saveEventErr != nil {
		return s.saveEventErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *stubRepository) AggregateMetrics(ctx context.Context) (repository.MetricsAggregation, error) {
	return s.aggregation, nil
}

type stubExtractor struct {
	faces []extractor.DetectedFace
	err   error
	calls int
}

func (s *stubExtractor) Detect(ctx context.Context, image []byte) ([]extractor.DetectedFace, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.faces, nil
}

func face(x1, y1 float64, emb embedding.Vector) extractor.DetectedFace {
	return extractor.DetectedFace{
		BBox:      extractor.BoundingBox{X1: x1, Y1: y1},
		Embedding: emb,
	}
}

func strPtr(s string) *string { return &s }

func newTestUseCase(repo *stubRepository, client *stubExtractor) *IdentityUseCase {
	return NewIdentityUseCase(repo, nil, client, zap.NewNop(), testThresholds, 0)
}

func TestEnrollThenVerifySameFace(t *testing.T) {
	repo := &stubRepository{}
	emb := embedding.Vector{0.1, 0.9, 0.3}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(100, 100, emb)}}
	uc := newTestUseCase(repo, client)

	if err := uc.Enroll(context.Background(), "u1", nil, []byte("img")); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Verified {
		t.Fatalf("expected verified=true, got %+v", result)
	}
	if result.UserID != "u1" {
		t.Fatalf("expected u1, got %q", result.UserID)
	}
	if result.Score < testThresholds.Verify {
		t.Fatalf("expected score >= %f, got %f", testThresholds.Verify, result.Score)
	}
}

func TestEnrollNoFaceDetected(t *testing.T) {
	uc := newTestUseCase(&stubRepository{}, &stubExtractor{})

	err := uc.Enroll(context.Background(), "u1", nil, []byte("img"))
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected ErrNoFaceDetected, got %v", err)
	}
}

func TestEnrollRejectsMultipleFaces(t *testing.T) {
	client := &stubExtractor{faces: []extractor.DetectedFace{
		face(10, 10, embedding.Vector{1, 0}),
		face(20, 20, embedding.Vector{0, 1}),
	}}
	repo := &stubRepository{}
	uc := newTestUseCase(repo, client)

	err := uc.Enroll(context.Background(), "u1", nil, []byte("img"))
	if !errors.Is(err, ErrAmbiguousInput) {
		t.Fatalf("expected ErrAmbiguousInput, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("expected no write, got %d records", len(repo.records))
	}
}

func TestEnrollRejectsDuplicateAndLeavesStoreUnchanged(t *testing.T) {
	tenant := strPtr("A")
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "u1", TenantID: tenant, Embedding: embedding.Vector{1, 0, 0}},
	}}
	// Nearly identical to u1: similarity well above the duplicate
	// threshold.
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{0.99, 0.01, 0})}}
	uc := newTestUseCase(repo, client)

	err := uc.Enroll(context.Background(), "u2", tenant, []byte("img"))
	var dup *DuplicateFaceError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFaceError, got %v", err)
	}
	if dup.ConflictingUserID != "u1" {
		t.Fatalf("expected conflict with u1, got %q", dup.ConflictingUserID)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected store unchanged, got %d records", len(repo.records))
	}
}

func TestEnrollBelowDuplicateThresholdProceeds(t *testing.T) {
	tenant := strPtr("A")
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "u1", TenantID: tenant, Embedding: embedding.Vector{1, 0, 0}},
	}}
	// Orthogonal to u1: similarity 0, below the duplicate threshold.
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{0, 1, 0})}}
	uc := newTestUseCase(repo, client)

	if err := uc.Enroll(context.Background(), "u2", tenant, []byte("img")); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if len(repo.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(repo.records))
	}
}

func TestReEnrollSameUserNeverSelfRejects(t *testing.T) {
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "u1", Embedding: embedding.Vector{1, 0, 0}},
	}}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{1, 0, 0})}}
	uc := newTestUseCase(repo, client)

	if err := uc.Enroll(context.Background(), "u1", nil, []byte("img")); err != nil {
		t.Fatalf("re-enroll failed: %v", err)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected upsert in place, got %d records", len(repo.records))
	}
}

func TestReEnrollOverwritesEmbedding(t *testing.T) {
	repo := &stubRepository{}
	oldEmb := embedding.Vector{1, 0, 0}
	newEmb := embedding.Vector{0, 1, 0}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, oldEmb)}}
	uc := newTestUseCase(repo, client)

	if err := uc.Enroll(context.Background(), "u1", nil, []byte("img-old")); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	client.faces = []extractor.DetectedFace{face(50, 50, newEmb)}
	if err := uc.Enroll(context.Background(), "u1", nil, []byte("img-new")); err != nil {
		t.Fatalf("re-enroll failed: %v", err)
	}

	result, err := uc.Verify(context.Background(), nil, []byte("img-new"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Verified || result.UserID != "u1" {
		t.Fatalf("expected match against new embedding, got %+v", result)
	}

	// The old face no longer matches.
	client.faces = []extractor.DetectedFace{face(50, 50, oldEmb)}
	result, err = uc.Verify(context.Background(), nil, []byte("img-old"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Verified {
		t.Fatalf("expected old embedding to be gone, got %+v", result)
	}
}

func TestEnrollWithoutTenantScansEntireStore(t *testing.T) {
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "u1", TenantID: strPtr("A"), Embedding: embedding.Vector{1, 0, 0}},
	}}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{1, 0, 0})}}
	uc := newTestUseCase(repo, client)

	// No tenant given: the duplicate check still sees tenant A's record.
	err := uc.Enroll(context.Background(), "u2", nil, []byte("img"))
	var dup *DuplicateFaceError
	if !errors.As(err, &dup) {
		t.Fatalf("expected cross-tenant duplicate rejection, got %v", err)
	}
}

func TestVerifyTenantIsolation(t *testing.T) {
	emb := embedding.Vector{1, 0, 0}
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "u1", TenantID: strPtr("A"), Embedding: emb},
	}}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, emb)}}
	uc := newTestUseCase(repo, client)

	result, err := uc.Verify(context.Background(), strPtr("B"), []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Verified {
		t.Fatalf("expected no cross-tenant match, got %+v", result)
	}
	if result.Score != -1.0 {
		t.Fatalf("expected empty-scope score -1.0, got %f", result.Score)
	}
}

func TestVerifyNilTenantIsItsOwnScope(t *testing.T) {
	emb := embedding.Vector{1, 0, 0}
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "scoped", TenantID: strPtr("A"), Embedding: emb},
		{UserID: "global", TenantID: nil, Embedding: emb},
	}}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, emb)}}
	uc := newTestUseCase(repo, client)

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Verified || result.UserID != "global" {
		t.Fatalf("expected match against untenanted record only, got %+v", result)
	}
}

func TestVerifyEmptyStore(t *testing.T) {
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{1, 0})}}
	uc := newTestUseCase(&stubRepository{}, client)

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Verified {
		t.Fatalf("expected verified=false, got %+v", result)
	}
	if result.Score != -1.0 {
		t.Fatalf("expected score -1.0, got %f", result.Score)
	}
}

func TestVerifyNoFaceDetected(t *testing.T) {
	uc := newTestUseCase(&stubRepository{}, &stubExtractor{})

	_, err := uc.Verify(context.Background(), nil, []byte("img"))
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected ErrNoFaceDetected, got %v", err)
	}
}

func TestVerifyUsesLargestFace(t *testing.T) {
	big := embedding.Vector{1, 0, 0}
	small := embedding.Vector{0, 1, 0}
	repo := &stubRepository{records: []repository.IdentityRecord{
		{UserID: "big-face", Embedding: big},
		{UserID: "small-face", Embedding: small},
	}}
	client := &stubExtractor{faces: []extractor.DetectedFace{
		face(10, 10, small),
		face(200, 200, big),
	}}
	uc := newTestUseCase(repo, client)

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Verified || result.UserID != "big-face" {
		t.Fatalf("expected largest face to drive the match, got %+v", result)
	}
}

func TestVerifyRecordsAuditEvent(t *testing.T) {
	emb := embedding.Vector{1, 0}
	repo := &stubRepository{records: []repository.IdentityRecord{{UserID: "u1", Embedding: emb}}}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, emb)}}
	uc := newTestUseCase(repo, client)

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(repo.events))
	}
	event := repo.events[0]
	if event.RequestID != result.RequestID || !event.Verified || event.MatchedUserID != "u1" {
		t.Fatalf("unexpected audit event: %+v", event)
	}
}

func TestVerifySucceedsWhenAuditWriteFails(t *testing.T) {
	emb := embedding.Vector{1, 0}
	repo := &stubRepository{
		records:      []repository.IdentityRecord{{UserID: "u1", Embedding: emb}},
		saveEventErr: errors.New("audit down"),
	}
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, emb)}}
	uc := newTestUseCase(repo, client)

	result, err := uc.Verify(context.Background(), nil, []byte("img"))
	if err != nil {
		t.Fatalf("expected success despite audit failure, got %v", err)
	}
	if !result.Verified {
		t.Fatalf("expected verified=true, got %+v", result)
	}
}

func TestEnrollWrapsExtractorFailure(t *testing.T) {
	client := &stubExtractor{err: errors.New("model crashed")}
	uc := newTestUseCase(&stubRepository{}, client)

	err := uc.Enroll(context.Background(), "u1", nil, []byte("img"))
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "usecase.detect" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
}

func TestEnrollWrapsStorageFailure(t *testing.T) {
	client := &stubExtractor{faces: []extractor.DetectedFace{face(50, 50, embedding.Vector{1, 0})}}
	repo := &stubRepository{findErr: errors.New("storage unavailable")}
	uc := newTestUseCase(repo, client)

	err := uc.Enroll(context.Background(), "u1", nil, []byte("img"))
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
}

func TestGetMetricsSummary(t *testing.T) {
	repo := &stubRepository{aggregation: repository.MetricsAggregation{
		TotalCount:    4,
		VerifiedCount: 3,
		AverageScore:  0.61,
	}}
	uc := newTestUseCase(repo, &stubExtractor{})

	summary, err := uc.GetMetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if summary.TotalRequests != 4 || summary.VerifiedRequests != 3 {
		t.Fatalf("unexpected counters: %+v", summary)
	}
	if summary.VerifiedRate != 0.75 {
		t.Fatalf("expected rate 0.75, got %f", summary.VerifiedRate)
	}
}
