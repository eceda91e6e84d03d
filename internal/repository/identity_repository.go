package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/faceid/internal/embedding"
)

// IdentityRecord is one enrolled identity. UserID is unique across the
// whole store even though matching is tenant-scoped; TenantID is nil for
// records outside any tenant partition.
type IdentityRecord struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    string           `gorm:"column:user_id;uniqueIndex;size:64"`
	TenantID  *string          `gorm:"column:tenant_id;index;size:64"`
	Embedding embedding.Vector `gorm:"column:embedding;type:jsonb"`
	CreatedAt time.Time        `gorm:"column:created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (IdentityRecord) TableName() string {
	return "identity_records"
}

// VerificationEvent records the outcome of one verification request.
type VerificationEvent struct {
	ID            uint      `gorm:"primaryKey"`
	RequestID     string    `gorm:"column:request_id;uniqueIndex;size:64"`
	TenantID      *string   `gorm:"column:tenant_id;index;size:64"`
	MatchedUserID string    `gorm:"column:matched_user_id;size:64"`
	Score         float64   `gorm:"column:score"`
	Verified      bool      `gorm:"column:verified"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (VerificationEvent) TableName() string {
	return "verification_events"
}

// CandidateFilter selects identity records for a match scan.
//
// TenantScoped=false applies no tenant constraint at all (the whole
// store); TenantScoped=true with a nil TenantID selects only records
// outside any tenant partition.
type CandidateFilter struct {
	EmbeddingRequired bool
	ExcludeUserID     string
	TenantScoped      bool
	TenantID          *string
}

// MetricsAggregation carries raw verification counters from storage.
type MetricsAggregation struct {
	TotalCount    int64
	VerifiedCount int64
	AverageScore  float64
}

// IdentityRepository provides persistence APIs for enrolled identities
// and verification events.
type IdentityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewIdentityRepository creates a new repository instance.
func NewIdentityRepository(db *gorm.DB, logger *zap.Logger) *IdentityRepository {
	return &IdentityRepository{db: db, logger: logger.Named("identity_repository")}
}

// AutoMigrate ensures the schema is available.
func (r *IdentityRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&IdentityRecord{}, &VerificationEvent{})
}

// FindCandidates returns the records matching the filter. Records are
// read fresh per call; no similarity structure is maintained.
func (r *IdentityRepository) FindCandidates(ctx context.Context, filter CandidateFilter) ([]IdentityRecord, error) {
	query := r.db.WithContext(ctx).Model(&IdentityRecord{})
	if filter.EmbeddingRequired {
		query = query.Where("embedding IS NOT NULL")
	}
	if filter.ExcludeUserID != "" {
		query = query.Where("user_id <> ?", filter.ExcludeUserID)
	}
	if filter.TenantScoped {
		if filter.TenantID == nil {
			query = query.Where("tenant_id IS NULL")
		} else {
			query = query.Where("tenant_id = ?", *filter.TenantID)
		}
	}

	var records []IdentityRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	r.logger.Debug("candidate scan", zap.Int("records", len(records)))
	return records, nil
}

// UpsertByUserID writes the record for userID, replacing embedding,
// tenant, and timestamp when it already exists. The ON CONFLICT clause
// makes concurrent writes for the same userID last-write-wins without
// any locking in the caller. Returns whether an existing record was
// replaced.
func (r *IdentityRepository) UpsertByUserID(ctx context.Context, userID string, tenantID *string, emb embedding.Vector) (bool, error) {
	var existing int64
	if err := r.db.WithContext(ctx).Model(&IdentityRecord{}).Where("user_id = ?", userID).Count(&existing).Error; err != nil {
		return false, err
	}

	record := IdentityRecord{
		UserID:    userID,
		TenantID:  tenantID,
		Embedding: emb,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(upsertClause()).Create(&record).Error
	if err != nil {
		return false, err
	}
	return existing > 0, nil
}

func upsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tenant_id", "embedding", "updated_at"}),
	}
}

// ListUserIDs returns the user IDs of all enrolled identities,
// restricted to one tenant scope when tenantID is non-nil.
func (r *IdentityRepository) ListUserIDs(ctx context.Context, tenantID *string) ([]string, error) {
	query := r.db.WithContext(ctx).Model(&IdentityRecord{}).Where("embedding IS NOT NULL")
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}

	var userIDs []string
	if err := query.Order("user_id").Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// SaveEvent persists one verification outcome.
func (r *IdentityRepository) SaveEvent(ctx context.Context, event *VerificationEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// AggregateMetrics summarizes persisted verification events.
func (r *IdentityRepository) AggregateMetrics(ctx context.Context) (MetricsAggregation, error) {
	var agg MetricsAggregation
	row := r.db.WithContext(ctx).Model(&VerificationEvent{}).
		Select("COUNT(*) AS total_count, COALESCE(SUM(CASE WHEN verified THEN 1 ELSE 0 END), 0) AS verified_count, COALESCE(AVG(score), 0) AS average_score").
		Row()
	if err := row.Scan(&agg.TotalCount, &agg.VerifiedCount, &agg.AverageScore); err != nil {
		return MetricsAggregation{}, err
	}
	return agg, nil
}
