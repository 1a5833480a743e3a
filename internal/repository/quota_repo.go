package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/interview-match/internal/db"
)

// QuotaRepository provides access to daily_quotas (ledger rows) and
// daily_views (per-candidate consumption records).
type QuotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{db: database}
}

// Transaction runs fn with a repository bound to a single transaction.
// Within fn, only use the repository passed in.
func (r *QuotaRepository) Transaction(ctx context.Context, fn func(tx *QuotaRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&QuotaRepository{db: tx})
	})
}

// FindDay returns the ledger row of (userID, dayKey), or nil.
func (r *QuotaRepository) FindDay(ctx context.Context, userID uint64, dayKey string) (*db.DailyQuota, error) {
	var row db.DailyQuota
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find ledger row", err)
	}
	return &row, nil
}

// LatestBefore returns the most recent ledger row of userID strictly before
// dayKey (any gap allowed), or nil. Day keys sort lexically.
func (r *QuotaRepository) LatestBefore(ctx context.Context, userID uint64, dayKey string) (*db.DailyQuota, error) {
	var row db.DailyQuota
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_key < ?", userID, dayKey).
		Order("day_key DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find previous ledger row", err)
	}
	return &row, nil
}

// InsertIfAbsent creates row unless (user_id, day_key) already exists.
// Returns true if this call inserted it. Losing the race is not an error.
func (r *QuotaRepository) InsertIfAbsent(ctx context.Context, row *db.DailyQuota) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return false, translate("create ledger row", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// LockDay loads the ledger row with a row lock (SELECT ... FOR UPDATE) so the
// caller's read-modify-write is serialized per user/day. Must run in Transaction.
func (r *QuotaRepository) LockDay(ctx context.Context, userID uint64, dayKey string) (*db.DailyQuota, error) {
	var row db.DailyQuota
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Take(&row).Error
	if err != nil {
		return nil, translate("lock ledger row", err)
	}
	return &row, nil
}

// SaveCounters persists the counters of a locked row.
func (r *QuotaRepository) SaveCounters(ctx context.Context, row *db.DailyQuota) error {
	err := r.db.WithContext(ctx).
		Model(row).
		Select("posts_today", "comments_today", "bonus_quota", "bonus_balance", "bonus_spent", "updated_at").
		Updates(row).Error
	return translate("save ledger row", err)
}

// CountViews returns how many candidates userID consumed on dayKey.
func (r *QuotaRepository) CountViews(ctx context.Context, userID uint64, dayKey string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db.DailyView{}).
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Count(&n).Error
	if err != nil {
		return 0, translate("count views", err)
	}
	return n, nil
}

// HasViewed reports whether candidateID was already consumed on dayKey.
func (r *QuotaRepository) HasViewed(ctx context.Context, userID uint64, dayKey string, candidateID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db.DailyView{}).
		Where("user_id = ? AND day_key = ? AND candidate_id = ?", userID, dayKey, candidateID).
		Count(&n).Error
	if err != nil {
		return false, translate("find view", err)
	}
	return n > 0, nil
}

// InsertView records a consumed candidate. The unique
// (user_id, day_key, candidate_id) index makes re-showing idempotent:
// inserted=false means the candidate was already charged today.
func (r *QuotaRepository) InsertView(ctx context.Context, v *db.DailyView) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}, {Name: "candidate_id"}},
			DoNothing: true,
		}).
		Create(v)
	if res.Error != nil {
		return false, translate("create view", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ViewedCandidates lists candidate ids consumed on dayKey in consumption order.
func (r *QuotaRepository) ViewedCandidates(ctx context.Context, userID uint64, dayKey string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.DailyView{}).
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Order("id ASC").
		Pluck("candidate_id", &ids).Error
	if err != nil {
		return nil, translate("list views", err)
	}
	return ids, nil
}
