package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/utils/pagination"
)

// MatchRepository provides data access methods for the Match model.
// Every lookup goes through the canonical (pair_low, pair_high) columns, so
// the storage order of user_a/user_b never affects which row is found.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// FindBetween returns the single row of the unordered pair {u, v}, or nil
// when the pair has no relationship yet.
//
// Example:
//
//	repo.FindBetween(ctx, 2, 1) // same row as FindBetween(ctx, 1, 2)
func (r *MatchRepository) FindBetween(ctx context.Context, u, v uint64) (*db.Match, error) {
	lo, hi := db.CanonicalPair(u, v)

	var m db.Match
	err := r.db.WithContext(ctx).
		Where("pair_low = ? AND pair_high = ?", lo, hi).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find match", err)
	}
	return &m, nil
}

// GetByID loads a match; a missing row yields ErrNotFound.
func (r *MatchRepository) GetByID(ctx context.Context, id uint64) (*db.Match, error) {
	var m db.Match
	if err := r.db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, translate("get match", err)
	}
	return &m, nil
}

// CreatePending inserts liker → likee as pending. Storage order is
// user_a=liker, user_b=likee; only status and the pair carry meaning.
//
// If another request created a row for the pair first, the unique pair index
// rejects this insert and ErrConflict is returned; callers re-read.
func (r *MatchRepository) CreatePending(ctx context.Context, liker, likee uint64) (*db.Match, error) {
	return r.create(ctx, liker, likee, db.MatchPending)
}

// CreateRejected inserts a rejected row so the pair is never surfaced again.
func (r *MatchRepository) CreateRejected(ctx context.Context, disliker, dislikee uint64) (*db.Match, error) {
	return r.create(ctx, disliker, dislikee, db.MatchRejected)
}

func (r *MatchRepository) create(ctx context.Context, a, b uint64, status db.MatchStatus) (*db.Match, error) {
	lo, hi := db.CanonicalPair(a, b)
	m := db.Match{
		UserA:         a,
		UserB:         b,
		PairLow:       lo,
		PairHigh:      hi,
		Status:        status,
		ContactStatus: db.ContactNotContacted,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate("create match", err)
	}
	return &m, nil
}

// PromoteToAccepted flips a pending row to accepted when liker is the party
// who had not liked yet (user_b). The update is conditional, so exactly one
// concurrent caller sees promoted=true; everyone else gets false and should
// re-read the row.
func (r *MatchRepository) PromoteToAccepted(ctx context.Context, id, liker uint64, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND status = ? AND user_b = ?", id, db.MatchPending, liker).
		Updates(map[string]any{
			"status":      db.MatchAccepted,
			"accepted_at": at,
		})
	if res.Error != nil {
		return false, translate("promote match", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkRejected turns a pending row into rejected when disliker is the party
// who was liked (user_b). Returns false if the row was no longer in that state.
func (r *MatchRepository) MarkRejected(ctx context.Context, id, disliker uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND status = ? AND user_b = ?", id, db.MatchPending, disliker).
		Update("status", db.MatchRejected)
	if res.Error != nil {
		return false, translate("reject match", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// UpdateContactStatus sets the contact progress of an accepted match. The
// interview timestamp is stamped only when scheduledAt is non-nil.
func (r *MatchRepository) UpdateContactStatus(
	ctx context.Context,
	id uint64,
	status db.ContactStatus,
	at time.Time,
	scheduledAt *time.Time,
) (bool, error) {
	updates := map[string]any{
		"contact_status":     status,
		"contact_updated_at": at,
	}
	if scheduledAt != nil {
		updates["interview_scheduled_at"] = *scheduledAt
	}
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND status = ?", id, db.MatchAccepted).
		Updates(updates)
	if res.Error != nil {
		return false, translate("update contact status", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ListAccepted returns the accepted matches of a user, newest first.
//
// Behavior:
//   - Both storage orders are matched (user_a or user_b).
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListAccepted(ctx, 42, nil, 20)
func (r *MatchRepository) ListAccepted(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Match, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("status = ? AND (user_a = ? OR user_b = ?)", db.MatchAccepted, userID, userID).
		Order("id DESC").
		Limit(limit + 1)
	if cursor.LastID > 0 {
		query = query.Where("id < ?", cursor.LastID)
	}

	var matches []db.Match
	if err := query.Find(&matches).Error; err != nil {
		return nil, nil, translate("list matches", err)
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(matches) > limit {
		token, _ := pagination.Encode(pagination.Cursor{LastID: matches[limit-1].ID})
		nextToken = &token
		matches = matches[:limit]
	}
	return matches, nextToken, nil
}

// CountAccepted returns how many accepted matches involve the user.
func (r *MatchRepository) CountAccepted(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("status = ? AND (user_a = ? OR user_b = ?)", db.MatchAccepted, userID, userID).
		Count(&count).Error
	if err != nil {
		return 0, translate("count matches", err)
	}
	return count, nil
}

// OldestWithoutFeedback returns the oldest accepted match of userID that has
// no feedback row from userID, or nil.
func (r *MatchRepository) OldestWithoutFeedback(ctx context.Context, userID uint64) (*db.Match, error) {
	var m db.Match
	err := r.db.WithContext(ctx).
		Where("status = ? AND (user_a = ? OR user_b = ?)", db.MatchAccepted, userID, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM feedbacks f
				WHERE f.match_id = matches.id
				  AND f.user_id = ?
			)`, userID).
		Order("created_at ASC, id ASC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("pending feedback", err)
	}
	return &m, nil
}

// StaleFilter selects accepted matches that are candidates for reminders.
type StaleFilter struct {
	// UserID limits results to one participant; zero means every user.
	UserID         uint64
	AcceptedBefore time.Time
	Statuses       []db.ContactStatus
	// WithoutFeedback drops matches where both participants already reported.
	WithoutFeedback bool
}

// ListStale returns accepted matches accepted before f.AcceptedBefore whose
// contact status is in f.Statuses, oldest first.
func (r *MatchRepository) ListStale(ctx context.Context, f StaleFilter) ([]db.Match, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND accepted_at IS NOT NULL AND accepted_at <= ?", db.MatchAccepted, f.AcceptedBefore)
	if f.UserID != 0 {
		query = query.Where("user_a = ? OR user_b = ?", f.UserID, f.UserID)
	}
	if len(f.Statuses) > 0 {
		query = query.Where("contact_status IN ?", f.Statuses)
	}
	if f.WithoutFeedback {
		query = query.Where(`
			(SELECT COUNT(*) FROM feedbacks f WHERE f.match_id = matches.id) < 2`)
	}

	var matches []db.Match
	if err := query.Order("accepted_at ASC, id ASC").Find(&matches).Error; err != nil {
		return nil, translate("list stale matches", err)
	}
	return matches, nil
}
