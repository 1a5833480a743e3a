package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/db"
)

// FeedbackRepository stores append-only feedback rows.
type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: database}
}

// Create inserts fb. A second row for the same (match_id, user_id) violates
// ux_feedback_match_user and is reported as ErrConflict; nothing is overwritten.
func (r *FeedbackRepository) Create(ctx context.Context, fb *db.Feedback) error {
	return translate("create feedback", r.db.WithContext(ctx).Create(fb).Error)
}

// Find returns the feedback of userID for matchID, or nil.
func (r *FeedbackRepository) Find(ctx context.Context, matchID, userID uint64) (*db.Feedback, error) {
	var fb db.Feedback
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ?", matchID, userID).
		Take(&fb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find feedback", err)
	}
	return &fb, nil
}

// ListByUser returns every feedback row of a user, oldest first, including
// standalone system-event rows.
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID uint64) ([]db.Feedback, error) {
	var rows []db.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("list feedback", err)
	}
	return rows, nil
}
