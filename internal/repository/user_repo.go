package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/db"
)

// UserRepository reads the profile read model.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Candidates lists potential partners for userID.
//
// Behavior:
//   - Only complete profiles (pre-filter supplied by the profile service).
//   - Excludes the requester.
//   - Excludes every user that has a match row with the requester in any
//     status and in either storage order. This is the only ranking rule.
//   - Ordered by id ascending, starting after afterID.
func (r *UserRepository) Candidates(ctx context.Context, userID, afterID uint64, limit int) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("profile_complete = ? AND id <> ? AND id > ?", true, userID, afterID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM matches m
				WHERE (m.user_a = ? AND m.user_b = users.id)
				   OR (m.user_b = ? AND m.user_a = users.id)
			)`, userID, userID).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, translate("list candidates", err)
	}
	return users, nil
}

// DisplayNames maps user ids to display names; unknown ids are absent.
func (r *UserRepository) DisplayNames(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	out := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []db.User
	if err := r.db.WithContext(ctx).Select("id", "display_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, translate("display names", err)
	}
	for _, u := range users {
		out[u.ID] = u.DisplayName
	}
	return out, nil
}

// Upsert writes a profile projection received from the profile service.
func (r *UserRepository) Upsert(ctx context.Context, u *db.User) error {
	return translate("upsert user", r.db.WithContext(ctx).Save(u).Error)
}
