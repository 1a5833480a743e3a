package db

import (
	"time"
)

// MatchStatus is the lifecycle state of a pair.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// ContactStatus tracks real-world progress of an accepted pair.
type ContactStatus string

const (
	ContactNotContacted ContactStatus = "not_contacted"
	ContactContacted    ContactStatus = "contacted"
	ContactScheduled    ContactStatus = "scheduled"
	ContactCompleted    ContactStatus = "completed"
	ContactNoResponse   ContactStatus = "no_response"
)

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNotContacted, ContactContacted, ContactScheduled, ContactCompleted, ContactNoResponse:
		return true
	}
	return false
}

// User is the local read model of a profile owned by the profile service.
// The core only reads it: id for identity, DisplayName for reminders and
// ProfileComplete as the candidate pre-filter.
type User struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	DisplayName     string    `gorm:"size:64;not null"`
	ProfileComplete bool      `gorm:"not null;index"`
	JobType         string    `gorm:"size:64"`
	ExperienceLevel string    `gorm:"size:32"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// Match is the single relationship row of an unordered user pair.
//
// UserA/UserB keep the storage order (UserA is whoever acted first), while
// PairLow/PairHigh hold min/max of the two ids under one unique index. The
// unique index is what guarantees one row per unordered pair; lookups always
// go through the canonical columns.
//
// Indexes:
//   - ux_matches_pair(pair_low, pair_high) unique
//   - idx_matches_user_a_status, idx_matches_user_b_status for per-user listings
type Match struct {
	ID                   uint64        `gorm:"primaryKey;autoIncrement"`
	UserA                uint64        `gorm:"not null;index:idx_matches_user_a_status,priority:1"`
	UserB                uint64        `gorm:"not null;index:idx_matches_user_b_status,priority:1"`
	PairLow              uint64        `gorm:"not null;uniqueIndex:ux_matches_pair,priority:1"`
	PairHigh             uint64        `gorm:"not null;uniqueIndex:ux_matches_pair,priority:2"`
	Status               MatchStatus   `gorm:"size:16;not null;index:idx_matches_user_a_status,priority:2;index:idx_matches_user_b_status,priority:2"`
	ContactStatus        ContactStatus `gorm:"size:16;not null"`
	CreatedAt            time.Time     `gorm:"autoCreateTime"`
	UpdatedAt            time.Time     `gorm:"autoUpdateTime"`
	AcceptedAt           *time.Time
	ContactUpdatedAt     *time.Time
	InterviewScheduledAt *time.Time
}

// Involves reports whether userID is one of the pair.
func (m *Match) Involves(userID uint64) bool {
	return m.UserA == userID || m.UserB == userID
}

// Partner returns the other participant. It returns 0 if userID is not in the pair.
func (m *Match) Partner(userID uint64) uint64 {
	switch userID {
	case m.UserA:
		return m.UserB
	case m.UserB:
		return m.UserA
	}
	return 0
}

// CanonicalPair orders two ids as (low, high).
func CanonicalPair(u, v uint64) (uint64, uint64) {
	if u < v {
		return u, v
	}
	return v, u
}

// Feedback is an append-only report about a match, or a standalone system
// event when MatchID is nil. NULL match ids never collide in the unique index.
type Feedback struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	MatchID         *uint64   `gorm:"uniqueIndex:ux_feedback_match_user,priority:1"`
	UserID          uint64    `gorm:"not null;uniqueIndex:ux_feedback_match_user,priority:2;index"`
	InterviewStatus string    `gorm:"size:64;not null"`
	Content         *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// DailyQuota is the per-user, per-day ledger row.
//
// BonusBalance is the spendable bonus available today (inherited + earned);
// BonusSpent counts views charged against it today. The balance carried into
// the next day is BonusBalance - BonusSpent.
type DailyQuota struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;uniqueIndex:ux_daily_quota_user_day,priority:1"`
	DayKey        string    `gorm:"size:10;not null;uniqueIndex:ux_daily_quota_user_day,priority:2"`
	PostsToday    int       `gorm:"not null;default:0"`
	CommentsToday int       `gorm:"not null;default:0"`
	BonusQuota    int       `gorm:"not null;default:0"`
	BonusBalance  int       `gorm:"not null;default:0"`
	BonusSpent    int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the plural name; the default inflection leaves "quota" as is.
func (DailyQuota) TableName() string { return "daily_quotas" }

// EndingBalance is the bonus carried forward into the next day.
func (q *DailyQuota) EndingBalance() int {
	if b := q.BonusBalance - q.BonusSpent; b > 0 {
		return b
	}
	return 0
}

// DailyView records that a candidate was shown to a user on a day.
type DailyView struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;uniqueIndex:ux_daily_view_user_day_candidate,priority:1"`
	DayKey      string    `gorm:"size:10;not null;uniqueIndex:ux_daily_view_user_day_candidate,priority:2"`
	CandidateID uint64    `gorm:"not null;uniqueIndex:ux_daily_view_user_day_candidate,priority:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&User{}, &Match{}, &Feedback{}, &DailyQuota{}, &DailyView{}}
}
