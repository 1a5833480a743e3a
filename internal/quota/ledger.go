// Package quota implements the daily quota ledger and the view consumption
// gate that sits in front of candidate listing.
package quota

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/repository"
)

const (
	// DefaultBaseLimit is the number of new candidates a user may view per day
	// before bonus quota is needed.
	DefaultBaseLimit = 4

	PostReward        = 2 // granted once, on the first post of the day
	CommentReward     = 1 // granted on every CommentsPerReward-th comment
	CommentsPerReward = 3
)

// TaskKind is an engagement task that can earn bonus quota.
type TaskKind string

const (
	TaskPost    TaskKind = "post"
	TaskComment TaskKind = "comment"
)

func (k TaskKind) Valid() bool { return k == TaskPost || k == TaskComment }

// Availability is the quota picture of one user on one day.
type Availability struct {
	DayKey    string
	Base      int
	Bonus     int
	Total     int
	Used      int
	Remaining int
}

// Progress is the result of recording a task.
type Progress struct {
	Row    db.DailyQuota
	Reward int
}

// Ledger owns the per-user, per-day ledger rows.
type Ledger struct {
	repo    *repository.QuotaRepository
	days    *clock.DayKeyer
	cache   *cache.RedisCache
	emitter *events.Emitter
	log     *slog.Logger
	base    int
}

type Option func(*Ledger)

// WithCache enables the Redis availability cache.
func WithCache(c *cache.RedisCache) Option { return func(l *Ledger) { l.cache = c } }

// WithEmitter publishes TaskRewardGranted events.
func WithEmitter(e *events.Emitter) Option { return func(l *Ledger) { l.emitter = e } }

// WithBaseLimit overrides DefaultBaseLimit.
func WithBaseLimit(n int) Option { return func(l *Ledger) { l.base = n } }

func WithLogger(log *slog.Logger) Option { return func(l *Ledger) { l.log = log } }

func NewLedger(repo *repository.QuotaRepository, days *clock.DayKeyer, opts ...Option) *Ledger {
	l := &Ledger{
		repo: repo,
		days: days,
		log:  slog.Default(),
		base: DefaultBaseLimit,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// BaseLimit returns the configured base allowance.
func (l *Ledger) BaseLimit() int { return l.base }

// GetOrCreateToday returns today's ledger row, creating it on first access
// with the previous row's ending bonus balance.
func (l *Ledger) GetOrCreateToday(ctx context.Context, userID uint64) (*db.DailyQuota, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user_id is required")
	}
	return l.getOrCreate(ctx, userID, l.days.Today())
}

// getOrCreate is race-safe: concurrent creators all compute the same seed,
// the unique (user_id, day_key) index keeps exactly one insert, and everyone
// re-reads the persisted row. The inherited balance is never added twice.
func (l *Ledger) getOrCreate(ctx context.Context, userID uint64, dayKey string) (*db.DailyQuota, error) {
	row, err := l.repo.FindDay(ctx, userID, dayKey)
	if err != nil || row != nil {
		return row, err
	}

	inherited := 0
	prev, err := l.repo.LatestBefore(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		inherited = prev.EndingBalance()
	}

	created, err := l.repo.InsertIfAbsent(ctx, &db.DailyQuota{
		UserID:       userID,
		DayKey:       dayKey,
		BonusBalance: inherited,
	})
	if err != nil {
		return nil, err
	}
	if created {
		l.log.DebugContext(ctx, "ledger row created", "user_id", userID, "day", dayKey, "inherited", inherited)
	}

	row, err = l.repo.FindDay(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("ledger row %d/%s vanished: %w", userID, dayKey, apperr.ErrRaceLost)
	}
	return row, nil
}

// RecordTaskProgress increments the post or comment counter of today's row
// and grants bonus quota when a threshold is crossed (first post: +2, every
// third comment: +1). Thresholds are edge-triggered on the new count.
func (l *Ledger) RecordTaskProgress(ctx context.Context, userID uint64, kind TaskKind) (Progress, error) {
	if userID == 0 {
		return Progress{}, apperr.Invalid("user_id is required")
	}
	if !kind.Valid() {
		return Progress{}, apperr.Invalid("unknown task kind %q", kind)
	}

	day := l.days.Today()
	if _, err := l.getOrCreate(ctx, userID, day); err != nil {
		return Progress{}, err
	}

	var out Progress
	err := l.repo.Transaction(ctx, func(tx *repository.QuotaRepository) error {
		row, err := tx.LockDay(ctx, userID, day)
		if err != nil {
			return err
		}

		reward := 0
		switch kind {
		case TaskPost:
			row.PostsToday++
			if row.PostsToday == 1 {
				reward = PostReward
			}
		case TaskComment:
			row.CommentsToday++
			if row.CommentsToday%CommentsPerReward == 0 {
				reward = CommentReward
			}
		}
		row.BonusQuota += reward
		row.BonusBalance += reward

		if err := tx.SaveCounters(ctx, row); err != nil {
			return err
		}
		out = Progress{Row: *row, Reward: reward}
		return nil
	})
	if err != nil {
		return Progress{}, err
	}

	l.invalidate(ctx, userID, day)
	if out.Reward > 0 {
		l.log.InfoContext(ctx, "task reward granted", "user_id", userID, "kind", kind, "amount", out.Reward)
		_ = l.emitter.Emit(ctx, events.TypeTaskRewardGranted, events.TaskRewardGranted{
			UserID: userID,
			Amount: out.Reward,
			Kind:   string(kind),
			DayKey: day,
		})
	}
	return out, nil
}

// AvailableToday reports base, bonus, total, used and remaining views for today.
func (l *Ledger) AvailableToday(ctx context.Context, userID uint64) (Availability, error) {
	if userID == 0 {
		return Availability{}, apperr.Invalid("user_id is required")
	}
	return l.AvailableOn(ctx, userID, l.days.Today())
}

// AvailableOn is AvailableToday for an explicit day key. Only today's row is
// ever created here; past days are read without writing, falling back to the
// balance the latest earlier row would have carried. Future days are rejected
// because their carryover is not known yet.
func (l *Ledger) AvailableOn(ctx context.Context, userID uint64, dayKey string) (Availability, error) {
	if userID == 0 {
		return Availability{}, apperr.Invalid("user_id is required")
	}
	if _, err := l.days.StartOfDay(dayKey); err != nil {
		return Availability{}, apperr.Invalid("day must be YYYY-MM-DD, got %q", dayKey)
	}
	today := l.days.Today()
	if dayKey > today {
		return Availability{}, apperr.Invalid("day %s is after today (%s)", dayKey, today)
	}

	var version int64
	cacheable := false
	if l.cache != nil {
		if snap, ok, err := l.cache.GetQuota(ctx, userID, dayKey); err == nil && ok {
			return fromSnapshot(dayKey, snap), nil
		}
		v, err := l.cache.QuotaVersion(ctx, userID, dayKey)
		if err == nil {
			version, cacheable = v, true
		}
	}

	var row *db.DailyQuota
	var err error
	if dayKey == today {
		row, err = l.getOrCreate(ctx, userID, dayKey)
	} else {
		row, err = l.peek(ctx, userID, dayKey)
	}
	if err != nil {
		return Availability{}, err
	}
	used, err := l.repo.CountViews(ctx, userID, dayKey)
	if err != nil {
		return Availability{}, err
	}

	avail := l.availability(dayKey, row, int(used))
	if cacheable {
		if _, err := l.cache.SetQuota(ctx, userID, dayKey, version, toSnapshot(avail)); err != nil {
			l.log.WarnContext(ctx, "quota cache write failed", "user_id", userID, "err", err)
		}
	}
	return avail, nil
}

// peek returns the stored row of dayKey, or an unsaved row seeded with the
// carryover it would have been created with.
func (l *Ledger) peek(ctx context.Context, userID uint64, dayKey string) (*db.DailyQuota, error) {
	row, err := l.repo.FindDay(ctx, userID, dayKey)
	if err != nil || row != nil {
		return row, err
	}
	prev, err := l.repo.LatestBefore(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	row = &db.DailyQuota{UserID: userID, DayKey: dayKey}
	if prev != nil {
		row.BonusBalance = prev.EndingBalance()
	}
	return row, nil
}

func (l *Ledger) availability(dayKey string, row *db.DailyQuota, used int) Availability {
	total := l.base + row.BonusBalance
	remaining := total - used
	if remaining < 0 {
		remaining = 0
	}
	return Availability{
		DayKey:    dayKey,
		Base:      l.base,
		Bonus:     row.BonusBalance,
		Total:     total,
		Used:      used,
		Remaining: remaining,
	}
}

func (l *Ledger) invalidate(ctx context.Context, userID uint64, dayKey string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidateQuota(ctx, userID, dayKey); err != nil {
		l.log.WarnContext(ctx, "quota cache invalidation failed", "user_id", userID, "err", err)
	}
}

func toSnapshot(a Availability) cache.QuotaSnapshot {
	return cache.QuotaSnapshot{Base: a.Base, Bonus: a.Bonus, Total: a.Total, Used: a.Used, Remaining: a.Remaining}
}

func fromSnapshot(dayKey string, s cache.QuotaSnapshot) Availability {
	return Availability{DayKey: dayKey, Base: s.Base, Bonus: s.Bonus, Total: s.Total, Used: s.Used, Remaining: s.Remaining}
}
