package app

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/feedback"
	"github.com/oggyb/interview-match/internal/matching"
	"github.com/oggyb/interview-match/internal/quota"
	"github.com/oggyb/interview-match/internal/repository"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.) and the
// domain components built on top of them.
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Days       *clock.DayKeyer
	Events     *events.Emitter

	Matches      *repository.MatchRepository
	Users        *repository.UserRepository
	FeedbackRepo *repository.FeedbackRepository
	Ledger       *quota.Ledger
	Gate         *quota.Gate
	Matching     *matching.Engine
	Feedback     *feedback.Tracker

	// ReminderAge is the age after which accepted matches need a nudge.
	ReminderAge time.Duration
}

// New creates a new AppContext. cfg may be nil, in which case the quota and
// reminder defaults apply. pub may be nil to drop events.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *cache.RedisCache,
	logger *slog.Logger,
	days *clock.DayKeyer,
	pub events.Publisher,
) *AppContext {
	emitter := events.NewEmitter(pub, logger)

	baseLimit := quota.DefaultBaseLimit
	reminderAge := feedback.DefaultReminderAge
	if cfg != nil {
		if cfg.Quota.BaseLimit > 0 {
			baseLimit = cfg.Quota.BaseLimit
		}
		if cfg.Reminder.MinDays > 0 {
			reminderAge = cfg.ReminderAge()
		}
	}

	matches := repository.NewMatchRepository(db)
	users := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	ledger := quota.NewLedger(repository.NewQuotaRepository(db), days,
		quota.WithCache(rdb),
		quota.WithEmitter(emitter),
		quota.WithBaseLimit(baseLimit),
		quota.WithLogger(logger),
	)
	gate := quota.NewGate(ledger)

	engine := matching.NewEngine(matches, users, gate,
		matching.WithCache(rdb),
		matching.WithEmitter(emitter),
		matching.WithLogger(logger),
		matching.WithNow(days.Now),
	)

	tracker := feedback.NewTracker(matches, feedbackRepo, users,
		feedback.WithEmitter(emitter),
		feedback.WithLogger(logger),
		feedback.WithNow(days.Now),
		feedback.WithReminderAge(reminderAge),
	)

	return &AppContext{
		DB:           db,
		RedisCache:   rdb,
		Logger:       logger,
		Days:         days,
		Events:       emitter,
		Matches:      matches,
		Users:        users,
		FeedbackRepo: feedbackRepo,
		Ledger:       ledger,
		Gate:         gate,
		Matching:     engine,
		Feedback:     tracker,
		ReminderAge:  reminderAge,
	}
}
