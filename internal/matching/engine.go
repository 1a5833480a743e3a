// Package matching implements the like/dislike state machine of a user pair
// and candidate listing.
package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/quota"
	"github.com/oggyb/interview-match/internal/repository"
)

// maxAttempts bounds the re-read loop after losing a unique-index race.
const maxAttempts = 3

// Outcome is the result of Like or Dislike. MutualMatch is true only for the
// single call that turned the pair into ACCEPTED.
type Outcome struct {
	Match       *db.Match
	State       State
	MutualMatch bool
}

// Engine drives pair transitions on top of MatchRepository.
type Engine struct {
	matches *repository.MatchRepository
	users   *repository.UserRepository
	gate    *quota.Gate
	cache   *cache.RedisCache
	emitter *events.Emitter
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Engine)

// WithCache invalidates the accepted-match counters when a match forms.
func WithCache(c *cache.RedisCache) Option { return func(e *Engine) { e.cache = c } }

func WithEmitter(em *events.Emitter) Option { return func(e *Engine) { e.emitter = em } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

func WithNow(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// NewEngine wires the engine. gate charges every candidate returned by
// Candidates against the requester's daily quota.
func NewEngine(
	matches *repository.MatchRepository,
	users *repository.UserRepository,
	gate *quota.Gate,
	opts ...Option,
) *Engine {
	e := &Engine{
		matches: matches,
		users:   users,
		gate:    gate,
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Like records liker's interest in likee.
//
// Transitions:
//   - NONE: creates PENDING_FROM(liker).
//   - PENDING_FROM(likee): promotes to ACCEPTED and fires MutualMatchFormed.
//   - PENDING_FROM(liker), ACCEPTED, REJECTED: no change.
//
// Two opposite likes racing on an empty pair collide on the canonical pair
// index; the loser re-reads, finds the winner's pending row and promotes it.
func (e *Engine) Like(ctx context.Context, liker, likee uint64) (Outcome, error) {
	if err := validatePair(liker, likee); err != nil {
		return Outcome{}, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		m, err := e.matches.FindBetween(ctx, liker, likee)
		if err != nil {
			return Outcome{}, err
		}

		if m == nil {
			created, err := e.matches.CreatePending(ctx, liker, likee)
			if errors.Is(err, apperr.ErrConflict) {
				e.log.DebugContext(ctx, "like lost insert race, re-reading", "liker", liker, "likee", likee, "attempt", attempt)
				continue
			}
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{Match: created, State: StateOf(created)}, nil
		}

		if m.Status != db.MatchPending || m.UserB != liker {
			return Outcome{Match: m, State: StateOf(m)}, nil
		}

		promoted, err := e.matches.PromoteToAccepted(ctx, m.ID, liker, e.now())
		if err != nil {
			return Outcome{}, err
		}
		if !promoted {
			continue
		}

		accepted, err := e.matches.GetByID(ctx, m.ID)
		if err != nil {
			return Outcome{}, err
		}
		e.mutualFormed(ctx, accepted)
		return Outcome{Match: accepted, State: StateOf(accepted), MutualMatch: true}, nil
	}

	return Outcome{}, fmt.Errorf("like %d -> %d: %w", liker, likee, apperr.ErrRaceLost)
}

// Dislike rejects dislikee.
//
// Transitions:
//   - NONE: creates REJECTED.
//   - PENDING_FROM(dislikee): becomes REJECTED.
//   - PENDING_FROM(disliker), ACCEPTED, REJECTED: no change.
func (e *Engine) Dislike(ctx context.Context, disliker, dislikee uint64) (Outcome, error) {
	if err := validatePair(disliker, dislikee); err != nil {
		return Outcome{}, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		m, err := e.matches.FindBetween(ctx, disliker, dislikee)
		if err != nil {
			return Outcome{}, err
		}

		if m == nil {
			created, err := e.matches.CreateRejected(ctx, disliker, dislikee)
			if errors.Is(err, apperr.ErrConflict) {
				continue
			}
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{Match: created, State: StateOf(created)}, nil
		}

		if m.Status != db.MatchPending || m.UserB != disliker {
			return Outcome{Match: m, State: StateOf(m)}, nil
		}

		rejected, err := e.matches.MarkRejected(ctx, m.ID, disliker)
		if err != nil {
			return Outcome{}, err
		}
		if !rejected {
			continue
		}
		m.Status = db.MatchRejected
		return Outcome{Match: m, State: StateOf(m)}, nil
	}

	return Outcome{}, fmt.Errorf("dislike %d -> %d: %w", disliker, dislikee, apperr.ErrRaceLost)
}

// StateBetween returns the state of the pair; argument order does not matter.
func (e *Engine) StateBetween(ctx context.Context, u, v uint64) (State, *db.Match, error) {
	if err := validatePair(u, v); err != nil {
		return State{}, nil, err
	}
	m, err := e.matches.FindBetween(ctx, u, v)
	if err != nil {
		return State{}, nil, err
	}
	return StateOf(m), m, nil
}

func (e *Engine) mutualFormed(ctx context.Context, m *db.Match) {
	e.log.InfoContext(ctx, "mutual match formed", "match_id", m.ID, "user_a", m.UserA, "user_b", m.UserB)

	if e.cache != nil {
		if err := e.cache.InvalidateMatchCounts(ctx, m.UserA, m.UserB); err != nil {
			e.log.WarnContext(ctx, "match count invalidation failed", "match_id", m.ID, "err", err)
		}
	}
	_ = e.emitter.Emit(ctx, events.TypeMutualMatchFormed, events.MutualMatchFormed{
		MatchID: m.ID,
		UserA:   m.UserA,
		UserB:   m.UserB,
	})
}

func validatePair(u, v uint64) error {
	if u == 0 || v == 0 {
		return apperr.Invalid("user ids are required")
	}
	if u == v {
		return apperr.Invalid("cannot decide on yourself")
	}
	return nil
}
