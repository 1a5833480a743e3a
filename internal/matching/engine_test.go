package matching_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/logger"
	"github.com/oggyb/interview-match/internal/matching"
	"github.com/oggyb/interview-match/internal/quota"
	"github.com/oggyb/interview-match/internal/repository"
)

type fixture struct {
	db      *gorm.DB
	engine  *matching.Engine
	matches *repository.MatchRepository
	cache   *cache.RedisCache
	pub     *events.MemoryPublisher
}

func newFixture(t *testing.T, users int) *fixture {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.OpenSQLite("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for i := 1; i <= users; i++ {
		require.NoError(t, gdb.Create(&db.User{
			ID:              uint64(i),
			DisplayName:     fmt.Sprintf("user-%d", i),
			ProfileComplete: true,
		}).Error)
	}

	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	days := clock.NewDayKeyer(time.UTC, clock.Fixed(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	ledger := quota.NewLedger(repository.NewQuotaRepository(gdb), days, quota.WithLogger(logger.Discard()))

	pub := events.NewMemoryPublisher()
	matches := repository.NewMatchRepository(gdb)
	engine := matching.NewEngine(matches, repository.NewUserRepository(gdb), quota.NewGate(ledger),
		matching.WithCache(rc),
		matching.WithEmitter(events.NewEmitter(pub, logger.Discard())),
		matching.WithLogger(logger.Discard()),
	)
	return &fixture{db: gdb, engine: engine, matches: matches, cache: rc, pub: pub}
}

func (f *fixture) rowCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&db.Match{}).Count(&n).Error)
	return n
}

func TestEngine_MutualLikeAccepts(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	first, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, first.State.PendingFrom(1))
	assert.False(t, first.MutualMatch)

	second, err := f.engine.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, matching.KindAccepted, second.State.Kind)
	assert.True(t, second.MutualMatch)
	require.NotNil(t, second.Match.AcceptedAt)

	assert.Equal(t, int64(1), f.rowCount(t))

	formed := f.pub.OfType(events.TypeMutualMatchFormed)
	require.Len(t, formed, 1)
	var payload events.MutualMatchFormed
	require.NoError(t, events.Decode(formed[0], &payload))
	assert.Equal(t, second.Match.ID, payload.MatchID)
}

func TestEngine_MutualMatchEitherOrder(t *testing.T) {
	for _, order := range [][2]uint64{{1, 2}, {2, 1}} {
		t.Run(fmt.Sprintf("%d_first", order[0]), func(t *testing.T) {
			f := newFixture(t, 2)
			ctx := context.Background()

			_, err := f.engine.Like(ctx, order[0], order[1])
			require.NoError(t, err)
			out, err := f.engine.Like(ctx, order[1], order[0])
			require.NoError(t, err)

			assert.Equal(t, matching.KindAccepted, out.State.Kind)
			assert.Equal(t, int64(1), f.rowCount(t))
		})
	}
}

func TestEngine_DoubleLikeIsIdempotent(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	_, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	again, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, again.State.PendingFrom(1))
	assert.False(t, again.MutualMatch)

	_, err = f.engine.Like(ctx, 2, 1)
	require.NoError(t, err)
	for _, liker := range []uint64{1, 2} {
		out, err := f.engine.Like(ctx, liker, 3-liker)
		require.NoError(t, err)
		assert.Equal(t, matching.KindAccepted, out.State.Kind)
		assert.False(t, out.MutualMatch)
	}

	assert.Len(t, f.pub.OfType(events.TypeMutualMatchFormed), 1)
	assert.Equal(t, int64(1), f.rowCount(t))
}

func TestEngine_DislikeExcludesCandidate(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	out, err := f.engine.Dislike(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, matching.KindRejected, out.State.Kind)
	assert.Equal(t, int64(1), f.rowCount(t))

	page, err := f.engine.Candidates(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, uint64(3), page.Users[0].ID)

	// the rejected user does not see the disliker either
	page, err = f.engine.Candidates(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, uint64(3), page.Users[0].ID)
}

func TestEngine_RejectedIsTerminal(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	_, err := f.engine.Dislike(ctx, 1, 2)
	require.NoError(t, err)

	for _, liker := range []uint64{1, 2} {
		out, err := f.engine.Like(ctx, liker, 3-liker)
		require.NoError(t, err)
		assert.Equal(t, matching.KindRejected, out.State.Kind)
	}
	assert.Equal(t, int64(1), f.rowCount(t))
	assert.Empty(t, f.pub.OfType(events.TypeMutualMatchFormed))
}

func TestEngine_DislikeIncomingLike(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	_, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	out, err := f.engine.Dislike(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, matching.KindRejected, out.State.Kind)

	state, _, err := f.engine.StateBetween(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, matching.KindRejected, state.Kind)
}

func TestEngine_DislikeOwnPendingOrAcceptedIsNoop(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	_, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	out, err := f.engine.Dislike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, out.State.PendingFrom(1))

	_, err = f.engine.Like(ctx, 1, 3)
	require.NoError(t, err)
	_, err = f.engine.Like(ctx, 3, 1)
	require.NoError(t, err)
	out, err = f.engine.Dislike(ctx, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, matching.KindAccepted, out.State.Kind)
}

func TestEngine_StateBetweenIsSymmetric(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	s, m, err := f.engine.StateBetween(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, matching.KindNone, s.Kind)
	assert.Nil(t, m)

	_, err = f.engine.Like(ctx, 2, 1)
	require.NoError(t, err)

	ab, mab, err := f.engine.StateBetween(ctx, 1, 2)
	require.NoError(t, err)
	ba, mba, err := f.engine.StateBetween(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "PENDING_FROM(2)", ab.String())
	assert.Equal(t, mab.ID, mba.ID)
}

func TestEngine_InvalidInput(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	_, err := f.engine.Like(ctx, 1, 1)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = f.engine.Dislike(ctx, 0, 1)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, _, err = f.engine.StateBetween(ctx, 1, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestEngine_ConcurrentOppositeLikesFormOneMatch(t *testing.T) {
	for round := 0; round < 5; round++ {
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			f := newFixture(t, 2)
			ctx := context.Background()

			var wg sync.WaitGroup
			outcomes := make([]matching.Outcome, 2)
			for i, pair := range [][2]uint64{{1, 2}, {2, 1}} {
				wg.Add(1)
				go func(i int, liker, likee uint64) {
					defer wg.Done()
					out, err := f.engine.Like(ctx, liker, likee)
					assert.NoError(t, err)
					outcomes[i] = out
				}(i, pair[0], pair[1])
			}
			wg.Wait()

			assert.Equal(t, int64(1), f.rowCount(t))
			m, err := f.matches.FindBetween(ctx, 1, 2)
			require.NoError(t, err)
			assert.Equal(t, db.MatchAccepted, m.Status)

			mutual := 0
			for _, o := range outcomes {
				if o.MutualMatch {
					mutual++
				}
			}
			assert.Equal(t, 1, mutual)
			assert.Len(t, f.pub.OfType(events.TypeMutualMatchFormed), 1)
		})
	}
}

func TestEngine_MixedSequencesKeepOneRowPerPair(t *testing.T) {
	f := newFixture(t, 4)
	ctx := context.Background()

	type op struct {
		like     bool
		from, to uint64
	}
	ops := []op{
		{true, 1, 2}, {false, 2, 1}, {true, 2, 1},
		{true, 3, 1}, {true, 1, 3}, {false, 1, 3},
		{false, 4, 2}, {true, 2, 4}, {true, 4, 2},
		{true, 3, 4}, {true, 3, 4}, {false, 3, 4},
	}

	var wg sync.WaitGroup
	for _, o := range ops {
		wg.Add(1)
		go func(o op) {
			defer wg.Done()
			var err error
			if o.like {
				_, err = f.engine.Like(ctx, o.from, o.to)
			} else {
				_, err = f.engine.Dislike(ctx, o.from, o.to)
			}
			assert.NoError(t, err)
		}(o)
	}
	wg.Wait()

	for u := uint64(1); u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			var n int64
			require.NoError(t, f.db.Model(&db.Match{}).
				Where("(user_a = ? AND user_b = ?) OR (user_a = ? AND user_b = ?)", u, v, v, u).
				Count(&n).Error)
			assert.LessOrEqual(t, n, int64(1), "pair %d-%d", u, v)

			a, err := f.matches.FindBetween(ctx, u, v)
			require.NoError(t, err)
			b, err := f.matches.FindBetween(ctx, v, u)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}

func TestEngine_MutualMatchInvalidatesCountCache(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	require.NoError(t, f.cache.SetMatchCount(ctx, 1, 0))
	require.NoError(t, f.cache.SetMatchCount(ctx, 2, 0))

	_, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	_, err = f.engine.Like(ctx, 2, 1)
	require.NoError(t, err)

	for _, u := range []uint64{1, 2} {
		_, ok, err := f.cache.GetMatchCount(ctx, u)
		require.NoError(t, err)
		assert.False(t, ok, "count for user %d should be evicted", u)
	}
}
