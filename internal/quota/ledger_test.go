package quota_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/quota"
)

func TestLedger_GetOrCreateToday_FreshUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", row.DayKey)
	assert.Zero(t, row.BonusBalance)
	assert.Zero(t, row.PostsToday)

	again, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, row.ID, again.ID)
}

func TestLedger_GetOrCreateToday_InvalidUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.GetOrCreateToday(context.Background(), 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestLedger_DayBoundaryUsesReferenceZone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 23:30 UTC on the 9th is already the 10th in Seoul.
	f.now.Set(time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC))
	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", row.DayKey)
}

func TestLedger_ConcurrentFirstAccessCreatesOneRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&db.DailyQuota{UserID: 1, DayKey: "2025-03-09", BonusBalance: 3}).Error)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.GetOrCreateToday(ctx, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var rows []db.DailyQuota
	require.NoError(t, f.db.Where("user_id = ? AND day_key = ?", 1, "2025-03-10").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].BonusBalance, "inherited balance is applied once")
}

func TestLedger_PostRewardRaisesTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.ledger.AvailableToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, before.Total)

	p, err := f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Reward)
	assert.Equal(t, 2, p.Row.BonusQuota)
	assert.Equal(t, 2, p.Row.BonusBalance)

	after, err := f.ledger.AvailableToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, after.Total, "cached snapshot must be invalidated by the reward")
	assert.Equal(t, 2, after.Bonus)
	assert.Equal(t, 6, after.Remaining)

	granted := f.pub.OfType(events.TypeTaskRewardGranted)
	require.Len(t, granted, 1)
	var payload events.TaskRewardGranted
	require.NoError(t, events.Decode(granted[0], &payload))
	assert.Equal(t, events.TaskRewardGranted{UserID: 1, Amount: 2, Kind: "post", DayKey: "2025-03-10"}, payload)
}

func TestLedger_PostRewardIsEdgeTriggered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
		require.NoError(t, err)
	}

	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, row.PostsToday)
	assert.Equal(t, 2, row.BonusBalance)
	assert.Len(t, f.pub.OfType(events.TypeTaskRewardGranted), 1)
}

func TestLedger_CommentRewardEveryThird(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var rewards []int
	for i := 0; i < 7; i++ {
		p, err := f.ledger.RecordTaskProgress(ctx, 1, quota.TaskComment)
		require.NoError(t, err)
		rewards = append(rewards, p.Reward)
	}

	assert.Equal(t, []int{0, 0, 1, 0, 0, 1, 0}, rewards)
	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, row.CommentsToday)
	assert.Equal(t, 2, row.BonusQuota)
	assert.Equal(t, 2, row.BonusBalance)
}

func TestLedger_RecordTaskProgress_UnknownKind(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.RecordTaskProgress(context.Background(), 1, quota.TaskKind("like"))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestLedger_BonusCarriesOverToNextDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
	require.NoError(t, err)

	f.now.Set(time.Date(2025, 3, 11, 8, 0, 0, 0, seoul))
	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-11", row.DayKey)
	assert.Equal(t, 2, row.BonusBalance, "unspent bonus is not reset")
	assert.Zero(t, row.BonusQuota, "earned-today counter restarts")
	assert.Zero(t, row.PostsToday)
}

func TestLedger_CarryOverSkipsGapDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&db.DailyQuota{UserID: 1, DayKey: "2025-03-01", BonusBalance: 5, BonusSpent: 1}).Error)

	avail, err := f.ledger.AvailableToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, avail.Bonus)
	assert.Equal(t, 8, avail.Total)
}

func TestLedger_SpentBonusIsNotCarried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
	require.NoError(t, err)
	for c := uint64(2); c <= 6; c++ {
		d, err := f.gate.TryConsumeView(ctx, 1, c)
		require.NoError(t, err)
		require.True(t, d.Allowed)
	}

	f.now.Set(time.Date(2025, 3, 11, 8, 0, 0, 0, seoul))
	row, err := f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.BonusBalance, "one of two bonus views was used")
}

func TestLedger_AvailableOnFutureDayIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AvailableOn(ctx, 1, "2025-03-11")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	row, err := f.repo.FindDay(ctx, 1, "2025-03-11")
	require.NoError(t, err)
	assert.Nil(t, row, "looking ahead must not create tomorrow's row")

	// today's reward still reaches tomorrow
	_, err = f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
	require.NoError(t, err)
	f.now.Set(time.Date(2025, 3, 11, 8, 0, 0, 0, seoul))
	row, err = f.ledger.GetOrCreateToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, row.BonusBalance)
}

func TestLedger_AvailableOnPastDayIsReadOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&db.DailyQuota{UserID: 1, DayKey: "2025-03-01", BonusBalance: 5, BonusSpent: 1}).Error)

	stored, err := f.ledger.AvailableOn(ctx, 1, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Bonus)
	assert.Equal(t, 9, stored.Total)

	gap, err := f.ledger.AvailableOn(ctx, 1, "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", gap.DayKey)
	assert.Equal(t, 4, gap.Bonus, "a missing day shows the balance it would have inherited")
	assert.Equal(t, 8, gap.Total)
	assert.Zero(t, gap.Used)

	var rows int64
	require.NoError(t, f.db.Model(&db.DailyQuota{}).Where("user_id = ?", 1).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestLedger_AvailableOnBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AvailableOn(ctx, 1, "03/10/2025")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = f.ledger.AvailableOn(ctx, 0, "2025-03-10")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

// A snapshot computed before a reward landed must not be cached after it.
func TestLedger_SnapshotLoadedBeforeRewardIsNotCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	version, err := f.cache.QuotaVersion(ctx, 1, "2025-03-10")
	require.NoError(t, err)
	before, err := f.ledger.AvailableToday(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, before.Total)

	_, err = f.ledger.RecordTaskProgress(ctx, 1, quota.TaskPost)
	require.NoError(t, err)

	stored, err := f.cache.SetQuota(ctx, 1, "2025-03-10", version, cache.QuotaSnapshot{Base: 4, Total: 4, Remaining: 4})
	require.NoError(t, err)
	assert.False(t, stored)

	after, err := f.ledger.AvailableToday(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, after.Total)
}
