package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/repository"
)

func TestFindBetween_BothOrders(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	none, err := repo.FindBetween(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, none)

	created, err := repo.CreatePending(ctx, 2, 1)
	require.NoError(t, err)

	ab, err := repo.FindBetween(ctx, 1, 2)
	require.NoError(t, err)
	ba, err := repo.FindBetween(ctx, 2, 1)
	require.NoError(t, err)

	require.NotNil(t, ab)
	require.NotNil(t, ba)
	assert.Equal(t, created.ID, ab.ID)
	assert.Equal(t, ab.ID, ba.ID)
	assert.Equal(t, uint64(2), ab.UserA)
}

func TestCreatePending_ReverseDuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	_, err := repo.CreatePending(ctx, 1, 2)
	require.NoError(t, err)

	_, err = repo.CreatePending(ctx, 2, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.CreateRejected(ctx, 1, 2)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestPromoteToAccepted_OnlyByLikee(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	m, err := repo.CreatePending(ctx, 1, 2)
	require.NoError(t, err)

	// the original liker cannot promote their own like
	ok, err := repo.PromoteToAccepted(ctx, m.ID, 1, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.PromoteToAccepted(ctx, m.ID, 2, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	// second promotion is a no-op
	ok, err = repo.PromoteToAccepted(ctx, m.ID, 2, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, db.MatchAccepted, got.Status)
	assert.NotNil(t, got.AcceptedAt)
}

func TestMarkRejected(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	m, err := repo.CreatePending(ctx, 1, 2)
	require.NoError(t, err)

	ok, err := repo.MarkRejected(ctx, m.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.MarkRejected(ctx, m.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindBetween(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, db.MatchRejected, got.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := repository.NewMatchRepository(setupTestDB(t))
	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListAcceptedAndPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	for other := uint64(2); other <= 6; other++ {
		m, err := repo.CreatePending(ctx, other, 1)
		require.NoError(t, err)
		ok, err := repo.PromoteToAccepted(ctx, m.ID, 1, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
	}
	// pending row is not listed
	_, err := repo.CreatePending(ctx, 1, 7)
	require.NoError(t, err)

	page1, next, err := repo.ListAccepted(ctx, 1, nil, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.NotNil(t, next)
	assert.Greater(t, page1[0].ID, page1[1].ID)

	page2, next2, err := repo.ListAccepted(ctx, 1, next, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.Nil(t, next2)

	count, err := repo.CountAccepted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	bad := "garbage%%"
	_, _, err = repo.ListAccepted(ctx, 1, &bad, 3)
	assert.Error(t, err)
}

func TestOldestWithoutFeedback(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewMatchRepository(gdb)
	fbRepo := repository.NewFeedbackRepository(gdb)

	accept := func(a, b uint64) *db.Match {
		m, err := repo.CreatePending(ctx, a, b)
		require.NoError(t, err)
		ok, err := repo.PromoteToAccepted(ctx, m.ID, b, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		return m
	}
	first := accept(3, 1)
	second := accept(1, 4)

	got, err := repo.OldestWithoutFeedback(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	// partner's feedback does not count for user 1
	require.NoError(t, fbRepo.Create(ctx, &db.Feedback{MatchID: &first.ID, UserID: 3, InterviewStatus: "yes"}))
	got, err = repo.OldestWithoutFeedback(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	require.NoError(t, fbRepo.Create(ctx, &db.Feedback{MatchID: &first.ID, UserID: 1, InterviewStatus: "yes"}))
	got, err = repo.OldestWithoutFeedback(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	require.NoError(t, fbRepo.Create(ctx, &db.Feedback{MatchID: &second.ID, UserID: 1, InterviewStatus: "no"}))
	got, err = repo.OldestWithoutFeedback(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateContactStatus_RequiresAccepted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	m, err := repo.CreatePending(ctx, 1, 2)
	require.NoError(t, err)

	now := time.Now().UTC()
	ok, err := repo.UpdateContactStatus(ctx, m.ID, db.ContactContacted, now, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.PromoteToAccepted(ctx, m.ID, 2, now)
	require.NoError(t, err)

	ok, err = repo.UpdateContactStatus(ctx, m.ID, db.ContactScheduled, now, &now)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, db.ContactScheduled, got.ContactStatus)
	assert.NotNil(t, got.ContactUpdatedAt)
	assert.NotNil(t, got.InterviewScheduledAt)
}

func TestListStale(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewMatchRepository(gdb)

	now := time.Now().UTC()
	old := now.Add(-5 * 24 * time.Hour)

	m1, err := repo.CreatePending(ctx, 1, 2)
	require.NoError(t, err)
	_, err = repo.PromoteToAccepted(ctx, m1.ID, 2, old)
	require.NoError(t, err)

	m2, err := repo.CreatePending(ctx, 3, 1)
	require.NoError(t, err)
	_, err = repo.PromoteToAccepted(ctx, m2.ID, 1, now)
	require.NoError(t, err)

	m3, err := repo.CreatePending(ctx, 4, 5)
	require.NoError(t, err)
	_, err = repo.PromoteToAccepted(ctx, m3.ID, 5, old.Add(-time.Hour))
	require.NoError(t, err)
	_, err = repo.UpdateContactStatus(ctx, m3.ID, db.ContactCompleted, now, nil)
	require.NoError(t, err)

	stale, err := repo.ListStale(ctx, repository.StaleFilter{
		AcceptedBefore: now.Add(-3 * 24 * time.Hour),
		Statuses:       []db.ContactStatus{db.ContactNotContacted, db.ContactContacted},
	})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, m1.ID, stale[0].ID)

	forUser, err := repo.ListStale(ctx, repository.StaleFilter{UserID: 3, AcceptedBefore: now.Add(time.Minute)})
	require.NoError(t, err)
	require.Len(t, forUser, 1)
	assert.Equal(t, m2.ID, forUser[0].ID)
}
