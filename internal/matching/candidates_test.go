package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/interview-match/internal/db"
)

func ids(users []db.User) []uint64 {
	out := make([]uint64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestCandidates_StopsAtQuota(t *testing.T) {
	f := newFixture(t, 8)
	ctx := context.Background()

	page, err := f.engine.Candidates(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 4, 5}, ids(page.Users))
	assert.True(t, page.Exhausted)
	assert.Zero(t, page.Availability.Remaining)
}

func TestCandidates_ReshowIsFree(t *testing.T) {
	f := newFixture(t, 8)
	ctx := context.Background()

	page, err := f.engine.Candidates(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, ids(page.Users))
	assert.False(t, page.Exhausted)
	assert.Equal(t, 2, page.Availability.Remaining)

	page, err = f.engine.Candidates(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, ids(page.Users))
	assert.Equal(t, 2, page.Availability.Remaining)
}

func TestCandidates_ExcludesEveryRelationship(t *testing.T) {
	f := newFixture(t, 6)
	ctx := context.Background()

	require.NoError(t, f.db.Model(&db.User{}).Where("id = ?", 6).Update("profile_complete", false).Error)

	_, err := f.engine.Like(ctx, 1, 2)
	require.NoError(t, err)
	_, err = f.engine.Like(ctx, 3, 1)
	require.NoError(t, err)
	_, err = f.engine.Dislike(ctx, 4, 1)
	require.NoError(t, err)

	page, err := f.engine.Candidates(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, ids(page.Users))
	assert.False(t, page.Exhausted)
}
