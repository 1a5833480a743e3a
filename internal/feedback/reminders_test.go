package feedback_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
)

func TestTracker_RemindersOldestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.match(t, 1, 1, 2, 4)
	f.match(t, 2, 3, 1, 9)
	f.match(t, 3, 1, 4, 1) // too recent
	f.match(t, 4, 2, 3, 9) // not involving user 1

	_, err := f.tracker.UpdateContactStatus(ctx, 1, 1, db.ContactContacted)
	require.NoError(t, err)

	got, err := f.tracker.Reminders(ctx, 1, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(2), got[0].MatchID)
	assert.Equal(t, "carol", got[0].PartnerDisplayName)
	assert.Equal(t, 9, got[0].DaysSinceMatch)
	assert.Equal(t, db.ContactNotContacted, got[0].ContactStatus)

	assert.Equal(t, uint64(1), got[1].MatchID)
	assert.Equal(t, "bob", got[1].PartnerDisplayName)
	assert.Equal(t, db.ContactContacted, got[1].ContactStatus)

	assert.Empty(t, f.pub.Events(), "listing reminders publishes nothing")
}

func TestTracker_RemindersSkipProgressedMatches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.match(t, 1, 1, 2, 5)
	f.match(t, 2, 1, 3, 5)

	_, err := f.tracker.UpdateContactStatus(ctx, 1, 1, db.ContactScheduled)
	require.NoError(t, err)
	_, err = f.tracker.UpdateContactStatus(ctx, 2, 3, db.ContactNoResponse)
	require.NoError(t, err)

	got, err := f.tracker.Reminders(ctx, 1, now)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.tracker.Reminders(ctx, 0, now)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestTracker_PublishDueReminders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.match(t, 1, 1, 2, 6)
	f.match(t, 2, 3, 4, 6)
	f.match(t, 3, 1, 3, 1)

	_, err := f.tracker.SubmitFeedback(ctx, 1, 1, true, nil)
	require.NoError(t, err)
	_, err = f.tracker.SubmitFeedback(ctx, 2, 3, true, nil)
	require.NoError(t, err)
	_, err = f.tracker.SubmitFeedback(ctx, 2, 4, true, nil)
	require.NoError(t, err)

	sent, err := f.tracker.PublishDueReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	due := f.pub.OfType(events.TypeFeedbackReminderDue)
	require.Len(t, due, 1)
	var payload events.FeedbackReminderDue
	require.NoError(t, events.Decode(due[0], &payload))
	assert.Equal(t, events.FeedbackReminderDue{
		MatchID:       1,
		UserID:        2,
		PartnerID:     1,
		PartnerName:   "alice",
		DaysSince:     6,
		ContactStatus: "not_contacted",
	}, payload)
}
