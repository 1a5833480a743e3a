package feedback

import (
	"context"
	"time"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/repository"
)

// reminderStatuses are the contact states that still need a nudge.
var reminderStatuses = []db.ContactStatus{db.ContactNotContacted, db.ContactContacted}

// Reminder is a read-only view of a stale accepted match.
type Reminder struct {
	MatchID            uint64
	PartnerID          uint64
	PartnerDisplayName string
	DaysSinceMatch     int
	ContactStatus      db.ContactStatus
}

// Reminders lists userID's accepted matches that are still not_contacted or
// contacted after the reminder age, oldest first. Nothing is mutated.
func (t *Tracker) Reminders(ctx context.Context, userID uint64, now time.Time) ([]Reminder, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user_id is required")
	}
	stale, err := t.matches.ListStale(ctx, repository.StaleFilter{
		UserID:         userID,
		AcceptedBefore: now.Add(-t.minAge),
		Statuses:       reminderStatuses,
	})
	if err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return nil, nil
	}

	partners := make([]uint64, 0, len(stale))
	for i := range stale {
		partners = append(partners, stale[i].Partner(userID))
	}
	names, err := t.users.DisplayNames(ctx, partners)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(stale))
	for i := range stale {
		m := &stale[i]
		partner := m.Partner(userID)
		out = append(out, Reminder{
			MatchID:            m.ID,
			PartnerID:          partner,
			PartnerDisplayName: names[partner],
			DaysSinceMatch:     daysSince(m, now),
			ContactStatus:      m.ContactStatus,
		})
	}
	return out, nil
}

// PublishDueReminders emits FeedbackReminderDue for every participant of a
// stale accepted match who has not given feedback yet. Returns the number
// of events published.
func (t *Tracker) PublishDueReminders(ctx context.Context, now time.Time) (int, error) {
	stale, err := t.matches.ListStale(ctx, repository.StaleFilter{
		AcceptedBefore:  now.Add(-t.minAge),
		Statuses:        reminderStatuses,
		WithoutFeedback: true,
	})
	if err != nil {
		return 0, err
	}

	ids := make([]uint64, 0, 2*len(stale))
	for i := range stale {
		ids = append(ids, stale[i].UserA, stale[i].UserB)
	}
	names, err := t.users.DisplayNames(ctx, ids)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range stale {
		m := &stale[i]
		for _, user := range []uint64{m.UserA, m.UserB} {
			fb, err := t.feedback.Find(ctx, m.ID, user)
			if err != nil {
				return sent, err
			}
			if fb != nil {
				continue
			}
			partner := m.Partner(user)
			err = t.emitter.Emit(ctx, events.TypeFeedbackReminderDue, events.FeedbackReminderDue{
				MatchID:       m.ID,
				UserID:        user,
				PartnerID:     partner,
				PartnerName:   names[partner],
				DaysSince:     daysSince(m, now),
				ContactStatus: string(m.ContactStatus),
			})
			if err != nil {
				continue
			}
			sent++
		}
	}
	t.log.InfoContext(ctx, "feedback reminders published", "matches", len(stale), "sent", sent)
	return sent, nil
}

func daysSince(m *db.Match, now time.Time) int {
	since := m.CreatedAt
	if m.AcceptedAt != nil {
		since = *m.AcceptedAt
	}
	d := int(now.Sub(since).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
