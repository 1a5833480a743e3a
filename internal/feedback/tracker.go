// Package feedback tracks post-interview feedback, contact progress of
// accepted matches and the reminders derived from them.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/repository"
)

// Interview status values stored on match feedback rows.
const (
	InterviewDone    = "yes"
	InterviewNotDone = "no"
)

// DefaultReminderAge is how long an accepted match may sit without contact
// progress before it shows up as a reminder.
const DefaultReminderAge = 3 * 24 * time.Hour

// Tracker owns feedback rows and contact status updates.
type Tracker struct {
	matches  *repository.MatchRepository
	feedback *repository.FeedbackRepository
	users    *repository.UserRepository
	emitter  *events.Emitter
	log      *slog.Logger
	now      func() time.Time
	minAge   time.Duration
}

type Option func(*Tracker)

func WithEmitter(e *events.Emitter) Option { return func(t *Tracker) { t.emitter = e } }

func WithLogger(l *slog.Logger) Option { return func(t *Tracker) { t.log = l } }

func WithNow(now func() time.Time) Option { return func(t *Tracker) { t.now = now } }

// WithReminderAge overrides DefaultReminderAge.
func WithReminderAge(d time.Duration) Option { return func(t *Tracker) { t.minAge = d } }

func NewTracker(
	matches *repository.MatchRepository,
	feedback *repository.FeedbackRepository,
	users *repository.UserRepository,
	opts ...Option,
) *Tracker {
	t := &Tracker{
		matches:  matches,
		feedback: feedback,
		users:    users,
		log:      slog.Default(),
		now:      time.Now,
		minAge:   DefaultReminderAge,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// PendingFeedbackFor returns the oldest accepted match of userID still
// lacking userID's feedback, or nil.
func (t *Tracker) PendingFeedbackFor(ctx context.Context, userID uint64) (*db.Match, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user_id is required")
	}
	return t.matches.OldestWithoutFeedback(ctx, userID)
}

// SubmitFeedback stores userID's feedback on matchID. Feedback is immutable:
// a second submission for the same pair fails with ErrConflict and leaves
// the first row untouched.
func (t *Tracker) SubmitFeedback(
	ctx context.Context,
	matchID, userID uint64,
	completed bool,
	content *string,
) (*db.Feedback, error) {
	if matchID == 0 || userID == 0 {
		return nil, apperr.Invalid("match_id and user_id are required")
	}

	m, err := t.participantMatch(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}

	status := InterviewNotDone
	if completed {
		status = InterviewDone
	}
	fb := &db.Feedback{
		MatchID:         &m.ID,
		UserID:          userID,
		InterviewStatus: status,
		Content:         content,
	}
	if err := t.feedback.Create(ctx, fb); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("feedback for match %d by user %d already submitted: %w", matchID, userID, apperr.ErrConflict)
		}
		return nil, err
	}

	t.log.InfoContext(ctx, "feedback submitted", "match_id", matchID, "user_id", userID, "completed", completed)
	_ = t.emitter.Emit(ctx, events.TypeFeedbackSubmitted, events.FeedbackSubmitted{
		UserID:             userID,
		MatchID:            matchID,
		InterviewCompleted: completed,
	})
	return fb, nil
}

// RecordSystemEvent appends a standalone row (no match) such as an
// onboarding marker. These rows carry no uniqueness constraint.
func (t *Tracker) RecordSystemEvent(ctx context.Context, userID uint64, tag, payload string) (*db.Feedback, error) {
	if userID == 0 || tag == "" {
		return nil, apperr.Invalid("user_id and tag are required")
	}
	fb := &db.Feedback{UserID: userID, InterviewStatus: tag}
	if payload != "" {
		fb.Content = &payload
	}
	if err := t.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// UpdateContactStatus moves the contact progress of an accepted match.
// Any valid status may follow any other; scheduled also stamps the
// interview time.
func (t *Tracker) UpdateContactStatus(ctx context.Context, matchID, userID uint64, status db.ContactStatus) (*db.Match, error) {
	if matchID == 0 || userID == 0 {
		return nil, apperr.Invalid("match_id and user_id are required")
	}
	if !status.Valid() {
		return nil, apperr.Invalid("unknown contact status %q", status)
	}

	m, err := t.participantMatch(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}

	at := t.now().UTC()
	var scheduledAt *time.Time
	if status == db.ContactScheduled {
		scheduledAt = &at
	}
	ok, err := t.matches.UpdateContactStatus(ctx, m.ID, status, at, scheduledAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("match %d is no longer accepted: %w", matchID, apperr.ErrConflict)
	}

	updated, err := t.matches.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	t.log.DebugContext(ctx, "contact status updated", "match_id", matchID, "user_id", userID, "status", status)

	if status == db.ContactCompleted {
		_ = t.emitter.Emit(ctx, events.TypeInterviewCompleted, events.InterviewCompleted{
			MatchID: matchID,
			UserID:  userID,
		})
	}
	return updated, nil
}

// participantMatch loads an accepted match that userID takes part in.
func (t *Tracker) participantMatch(ctx context.Context, matchID, userID uint64) (*db.Match, error) {
	m, err := t.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.Involves(userID) {
		return nil, fmt.Errorf("user %d on match %d: %w", userID, matchID, apperr.ErrUnauthorized)
	}
	if m.Status != db.MatchAccepted {
		return nil, fmt.Errorf("match %d is %s, not accepted: %w", matchID, m.Status, apperr.ErrConflict)
	}
	return m, nil
}
