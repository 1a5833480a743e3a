// Package events defines the notifications the core emits for external
// collaborators (notification and achievement services) and the publishers
// that deliver them.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Type is the event name; it doubles as the AMQP routing key.
type Type string

const (
	TypeMutualMatchFormed   Type = "match.formed"
	TypeFeedbackReminderDue Type = "feedback.reminder_due"
	TypeTaskRewardGranted   Type = "quota.reward_granted"
	TypeFeedbackSubmitted   Type = "feedback.submitted"
	TypeInterviewCompleted  Type = "interview.completed"
)

// Event is the envelope written to the broker.
type Event struct {
	Type       Type            `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// MutualMatchFormed is published once when a pending pair becomes accepted.
type MutualMatchFormed struct {
	MatchID uint64 `json:"match_id"`
	UserA   uint64 `json:"user_a"`
	UserB   uint64 `json:"user_b"`
}

// FeedbackReminderDue asks the notifier to nudge UserID about MatchID.
type FeedbackReminderDue struct {
	MatchID       uint64 `json:"match_id"`
	UserID        uint64 `json:"user_id"`
	PartnerID     uint64 `json:"partner_id"`
	PartnerName   string `json:"partner_name"`
	DaysSince     int    `json:"days_since"`
	ContactStatus string `json:"contact_status"`
}

// TaskRewardGranted reports bonus quota earned by a post or comment.
type TaskRewardGranted struct {
	UserID uint64 `json:"user_id"`
	Amount int    `json:"amount"`
	Kind   string `json:"kind"`
	DayKey string `json:"day_key"`
}

// FeedbackSubmitted feeds the achievement/XP service.
type FeedbackSubmitted struct {
	UserID             uint64 `json:"user_id"`
	MatchID            uint64 `json:"match_id"`
	InterviewCompleted bool   `json:"interview_completed"`
}

// InterviewCompleted is emitted when a participant marks the contact status completed.
type InterviewCompleted struct {
	MatchID uint64 `json:"match_id"`
	UserID  uint64 `json:"user_id"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// New wraps a payload into an Event stamped with at.
func New(t Type, payload any, at time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: t, OccurredAt: at.UTC(), Payload: raw}, nil
}

// Decode unmarshals the payload of ev into v.
func Decode(ev Event, v any) error {
	return json.Unmarshal(ev.Payload, v)
}
