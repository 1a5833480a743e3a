package events

import (
	"context"
	"log/slog"
	"time"
)

// Emitter is what the domain packages hold: it builds envelopes and never
// lets a delivery failure bubble into the core write path.
type Emitter struct {
	pub Publisher
	log *slog.Logger
	now func() time.Time
}

// NewEmitter returns an Emitter over pub. A nil pub drops every event.
func NewEmitter(pub Publisher, log *slog.Logger) *Emitter {
	if log == nil {
		log = slog.Default()
	}
	return &Emitter{pub: pub, log: log, now: time.Now}
}

// Emit publishes payload as an event of type t. Errors are logged and returned
// for callers that care; the core never rolls back on them.
func (e *Emitter) Emit(ctx context.Context, t Type, payload any) error {
	if e == nil || e.pub == nil {
		return nil
	}
	ev, err := New(t, payload, e.now())
	if err != nil {
		e.log.Error("event encode failed", "type", t, "err", err)
		return err
	}
	if err := e.pub.Publish(ctx, ev); err != nil {
		e.log.Error("event publish failed", "type", t, "err", err)
		return err
	}
	return nil
}
