package matching

import (
	"fmt"

	"github.com/oggyb/interview-match/internal/db"
)

// Kind is the relationship state of an unordered pair.
type Kind string

const (
	KindNone     Kind = "NONE"
	KindPending  Kind = "PENDING_FROM"
	KindAccepted Kind = "ACCEPTED"
	KindRejected Kind = "REJECTED"
)

// State is a Kind plus, for pending pairs, the user who liked first.
type State struct {
	Kind Kind
	From uint64
}

func (s State) String() string {
	if s.Kind == KindPending {
		return fmt.Sprintf("%s(%d)", s.Kind, s.From)
	}
	return string(s.Kind)
}

// PendingFrom reports whether the pair waits on a reply to u's like.
func (s State) PendingFrom(u uint64) bool {
	return s.Kind == KindPending && s.From == u
}

// StateOf derives the pair state from its row; nil means no row.
func StateOf(m *db.Match) State {
	if m == nil {
		return State{Kind: KindNone}
	}
	switch m.Status {
	case db.MatchAccepted:
		return State{Kind: KindAccepted}
	case db.MatchRejected:
		return State{Kind: KindRejected}
	default:
		return State{Kind: KindPending, From: m.UserA}
	}
}
