package quota

import (
	"context"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/repository"
)

// Reason explains a denied view.
type Reason string

const ReasonQuotaExceeded Reason = "QuotaExceeded"

// Decision is the outcome of TryConsumeView. A denial is a normal outcome,
// not an error.
type Decision struct {
	Allowed       bool
	Reason        Reason
	AlreadyViewed bool
	Availability  Availability
}

// Gate charges candidate views against the ledger.
type Gate struct {
	ledger *Ledger
}

func NewGate(ledger *Ledger) *Gate {
	return &Gate{ledger: ledger}
}

// TryConsumeView records that candidateID is shown to userID today, provided
// the day's quota allows it.
//
// The ledger row is locked for the whole check-then-insert, so concurrent
// requests of the same user cannot both pass the check. A candidate already
// consumed today is allowed again without being charged; the unique view
// index decides that, not an extra read.
func (g *Gate) TryConsumeView(ctx context.Context, userID, candidateID uint64) (Decision, error) {
	if userID == 0 || candidateID == 0 {
		return Decision{}, apperr.Invalid("user_id and candidate_id are required")
	}
	if userID == candidateID {
		return Decision{}, apperr.Invalid("cannot view yourself")
	}

	l := g.ledger
	day := l.days.Today()
	if _, err := l.getOrCreate(ctx, userID, day); err != nil {
		return Decision{}, err
	}

	var dec Decision
	charged := false
	err := l.repo.Transaction(ctx, func(tx *repository.QuotaRepository) error {
		row, err := tx.LockDay(ctx, userID, day)
		if err != nil {
			return err
		}
		n, err := tx.CountViews(ctx, userID, day)
		if err != nil {
			return err
		}
		used := int(n)

		if used >= l.base+row.BonusBalance {
			seen, err := tx.HasViewed(ctx, userID, day, candidateID)
			if err != nil {
				return err
			}
			dec = Decision{Allowed: seen, AlreadyViewed: seen, Availability: l.availability(day, row, used)}
			if !seen {
				dec.Reason = ReasonQuotaExceeded
			}
			return nil
		}

		inserted, err := tx.InsertView(ctx, &db.DailyView{UserID: userID, DayKey: day, CandidateID: candidateID})
		if err != nil {
			return err
		}
		if !inserted {
			dec = Decision{Allowed: true, AlreadyViewed: true, Availability: l.availability(day, row, used)}
			return nil
		}

		used++
		if used > l.base {
			// charged beyond the base allowance: draw from the carried bonus
			row.BonusSpent++
			if err := tx.SaveCounters(ctx, row); err != nil {
				return err
			}
		}
		charged = true
		dec = Decision{Allowed: true, Availability: l.availability(day, row, used)}
		return nil
	})
	if err != nil {
		return Decision{}, err
	}

	if charged {
		l.invalidate(ctx, userID, day)
	}
	if !dec.Allowed {
		l.log.DebugContext(ctx, "view denied", "user_id", userID, "candidate_id", candidateID, "used", dec.Availability.Used)
	}
	return dec, nil
}
