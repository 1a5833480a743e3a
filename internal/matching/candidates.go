package matching

import (
	"context"

	"github.com/oggyb/interview-match/internal/db"
	apperr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/quota"
)

// CandidatePage is one listing of potential partners.
type CandidatePage struct {
	Users []db.User
	// Exhausted is set when the listing stopped because the quota ran out.
	Exhausted    bool
	Availability quota.Availability
}

// Candidates lists up to limit potential partners for userID.
//
// Users with any match row against userID are never returned. Each returned
// user is charged through the view gate; users already shown today are free.
// Listing stops at the first denial.
func (e *Engine) Candidates(ctx context.Context, userID uint64, limit int) (CandidatePage, error) {
	if userID == 0 {
		return CandidatePage{}, apperr.Invalid("user_id is required")
	}
	if limit <= 0 {
		return CandidatePage{}, apperr.Invalid("limit must be positive")
	}

	var page CandidatePage
	var after uint64
	for len(page.Users) < limit {
		batch, err := e.users.Candidates(ctx, userID, after, limit)
		if err != nil {
			return CandidatePage{}, err
		}
		if len(batch) == 0 {
			break
		}

		for _, u := range batch {
			after = u.ID
			d, err := e.gate.TryConsumeView(ctx, userID, u.ID)
			if err != nil {
				return CandidatePage{}, err
			}
			page.Availability = d.Availability
			if !d.Allowed {
				page.Exhausted = true
				e.log.DebugContext(ctx, "candidate listing stopped by quota", "user_id", userID, "returned", len(page.Users))
				return page, nil
			}
			page.Users = append(page.Users, u)
			if len(page.Users) == limit {
				return page, nil
			}
		}
		if len(batch) < limit {
			break
		}
	}
	return page, nil
}
