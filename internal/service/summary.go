// Package service holds helpers shared by the gRPC service implementations
// in its subpackages.
package service

import (
	"strconv"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/db"
)

// MatchSummary renders a match from the point of view of userID.
func MatchSummary(m *db.Match, userID uint64) *api.MatchSummary {
	out := &api.MatchSummary{
		MatchId:       strconv.FormatUint(m.ID, 10),
		PartnerUserId: strconv.FormatUint(m.Partner(userID), 10),
		ContactStatus: string(m.ContactStatus),
	}
	if m.AcceptedAt != nil {
		out.AcceptedAtUnixMs = uint64(m.AcceptedAt.UnixMilli())
	}
	if m.InterviewScheduledAt != nil {
		out.InterviewScheduledUnixMs = uint64(m.InterviewScheduledAt.UnixMilli())
	}
	return out
}
