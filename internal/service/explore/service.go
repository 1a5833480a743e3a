package explore

import (
	"context"
	"strconv"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/app"
	svcErr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/matching"
	"github.com/oggyb/interview-match/internal/service"
)

const (
	defaultCandidateLimit = 10
	maxCandidateLimit     = 20
	matchesPageSize       = 10
)

// Service implements the Explore gRPC API.
// It translates transport messages into calls on the matching engine and
// the match repository.
type Service struct {
	appCtx *app.AppContext

	api.UnimplementedExploreServiceServer
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
func NewExploreService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// ListCandidates returns potential interview partners for a user.
//
// Behavior:
//   - Excludes every user with any match row against the requester.
//   - Each returned candidate is charged against today's view quota;
//     candidates already shown today are free.
//   - Stops early when the quota runs out and sets quota_exhausted.
//
// Example:
//
//	svc.ListCandidates(ctx, &api.ListCandidatesRequest{UserId: "42", Limit: 4})
func (s *Service) ListCandidates(ctx context.Context, req *api.ListCandidatesRequest) (*api.ListCandidatesResponse, error) {
	s.appCtx.Logger.Debug("ListCandidates called", "user", req.GetUserId(), "limit", req.GetLimit())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		s.appCtx.Logger.Error("Invalid user_id", "value", req.GetUserId(), "err", err)
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	if limit > maxCandidateLimit {
		limit = maxCandidateLimit
	}

	page, err := s.appCtx.Matching.Candidates(ctx, userID, limit)
	if err != nil {
		s.appCtx.Logger.Error("Candidates failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &api.ListCandidatesResponse{
		QuotaExhausted: page.Exhausted,
		Remaining:      uint32(page.Availability.Remaining),
	}
	if len(page.Users) == 0 && !page.Exhausted {
		// nothing was charged, so the gate reported no snapshot
		avail, err := s.appCtx.Ledger.AvailableToday(ctx, userID)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		resp.Remaining = uint32(avail.Remaining)
	}
	for _, u := range page.Users {
		resp.Candidates = append(resp.Candidates, &api.Candidate{
			UserId:          strconv.FormatUint(u.ID, 10),
			DisplayName:     u.DisplayName,
			JobType:         u.JobType,
			ExperienceLevel: u.ExperienceLevel,
		})
	}

	s.appCtx.Logger.Debug("ListCandidates result", "count", len(resp.Candidates), "exhausted", resp.QuotaExhausted)
	return resp, nil
}

// PutDecision likes or dislikes another user and reports whether this call
// formed a mutual match.
//
// Behavior:
//   - Validates actor and recipient IDs (must be different).
//   - Like: NONE → pending; pending from recipient → accepted (mutual).
//   - Dislike: NONE or pending from recipient → rejected.
//   - Repeated decisions are idempotent and return the current state.
//
// Example:
//
//	svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "2", LikedRecipient: true})
func (s *Service) PutDecision(ctx context.Context, req *api.PutDecisionRequest) (*api.PutDecisionResponse, error) {
	s.appCtx.Logger.Debug(
		"PutDecision called",
		"actor", req.GetActorUserId(),
		"recipient", req.GetRecipientUserId(),
		"liked", req.GetLikedRecipient(),
	)
	actorID, err := strconv.ParseUint(req.GetActorUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	if actorID == recipientID {
		return nil, svcErr.InvalidArgument("cannot decide on yourself")
	}

	var out matching.Outcome
	if req.GetLikedRecipient() {
		out, err = s.appCtx.Matching.Like(ctx, actorID, recipientID)
	} else {
		out, err = s.appCtx.Matching.Dislike(ctx, actorID, recipientID)
	}
	if err != nil {
		s.appCtx.Logger.Error("PutDecision failed", "actor", actorID, "recipient", recipientID, "err", err)
		return nil, svcErr.Map(err)
	}

	return &api.PutDecisionResponse{
		MatchId:     strconv.FormatUint(out.Match.ID, 10),
		State:       string(out.State.Kind),
		MutualLikes: out.MutualMatch,
	}, nil
}

// GetMatchState returns the relationship between two users regardless of
// who acted first.
func (s *Service) GetMatchState(ctx context.Context, req *api.MatchStateRequest) (*api.MatchStateResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	otherID, err := strconv.ParseUint(req.GetOtherUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("other_user_id must be a valid uint64")
	}

	state, m, err := s.appCtx.Matching.StateBetween(ctx, userID, otherID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &api.MatchStateResponse{State: string(state.Kind)}
	if state.Kind == matching.KindPending {
		resp.PendingFromUserId = strconv.FormatUint(state.From, 10)
	}
	if m != nil {
		resp.MatchId = strconv.FormatUint(m.ID, 10)
	}
	return resp, nil
}

// ListMatches returns the accepted matches of a user, newest first.
//
// Behavior:
//   - Supports cursor-based pagination with paginationToken.
//   - Each entry names the partner, never the storage order.
//
// Example:
//
//	svc.ListMatches(ctx, &api.ListMatchesRequest{UserId: "42"})
func (s *Service) ListMatches(ctx context.Context, req *api.ListMatchesRequest) (*api.ListMatchesResponse, error) {
	s.appCtx.Logger.Debug("ListMatches called", "user", req.GetUserId(), "token", req.GetPaginationToken())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	matches, nextToken, err := s.appCtx.Matches.ListAccepted(ctx, userID, req.PaginationToken, matchesPageSize)
	if err != nil {
		s.appCtx.Logger.Error("ListAccepted failed", "err", err)
		return nil, svcErr.Map(err)
	}

	partners := make([]uint64, 0, len(matches))
	for i := range matches {
		partners = append(partners, matches[i].Partner(userID))
	}
	names, err := s.appCtx.Users.DisplayNames(ctx, partners)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &api.ListMatchesResponse{NextPaginationToken: nextToken}
	for i := range matches {
		summary := service.MatchSummary(&matches[i], userID)
		summary.PartnerDisplayName = names[matches[i].Partner(userID)]
		resp.Matches = append(resp.Matches, summary)
	}
	return resp, nil
}

// CountMatches returns how many accepted matches the user has.
// Cache-first strategy:
//  1. Attempts to read from Redis (matches:count:userID).
//  2. On a miss, falls back to DB via repository.CountAccepted.
//  3. On DB fetch, updates Redis with a 1h TTL.
//
// The counter is evicted whenever a match forms for the user.
func (s *Service) CountMatches(ctx context.Context, req *api.CountMatchesRequest) (*api.CountMatchesResponse, error) {
	s.appCtx.Logger.Debug("CountMatches called", "user", req.GetUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	// try cache first
	if s.appCtx.RedisCache != nil {
		if n, ok, _ := s.appCtx.RedisCache.GetMatchCount(ctx, userID); ok {
			return &api.CountMatchesResponse{Count: uint64(n)}, nil
		}
	}

	// fallback: DB
	count, err := s.appCtx.Matches.CountAccepted(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if s.appCtx.RedisCache != nil {
		_ = s.appCtx.RedisCache.SetMatchCount(ctx, userID, count)
	}
	return &api.CountMatchesResponse{Count: uint64(count)}, nil
}
