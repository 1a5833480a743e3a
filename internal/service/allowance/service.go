package allowance

import (
	"context"
	"strconv"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/app"
	svcErr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/quota"
)

// Service implements the Allowance gRPC API on top of the quota ledger and
// the view gate.
type Service struct {
	appCtx *app.AppContext

	api.UnimplementedAllowanceServiceServer
}

func NewAllowanceService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// GetAvailability reports today's base, bonus, total, used and remaining views.
//
// Example:
//
//	svc.GetAvailability(ctx, &api.AvailabilityRequest{UserId: "42"})
func (s *Service) GetAvailability(ctx context.Context, req *api.AvailabilityRequest) (*api.AvailabilityResponse, error) {
	s.appCtx.Logger.Debug("GetAvailability called", "user", req.GetUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	avail, err := s.appCtx.Ledger.AvailableToday(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("AvailableToday failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &api.AvailabilityResponse{
		DayKey:    avail.DayKey,
		Base:      uint32(avail.Base),
		Bonus:     uint32(avail.Bonus),
		Total:     uint32(avail.Total),
		Used:      uint32(avail.Used),
		Remaining: uint32(avail.Remaining),
	}, nil
}

// RecordTask counts a post or comment toward today's rewards.
//
// Behavior:
//   - The first post of the day grants 2 bonus views.
//   - Every third comment grants 1 bonus view.
//   - reward is 0 when no threshold was crossed.
func (s *Service) RecordTask(ctx context.Context, req *api.RecordTaskRequest) (*api.RecordTaskResponse, error) {
	s.appCtx.Logger.Debug("RecordTask called", "user", req.GetUserId(), "kind", req.GetKind())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	kind := quota.TaskKind(req.GetKind())
	if !kind.Valid() {
		return nil, svcErr.InvalidArgument("kind must be post or comment")
	}

	p, err := s.appCtx.Ledger.RecordTaskProgress(ctx, userID, kind)
	if err != nil {
		s.appCtx.Logger.Error("RecordTaskProgress failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &api.RecordTaskResponse{
		Reward:        uint32(p.Reward),
		PostsToday:    uint32(p.Row.PostsToday),
		CommentsToday: uint32(p.Row.CommentsToday),
		BonusQuota:    uint32(p.Row.BonusQuota),
		BonusBalance:  uint32(p.Row.BonusBalance),
	}, nil
}

// ConsumeView charges one candidate view, e.g. when a profile is opened
// directly. A denied view is reported as ResourceExhausted.
func (s *Service) ConsumeView(ctx context.Context, req *api.ConsumeViewRequest) (*api.ConsumeViewResponse, error) {
	s.appCtx.Logger.Debug("ConsumeView called", "user", req.GetUserId(), "candidate", req.GetCandidateUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	candidateID, err := strconv.ParseUint(req.GetCandidateUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("candidate_user_id must be a valid uint64")
	}

	d, err := s.appCtx.Gate.TryConsumeView(ctx, userID, candidateID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !d.Allowed {
		return nil, svcErr.Map(svcErr.ErrQuotaExceeded)
	}
	return &api.ConsumeViewResponse{
		AlreadyViewed: d.AlreadyViewed,
		Remaining:     uint32(d.Availability.Remaining),
	}, nil
}
