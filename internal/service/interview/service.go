package interview

import (
	"context"
	"strconv"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/app"
	"github.com/oggyb/interview-match/internal/db"
	svcErr "github.com/oggyb/interview-match/internal/errors"
	"github.com/oggyb/interview-match/internal/service"
)

// Service implements the Interview gRPC API: feedback, contact progress
// and reminders of accepted matches.
type Service struct {
	appCtx *app.AppContext

	api.UnimplementedInterviewServiceServer
}

func NewInterviewService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// GetPendingFeedback returns the oldest accepted match still waiting for
// the user's feedback. match is empty when there is none.
func (s *Service) GetPendingFeedback(ctx context.Context, req *api.UserRequest) (*api.PendingFeedbackResponse, error) {
	s.appCtx.Logger.Debug("GetPendingFeedback called", "user", req.GetUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	m, err := s.appCtx.Feedback.PendingFeedbackFor(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &api.PendingFeedbackResponse{}
	if m != nil {
		resp.Match = service.MatchSummary(m, userID)
	}
	return resp, nil
}

// SubmitFeedback records the user's feedback on a match. A second submission
// for the same match is rejected with AlreadyExists.
func (s *Service) SubmitFeedback(ctx context.Context, req *api.SubmitFeedbackRequest) (*api.SubmitFeedbackResponse, error) {
	s.appCtx.Logger.Debug("SubmitFeedback called", "match", req.GetMatchId(), "user", req.GetUserId())

	matchID, err := strconv.ParseUint(req.GetMatchId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("match_id must be a valid uint64")
	}
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	fb, err := s.appCtx.Feedback.SubmitFeedback(ctx, matchID, userID, req.InterviewCompleted, req.Content)
	if err != nil {
		s.appCtx.Logger.Error("SubmitFeedback failed", "match", matchID, "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &api.SubmitFeedbackResponse{
		FeedbackId:      strconv.FormatUint(fb.ID, 10),
		InterviewStatus: fb.InterviewStatus,
	}, nil
}

// UpdateContactStatus moves the contact progress of an accepted match.
//
// Behavior:
//   - Only the two participants may update it.
//   - Any status may follow any other; "scheduled" stamps the interview time.
func (s *Service) UpdateContactStatus(ctx context.Context, req *api.UpdateContactStatusRequest) (*api.MatchSummary, error) {
	s.appCtx.Logger.Debug("UpdateContactStatus called", "match", req.GetMatchId(), "user", req.GetUserId(), "status", req.GetStatus())

	matchID, err := strconv.ParseUint(req.GetMatchId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("match_id must be a valid uint64")
	}
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	m, err := s.appCtx.Feedback.UpdateContactStatus(ctx, matchID, userID, db.ContactStatus(req.GetStatus()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return service.MatchSummary(m, userID), nil
}

// ListReminders returns the user's stale accepted matches, oldest first.
func (s *Service) ListReminders(ctx context.Context, req *api.UserRequest) (*api.ListRemindersResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	reminders, err := s.appCtx.Feedback.Reminders(ctx, userID, s.appCtx.Days.Now())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &api.ListRemindersResponse{}
	for _, r := range reminders {
		resp.Reminders = append(resp.Reminders, &api.Reminder{
			MatchId:            strconv.FormatUint(r.MatchID, 10),
			PartnerUserId:      strconv.FormatUint(r.PartnerID, 10),
			PartnerDisplayName: r.PartnerDisplayName,
			DaysSinceMatch:     uint32(r.DaysSinceMatch),
			ContactStatus:      string(r.ContactStatus),
		})
	}
	return resp, nil
}
