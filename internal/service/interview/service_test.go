package interview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/service/interview"
	"github.com/oggyb/interview-match/internal/service/servicetest"
)

func setupService(t *testing.T) (*interview.Service, *servicetest.Env) {
	t.Helper()
	env := servicetest.New(t)
	return interview.NewInterviewService(env.App), env
}

// ageMatch moves the acceptance of a seeded match into the past.
func ageMatch(t *testing.T, env *servicetest.Env, id uint64, days int) {
	t.Helper()
	at := servicetest.Now.AddDate(0, 0, -days)
	require.NoError(t, env.DB.Model(&db.Match{}).Where("id = ?", id).
		Updates(map[string]any{"accepted_at": at, "created_at": at}).Error)
}

func TestSubmitFeedbackOnce(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	content := "solid system design round"

	resp, err := svc.SubmitFeedback(ctx, &api.SubmitFeedbackRequest{
		MatchId: "1", UserId: "2", InterviewCompleted: true, Content: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, "yes", resp.InterviewStatus)
	assert.NotEmpty(t, resp.FeedbackId)

	_, err = svc.SubmitFeedback(ctx, &api.SubmitFeedbackRequest{MatchId: "1", UserId: "2"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	var fb db.Feedback
	require.NoError(t, env.DB.Where("match_id = ? AND user_id = ?", 1, 2).Take(&fb).Error)
	assert.Equal(t, content, *fb.Content)
	assert.Len(t, env.Pub.OfType(events.TypeFeedbackSubmitted), 1)
}

func TestSubmitFeedbackErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	cases := map[string]struct {
		req  *api.SubmitFeedbackRequest
		code codes.Code
	}{
		"bad match id":    {&api.SubmitFeedbackRequest{MatchId: "abc", UserId: "1"}, codes.InvalidArgument},
		"not participant": {&api.SubmitFeedbackRequest{MatchId: "1", UserId: "4"}, codes.PermissionDenied},
		"pending match":   {&api.SubmitFeedbackRequest{MatchId: "2", UserId: "1"}, codes.AlreadyExists},
		"unknown match":   {&api.SubmitFeedbackRequest{MatchId: "99", UserId: "1"}, codes.NotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SubmitFeedback(ctx, tc.req)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}
}

func TestGetPendingFeedback(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.GetPendingFeedback(ctx, &api.UserRequest{UserId: "1"})
	require.NoError(t, err)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "1", resp.Match.MatchId)
	assert.Equal(t, "2", resp.Match.PartnerUserId)

	_, err = svc.SubmitFeedback(ctx, &api.SubmitFeedbackRequest{MatchId: "1", UserId: "1"})
	require.NoError(t, err)

	resp, err = svc.GetPendingFeedback(ctx, &api.UserRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Nil(t, resp.Match)
}

func TestUpdateContactStatusScheduled(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.UpdateContactStatus(ctx, &api.UpdateContactStatusRequest{MatchId: "1", UserId: "2", Status: "scheduled"})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", resp.ContactStatus)
	assert.Equal(t, uint64(servicetest.Now.UnixMilli()), resp.InterviewScheduledUnixMs)

	_, err = svc.UpdateContactStatus(ctx, &api.UpdateContactStatusRequest{MatchId: "1", UserId: "3", Status: "contacted"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.UpdateContactStatus(ctx, &api.UpdateContactStatusRequest{MatchId: "1", UserId: "1", Status: "unknown"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListReminders(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.ListReminders(ctx, &api.UserRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Reminders, "seeded match is younger than the reminder age")
}

func TestListRemindersStale(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	ageMatch(t, env, 1, 5)

	resp, err := svc.ListReminders(ctx, &api.UserRequest{UserId: "2"})
	require.NoError(t, err)
	require.Len(t, resp.Reminders, 1)
	assert.True(t, proto.Equal(&api.Reminder{
		MatchId:            "1",
		PartnerUserId:      "1",
		PartnerDisplayName: "alice",
		DaysSinceMatch:     5,
		ContactStatus:      "not_contacted",
	}, resp.Reminders[0]), "%v", resp.Reminders[0])

	_, err = svc.UpdateContactStatus(ctx, &api.UpdateContactStatusRequest{MatchId: "1", UserId: "2", Status: "completed"})
	require.NoError(t, err)
	resp, err = svc.ListReminders(ctx, &api.UserRequest{UserId: "2"})
	require.NoError(t, err)
	assert.Empty(t, resp.Reminders)
}
