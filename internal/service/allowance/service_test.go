package allowance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/service/allowance"
	"github.com/oggyb/interview-match/internal/service/servicetest"
)

func setupService(t *testing.T) (*allowance.Service, *servicetest.Env) {
	t.Helper()
	env := servicetest.New(t)
	return allowance.NewAllowanceService(env.App), env
}

func TestGetAvailabilityFreshDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.GetAvailability(ctx, &api.AvailabilityRequest{UserId: "1"})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&api.AvailabilityResponse{
		DayKey:    "2025-03-20",
		Base:      4,
		Total:     4,
		Remaining: 4,
	}, resp), "%v", resp)
}

func TestRecordTaskPostRaisesTotal(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	// warm the availability cache first
	_, err := svc.GetAvailability(ctx, &api.AvailabilityRequest{UserId: "1"})
	require.NoError(t, err)

	resp, err := svc.RecordTask(ctx, &api.RecordTaskRequest{UserId: "1", Kind: "post"})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), resp.Reward)
	assert.Equal(t, uint32(2), resp.BonusQuota)
	assert.Equal(t, uint32(2), resp.BonusBalance)

	avail, err := svc.GetAvailability(ctx, &api.AvailabilityRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint32(6), avail.Total)

	assert.Len(t, env.Pub.OfType(events.TypeTaskRewardGranted), 1)
}

func TestRecordTaskInvalidKind(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.RecordTask(ctx, &api.RecordTaskRequest{UserId: "1", Kind: "like"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestConsumeViewQuotaExceeded(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, c := range []string{"2", "3", "4", "5"} {
		resp, err := svc.ConsumeView(ctx, &api.ConsumeViewRequest{UserId: "1", CandidateUserId: c})
		require.NoError(t, err)
		assert.False(t, resp.AlreadyViewed)
	}

	again, err := svc.ConsumeView(ctx, &api.ConsumeViewRequest{UserId: "1", CandidateUserId: "2"})
	require.NoError(t, err)
	assert.True(t, again.AlreadyViewed)

	_, err = svc.ConsumeView(ctx, &api.ConsumeViewRequest{UserId: "1", CandidateUserId: "9"})
	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, codes.ResourceExhausted, st.Code())

	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "QUOTA_EXCEEDED", info.GetReason())
}

func TestConsumeViewSelf(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.ConsumeView(ctx, &api.ConsumeViewRequest{UserId: "1", CandidateUserId: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
