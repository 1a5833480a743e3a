package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/interview-match/internal/api"
)

func call(t *testing.T, v *Verifier, token string, req any, method string) (uint64, error) {
	t.Helper()
	ctx := context.Background()
	if token != "" {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", "Bearer "+token))
	}
	var seen uint64
	_, err := v.UnaryInterceptor()(ctx, req, &grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, req any) (any, error) {
			seen, _ = UserID(ctx)
			return "ok", nil
		})
	return seen, err
}

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret")
	token, err := v.Issue(42, time.Minute)
	require.NoError(t, err)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestVerifyRejects(t *testing.T) {
	v := NewVerifier("secret")

	other, err := NewVerifier("other").Issue(1, time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := v.Issue(1, -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	named, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = v.Verify(named)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestInterceptor(t *testing.T) {
	v := NewVerifier("secret")
	token, err := v.Issue(7, time.Minute)
	require.NoError(t, err)
	method := api.ExploreService_PutDecision_FullMethodName

	seen, err := call(t, v, token, &api.PutDecisionRequest{ActorUserId: "7", RecipientUserId: "8"}, method)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), seen)

	_, err = call(t, v, token, &api.PutDecisionRequest{ActorUserId: "8", RecipientUserId: "7"}, method)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = call(t, v, "", &api.PutDecisionRequest{ActorUserId: "7"}, method)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = call(t, v, "", nil, "/grpc.health.v1.Health/Check")
	assert.NoError(t, err)
}
