package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestListMatchesRequestWireRoundTrip(t *testing.T) {
	token := "abc"
	raw, err := proto.Marshal(&ListMatchesRequest{UserId: "7", PaginationToken: &token})
	require.NoError(t, err)

	var back ListMatchesRequest
	require.NoError(t, proto.Unmarshal(raw, &back))
	assert.Equal(t, "abc", back.GetPaginationToken())
	assert.NotNil(t, back.PaginationToken)
	assert.Equal(t, "7", back.ActingUserID())

	// an unset optional stays distinguishable from an empty one
	raw, err = proto.Marshal(&ListMatchesRequest{UserId: "7"})
	require.NoError(t, err)
	var bare ListMatchesRequest
	require.NoError(t, proto.Unmarshal(raw, &bare))
	assert.Nil(t, bare.PaginationToken)
}

func TestNilRequestGetters(t *testing.T) {
	var req *PutDecisionRequest
	assert.Empty(t, req.GetActorUserId())
	assert.False(t, req.GetLikedRecipient())
	assert.Empty(t, (*ListMatchesRequest)(nil).GetPaginationToken())
}

func TestServiceDescsListMethods(t *testing.T) {
	assert.Len(t, ExploreService_ServiceDesc.Methods, 5)
	assert.Len(t, AllowanceService_ServiceDesc.Methods, 3)
	assert.Len(t, InterviewService_ServiceDesc.Methods, 4)
	assert.Equal(t, "PutDecision", ExploreService_ServiceDesc.Methods[1].MethodName)
	assert.Equal(t, "interview/v1/explore.proto", ExploreService_ServiceDesc.Metadata)
}

func TestDescriptorsRegistered(t *testing.T) {
	for _, name := range []string{
		"interview.v1.ExploreService",
		"interview.v1.AllowanceService",
		"interview.v1.InterviewService",
	} {
		d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(name))
		require.NoError(t, err, name)
		_, ok := d.(protoreflect.ServiceDescriptor)
		assert.True(t, ok, name)
	}

	svc := File_interview_v1_explore_proto.Services().ByName("ExploreService")
	require.NotNil(t, svc)
	assert.Equal(t, 5, svc.Methods().Len())

	// pending feedback reuses MatchSummary from explore.proto
	pending := File_interview_v1_interview_proto.Messages().ByName("PendingFeedbackResponse")
	require.NotNil(t, pending)
	match := pending.Fields().ByName("match")
	require.NotNil(t, match)
	assert.Equal(t, protoreflect.FullName("interview.v1.MatchSummary"), match.Message().FullName())
}
