package api

// ActingUser is implemented by every request that acts on behalf of a user,
// so the auth interceptor can compare it with the authenticated identity.
type ActingUser interface {
	ActingUserID() string
}

func (x *ListCandidatesRequest) ActingUserID() string      { return x.GetUserId() }
func (x *PutDecisionRequest) ActingUserID() string         { return x.GetActorUserId() }
func (x *MatchStateRequest) ActingUserID() string          { return x.GetUserId() }
func (x *ListMatchesRequest) ActingUserID() string         { return x.GetUserId() }
func (x *CountMatchesRequest) ActingUserID() string        { return x.GetUserId() }
func (x *AvailabilityRequest) ActingUserID() string        { return x.GetUserId() }
func (x *RecordTaskRequest) ActingUserID() string          { return x.GetUserId() }
func (x *ConsumeViewRequest) ActingUserID() string         { return x.GetUserId() }
func (x *UserRequest) ActingUserID() string                { return x.GetUserId() }
func (x *SubmitFeedbackRequest) ActingUserID() string      { return x.GetUserId() }
func (x *UpdateContactStatusRequest) ActingUserID() string { return x.GetUserId() }
