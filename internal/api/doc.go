// Package api holds the gRPC contract of the interview-match server: the
// messages and service stubs generated from proto/interview/v1, plus the
// small hand-written hooks the server needs on top of them.
package api

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/oggyb/interview-match/internal/api --go-grpc_out=. --go-grpc_opt=module=github.com/oggyb/interview-match/internal/api interview/v1/explore.proto interview/v1/allowance.proto interview/v1/interview.proto
