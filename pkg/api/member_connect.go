package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// MemberServiceName is the fully-qualified name of the MemberService.
const MemberServiceName = "spendmanager.v1.MemberService"

// Procedure paths of the MemberService.
const (
	MemberServiceCreateMemberProcedure = "/spendmanager.v1.MemberService/CreateMember"
)

// MemberServiceHandler registers members. It is the only service reachable without a token.
type MemberServiceHandler interface {
	CreateMember(context.Context, *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(MemberServiceCreateMemberProcedure, connect.NewUnaryHandler(MemberServiceCreateMemberProcedure, svc.CreateMember, opts...))
	return "/" + MemberServiceName + "/", mux
}

// MemberServiceClient is a client for the MemberService.
type MemberServiceClient struct {
	createMember *connect.Client[CreateMemberRequest, CreateMemberResponse]
}

// NewMemberServiceClient constructs a client for the MemberService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &MemberServiceClient{
		createMember: connect.NewClient[CreateMemberRequest, CreateMemberResponse](httpClient, baseURL+MemberServiceCreateMemberProcedure, opts...),
	}
}

// CreateMember calls spendmanager.v1.MemberService.CreateMember.
func (c *MemberServiceClient) CreateMember(ctx context.Context, req *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}
