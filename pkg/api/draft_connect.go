package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// DraftServiceName is the fully-qualified name of the DraftService.
const DraftServiceName = "spendmanager.v1.DraftService"

// Procedure paths of the DraftService.
const (
	DraftServiceOpenDraftProcedure              = "/spendmanager.v1.DraftService/OpenDraft"
	DraftServiceGetDraftProcedure               = "/spendmanager.v1.DraftService/GetDraft"
	DraftServiceSetDescriptionProcedure         = "/spendmanager.v1.DraftService/SetDescription"
	DraftServiceSetAmountProcedure              = "/spendmanager.v1.DraftService/SetAmount"
	DraftServiceSetSplitProcedure               = "/spendmanager.v1.DraftService/SetSplit"
	DraftServiceSetParticipantIncludedProcedure = "/spendmanager.v1.DraftService/SetParticipantIncluded"
	DraftServiceSetShareProcedure               = "/spendmanager.v1.DraftService/SetShare"
	DraftServiceSetEqualSplitProcedure          = "/spendmanager.v1.DraftService/SetEqualSplit"
	DraftServiceRefreshParticipantsProcedure    = "/spendmanager.v1.DraftService/RefreshParticipants"
	DraftServiceSubmitDraftProcedure            = "/spendmanager.v1.DraftService/SubmitDraft"
	DraftServiceCloseDraftProcedure             = "/spendmanager.v1.DraftService/CloseDraft"
)

// DraftServiceHandler edits transaction drafts. Every mutation returns the draft as it stands afterwards.
type DraftServiceHandler interface {
	OpenDraft(context.Context, *connect.Request[OpenDraftRequest]) (*connect.Response[DraftResponse], error)
	GetDraft(context.Context, *connect.Request[GetDraftRequest]) (*connect.Response[DraftResponse], error)
	SetDescription(context.Context, *connect.Request[SetDescriptionRequest]) (*connect.Response[DraftResponse], error)
	SetAmount(context.Context, *connect.Request[SetAmountRequest]) (*connect.Response[DraftResponse], error)
	SetSplit(context.Context, *connect.Request[SetSplitRequest]) (*connect.Response[DraftResponse], error)
	SetParticipantIncluded(context.Context, *connect.Request[SetParticipantIncludedRequest]) (*connect.Response[DraftResponse], error)
	SetShare(context.Context, *connect.Request[SetShareRequest]) (*connect.Response[DraftResponse], error)
	SetEqualSplit(context.Context, *connect.Request[SetEqualSplitRequest]) (*connect.Response[DraftResponse], error)
	RefreshParticipants(context.Context, *connect.Request[RefreshParticipantsRequest]) (*connect.Response[DraftResponse], error)
	SubmitDraft(context.Context, *connect.Request[SubmitDraftRequest]) (*connect.Response[SubmitDraftResponse], error)
	CloseDraft(context.Context, *connect.Request[CloseDraftRequest]) (*connect.Response[CloseDraftResponse], error)
}

// NewDraftServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDraftServiceHandler(svc DraftServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(DraftServiceOpenDraftProcedure, connect.NewUnaryHandler(DraftServiceOpenDraftProcedure, svc.OpenDraft, opts...))
	mux.Handle(DraftServiceGetDraftProcedure, connect.NewUnaryHandler(DraftServiceGetDraftProcedure, svc.GetDraft, opts...))
	mux.Handle(DraftServiceSetDescriptionProcedure, connect.NewUnaryHandler(DraftServiceSetDescriptionProcedure, svc.SetDescription, opts...))
	mux.Handle(DraftServiceSetAmountProcedure, connect.NewUnaryHandler(DraftServiceSetAmountProcedure, svc.SetAmount, opts...))
	mux.Handle(DraftServiceSetSplitProcedure, connect.NewUnaryHandler(DraftServiceSetSplitProcedure, svc.SetSplit, opts...))
	mux.Handle(DraftServiceSetParticipantIncludedProcedure, connect.NewUnaryHandler(DraftServiceSetParticipantIncludedProcedure, svc.SetParticipantIncluded, opts...))
	mux.Handle(DraftServiceSetShareProcedure, connect.NewUnaryHandler(DraftServiceSetShareProcedure, svc.SetShare, opts...))
	mux.Handle(DraftServiceSetEqualSplitProcedure, connect.NewUnaryHandler(DraftServiceSetEqualSplitProcedure, svc.SetEqualSplit, opts...))
	mux.Handle(DraftServiceRefreshParticipantsProcedure, connect.NewUnaryHandler(DraftServiceRefreshParticipantsProcedure, svc.RefreshParticipants, opts...))
	mux.Handle(DraftServiceSubmitDraftProcedure, connect.NewUnaryHandler(DraftServiceSubmitDraftProcedure, svc.SubmitDraft, opts...))
	mux.Handle(DraftServiceCloseDraftProcedure, connect.NewUnaryHandler(DraftServiceCloseDraftProcedure, svc.CloseDraft, opts...))
	return "/" + DraftServiceName + "/", mux
}

// DraftServiceClient is a client for the DraftService.
type DraftServiceClient struct {
	openDraft              *connect.Client[OpenDraftRequest, DraftResponse]
	getDraft               *connect.Client[GetDraftRequest, DraftResponse]
	setDescription         *connect.Client[SetDescriptionRequest, DraftResponse]
	setAmount              *connect.Client[SetAmountRequest, DraftResponse]
	setSplit               *connect.Client[SetSplitRequest, DraftResponse]
	setParticipantIncluded *connect.Client[SetParticipantIncludedRequest, DraftResponse]
	setShare               *connect.Client[SetShareRequest, DraftResponse]
	setEqualSplit          *connect.Client[SetEqualSplitRequest, DraftResponse]
	refreshParticipants    *connect.Client[RefreshParticipantsRequest, DraftResponse]
	submitDraft            *connect.Client[SubmitDraftRequest, SubmitDraftResponse]
	closeDraft             *connect.Client[CloseDraftRequest, CloseDraftResponse]
}

// NewDraftServiceClient constructs a client for the DraftService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewDraftServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DraftServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &DraftServiceClient{
		openDraft: connect.NewClient[OpenDraftRequest, DraftResponse](httpClient, baseURL+DraftServiceOpenDraftProcedure, opts...),
		getDraft: connect.NewClient[GetDraftRequest, DraftResponse](httpClient, baseURL+DraftServiceGetDraftProcedure, opts...),
		setDescription: connect.NewClient[SetDescriptionRequest, DraftResponse](httpClient, baseURL+DraftServiceSetDescriptionProcedure, opts...),
		setAmount: connect.NewClient[SetAmountRequest, DraftResponse](httpClient, baseURL+DraftServiceSetAmountProcedure, opts...),
		setSplit: connect.NewClient[SetSplitRequest, DraftResponse](httpClient, baseURL+DraftServiceSetSplitProcedure, opts...),
		setParticipantIncluded: connect.NewClient[SetParticipantIncludedRequest, DraftResponse](httpClient, baseURL+DraftServiceSetParticipantIncludedProcedure, opts...),
		setShare: connect.NewClient[SetShareRequest, DraftResponse](httpClient, baseURL+DraftServiceSetShareProcedure, opts...),
		setEqualSplit: connect.NewClient[SetEqualSplitRequest, DraftResponse](httpClient, baseURL+DraftServiceSetEqualSplitProcedure, opts...),
		refreshParticipants: connect.NewClient[RefreshParticipantsRequest, DraftResponse](httpClient, baseURL+DraftServiceRefreshParticipantsProcedure, opts...),
		submitDraft: connect.NewClient[SubmitDraftRequest, SubmitDraftResponse](httpClient, baseURL+DraftServiceSubmitDraftProcedure, opts...),
		closeDraft: connect.NewClient[CloseDraftRequest, CloseDraftResponse](httpClient, baseURL+DraftServiceCloseDraftProcedure, opts...),
	}
}

// OpenDraft calls spendmanager.v1.DraftService.OpenDraft.
func (c *DraftServiceClient) OpenDraft(ctx context.Context, req *connect.Request[OpenDraftRequest]) (*connect.Response[DraftResponse], error) {
	return c.openDraft.CallUnary(ctx, req)
}

// GetDraft calls spendmanager.v1.DraftService.GetDraft.
func (c *DraftServiceClient) GetDraft(ctx context.Context, req *connect.Request[GetDraftRequest]) (*connect.Response[DraftResponse], error) {
	return c.getDraft.CallUnary(ctx, req)
}

// SetDescription calls spendmanager.v1.DraftService.SetDescription.
func (c *DraftServiceClient) SetDescription(ctx context.Context, req *connect.Request[SetDescriptionRequest]) (*connect.Response[DraftResponse], error) {
	return c.setDescription.CallUnary(ctx, req)
}

// SetAmount calls spendmanager.v1.DraftService.SetAmount.
func (c *DraftServiceClient) SetAmount(ctx context.Context, req *connect.Request[SetAmountRequest]) (*connect.Response[DraftResponse], error) {
	return c.setAmount.CallUnary(ctx, req)
}

// SetSplit calls spendmanager.v1.DraftService.SetSplit.
func (c *DraftServiceClient) SetSplit(ctx context.Context, req *connect.Request[SetSplitRequest]) (*connect.Response[DraftResponse], error) {
	return c.setSplit.CallUnary(ctx, req)
}

// SetParticipantIncluded calls spendmanager.v1.DraftService.SetParticipantIncluded.
func (c *DraftServiceClient) SetParticipantIncluded(ctx context.Context, req *connect.Request[SetParticipantIncludedRequest]) (*connect.Response[DraftResponse], error) {
	return c.setParticipantIncluded.CallUnary(ctx, req)
}

// SetShare calls spendmanager.v1.DraftService.SetShare.
func (c *DraftServiceClient) SetShare(ctx context.Context, req *connect.Request[SetShareRequest]) (*connect.Response[DraftResponse], error) {
	return c.setShare.CallUnary(ctx, req)
}

// SetEqualSplit calls spendmanager.v1.DraftService.SetEqualSplit.
func (c *DraftServiceClient) SetEqualSplit(ctx context.Context, req *connect.Request[SetEqualSplitRequest]) (*connect.Response[DraftResponse], error) {
	return c.setEqualSplit.CallUnary(ctx, req)
}

// RefreshParticipants calls spendmanager.v1.DraftService.RefreshParticipants.
func (c *DraftServiceClient) RefreshParticipants(ctx context.Context, req *connect.Request[RefreshParticipantsRequest]) (*connect.Response[DraftResponse], error) {
	return c.refreshParticipants.CallUnary(ctx, req)
}

// SubmitDraft calls spendmanager.v1.DraftService.SubmitDraft.
func (c *DraftServiceClient) SubmitDraft(ctx context.Context, req *connect.Request[SubmitDraftRequest]) (*connect.Response[SubmitDraftResponse], error) {
	return c.submitDraft.CallUnary(ctx, req)
}

// CloseDraft calls spendmanager.v1.DraftService.CloseDraft.
func (c *DraftServiceClient) CloseDraft(ctx context.Context, req *connect.Request[CloseDraftRequest]) (*connect.Response[CloseDraftResponse], error) {
	return c.closeDraft.CallUnary(ctx, req)
}
