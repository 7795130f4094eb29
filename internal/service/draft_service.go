package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/metrics"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/middleware"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/api"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/logging"
)

var _ api.DraftServiceHandler = (*DraftService)(nil)

// DraftService implements the Connect DraftService. Drafts belong to the
// member who opened them; other members see them as not found.
type DraftService struct {
	registry     *draft.Registry
	directory    draft.Directory
	transactions draft.TransactionService
	metrics      *metrics.Metrics
}

// NewDraftService creates a DraftService over the given registry and collaborators.
func NewDraftService(registry *draft.Registry, directory draft.Directory, transactions draft.TransactionService, m *metrics.Metrics) *DraftService {
	return &DraftService{
		registry:     registry,
		directory:    directory,
		transactions: transactions,
		metrics:      m,
	}
}

// OpenDraft starts a draft for an account the caller belongs to.
func (s *DraftService) OpenDraft(ctx context.Context, req *connect.Request[api.OpenDraftRequest]) (*connect.Response[api.DraftResponse], error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	slog.Info("OpenDraft request received", "account_id", req.Msg.AccountID, "member_id", memberID)

	members, err := s.directory.AccountMembers(ctx, req.Msg.AccountID)
	if err != nil {
		slog.Error("OpenDraft failed to load members", "account_id", req.Msg.AccountID, "error", err)
		return nil, toConnectError(err)
	}
	if !containsMember(members, memberID) {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you are not a member of this account"))
	}

	d := s.registry.Open(req.Msg.AccountID, memberID, members)
	if req.Msg.Description != "" {
		if err := d.SetDescription(req.Msg.Description); err != nil {
			return nil, toConnectError(err)
		}
	}

	s.metrics.DraftsOpened.Inc()
	s.metrics.OpenDrafts.Set(float64(s.registry.Len()))
	slog.Info("Draft opened", "draft_id", d.ID(), "account_id", req.Msg.AccountID, "participants", len(members))

	return draftResponse(d), nil
}

// GetDraft returns the current state of a draft.
func (s *DraftService) GetDraft(ctx context.Context, req *connect.Request[api.GetDraftRequest]) (*connect.Response[api.DraftResponse], error) {
	d, err := s.lookup(ctx, req.Msg.DraftID)
	if err != nil {
		return nil, err
	}
	return draftResponse(d), nil
}

// SetDescription replaces the draft's description.
func (s *DraftService) SetDescription(ctx context.Context, req *connect.Request[api.SetDescriptionRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetDescription(req.Msg.Description)
	})
}

// SetAmount handles a change of the amount field.
func (s *DraftService) SetAmount(ctx context.Context, req *connect.Request[api.SetAmountRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetAmount(req.Msg.Amount)
	})
}

// SetSplit switches between splitting across members and a single payer.
func (s *DraftService) SetSplit(ctx context.Context, req *connect.Request[api.SetSplitRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetSplit(req.Msg.Split)
	})
}

// SetParticipantIncluded includes or excludes one participant.
func (s *DraftService) SetParticipantIncluded(ctx context.Context, req *connect.Request[api.SetParticipantIncludedRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetIncluded(req.Msg.Index, req.Msg.Included)
	})
}

// SetShare records a typed share.
func (s *DraftService) SetShare(ctx context.Context, req *connect.Request[api.SetShareRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetShare(req.Msg.Index, req.Msg.Share)
	})
}

// SetEqualSplit toggles the equal split.
func (s *DraftService) SetEqualSplit(ctx context.Context, req *connect.Request[api.SetEqualSplitRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		return d.SetEqualSplit(req.Msg.Enabled)
	})
}

// RefreshParticipants reloads the account's members. Inclusion flags, shares
// and the equal split are reset.
func (s *DraftService) RefreshParticipants(ctx context.Context, req *connect.Request[api.RefreshParticipantsRequest]) (*connect.Response[api.DraftResponse], error) {
	return s.mutate(ctx, req.Msg.DraftID, func(d *draft.Draft) error {
		members, err := s.directory.AccountMembers(ctx, d.Snapshot().AccountID)
		if err != nil {
			return err
		}
		return d.Resize(members)
	})
}

// SubmitDraft validates the draft and sends it to the transaction service.
// An accepted draft is dropped from the registry.
func (s *DraftService) SubmitDraft(ctx context.Context, req *connect.Request[api.SubmitDraftRequest]) (*connect.Response[api.SubmitDraftResponse], error) {
	d, err := s.lookup(ctx, req.Msg.DraftID)
	if err != nil {
		return nil, err
	}

	slog.Info("SubmitDraft request received", "draft_id", d.ID())

	receipt, err := d.Submit(ctx, s.transactions)
	if err != nil {
		s.recordSubmitFailure(err)
		slog.Warn("SubmitDraft failed", "draft_id", d.ID(), "error", err)
		return nil, toConnectError(err)
	}

	s.metrics.Submissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	s.registry.Forget(d.ID())
	s.metrics.OpenDrafts.Set(float64(s.registry.Len()))
	slog.Info("Draft submitted", "draft_id", d.ID(), "transaction_id", receipt.TransactionID)

	return connect.NewResponse(&api.SubmitDraftResponse{
		TransactionID: receipt.TransactionID,
		CreatedAt:     receipt.CreatedAt,
	}), nil
}

// CloseDraft discards a draft.
func (s *DraftService) CloseDraft(ctx context.Context, req *connect.Request[api.CloseDraftRequest]) (*connect.Response[api.CloseDraftResponse], error) {
	d, err := s.lookup(ctx, req.Msg.DraftID)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Close(d.ID()); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.OpenDrafts.Set(float64(s.registry.Len()))
	slog.Info("Draft closed", "draft_id", d.ID())
	return connect.NewResponse(&api.CloseDraftResponse{}), nil
}

// RunSweeper closes idle drafts every interval until ctx is done.
func (s *DraftService) RunSweeper(ctx context.Context, interval time.Duration) error {
	log := logging.Component("draft-sweeper")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.registry.Sweep(); n > 0 {
				s.metrics.DraftsExpired.Add(float64(n))
				s.metrics.OpenDrafts.Set(float64(s.registry.Len()))
				log.Info("Expired idle drafts", "count", n, "open", s.registry.Len())
			}
		}
	}
}

func (s *DraftService) lookup(ctx context.Context, draftID string) (*draft.Draft, error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	d, err := s.registry.Get(draftID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if d.Payer() != memberID {
		return nil, toConnectError(draft.ErrDraftNotFound)
	}
	return d, nil
}

func (s *DraftService) mutate(ctx context.Context, draftID string, fn func(*draft.Draft) error) (*connect.Response[api.DraftResponse], error) {
	d, err := s.lookup(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		if kind := failureKind(err); kind != "" {
			s.metrics.ValidationFailures.WithLabelValues(kind).Inc()
		}
		slog.Warn("Draft event rejected", "draft_id", draftID, "error", err)
		return nil, toConnectError(err)
	}
	return draftResponse(d), nil
}

func (s *DraftService) recordSubmitFailure(err error) {
	outcome := metrics.OutcomeTransport
	switch {
	case failureKind(err) != "":
		outcome = metrics.OutcomeInvalid
		s.metrics.ValidationFailures.WithLabelValues(failureKind(err)).Inc()
	case errors.Is(err, draft.ErrSubmissionRejected):
		outcome = metrics.OutcomeRejected
	case errors.Is(err, draft.ErrSubmissionInFlight):
		outcome = metrics.OutcomeInFlight
	case errors.Is(err, draft.ErrDraftClosed):
		return
	}
	s.metrics.Submissions.WithLabelValues(outcome).Inc()
}

func containsMember(members []draft.Member, id string) bool {
	for _, m := range members {
		if m.ID == id {
			return true
		}
	}
	return false
}

func draftResponse(d *draft.Draft) *connect.Response[api.DraftResponse] {
	return connect.NewResponse(&api.DraftResponse{Draft: toAPIDraft(d.Snapshot())})
}

func toAPIDraft(snap draft.Snapshot) *api.Draft {
	participants := make([]api.Participant, len(snap.Participants))
	for i, p := range snap.Participants {
		participants[i] = api.Participant{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Included:    p.Included,
			Share:       p.Share,
		}
	}
	return &api.Draft{
		ID:           snap.ID,
		AccountID:    snap.AccountID,
		Payer:        snap.Payer,
		Description:  snap.Description,
		Amount:       snap.Amount,
		Total:        snap.Total,
		Split:        snap.Split,
		State:        snap.State.String(),
		Mode:         snap.Mode.String(),
		InFlight:     snap.InFlight,
		Participants: participants,
	}
}
