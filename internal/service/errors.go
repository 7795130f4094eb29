package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
)

// printer formats amounts in user-facing messages with digit grouping.
var printer = message.NewPrinter(language.English)

var errUnavailable = errors.New("the transaction service is unavailable, please try again")

// toConnectError maps domain errors to Connect codes. Messages of validation
// errors are meant to be shown to the user as they are.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var (
		mismatch   *allocation.ShareMismatchError
		outOfRange *allocation.AmountOutOfRangeError
		rejection  *draft.RejectionError
	)
	switch {
	case errors.As(err, &mismatch):
		return shareMismatchError(mismatch)
	case errors.As(err, &outOfRange):
		if outOfRange.Total <= 0 {
			return connect.NewError(connect.CodeInvalidArgument, errors.New("amount must be greater than zero"))
		}
		return connect.NewError(connect.CodeInvalidArgument,
			errors.New(printer.Sprintf("amount %d exceeds the limit of %d", outOfRange.Total, outOfRange.Ceiling)))
	case errors.Is(err, allocation.ErrMalformedAmount),
		errors.Is(err, allocation.ErrParticipantIndex),
		errors.Is(err, allocation.ErrParticipantExcluded):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &rejection):
		return connect.NewError(connect.CodeFailedPrecondition, errors.New(rejection.Reason))
	case errors.Is(err, draft.ErrTransportFailure):
		slog.Error("Transaction service call failed", "error", err)
		return connect.NewError(connect.CodeUnavailable, errUnavailable)
	case errors.Is(err, draft.ErrSubmissionInFlight):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, draft.ErrDraftClosed),
		errors.Is(err, draft.ErrDraftNotFound),
		errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// shareMismatchError carries sum and total as a google.protobuf.Struct detail
// so clients can highlight the difference without parsing the message.
func shareMismatchError(mismatch *allocation.ShareMismatchError) *connect.Error {
	connectErr := connect.NewError(connect.CodeFailedPrecondition,
		errors.New(printer.Sprintf("shares add up to %d, but the amount is %d", mismatch.Sum, mismatch.Total)))

	fields, err := structpb.NewStruct(map[string]any{
		"sum":   mismatch.Sum,
		"total": mismatch.Total,
	})
	if err != nil {
		return connectErr
	}
	if detail, err := connect.NewErrorDetail(fields); err == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// failureKind labels validation failures for metrics. It returns "" for
// errors that are not validation failures.
func failureKind(err error) string {
	switch {
	case errors.Is(err, allocation.ErrAmountOutOfRange):
		return "amount_out_of_range"
	case errors.Is(err, allocation.ErrShareMismatch):
		return "share_mismatch"
	case errors.Is(err, allocation.ErrMalformedAmount):
		return "malformed_amount"
	case errors.Is(err, allocation.ErrParticipantIndex):
		return "participant_index"
	case errors.Is(err, allocation.ErrParticipantExcluded):
		return "participant_excluded"
	default:
		return ""
	}
}
