package draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// Payload is what a submitted draft sends to the transaction service.
// MemberExpenses is positional: entry i is the share of roster participant i,
// or a single entry equal to Amount for a single-payer transaction.
type Payload struct {
	AccountID      string
	Description    string
	Amount         int64
	Payer          string
	Split          bool
	MemberExpenses []int64
}

// Receipt is the transaction service's answer to an accepted payload.
type Receipt struct {
	TransactionID string
	CreatedAt     int64
}

// TransactionService persists finalized allocations.
//
// Implementations return a *RejectionError when the payload breaks a business
// rule. Any other error is treated as a transport failure.
type TransactionService interface {
	CreateTransaction(ctx context.Context, payload Payload) (Receipt, error)
}

// Directory resolves members of an account.
type Directory interface {
	// AccountMembers returns the account's members in their fixed order.
	AccountMembers(ctx context.Context, accountID string) ([]Member, error)

	// DisplayNames maps member IDs to display names. Unknown IDs are omitted.
	DisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

// Member is a directory entry. It doubles as the identity of a roster row.
type Member = allocation.Member

var (
	// ErrSubmissionRejected is matched by *RejectionError.
	ErrSubmissionRejected = errors.New("submission rejected")
	// ErrTransportFailure is matched by *TransportError.
	ErrTransportFailure = errors.New("transaction service unavailable")
	// ErrSubmissionInFlight is returned when a draft is submitted twice concurrently.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrDraftClosed is returned for any operation on a submitted or closed draft.
	ErrDraftClosed = errors.New("draft is closed")
	// ErrDraftNotFound is returned by the registry for unknown draft IDs.
	ErrDraftNotFound = errors.New("draft not found")
)

// RejectionError is a business-rule failure reported by the transaction service.
// Reason is shown to the user verbatim.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSubmissionRejected, e.Reason)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrSubmissionRejected
}

// Reject builds a RejectionError with a formatted reason.
func Reject(format string, args ...any) error {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// TransportError wraps a failure to reach the transaction service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransportFailure, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

// classify keeps rejections as they are and turns everything else into a
// TransportError.
func classify(err error) error {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport
	}
	return &TransportError{Err: err}
}
