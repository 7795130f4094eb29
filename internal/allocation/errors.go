package allocation

import (
	"errors"
	"fmt"
)

var (
	// ErrAmountOutOfRange is matched by *AmountOutOfRangeError.
	ErrAmountOutOfRange = errors.New("amount out of range")
	// ErrShareMismatch is matched by *ShareMismatchError.
	ErrShareMismatch = errors.New("shares do not add up to the amount")
	// ErrMalformedAmount is returned for text that is not a whole, non-negative number.
	ErrMalformedAmount = errors.New("amount must be a whole non-negative number")
	// ErrParticipantIndex is returned when an index does not address a participant.
	ErrParticipantIndex = errors.New("participant index out of range")
	// ErrParticipantExcluded is returned when editing the share of an excluded participant.
	ErrParticipantExcluded = errors.New("participant is excluded")
)

// AmountOutOfRangeError reports a total that is not positive or exceeds the ceiling.
type AmountOutOfRangeError struct {
	Total   int64
	Ceiling int64
}

func (e *AmountOutOfRangeError) Error() string {
	if e.Total <= 0 {
		return fmt.Sprintf("amount %d must be greater than zero", e.Total)
	}
	return fmt.Sprintf("amount %d exceeds the limit of %d", e.Total, e.Ceiling)
}

func (e *AmountOutOfRangeError) Is(target error) bool {
	return target == ErrAmountOutOfRange
}

// ShareMismatchError reports shares whose sum differs from the declared total.
type ShareMismatchError struct {
	Sum   int64
	Total int64
}

func (e *ShareMismatchError) Error() string {
	return fmt.Sprintf("shares add up to %d, expected %d", e.Sum, e.Total)
}

func (e *ShareMismatchError) Is(target error) bool {
	return target == ErrShareMismatch
}
