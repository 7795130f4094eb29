package allocation

import (
	"fmt"
	"math"
)

// DefaultCeiling is the largest transaction amount accepted unless configured otherwise.
const DefaultCeiling int64 = 100_000

// Request is the allocation as it stands when the user submits.
type Request struct {
	Total int64
	Mode  Mode

	// Split is false for single-payer transactions; Shares is ignored then.
	Split bool

	// Shares is aligned with roster order, one entry per participant.
	Shares []string
}

// ValidatedAllocation is an allocation whose shares are known to sum to Total.
type ValidatedAllocation struct {
	Total int64
	Mode  Mode
	Split bool

	// Shares is in roster order; a single-payer allocation has exactly one
	// share equal to Total.
	Shares []int64
}

// Validate checks req before it is handed to the transaction service.
//
// The total is range checked first. A single-payer request is then valid as a
// single full share. For a split request every share is parsed (blank counts
// as 0) and their sum must equal the total exactly.
func Validate(req Request, ceiling int64) (ValidatedAllocation, error) {
	if req.Total <= 0 || req.Total > ceiling {
		return ValidatedAllocation{}, &AmountOutOfRangeError{Total: req.Total, Ceiling: ceiling}
	}

	if !req.Split {
		return ValidatedAllocation{
			Total:  req.Total,
			Mode:   req.Mode,
			Shares: []int64{req.Total},
		}, nil
	}

	shares := make([]int64, len(req.Shares))
	var sum int64
	for i, text := range req.Shares {
		units, err := ParseUnits(text)
		if err != nil {
			return ValidatedAllocation{}, fmt.Errorf("share %d: %w", i, err)
		}
		if units > math.MaxInt64-sum {
			return ValidatedAllocation{}, fmt.Errorf("share %d: %w: sum overflows", i, ErrMalformedAmount)
		}
		shares[i] = units
		sum += units
	}

	if sum != req.Total {
		return ValidatedAllocation{}, &ShareMismatchError{Sum: sum, Total: req.Total}
	}

	return ValidatedAllocation{
		Total:  req.Total,
		Mode:   req.Mode,
		Split:  true,
		Shares: shares,
	}, nil
}
