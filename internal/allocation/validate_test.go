package allocation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		want      []int64
		wantErr   error
		wantSum   int64
		wantSplit bool
	}{
		{
			name:      "equal split of 90 across three",
			req:       Request{Total: 90, Mode: ModeEqual, Split: true, Shares: []string{"30", "30", "30"}},
			want:      []int64{30, 30, 30},
			wantSplit: true,
		},
		{
			name: "single payer at the ceiling",
			req:  Request{Total: 100000, Mode: ModeManual},
			want: []int64{100000},
		},
		{
			name:    "manual shares over the total",
			req:     Request{Total: 50, Mode: ModeManual, Split: true, Shares: []string{"20", "20", "20"}},
			wantErr: ErrShareMismatch,
			wantSum: 60,
		},
		{
			name:    "off by one unit",
			req:     Request{Total: 100, Split: true, Shares: []string{"34", "33", "32"}},
			wantErr: ErrShareMismatch,
			wantSum: 99,
		},
		{
			name:      "blank shares count as zero",
			req:       Request{Total: 40, Split: true, Shares: []string{"40", "", "0"}},
			want:      []int64{40, 0, 0},
			wantSplit: true,
		},
		{
			name:    "all blank",
			req:     Request{Total: 40, Split: true, Shares: []string{"", ""}},
			wantErr: ErrShareMismatch,
			wantSum: 0,
		},
		{
			name:    "zero total",
			req:     Request{Total: 0, Split: true, Shares: []string{"0"}},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name:    "negative total",
			req:     Request{Total: -5},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name:    "above the ceiling",
			req:     Request{Total: 100001, Split: true, Shares: []string{"100001"}},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name:    "fractional share",
			req:     Request{Total: 10, Split: true, Shares: []string{"4.5", "5.5"}},
			wantErr: ErrMalformedAmount,
		},
		{
			name:    "non numeric share",
			req:     Request{Total: 10, Split: true, Shares: []string{"ten"}},
			wantErr: ErrMalformedAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.req, DefaultCeiling)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var mismatch *ShareMismatchError
				if errors.As(err, &mismatch) {
					assert.Equal(t, tt.wantSum, mismatch.Sum)
					assert.Equal(t, tt.req.Total, mismatch.Total)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Shares)
			assert.Equal(t, tt.req.Total, got.Total)
			assert.Equal(t, tt.wantSplit, got.Split)
		})
	}
}

func TestValidateRangeCheckedBeforeShares(t *testing.T) {
	_, err := Validate(Request{Total: 0, Split: true, Shares: []string{"garbage"}}, DefaultCeiling)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.NotErrorIs(t, err, ErrMalformedAmount)
}

func TestValidateCustomCeiling(t *testing.T) {
	_, err := Validate(Request{Total: 600}, 500)

	var oor *AmountOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, int64(500), oor.Ceiling)
	assert.Equal(t, "amount 600 exceeds the limit of 500", err.Error())
}

func TestShareMismatchMessageCarriesBothValues(t *testing.T) {
	_, err := Validate(Request{Total: 50, Split: true, Shares: []string{"20", "20", "20"}}, DefaultCeiling)
	require.Error(t, err)
	assert.Equal(t, "shares add up to 60, expected 50", err.Error())
}

func TestValidateEqualSplitAlwaysPasses(t *testing.T) {
	mask := []bool{true, false, true, true}
	for total := int64(1); total <= 500; total++ {
		units, ok := ComputeEqualShares(total, mask)
		require.True(t, ok)

		shares := make([]string, len(units))
		for i, u := range units {
			shares[i] = FormatUnits(u)
		}
		_, err := Validate(Request{Total: total, Mode: ModeEqual, Split: true, Shares: shares}, DefaultCeiling)
		require.NoError(t, err, "total=%d", total)
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "   ", want: 0},
		{in: "42", want: 42},
		{in: " 7 ", want: 7},
		{in: "30.00", want: 30},
		{in: "0", want: 0},
		{in: "12.5", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "+3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "99999999999999999999999", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "1E5", wantErr: true},
		{in: "5.", wantErr: true},
		{in: ".5", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "0x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnits(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
