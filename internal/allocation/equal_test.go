package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEqualShares(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		mask  []bool
		want  []int64
	}{
		{name: "even split", total: 90, mask: []bool{true, true, true}, want: []int64{30, 30, 30}},
		{name: "one unit remainder", total: 100, mask: []bool{true, true, true}, want: []int64{34, 33, 33}},
		{name: "two unit remainder", total: 101, mask: []bool{true, true, true}, want: []int64{34, 34, 33}},
		{name: "excluded last", total: 100, mask: []bool{true, true, false}, want: []int64{50, 50, 0}},
		{
			name:  "remainder skips excluded",
			total: 11,
			mask:  []bool{false, true, false, true, true},
			want:  []int64{0, 4, 0, 4, 3},
		},
		{name: "zero total", total: 0, mask: []bool{true, true}, want: []int64{0, 0}},
		{name: "total smaller than n", total: 2, mask: []bool{true, true, true, true}, want: []int64{1, 1, 0, 0}},
		{name: "single participant", total: 100000, mask: []bool{true}, want: []int64{100000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeEqualShares(tt.total, tt.mask)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeEqualSharesNoOp(t *testing.T) {
	t.Run("nobody included", func(t *testing.T) {
		got, ok := ComputeEqualShares(100, []bool{false, false})
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("empty mask", func(t *testing.T) {
		_, ok := ComputeEqualShares(100, nil)
		assert.False(t, ok)
	})

	t.Run("negative total", func(t *testing.T) {
		_, ok := ComputeEqualShares(-1, []bool{true})
		assert.False(t, ok)
	})
}

func TestComputeEqualSharesSumInvariant(t *testing.T) {
	for size := 1; size <= 6; size++ {
		for bits := 1; bits < 1<<size; bits++ {
			mask := make([]bool, size)
			for i := range mask {
				mask[i] = bits&(1<<i) != 0
			}
			for total := int64(0); total <= 250; total++ {
				shares, ok := ComputeEqualShares(total, mask)
				require.True(t, ok)

				var sum, lo, hi int64
				lo = -1
				for i, s := range shares {
					sum += s
					if !mask[i] {
						require.Zero(t, s, "excluded participant %d got a share", i)
						continue
					}
					if lo == -1 || s < lo {
						lo = s
					}
					if s > hi {
						hi = s
					}
				}
				require.Equal(t, total, sum, "mask=%v total=%d", mask, total)
				require.LessOrEqual(t, hi-lo, int64(1), "mask=%v total=%d", mask, total)
			}
		}
	}
}

func TestComputeEqualSharesRemainderGoesToLowestIndexes(t *testing.T) {
	mask := []bool{true, false, true, true, false, true}
	shares, ok := ComputeEqualShares(10, mask)
	require.True(t, ok)

	// base 2, remainder 2: the first two included indexes (0 and 2) absorb it.
	assert.Equal(t, []int64{3, 0, 3, 2, 0, 2}, shares)
}
