package allocation

// ComputeEqualShares splits total across the included participants of mask.
//
// Every included participant gets total/n (floor) and the remaining
// total - base*n units go one each to the lowest-indexed included
// participants. Excluded participants get 0. The returned shares always sum
// to total.
//
// ok is false when nobody is included or total is negative; shares is nil in
// that case and callers must leave their current shares unchanged.
func ComputeEqualShares(total int64, mask []bool) (shares []int64, ok bool) {
	var n int64
	for _, included := range mask {
		if included {
			n++
		}
	}
	if n == 0 || total < 0 {
		return nil, false
	}

	base := total / n
	remainder := total - base*n

	shares = make([]int64, len(mask))
	for i, included := range mask {
		if !included {
			continue
		}
		shares[i] = base
		if remainder > 0 {
			shares[i]++
			remainder--
		}
	}
	return shares, true
}
