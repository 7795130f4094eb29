package allocation

// RecomputeOnTotalChange reacts to a new total. In equal mode all shares are
// overwritten; in manual mode typed shares are left alone and any disagreement
// with the total surfaces when the roster is validated.
func (r *Roster) RecomputeOnTotalChange(total int64) {
	if r.mode == ModeEqual {
		r.applyEqualShares(total)
	}
}

// RecomputeOnToggleInclusion includes or excludes participant i and, in equal
// mode, re-splits total over the participants that remain included.
func (r *Roster) RecomputeOnToggleInclusion(i int, included bool, total int64) error {
	if err := r.SetIncluded(i, included); err != nil {
		return err
	}
	if r.mode == ModeEqual {
		r.applyEqualShares(total)
	}
	return nil
}

// EditShare is a user typing into participant i's share: the text is stored
// and the roster switches to manual mode.
func (r *Roster) EditShare(i int, text string) error {
	if err := r.SetShare(i, text); err != nil {
		return err
	}
	r.mode = ModeManual
	return nil
}

// EnableEqualSplit switches to equal mode and overwrites every share with the
// equal split of total.
func (r *Roster) EnableEqualSplit(total int64) {
	r.mode = ModeEqual
	r.applyEqualShares(total)
}

// DisableEqualSplit switches to manual mode. Excluded participants keep their
// zero; included participants are cleared rather than keeping the computed
// values, so every manual share is typed explicitly.
func (r *Roster) DisableEqualSplit() {
	r.mode = ModeManual
	for i := range r.participants {
		p := &r.participants[i]
		if p.Included {
			p.Share = ""
		} else {
			p.Share = "0"
		}
	}
}

func (r *Roster) applyEqualShares(total int64) {
	shares, ok := ComputeEqualShares(total, r.IncludedMask())
	if !ok {
		return
	}
	for i, s := range shares {
		r.participants[i].Share = FormatUnits(s)
	}
}
