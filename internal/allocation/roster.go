package allocation

import "fmt"

// Mode records how the roster's shares were last produced.
type Mode int

const (
	// ModeManual means shares are typed by the user and never rewritten.
	ModeManual Mode = iota
	// ModeEqual means shares are derived from the total by ComputeEqualShares.
	ModeEqual
)

func (m Mode) String() string {
	switch m {
	case ModeEqual:
		return "equal"
	case ModeManual:
		return "manual"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Member is the identity half of a participant, as supplied by the directory.
type Member struct {
	ID          string
	DisplayName string
}

// Participant is one row of the roster.
type Participant struct {
	Member

	// Included participants take part in the split. Excluded ones carry "0".
	Included bool

	// Share is the user-editable amount text. Empty means unset.
	Share string
}

// Roster holds the participants of one transaction being edited.
//
// Identity, inclusion and share live in a single record per participant so the
// three always have the same length; Resize is the only way to change the
// participant count. Roster is not safe for concurrent use.
type Roster struct {
	participants []Participant
	mode         Mode
}

// NewRoster returns a roster over members with everyone included and no shares set.
func NewRoster(members []Member) *Roster {
	r := &Roster{}
	r.Resize(members)
	return r
}

// Resize replaces the participant set. All participants start included with
// empty shares and the mode drops back to manual, so no share computed for a
// previous participant set survives.
func (r *Roster) Resize(members []Member) {
	r.participants = make([]Participant, len(members))
	for i, m := range members {
		r.participants[i] = Participant{Member: m, Included: true}
	}
	r.mode = ModeManual
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.participants)
}

// Mode returns the current split mode.
func (r *Roster) Mode() Mode {
	return r.mode
}

// Participants returns a copy of the rows in roster order.
func (r *Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// IncludedMask returns the inclusion flags in roster order.
func (r *Roster) IncludedMask() []bool {
	mask := make([]bool, len(r.participants))
	for i, p := range r.participants {
		mask[i] = p.Included
	}
	return mask
}

// Shares returns the share texts in roster order.
func (r *Roster) Shares() []string {
	shares := make([]string, len(r.participants))
	for i, p := range r.participants {
		shares[i] = p.Share
	}
	return shares
}

// SetIncluded sets the inclusion flag of participant i. Excluding always forces
// the share to "0". Including a participant that was excluded clears the forced
// zero so the share reads as unset until it is typed or recomputed.
func (r *Roster) SetIncluded(i int, included bool) error {
	if err := r.checkIndex(i); err != nil {
		return err
	}

	p := &r.participants[i]
	if !included {
		p.Included = false
		p.Share = "0"
		return nil
	}
	if !p.Included {
		p.Share = ""
	}
	p.Included = true
	return nil
}

// SetShare stores text as the share of participant i. It does not touch the
// inclusion flag and does not change the mode; callers that treat a typed
// share as a switch to manual mode use EditShare.
func (r *Roster) SetShare(i int, text string) error {
	if err := r.checkIndex(i); err != nil {
		return err
	}
	if !r.participants[i].Included {
		return fmt.Errorf("%w: index %d", ErrParticipantExcluded, i)
	}
	r.participants[i].Share = text
	return nil
}

func (r *Roster) checkIndex(i int) error {
	if i < 0 || i >= len(r.participants) {
		return fmt.Errorf("%w: %d (roster has %d)", ErrParticipantIndex, i, len(r.participants))
	}
	return nil
}
