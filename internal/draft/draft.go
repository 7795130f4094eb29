// Package draft holds transactions while they are being edited.
//
// A Draft owns the allocation.Roster of one open transaction form and runs the
// form's state machine:
//
//	INIT    --amount set-->          MANUAL
//	MANUAL  --equal split on-->      EQUAL   (shares overwritten)
//	EQUAL   --share typed-->         MANUAL
//	EQUAL   --equal split off-->     MANUAL  (included shares cleared)
//	EQUAL   --amount/inclusion-->    EQUAL   (shares recomputed)
//	MANUAL  --amount/inclusion-->    MANUAL  (typed shares kept)
//	any     --submit ok-->           SUBMITTED
//	any     --close-->               CLOSED
//
// Events on one draft are serialised by its mutex. Submission is the only
// blocking step; it runs outside the lock behind a single in-flight guard.
package draft

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// State is the position of a draft in its edit session.
type State int

const (
	// StateInit is a fresh draft without an amount.
	StateInit State = iota
	StateManual
	StateEqual
	StateSubmitted
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateManual:
		return "manual"
	case StateEqual:
		return "equal"
	case StateSubmitted:
		return "submitted"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further events are accepted.
func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateClosed
}

// Params describes a draft when it is opened.
type Params struct {
	ID        string
	AccountID string
	Payer     string
	Members   []allocation.Member
	Ceiling   int64
	Now       func() time.Time
}

// Draft is one transaction being edited.
type Draft struct {
	mu sync.Mutex

	id        string
	accountID string
	payer     string
	ceiling   int64
	now       func() time.Time

	roster      *allocation.Roster
	description string
	amountText  string
	total       int64
	amountSet   bool
	split       bool

	terminal  State // StateSubmitted or StateClosed once finished, zero otherwise
	inFlight  bool
	touchedAt time.Time
}

// New opens a draft with every member included and split across members enabled.
func New(p Params) *Draft {
	ceiling := p.Ceiling
	if ceiling <= 0 {
		ceiling = allocation.DefaultCeiling
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}
	return &Draft{
		id:        p.ID,
		accountID: p.AccountID,
		payer:     p.Payer,
		ceiling:   ceiling,
		now:       now,
		roster:    allocation.NewRoster(p.Members),
		split:     true,
		touchedAt: now(),
	}
}

// ID returns the draft's identifier.
func (d *Draft) ID() string {
	return d.id
}

// Payer returns the member submitting the draft.
func (d *Draft) Payer() string {
	return d.payer
}

// State returns the current state.
func (d *Draft) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stateLocked()
}

func (d *Draft) stateLocked() State {
	switch {
	case d.terminal.Terminal():
		return d.terminal
	case !d.amountSet:
		return StateInit
	case d.roster.Mode() == allocation.ModeEqual:
		return StateEqual
	default:
		return StateManual
	}
}

// SetDescription stores the free-text description.
func (d *Draft) SetDescription(text string) error {
	return d.update(func() error {
		d.description = text
		return nil
	})
}

// SetAmount parses text as the transaction total. Blank text clears the total.
// An out-of-range total is rejected and leaves the draft unchanged, so it is
// never used for share computation. In equal mode the shares follow the total.
func (d *Draft) SetAmount(text string) error {
	return d.update(func() error {
		total, err := allocation.ParseUnits(text)
		if err != nil {
			return err
		}
		blank := strings.TrimSpace(text) == ""
		if !blank && (total <= 0 || total > d.ceiling) {
			return &allocation.AmountOutOfRangeError{Total: total, Ceiling: d.ceiling}
		}

		d.amountText = text
		d.total = total
		d.amountSet = !blank
		d.roster.RecomputeOnTotalChange(total)
		return nil
	})
}

// SetSplit chooses between splitting across members and a single payer.
func (d *Draft) SetSplit(split bool) error {
	return d.update(func() error {
		d.split = split
		return nil
	})
}

// SetIncluded includes or excludes participant i.
func (d *Draft) SetIncluded(i int, included bool) error {
	return d.update(func() error {
		return d.roster.RecomputeOnToggleInclusion(i, included, d.total)
	})
}

// SetShare records a typed share for participant i and leaves equal mode.
func (d *Draft) SetShare(i int, text string) error {
	return d.update(func() error {
		return d.roster.EditShare(i, text)
	})
}

// SetEqualSplit turns the equal split on or off.
func (d *Draft) SetEqualSplit(on bool) error {
	return d.update(func() error {
		if on {
			d.roster.EnableEqualSplit(d.total)
		} else {
			d.roster.DisableEqualSplit()
		}
		return nil
	})
}

// Resize replaces the participant set, discarding inclusion flags, shares and
// equal mode.
func (d *Draft) Resize(members []allocation.Member) error {
	return d.update(func() error {
		d.roster.Resize(members)
		return nil
	})
}

// Close ends the session. Closing twice is a no-op.
func (d *Draft) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.terminal.Terminal() {
		d.terminal = StateClosed
	}
}

// IdleSince returns the time of the last event.
func (d *Draft) IdleSince() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touchedAt
}

// Submitting reports whether a submission is waiting for the transaction service.
func (d *Draft) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight
}

func (d *Draft) update(fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.terminal.Terminal() {
		return ErrDraftClosed
	}
	d.touchedAt = d.now()
	return fn()
}

// Submit validates the draft and sends it to svc.
//
// Validation failures return without contacting svc and leave the draft in its
// current state. While the call to svc is pending a second Submit fails with
// ErrSubmissionInFlight; other edits are still accepted. On success the draft
// becomes SUBMITTED. Service failures are returned as *RejectionError or
// *TransportError and leave the draft editable. If the draft is closed while
// the call is pending it stays closed whatever the outcome.
func (d *Draft) Submit(ctx context.Context, svc TransactionService) (Receipt, error) {
	d.mu.Lock()
	if d.terminal.Terminal() {
		d.mu.Unlock()
		return Receipt{}, ErrDraftClosed
	}
	if d.inFlight {
		d.mu.Unlock()
		return Receipt{}, ErrSubmissionInFlight
	}

	validated, err := allocation.Validate(allocation.Request{
		Total:  d.total,
		Mode:   d.roster.Mode(),
		Split:  d.split,
		Shares: d.roster.Shares(),
	}, d.ceiling)
	if err != nil {
		d.mu.Unlock()
		return Receipt{}, err
	}

	payload := Payload{
		AccountID:      d.accountID,
		Description:    d.description,
		Amount:         validated.Total,
		Payer:          d.payer,
		Split:          validated.Split,
		MemberExpenses: validated.Shares,
	}
	d.inFlight = true
	d.touchedAt = d.now()
	d.mu.Unlock()

	receipt, err := svc.CreateTransaction(ctx, payload)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight = false
	if err != nil {
		return Receipt{}, classify(err)
	}
	if !d.terminal.Terminal() {
		d.terminal = StateSubmitted
	}
	return receipt, nil
}

// Snapshot is a read-only copy of a draft for rendering.
type Snapshot struct {
	ID           string
	AccountID    string
	Payer        string
	Description  string
	Amount       string
	Total        int64
	Split        bool
	State        State
	Mode         allocation.Mode
	InFlight     bool
	Participants []allocation.Participant
}

// Snapshot returns the current contents of the draft.
func (d *Draft) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		ID:           d.id,
		AccountID:    d.accountID,
		Payer:        d.payer,
		Description:  d.description,
		Amount:       d.amountText,
		Total:        d.total,
		Split:        d.split,
		State:        d.stateLocked(),
		Mode:         d.roster.Mode(),
		InFlight:     d.inFlight,
		Participants: d.roster.Participants(),
	}
}
