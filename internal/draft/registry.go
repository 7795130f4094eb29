package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// Registry keeps the open drafts of a process.
type Registry struct {
	mu      sync.Mutex
	drafts  map[string]*Draft
	ttl     time.Duration
	ceiling int64
	now     func() time.Time
}

// NewRegistry returns a registry whose drafts use ceiling as the amount limit
// and expire after ttl without events. A zero ttl disables expiry.
func NewRegistry(ceiling int64, ttl time.Duration) *Registry {
	return &Registry{
		drafts:  make(map[string]*Draft),
		ttl:     ttl,
		ceiling: ceiling,
		now:     time.Now,
	}
}

// Open starts a draft for accountID with payer as the submitting member.
func (r *Registry) Open(accountID, payer string, members []allocation.Member) *Draft {
	d := New(Params{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Payer:     payer,
		Members:   members,
		Ceiling:   r.ceiling,
		Now:       r.now,
	})

	r.mu.Lock()
	r.drafts[d.ID()] = d
	r.mu.Unlock()
	return d
}

// Get returns the open draft with the given ID.
func (r *Registry) Get(id string) (*Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// Close closes and forgets a draft.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	d, ok := r.drafts[id]
	delete(r.drafts, id)
	r.mu.Unlock()
	if !ok {
		return ErrDraftNotFound
	}
	d.Close()
	return nil
}

// Forget drops a draft without closing it, e.g. once it has been submitted.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
}

// Sweep closes and removes drafts idle for longer than the TTL and returns how
// many were removed. Drafts with a submission in flight are left alone.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Draft
	for id, d := range r.drafts {
		if d.Submitting() || !d.IdleSince().Before(cutoff) {
			continue
		}
		expired = append(expired, d)
		delete(r.drafts, id)
	}
	r.mu.Unlock()

	for _, d := range expired {
		d.Close()
	}
	return len(expired)
}

// Len returns the number of open drafts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}
