package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// Draft is one account's in-progress onboarding form.
type Draft struct {
	ID    string `json:"id"`
	State State  `json:"state"`
}

// Drafts holds wizard state per authenticated account. State itself is
// immutable; Drafts provides the single mutation point under a lock.
type Drafts struct {
	mu      sync.RWMutex
	byOwner map[string]*Draft
}

func NewDrafts() *Drafts {
	return &Drafts{byOwner: make(map[string]*Draft)}
}

// Get returns the owner's draft, creating a fresh one on first use.
func (d *Drafts) Get(owner string) Draft {
	d.mu.RLock()
	if draft, ok := d.byOwner[owner]; ok {
		d.mu.RUnlock()
		return *draft
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if draft, ok := d.byOwner[owner]; ok {
		return *draft
	}
	draft := &Draft{ID: uuid.NewString(), State: NewState()}
	d.byOwner[owner] = draft
	return *draft
}

// Update applies fn to the owner's state under the lock and stores the
// result unless fn reports an error.
func (d *Drafts) Update(owner string, fn func(State) (State, error)) (Draft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft, ok := d.byOwner[owner]
	if !ok {
		draft = &Draft{ID: uuid.NewString(), State: NewState()}
		d.byOwner[owner] = draft
	}

	next, err := fn(draft.State)
	if err != nil {
		return *draft, err
	}
	draft.State = next
	return *draft, nil
}

// Discard drops the owner's draft, e.g. after submission or exit.
func (d *Drafts) Discard(owner string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.byOwner, owner)
}
