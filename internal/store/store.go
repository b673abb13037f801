// Package store holds the list state transitions and the filtered view.
//
// Apply never mutates the state it is given: item slices are copied before
// any change, so callers may keep old snapshots around.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/model"
)

// ErrInvalidAction is returned for a nil action or a filter outside the known views.
// The state comes back unchanged alongside it.
var ErrInvalidAction = errors.New("invalid action")

// ErrIDsExhausted is returned by Submit when the id source keeps repeating
// ids that were already handed out.
var ErrIDsExhausted = errors.New("id source exhausted")

// maxDraws bounds how often freshID asks the id source for a new value.
const maxDraws = 64

// IDFunc produces a new item id.
type IDFunc func() string

// Reducer applies actions to a state. It owns the id source, which is the
// only non-pure input of a transition, and remembers every id it issued so
// ids of purged items are never handed out again.
type Reducer struct {
	newID IDFunc

	mu     sync.Mutex
	issued map[string]struct{}
}

// New returns a Reducer that assigns random UUIDs.
func New() *Reducer {
	return NewWithIDs(uuid.NewString)
}

// NewWithIDs returns a Reducer drawing ids from f. Handy for deterministic tests.
// Values f repeats are skipped; Submit fails with ErrIDsExhausted when f
// stops producing new ones.
func NewWithIDs(f IDFunc) *Reducer {
	if f == nil {
		f = uuid.NewString
	}
	return &Reducer{newID: f, issued: make(map[string]struct{})}
}

// Apply returns the state that results from a on s.
func (r *Reducer) Apply(s model.State, a Action) (model.State, error) {
	switch a := a.(type) {
	case SetDraft:
		s.Draft = a.Text
		return s, nil

	case Submit:
		// Only the empty string is rejected; whitespace is valid text.
		if s.Draft == "" {
			return s, nil
		}
		id, err := r.freshID(s.Items)
		if err != nil {
			return s, fmt.Errorf("submit: %w", err)
		}
		items := make([]model.Item, 0, len(s.Items)+1)
		items = append(items, model.Item{ID: id, Text: s.Draft})
		items = append(items, s.Items...)
		s.Items = items
		s.Draft = ""
		return s, nil

	case SetFilter:
		if !a.Filter.Valid() {
			return s, fmt.Errorf("%w: %s", ErrInvalidAction, a.Filter)
		}
		s.Filter = a.Filter
		return s, nil

	case EditText:
		s.Items = update(s.Items, a.ID, func(it *model.Item) { it.Text = a.Text })
		return s, nil

	case ToggleDone:
		s.Items = update(s.Items, a.ID, func(it *model.Item) { it.Done = !it.Done })
		return s, nil

	case ToggleDeleted:
		s.Items = update(s.Items, a.ID, func(it *model.Item) { it.Deleted = !it.Deleted })
		return s, nil

	case EmptyTrash:
		if !HasTrash(s) {
			return s, nil
		}
		kept := make([]model.Item, 0, len(s.Items))
		for _, it := range s.Items {
			if !it.Deleted {
				kept = append(kept, it)
			}
		}
		s.Items = kept
		return s, nil
	}
	return s, fmt.Errorf("%w: %T", ErrInvalidAction, a)
}

// freshID draws ids until one is neither in items nor issued before.
func (r *Reducer) freshID(items []model.Item) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < maxDraws; i++ {
		id := r.newID()
		if _, seen := r.issued[id]; seen || indexOf(items, id) >= 0 {
			continue
		}
		r.issued[id] = struct{}{}
		return id, nil
	}
	return "", ErrIDsExhausted
}

// update copies items and applies fn to the entry with the given id.
// A missing id leaves items as they are.
func update(items []model.Item, id string, fn func(*model.Item)) []model.Item {
	i := indexOf(items, id)
	if i < 0 {
		return items
	}
	out := make([]model.Item, len(items))
	copy(out, items)
	fn(&out[i])
	return out
}

func indexOf(items []model.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
