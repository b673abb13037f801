package script

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// Replay applies every step of sc to s in order and returns the final state.
// It stops at the first step that fails; the state up to that step is returned.
func Replay(r *store.Reducer, s model.State, sc *Script, logger *log.Logger) (model.State, error) {
	for i, st := range sc.Actions {
		a, err := st.Action(s)
		if err != nil {
			return s, fmt.Errorf("step %d (%s): %w", i+1, st.Type, err)
		}
		next, err := r.Apply(s, a)
		if err != nil {
			return s, fmt.Errorf("step %d (%s): %w", i+1, st.Type, err)
		}
		logger.Debug("applied", "step", i+1, "action", a.Name(), "items", len(next.Items))
		s = next
	}
	return s, nil
}

// Snapshot is the JSON form of a finished run.
type Snapshot struct {
	Draft   string       `json:"draft"`
	Filter  model.Filter `json:"filter"`
	Counts  store.Counts `json:"counts"`
	Items   []model.Item `json:"items"`
	Visible []model.Item `json:"visible"`
}

// NewSnapshot captures s together with its current view.
func NewSnapshot(s model.State) Snapshot {
	items := s.Items
	if items == nil {
		items = []model.Item{}
	}
	return Snapshot{
		Draft:   s.Draft,
		Filter:  s.Filter,
		Counts:  store.Count(s),
		Items:   items,
		Visible: store.Visible(s),
	}
}

// WriteSnapshot writes s as indented JSON with a trailing newline.
func WriteSnapshot(w io.Writer, s model.State) error {
	b, err := json.MarshalIndent(NewSnapshot(s), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
