package model

// Item is the domain model for a todo entry.
// ID never changes once assigned; Deleted is a soft-delete marker.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Deleted bool   `json:"deleted"`
}

// State is the whole list as seen by one session.
// Items are ordered newest-first.
type State struct {
	Draft  string `json:"draft"`
	Items  []Item `json:"items"`
	Filter Filter `json:"filter"`
}

// NewState returns the empty state a session starts from.
func NewState(f Filter) State {
	return State{Items: []Item{}, Filter: f}
}
