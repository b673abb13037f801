package store

import "github.com/Makepad-fr/tada/internal/model"

// Visible returns the items the current filter shows, in list order.
// It is recomputed on every call.
func Visible(s model.State) []model.Item {
	out := make([]model.Item, 0, len(s.Items))
	for _, it := range s.Items {
		if Matches(s.Filter, it) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether f shows it.
func Matches(f model.Filter, it model.Item) bool {
	switch f {
	case model.FilterAll:
		return !it.Deleted
	case model.FilterCompleted:
		return it.Done && !it.Deleted
	case model.FilterActive:
		return !it.Done && !it.Deleted
	case model.FilterDeleted:
		return it.Deleted
	}
	return false
}

// Find returns the item with the given id.
func Find(s model.State, id string) (model.Item, bool) {
	if i := indexOf(s.Items, id); i >= 0 {
		return s.Items[i], true
	}
	return model.Item{}, false
}

// HasTrash reports whether any item is soft-deleted.
func HasTrash(s model.State) bool {
	for _, it := range s.Items {
		if it.Deleted {
			return true
		}
	}
	return false
}

// Counts summarises a state for headers.
type Counts struct {
	Done    int `json:"done"`
	Active  int `json:"active"`
	Deleted int `json:"deleted"`
	Total   int `json:"total"`
}

// Count tallies items by status. Deleted items are only counted as deleted.
func Count(s model.State) Counts {
	var c Counts
	for _, it := range s.Items {
		c.Total++
		switch {
		case it.Deleted:
			c.Deleted++
		case it.Done:
			c.Done++
		default:
			c.Active++
		}
	}
	return c
}
