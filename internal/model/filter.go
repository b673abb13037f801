package model

import (
	"fmt"
	"strings"
)

// Filter selects which subset of items a view shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterActive
	FilterDeleted
)

// Filters lists every view in selector order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterActive, FilterDeleted}

var filterNames = map[Filter]string{
	FilterAll:       "all",
	FilterCompleted: "completed",
	FilterActive:    "active",
	FilterDeleted:   "deleted",
}

// aliases accepted on input; they match the labels older builds used.
var filterAliases = map[string]Filter{
	"checked":   FilterCompleted,
	"unchecked": FilterActive,
	"removed":   FilterDeleted,
}

func (f Filter) String() string {
	if n, ok := filterNames[f]; ok {
		return n
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// Valid reports whether f is one of the known views.
func (f Filter) Valid() bool {
	_, ok := filterNames[f]
	return ok
}

// Next returns the view after f, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the view before f, wrapping around.
func (f Filter) Prev() Filter {
	return Filters[(int(f)+len(Filters)-1)%len(Filters)]
}

// ParseFilter maps a view name to a Filter. Case-insensitive.
func ParseFilter(s string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := filterAliases[name]; ok {
		return f, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, completed, active or deleted)", s)
}

func (f Filter) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("marshal filter: invalid value %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Filter) UnmarshalText(b []byte) error {
	v, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
