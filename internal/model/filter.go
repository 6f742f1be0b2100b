package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFilter = errors.New("model: unknown filter")

// Filter selects which subset of the collection is rendered.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterChecked   Filter = "checked"
	FilterUnchecked Filter = "unchecked"
	FilterRemoved   Filter = "removed"
)

// Filters lists every filter in select-control order.
var Filters = []Filter{FilterAll, FilterChecked, FilterUnchecked, FilterRemoved}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterChecked, FilterUnchecked, FilterRemoved:
		return true
	default:
		return false
	}
}

// ParseFilter maps a filter name to a Filter. Empty input yields FilterAll.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.IsValid() {
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
	return f, nil
}

// Label is the text shown in the filter select control.
func (f Filter) Label() string {
	switch f {
	case FilterChecked:
		return "completed tasks"
	case FilterUnchecked:
		return "current tasks"
	case FilterRemoved:
		return "trash"
	default:
		return "all tasks"
	}
}

// Next cycles through Filters, wrapping around.
func (f Filter) Next() Filter {
	for i, cand := range Filters {
		if cand == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Match reports whether it is visible under f. Every filter but
// FilterRemoved hides trashed items.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterChecked:
		return it.Checked && !it.Removed
	case FilterUnchecked:
		return !it.Checked && !it.Removed
	case FilterRemoved:
		return it.Removed
	default:
		return !it.Removed
	}
}

// Apply returns the items matching f, in collection order. The input is
// not modified.
func Apply(items []Item, f Filter) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
