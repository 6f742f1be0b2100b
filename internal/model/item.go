package model

// Item is the domain model for a todo entry.
// Checked and Removed are independent: trashing an item keeps its Checked
// flag, and restoring it does not clear it either.
type Item struct {
	ID      string `json:"id"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
	Removed bool   `json:"removed"`
}

// Locked reports whether the UI should refuse checkbox and text edits.
func (it Item) Locked() bool { return it.Checked || it.Removed }

// Tally holds the header counters.
type Tally struct {
	Active  int // !checked && !removed
	Done    int // checked && !removed
	Trashed int // removed, whatever checked says
}

// Total counts the items that are not in the trash.
func (t Tally) Total() int { return t.Active + t.Done }

// Count builds a Tally for items.
func Count(items []Item) Tally {
	var t Tally
	for _, it := range items {
		switch {
		case it.Removed:
			t.Trashed++
		case it.Checked:
			t.Done++
		default:
			t.Active++
		}
	}
	return t
}
