// Package todo holds the to-do list state: the draft text, the item
// collection (newest first) and the active view filter.
//
// A List is the only writer of that state. Callers mutate it through
// SetDraft, Create, Edit, ToggleChecked, ToggleRemoved and SetFilter, and
// observe it through Snapshot or Subscribe. Items are never deleted;
// ToggleRemoved moves them in and out of the trash.
package todo
