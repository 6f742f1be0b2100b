package todo

import "github.com/Makepad-fr/tada/internal/model"

// Snapshot is a consistent copy of a List's state. The slices belong to the
// receiver; changing them does not affect the List.
type Snapshot struct {
	Version uint64
	Draft   string
	Filter  model.Filter
	Items   []model.Item
	Visible []model.Item
	Tally   model.Tally
}

// Listener receives a Snapshot after every state change.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}
