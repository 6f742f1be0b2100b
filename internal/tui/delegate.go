package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Value }

// buttonLabel is the remove/restore control shown at the end of a row.
func buttonLabel(it model.Item) string {
	if it.Removed {
		return "restore"
	}
	return "remove"
}

// rowDelegate renders one item per line: checkbox, value, button.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	if it.Checked {
		box = t.Success.Render(t.BoxChecked)
	}

	text := it.Value
	if text == "" {
		text = t.Muted.Render("(empty)")
	}
	switch {
	case it.Checked:
		text = t.Done.Render(text)
	case it.Locked():
		text = t.Locked.Render(text)
	}

	button := t.Accent.Render("[" + buttonLabel(it.Item) + "]")

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, button)
}
