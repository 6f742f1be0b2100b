package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

func (m Model) View() string {
	if m.mode == modeHelp {
		return ui.Panel([]string{m.helpText})
	}

	lines := []string{
		m.headerView(),
		ui.Current().Muted.Render(ui.ProgressBar(m.snap.Tally.Done, m.snap.Tally.Total(), 28)),
		m.filterView(),
		m.formView(),
		m.list.View(),
	}
	if m.status != "" {
		style := ui.Current().Success
		if m.statusErr {
			style = ui.Current().Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return ui.Panel(lines)
}

func (m Model) headerView() string {
	t := ui.Current()
	tally := m.snap.Tally
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), tally.Done,
		t.Pending.Render(t.SymPending), tally.Active,
		t.Muted.Render(t.SymTrash), tally.Trashed,
	)
}

// filterView draws the filter select: the active option in brackets, the
// others dimmed.
func (m Model) filterView() string {
	t := ui.Current()
	parts := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == m.snap.Filter {
			parts = append(parts, t.Accent.Render("◂ "+label+" ▸"))
		} else {
			parts = append(parts, t.Muted.Render(label))
		}
	}
	return "show: " + strings.Join(parts, "  ")
}

func (m Model) formView() string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)

	switch m.mode {
	case modeEdit:
		return box.Render("Edit task\n" + m.editor.View())
	case modeDraft:
		return box.Render("New task " + t.Muted.Render("(enter add, esc done)") + "\n" + m.draft.View())
	default:
		draft := m.snap.Draft
		if draft == "" {
			draft = t.Muted.Render("press a to add a task")
		}
		return box.Render("New task\n" + draft)
	}
}
