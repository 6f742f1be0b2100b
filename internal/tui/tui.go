package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// SnapshotMsg carries a state change from the list to the program.
type SnapshotMsg struct {
	Snapshot todo.Snapshot
}

// Options tune the interactive view.
type Options struct {
	CharLimit int // 0 means unlimited
	AltScreen bool
	Logger    *log.Logger
	// Copy writes text to the system clipboard; clipboard.WriteAll when nil.
	Copy func(string) error
}

type mode int

const (
	modeBrowse mode = iota
	modeDraft
	modeEdit
	modeHelp
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, progress, filter select, draft box, status and panel frame
	chromeHeight = 12
)

// Model is the Bubble Tea model for the to-do screen. It renders
// snapshots of a todo.List and turns key presses into List operations.
type Model struct {
	store *todo.List
	snap  todo.Snapshot

	list   list.Model
	draft  textinput.Model
	editor textinput.Model
	keys   keyMap

	mode   mode
	editID string

	status    string
	statusErr bool
	helpText  string

	width, height int

	copy   func(string) error
	logger *log.Logger
}

// New builds a Model showing the current state of store.
func New(store *todo.List, opt Options) Model {
	keys := defaultKeys()

	l := list.New(nil, rowDelegate{}, defaultWidth-4, defaultHeight-chromeHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	draft := textinput.New()
	draft.Prompt = "> "
	draft.Placeholder = "New task..."
	draft.CharLimit = opt.CharLimit

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "Task text..."
	editor.CharLimit = opt.CharLimit

	m := Model{
		store:  store,
		list:   l,
		draft:  draft,
		editor: editor,
		keys:   keys,
		width:  defaultWidth,
		height: defaultHeight,
		copy:   opt.Copy,
		logger: opt.Logger,
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	m.apply(store.Snapshot())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case SnapshotMsg:
		if msg.Snapshot.Version > m.snap.Version {
			m.apply(msg.Snapshot)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			return m.updateHelp(msg)
		case modeDraft:
			return m.updateDraft(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeDraft:
		m.draft, cmd = m.draft.Update(msg)
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeDraft
		return m, m.draft.Focus()

	case key.Matches(msg, m.keys.Check):
		if it, ok := m.selected(); ok && !it.Locked() {
			m.store.ToggleChecked(it.ID)
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok || it.Locked() {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = it.ID
		m.editor.SetValue(it.Value)
		m.editor.CursorEnd()
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Trash):
		if it, ok := m.selected(); ok {
			m.store.ToggleRemoved(it.ID)
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.store.SetFilter(m.snap.Filter.Next())
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.Runes[0] - '1')
		m.store.SetFilter(model.Filters[idx])
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.copy(it.Value); err != nil {
			m.logger.Warn("clipboard write failed", "err", err)
			m.setStatus("copy failed: "+err.Error(), true)
			return m, nil
		}
		m.setStatus("copied", false)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		m.helpText = renderHelp(m.width-4, ui.Current().Name == "mono")
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		_, created := m.store.Create()
		m.sync()
		if created {
			m.draft.SetValue("")
			m.list.Select(0)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.draft.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	m.store.SetDraft(m.draft.Value())
	m.sync()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.store.Edit(m.editID, m.editor.Value())
		m.closeEditor()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeEditor()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *Model) closeEditor() {
	m.mode = modeBrowse
	m.editID = ""
	m.editor.SetValue("")
	m.editor.Blur()
}

// sync pulls the list state after a local operation. Notifications for the
// same change that arrive later are dropped by version.
func (m *Model) sync() {
	snap := m.store.Snapshot()
	if snap.Version != m.snap.Version {
		m.apply(snap)
	}
}

func (m *Model) apply(snap todo.Snapshot) {
	m.snap = snap
	items := make([]list.Item, 0, len(snap.Visible))
	for _, it := range snap.Visible {
		items = append(items, listItem{Item: it})
	}
	m.list.SetItems(items)
	if m.draft.Value() != snap.Draft {
		m.draft.SetValue(snap.Draft)
	}
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	if m.mode == modeEdit {
		if it, ok := m.store.Item(m.editID); !ok || it.Locked() {
			m.closeEditor()
		}
	}
}

func (m *Model) resize() {
	w, h := m.width-4, m.height-chromeHeight
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.draft.Width = w - 4
	m.editor.Width = w - 4
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}
