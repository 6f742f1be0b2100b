package todo

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// Option configures a List.
type Option func(*List)

// WithIDs replaces the default UUIDv7 generator.
func WithIDs(gen IDGenerator) Option {
	return func(l *List) {
		if gen != nil {
			l.ids = gen
		}
	}
}

// WithLogger routes mutation logs to logger (debug level).
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFilter sets the initial view filter. Invalid filters are ignored.
func WithFilter(f model.Filter) Option {
	return func(l *List) {
		if f.IsValid() {
			l.filter = f
		}
	}
}

// List is the state container. It is safe for concurrent use.
type List struct {
	mu      sync.Mutex
	draft   string
	items   []model.Item
	filter  model.Filter
	version uint64

	ids    IDGenerator
	logger *log.Logger

	subs    []subscription
	nextSub int
}

// New returns an empty List showing FilterAll.
func New(opts ...Option) *List {
	l := &List{
		filter: model.FilterAll,
		ids:    UUIDv7{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Draft returns the not-yet-submitted text.
func (l *List) Draft() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draft
}

// SetDraft replaces the draft text.
func (l *List) SetDraft(s string) {
	l.mu.Lock()
	if l.draft == s {
		l.mu.Unlock()
		return
	}
	l.draft = s
	l.commit()
}

// Create turns the draft into a new item at the front of the collection and
// clears the draft. An empty draft is a silent no-op.
func (l *List) Create() (model.Item, bool) {
	l.mu.Lock()
	return l.createLocked(l.draft, true)
}

// Add creates an item from text in one state change. The draft is left
// untouched. Empty text is a silent no-op.
func (l *List) Add(text string) (model.Item, bool) {
	l.mu.Lock()
	return l.createLocked(text, false)
}

func (l *List) createLocked(text string, fromDraft bool) (model.Item, bool) {
	if text == "" {
		l.mu.Unlock()
		l.logger.Debug("create skipped", "reason", "empty text")
		return model.Item{}, false
	}
	it := model.Item{ID: l.ids.NextID(), Value: text}
	l.items = append([]model.Item{it}, l.items...)
	if fromDraft {
		l.draft = ""
	}
	l.logger.Debug("created", "id", it.ID)
	l.commit()
	return it, true
}

// Edit replaces the value of item id. Empty values are allowed.
func (l *List) Edit(id, value string) bool {
	return l.update(id, "edit", func(it *model.Item) bool {
		if it.Value == value {
			return false
		}
		it.Value = value
		return true
	})
}

// ToggleChecked flips the completed flag of item id, reading the flag's
// current value under the lock.
func (l *List) ToggleChecked(id string) bool {
	return l.update(id, "toggle checked", func(it *model.Item) bool {
		it.Checked = !it.Checked
		return true
	})
}

// ToggleRemoved moves item id into the trash, or restores it. Checked is
// left alone either way.
func (l *List) ToggleRemoved(id string) bool {
	return l.update(id, "toggle removed", func(it *model.Item) bool {
		it.Removed = !it.Removed
		return true
	})
}

// Filter returns the active view filter.
func (l *List) Filter() model.Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// SetFilter changes the view filter. Invalid filters are ignored.
func (l *List) SetFilter(f model.Filter) bool {
	if !f.IsValid() {
		l.logger.Debug("filter skipped", "reason", "invalid", "filter", string(f))
		return false
	}
	l.mu.Lock()
	if l.filter == f {
		l.mu.Unlock()
		return false
	}
	l.filter = f
	l.commit()
	return true
}

// Item looks up a single item by id.
func (l *List) Item(id string) (model.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	return model.Item{}, false
}

// Items returns a copy of the whole collection, trash included.
func (l *List) Items() []model.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Item(nil), l.items...)
}

// Visible returns the items selected by the active filter.
func (l *List) Visible() []model.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.Apply(l.items, l.filter)
}

// Snapshot returns the current state.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Subscribe registers fn for every later state change and returns a func
// that removes it. Listeners run after the lock is released, in the order
// they subscribed, on the goroutine that made the change. With concurrent
// writers a listener may see a higher Version before a lower one; compare
// Snapshot.Version to discard stale deliveries.
func (l *List) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	l.nextSub++
	id := l.nextSub
	l.subs = append(l.subs, subscription{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, s := range l.subs {
				if s.id == id {
					l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (l *List) update(id, op string, fn func(*model.Item) bool) bool {
	l.mu.Lock()
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		l.logger.Debug(op+" skipped", "reason", "unknown id", "id", id)
		return false
	}
	if !fn(&l.items[i]) {
		l.mu.Unlock()
		return false
	}
	l.logger.Debug(op, "id", id, "checked", l.items[i].Checked, "removed", l.items[i].Removed)
	l.commit()
	return true
}

// commit bumps the version, releases the lock and notifies listeners.
// Callers must hold l.mu.
func (l *List) commit() {
	l.version++
	snap := l.snapshotLocked()
	subs := append([]subscription(nil), l.subs...)
	l.mu.Unlock()
	for _, s := range subs {
		s.fn(snap)
	}
}

func (l *List) snapshotLocked() Snapshot {
	return Snapshot{
		Version: l.version,
		Draft:   l.draft,
		Filter:  l.filter,
		Items:   append([]model.Item(nil), l.items...),
		Visible: model.Apply(l.items, l.filter),
		Tally:   model.Count(l.items),
	}
}

func (l *List) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}
