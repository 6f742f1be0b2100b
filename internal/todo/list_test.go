package todo

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

func newTestList(opts ...Option) *List {
	return New(append([]Option{WithIDs(&Sequence{})}, opts...)...)
}

func values(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}

func TestCreatePrependsAndClearsDraft(t *testing.T) {
	l := newTestList()
	l.SetDraft("buy milk")
	first, ok := l.Create()
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if first.Value != "buy milk" || first.Checked || first.Removed {
		t.Fatalf("unexpected item: %+v", first)
	}
	if l.Draft() != "" {
		t.Fatalf("expected draft cleared, got %q", l.Draft())
	}

	l.SetDraft("walk dog")
	l.Create()
	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Value != "walk dog" || items[1].Value != "buy milk" {
		t.Fatalf("expected newest first, got %v", values(items))
	}
}

func TestCreateWithEmptyDraftIsNoop(t *testing.T) {
	l := newTestList()
	if _, ok := l.Create(); ok {
		t.Fatal("expected empty create to be a no-op")
	}
	if len(l.Items()) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(l.Items()))
	}
	if l.Snapshot().Version != 0 {
		t.Fatalf("expected no state change, version %d", l.Snapshot().Version)
	}
}

func TestAddLeavesDraftAlone(t *testing.T) {
	l := newTestList()
	l.SetDraft("half typed")
	if _, ok := l.Add("from script"); !ok {
		t.Fatal("expected add to succeed")
	}
	if l.Draft() != "half typed" {
		t.Fatalf("expected draft kept, got %q", l.Draft())
	}
	if _, ok := l.Add(""); ok {
		t.Fatal("expected empty add to be a no-op")
	}
}

func TestIDsAreUnique(t *testing.T) {
	l := New()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		it, _ := l.Add("x")
		if seen[it.ID] {
			t.Fatalf("duplicate id %s after %d creates", it.ID, i)
		}
		seen[it.ID] = true
	}
}

func TestEditChangesOnlyValue(t *testing.T) {
	l := newTestList()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	l.ToggleChecked(a.ID)
	before := l.Items()

	if !l.Edit(a.ID, "") {
		t.Fatal("expected edit to empty value to be accepted")
	}
	after := l.Items()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	if after[0] != before[0] {
		t.Fatalf("untouched item changed: %+v -> %+v", before[0], after[0])
	}
	want := before[1]
	want.Value = ""
	if after[1] != want {
		t.Fatalf("edited item = %+v, want %+v", after[1], want)
	}
	if after[0].ID != b.ID {
		t.Fatal("order changed")
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	l := newTestList()
	l.Add("a")
	before := l.Snapshot()
	if l.Edit("missing", "x") || l.ToggleChecked("missing") || l.ToggleRemoved("missing") {
		t.Fatal("expected operations on unknown id to report false")
	}
	after := l.Snapshot()
	if after.Version != before.Version || after.Items[0] != before.Items[0] {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

func TestTogglesAreIndependentAndReversible(t *testing.T) {
	l := newTestList()
	it, _ := l.Add("a")

	l.ToggleChecked(it.ID)
	got, _ := l.Item(it.ID)
	if !got.Checked || got.Removed {
		t.Fatalf("after check: %+v", got)
	}
	l.ToggleRemoved(it.ID)
	got, _ = l.Item(it.ID)
	if !got.Checked || !got.Removed {
		t.Fatalf("trashing must keep checked: %+v", got)
	}
	l.ToggleRemoved(it.ID)
	got, _ = l.Item(it.ID)
	if !got.Checked || got.Removed {
		t.Fatalf("restoring must keep checked: %+v", got)
	}
	l.ToggleChecked(it.ID)
	got, _ = l.Item(it.ID)
	if got != (model.Item{ID: it.ID, Value: "a"}) {
		t.Fatalf("expected initial state after two toggles each, got %+v", got)
	}
}

func TestConcurrentTogglesUseLiveState(t *testing.T) {
	l := newTestList()
	it, _ := l.Add("a")
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.ToggleChecked(it.ID)
		}()
	}
	wg.Wait()
	got, _ := l.Item(it.ID)
	if got.Checked {
		t.Fatal("an even number of toggles must leave checked false")
	}
}

func TestWorkedExample(t *testing.T) {
	l := newTestList()
	l.SetDraft("buy milk")
	l.Create()
	l.SetDraft("walk dog")
	l.Create()
	items := l.Items()
	milk, dog := items[1], items[0]
	if got := values(items); strings.Join(got, ",") != "walk dog,buy milk" {
		t.Fatalf("unexpected order: %v", got)
	}

	l.ToggleChecked(milk.ID)
	l.SetFilter(model.FilterUnchecked)
	if got := values(l.Visible()); strings.Join(got, ",") != "walk dog" {
		t.Fatalf("unchecked view: %v", got)
	}
	l.SetFilter(model.FilterChecked)
	if got := values(l.Visible()); strings.Join(got, ",") != "buy milk" {
		t.Fatalf("checked view: %v", got)
	}

	l.ToggleRemoved(dog.ID)
	l.SetFilter(model.FilterAll)
	if got := values(l.Visible()); strings.Join(got, ",") != "buy milk" {
		t.Fatalf("all view: %v", got)
	}
	l.SetFilter(model.FilterRemoved)
	if got := values(l.Visible()); strings.Join(got, ",") != "walk dog" {
		t.Fatalf("removed view: %v", got)
	}
}

func TestSetFilter(t *testing.T) {
	l := newTestList(WithFilter(model.FilterRemoved))
	if l.Filter() != model.FilterRemoved {
		t.Fatalf("expected initial filter removed, got %q", l.Filter())
	}
	if l.SetFilter(model.Filter("archived")) {
		t.Fatal("expected invalid filter to be rejected")
	}
	if l.SetFilter(model.FilterRemoved) {
		t.Fatal("expected same filter to be a no-op")
	}
	if !l.SetFilter(model.FilterAll) || l.Filter() != model.FilterAll {
		t.Fatalf("expected filter all, got %q", l.Filter())
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	l := newTestList()
	var got []Snapshot
	unsubscribe := l.Subscribe(func(s Snapshot) { got = append(got, s) })

	l.SetDraft("a")
	l.Create()
	l.Create() // empty draft: no notification
	l.ToggleChecked("missing")

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Version >= got[1].Version {
		t.Fatalf("expected increasing versions, got %d then %d", got[0].Version, got[1].Version)
	}
	last := got[1]
	if last.Draft != "" || len(last.Items) != 1 || len(last.Visible) != 1 || last.Tally.Active != 1 {
		t.Fatalf("unexpected snapshot: %+v", last)
	}

	last.Items[0].Value = "mutated"
	if l.Items()[0].Value != "a" {
		t.Fatal("snapshot slices must not alias list state")
	}

	unsubscribe()
	unsubscribe()
	l.Add("b")
	if len(got) != 2 {
		t.Fatalf("expected no notifications after unsubscribe, got %d", len(got))
	}
}

func TestConcurrentWritersDeliverEveryVersion(t *testing.T) {
	l := newTestList()
	var (
		mu     sync.Mutex
		seen   = map[uint64]bool{}
		newest uint64
	)
	l.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		if seen[s.Version] {
			t.Errorf("version %d delivered twice", s.Version)
		}
		seen[s.Version] = true
		if s.Version > newest {
			newest = s.Version
		}
	})

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Add("x")
			}
		}()
	}
	wg.Wait()

	// arrival order across writers is not guaranteed, completeness is
	for v := uint64(1); v <= writers*perWriter; v++ {
		if !seen[v] {
			t.Fatalf("version %d never delivered", v)
		}
	}
	if newest != l.Snapshot().Version {
		t.Fatalf("newest delivered %d, list at %d", newest, l.Snapshot().Version)
	}
}

func TestListenerMayCallBack(t *testing.T) {
	l := newTestList()
	var seen int
	l.Subscribe(func(s Snapshot) {
		seen = len(l.Visible())
	})
	l.Add("a")
	if seen != 1 {
		t.Fatalf("expected listener to read 1 visible item, got %d", seen)
	}
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	l := newTestList(WithLogger(logger))
	l.Add("a")
	l.ToggleRemoved("missing")
	out := buf.String()
	if !strings.Contains(out, "created") {
		t.Fatalf("expected create log, got %q", out)
	}
	if !strings.Contains(out, "toggle removed skipped") {
		t.Fatalf("expected skip log, got %q", out)
	}
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator("sequence")
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	if gen.NextID() != "1" || gen.NextID() != "2" {
		t.Fatal("expected sequence to count from 1")
	}
	if _, err := NewIDGenerator("uuid"); err != nil {
		t.Fatalf("uuid: %v", err)
	}
	if _, err := NewIDGenerator("timestamp"); err == nil {
		t.Fatal("expected error for unknown generator")
	}
}
