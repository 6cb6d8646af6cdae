package list

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ksato9700/todomvc/pkg/store"
	"github.com/ksato9700/todomvc/pkg/todo"
)

// fakePersistence keeps records in memory, assigning sequential ids.
type fakePersistence struct {
	records map[string]map[string]todo.Item
	nextID  int
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{records: make(map[string]map[string]todo.Item)}
}

func (f *fakePersistence) bucket(list string) map[string]todo.Item {
	if f.records[list] == nil {
		f.records[list] = make(map[string]todo.Item)
	}
	return f.records[list]
}

func (f *fakePersistence) Create(list string, i *todo.Item) error {
	if i.ID == "" {
		f.nextID++
		i.ID = fmt.Sprintf("id%04d", f.nextID)
	}
	f.bucket(list)[i.ID] = *i
	return nil
}

func (f *fakePersistence) Update(list string, i *todo.Item) error {
	if _, ok := f.bucket(list)[i.ID]; !ok {
		return store.ErrNotFound
	}
	f.bucket(list)[i.ID] = *i
	return nil
}

func (f *fakePersistence) Destroy(list string, i *todo.Item) error {
	if _, ok := f.bucket(list)[i.ID]; !ok {
		return store.ErrNotFound
	}
	delete(f.bucket(list), i.ID)
	return nil
}

func (f *fakePersistence) FindAll(_ context.Context, list string) ([]*todo.Item, error) {
	all := make([]*todo.Item, 0, len(f.bucket(list)))
	for _, rec := range f.bucket(list) {
		rec := rec
		all = append(all, &rec)
	}
	return all, nil
}

func (f *fakePersistence) Lists(_ context.Context, prefix string) []string {
	names := make([]string, 0, len(f.records))
	for name := range f.records {
		names = append(names, name)
	}
	return names
}

func (f *fakePersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

func TestNextOrderEmpty(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	if got := l.NextOrder(); got != 1 {
		t.Fatalf("expected 1 on empty list, got %d", got)
	}
}

func TestNextOrderAfterMax(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	i := todo.New("buy milk")
	i.Order = 5
	if err := l.Add(i); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := l.NextOrder(); got != 6 {
		t.Fatalf("expected 6 after max order 5, got %d", got)
	}
}

func TestNextOrderTrueMaxOutOfOrderLoad(t *testing.T) {
	p := newFakePersistence()
	// Stored records are not guaranteed to arrive sorted by order.
	for _, order := range []int{3, 1, 7, 2} {
		i := todo.New(fmt.Sprintf("item %d", order))
		i.Order = order
		if err := p.Create("todos", i); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	l := NewList("todos", p)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := l.NextOrder(); got != 8 {
		t.Fatalf("expected true max + 1 = 8, got %d", got)
	}
	items := l.Items()
	for n := 1; n < len(items); n++ {
		if items[n-1].Order > items[n].Order {
			t.Fatalf("items not ascending by order: %d before %d", items[n-1].Order, items[n].Order)
		}
	}
}

func TestDonePlusRemainingIsLen(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	for n := 0; n < 5; n++ {
		i, err := l.Create(fmt.Sprintf("item %d", n))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if n%2 == 0 {
			if err := l.Toggle(i.ID); err != nil {
				t.Fatalf("toggle: %v", err)
			}
		}
	}
	if got := len(l.Done()) + len(l.Remaining()); got != l.Len() {
		t.Fatalf("done+remaining = %d, want %d", got, l.Len())
	}
}

func TestToggleKeepsPosition(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	var ids []string
	for n := 0; n < 3; n++ {
		i, err := l.Create(fmt.Sprintf("item %d", n))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, i.ID)
	}

	if err := l.Toggle(ids[1]); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	items := l.Items()
	for n, id := range ids {
		if items[n].ID != id {
			t.Fatalf("position %d changed after toggle: got %s, want %s", n, items[n].ID, id)
		}
	}
	if done := l.Done(); len(done) != 1 || done[0].ID != ids[1] {
		t.Fatalf("expected only the toggled item in Done()")
	}
	if items[1].Order != 2 {
		t.Fatalf("toggle changed order: %d", items[1].Order)
	}
}

func TestScenario(t *testing.T) {
	l := NewList("todos", newFakePersistence())

	if got := l.NextOrder(); got != 1 {
		t.Fatalf("expected next order 1, got %d", got)
	}
	a, err := l.Create("buy milk")
	if err != nil {
		t.Fatalf("create A: %v", err)
	}
	if a.Order != 1 {
		t.Fatalf("expected A.Order == 1, got %d", a.Order)
	}

	b, err := l.Create("walk dog")
	if err != nil {
		t.Fatalf("create B: %v", err)
	}
	if b.Order != 2 {
		t.Fatalf("expected B.Order == 2, got %d", b.Order)
	}

	if err := l.Toggle(a.ID); err != nil {
		t.Fatalf("toggle A: %v", err)
	}
	if done := l.Done(); len(done) != 1 || done[0].ID != a.ID {
		t.Fatalf("expected Done() == [A]")
	}
	if rem := l.Remaining(); len(rem) != 1 || rem[0].ID != b.ID {
		t.Fatalf("expected Remaining() == [B]")
	}

	if err := l.Remove(b.ID); err != nil {
		t.Fatalf("remove B: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("expected length 1, got %d", l.Len())
	}
	if rem := l.Remaining(); len(rem) != 0 {
		t.Fatalf("expected Remaining() empty, got %d items", len(rem))
	}
}

func TestLoadFiresResetOnce(t *testing.T) {
	p := newFakePersistence()
	if err := p.Create("todos", todo.New("buy milk")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	l := NewList("todos", p)
	resets := 0
	unsubscribe := l.Subscribe(func(ev Event) {
		if ev.Type == Reset {
			resets++
		}
	})
	defer unsubscribe()

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if resets != 1 {
		t.Fatalf("expected exactly one reset, got %d", resets)
	}
	if l.Len() != 1 {
		t.Fatalf("expected one loaded item, got %d", l.Len())
	}
}

func TestSubscribeEvents(t *testing.T) {
	l := NewList("todos", newFakePersistence())

	var got []EventType
	unsubscribe := l.Subscribe(func(ev Event) {
		got = append(got, ev.Type)
	})

	i, err := l.Create("buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.Toggle(i.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := l.SetContent(i.ID, "buy oat milk"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := l.Remove(i.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	want := []EventType{Added, Changed, Changed, Removed}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d (%v)", len(want), len(got), got)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("event %d: expected %s, got %s", n, want[n], got[n])
		}
	}

	unsubscribe()
	if _, err := l.Create("walk dog"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(got) != len(want) {
		t.Fatal("received events after unsubscribe")
	}
}

func TestUnknownIDReturnsNotFound(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	if err := l.Toggle("nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("toggle: expected ErrNotFound, got %v", err)
	}
	if err := l.SetContent("nope", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("edit: expected ErrNotFound, got %v", err)
	}
	if err := l.Remove("nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("remove: expected ErrNotFound, got %v", err)
	}
}

func TestCreateDefaultsContent(t *testing.T) {
	l := NewList("todos", newFakePersistence())
	i, err := l.Create("   ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if i.Content != todo.DefaultContent {
		t.Fatalf("expected default content, got %q", i.Content)
	}
}
