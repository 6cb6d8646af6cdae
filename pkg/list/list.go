// Package list holds an ordered, filterable todo collection backed by
// a persistence namespace.
package list

import (
	"context"
	"sort"

	"github.com/ksato9700/todomvc/pkg/store"
	"github.com/ksato9700/todomvc/pkg/todo"
)

// List is the in-memory collection of items for one storage namespace.
// It is the sole owner of that namespace. Iteration order is ascending
// by item order key; toggling or editing never reorders.
//
// List is not safe for concurrent use; there is exactly one writer.
type List struct {
	name string
	p    store.Persistence

	byID  map[string]*todo.Item
	items []*todo.Item

	subs    map[int]func(Event)
	nextSub int
}

func NewList(name string, p store.Persistence) *List {
	return &List{
		name: name,
		p:    p,
		byID: make(map[string]*todo.Item),
		subs: make(map[int]func(Event)),
	}
}

// Name returns the storage namespace this list owns.
func (l *List) Name() string {
	return l.name
}

// Load fetches the persisted items and installs them as the current
// snapshot. A single Reset event fires once the snapshot is in place.
// Calling Load again replaces the snapshot and fires another Reset.
func (l *List) Load(ctx context.Context) error {
	all, err := l.p.FindAll(ctx, l.name)
	if err != nil {
		return err
	}

	l.byID = make(map[string]*todo.Item, len(all))
	l.items = make([]*todo.Item, 0, len(all))
	for _, i := range all {
		l.byID[i.ID] = i
		l.items = append(l.items, i)
	}
	l.sortItems()

	l.publish(Event{Type: Reset})
	return nil
}

// Add inserts the item, assigning its order key when unset and its id
// via the persistence layer. An Added event fires on success.
func (l *List) Add(i *todo.Item) error {
	if i.Order == 0 {
		i.Order = l.NextOrder()
	}
	if err := l.p.Create(l.name, i); err != nil {
		return err
	}

	l.byID[i.ID] = i
	l.items = append(l.items, i)
	l.sortItems()

	l.publish(Event{Type: Added, Item: i})
	return nil
}

// Create builds an item from content and adds it.
func (l *List) Create(content string) (*todo.Item, error) {
	i := todo.New(content)
	if err := l.Add(i); err != nil {
		return nil, err
	}
	return i, nil
}

// Toggle flips the done flag of the item with the given id and writes
// the full item state through to storage.
func (l *List) Toggle(id string) error {
	i, ok := l.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	i.Toggle()
	l.publish(Event{Type: Changed, Item: i})
	return l.p.Update(l.name, i)
}

// SetContent rewrites the item text and writes through to storage.
func (l *List) SetContent(id, text string) error {
	i, ok := l.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	i.SetContent(text)
	l.publish(Event{Type: Changed, Item: i})
	return l.p.Update(l.name, i)
}

// Remove deletes the item from the list and from storage. The item is
// unusable afterwards.
func (l *List) Remove(id string) error {
	i, ok := l.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	delete(l.byID, id)
	for n, it := range l.items {
		if it == i {
			l.items = append(l.items[:n], l.items[n+1:]...)
			break
		}
	}
	l.publish(Event{Type: Removed, Item: i})
	return l.p.Destroy(l.name, i)
}

// Get returns the item with the given id, if present.
func (l *List) Get(id string) (*todo.Item, bool) {
	i, ok := l.byID[id]
	return i, ok
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns every item, ascending by order key.
func (l *List) Items() []*todo.Item {
	out := make([]*todo.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Done returns the completed items, ascending by order key.
func (l *List) Done() []*todo.Item {
	return l.filtered(true)
}

// Remaining returns the not-yet-completed items, ascending by order key.
func (l *List) Remaining() []*todo.Item {
	return l.filtered(false)
}

func (l *List) filtered(done bool) []*todo.Item {
	out := make([]*todo.Item, 0, len(l.items))
	for _, i := range l.items {
		if i.Done == done {
			out = append(out, i)
		}
	}
	return out
}

// NextOrder returns 1 for an empty list, otherwise one past the largest
// order key. A true maximum scan, not the position of the last element:
// records loaded from storage are not guaranteed to arrive pre-sorted.
func (l *List) NextOrder() int {
	max := 0
	for _, i := range l.items {
		if i.Order > max {
			max = i.Order
		}
	}
	return max + 1
}

func (l *List) sortItems() {
	sort.SliceStable(l.items, func(a, b int) bool {
		left := l.items[a]
		right := l.items[b]
		if left.Order == right.Order {
			return left.ID < right.ID
		}
		return left.Order < right.Order
	})
}
