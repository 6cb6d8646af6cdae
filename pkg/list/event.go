package list

import (
	"sort"

	"github.com/ksato9700/todomvc/pkg/todo"
)

// EventType describes a collection change notification.
type EventType int

const (
	// Reset fires once a Load completes and the snapshot is installed.
	Reset EventType = iota
	// Added fires when a new item enters the list.
	Added
	// Changed fires when a contained item is toggled or edited.
	Changed
	// Removed fires when an item leaves the list.
	Removed
)

func (t EventType) String() string {
	switch t {
	case Reset:
		return "reset"
	case Added:
		return "added"
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event carries a collection change to subscribers. Item is nil for
// Reset events.
type Event struct {
	Type EventType
	Item *todo.Item
}

// Subscribe registers fn for change notifications and returns its
// unsubscribe handle. Delivery is synchronous, in registration order.
func (l *List) Subscribe(fn func(Event)) func() {
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return func() {
		delete(l.subs, id)
	}
}

func (l *List) publish(ev Event) {
	ids := make([]int, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	// Map iteration order is random; deliver in registration order.
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.subs[id]; ok {
			fn(ev)
		}
	}
}
