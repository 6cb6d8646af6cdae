package store

import (
	"context"
	"testing"
	"time"

	"github.com/ksato9700/todomvc/pkg/todo"
)

func TestPersistenceWatchEmitsListChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	i := todo.New("hello world")
	i.Order = 1
	if err := p.Create("todos", i); err != nil {
		t.Fatalf("create item: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventListsInvalidated {
				return
			}
			if evt.Type == EventListChanged {
				if evt.List != "todos" {
					t.Fatalf("expected list 'todos', got %q", evt.List)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for list change event")
		}
	}
}
