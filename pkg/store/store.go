package store

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ksato9700/todomvc/pkg/todo"
)

// ErrNotFound is returned when an item id is not present in the store.
var ErrNotFound = errors.New("store: item not found")

// Persistence defines the persistence contract for todo items. Each
// list owns one namespace; items are stored one JSON record per id.
type Persistence interface {
	Create(list string, i *todo.Item) error
	Update(list string, i *todo.Item) error
	Destroy(list string, i *todo.Item) error
	FindAll(ctx context.Context, list string) ([]*todo.Item, error)
	Lists(ctx context.Context, prefix string) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*todo.Item, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	i := &todo.Item{}
	if err := json.Unmarshal(val, i); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	i.ID = pk.FileName
	return i, nil
}

// Create persists a new item, assigning an id if it does not have one.
func (p *persistence) Create(list string, i *todo.Item) error {
	if i.ID == "" {
		b, _ := json.Marshal(i)
		id := md5.Sum(b)
		i.ID = fmt.Sprintf("%x", id[:8])
	}
	return p.write(list, i)
}

// Update rewrites the full record for an already persisted item.
func (p *persistence) Update(list string, i *todo.Item) error {
	if i.ID == "" {
		return ErrNotFound
	}
	if !p.d.Has(toKey(list, i.ID)) {
		return ErrNotFound
	}
	return p.write(list, i)
}

func (p *persistence) write(list string, i *todo.Item) error {
	data, err := json.Marshal(i)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(list, i.ID), data)
}

func (p *persistence) Destroy(list string, i *todo.Item) error {
	if i.ID == "" {
		return ErrNotFound
	}
	key := toKey(list, i.ID)
	if !p.d.Has(key) {
		return ErrNotFound
	}
	return p.d.Erase(key)
}

// FindAll returns every item in the list, ascending by order.
func (p *persistence) FindAll(ctx context.Context, list string) ([]*todo.Item, error) {
	lk := toList(list)
	all := make([]*todo.Item, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != lk {
			continue
		}
		i, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, i)
	}
	sortItems(all)
	return all, nil
}

// Lists returns the known namespaces, optionally filtered by prefix.
func (p *persistence) Lists(ctx context.Context, prefix string) []string {
	seen := make(map[string]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		lk := fromList(pk.Path[0])
		seen[lk] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func sortItems(items []*todo.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		left := items[i]
		right := items[j]
		if left.Order == right.Order {
			return left.ID < right.ID
		}
		return left.Order < right.Order
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `list-id`
func toKey(list, id string) string {
	return fmt.Sprintf("%s-%s", toList(list), id)
}

func toList(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func fromList(s string) string {
	list, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromList: %s", err)
	}
	return string(list)
}
