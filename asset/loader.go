package asset

import (
	"context"
	"sync"

	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// Entry names a model and the file it is loaded from.
type Entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Loader interface {
	// Load returns the root of the model's node hierarchy.
	Load(ctx context.Context, entry Entry) (*scene.Node, error)
}

// Set collects loaded model roots by entry name. It is safe for
// concurrent use by load operations.
type Set struct {
	mu    sync.Mutex
	roots map[string]*scene.Node
}

func NewSet() *Set {
	return &Set{
		roots: make(map[string]*scene.Node),
	}
}

func (s *Set) Put(name string, root *scene.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots[name] = root
}

func (s *Set) Get(name string) *scene.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roots[name]
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roots)
}

// FetchModel loads one entry into the set, reporting to the manager.
// The item must have been started on the manager beforehand.
func FetchModel(ctx context.Context, loader Loader, manager *Manager, entry Entry, target *Set) async.Operation {
	return async.NewFuncOperation(func() error {
		return fetchModel(ctx, loader, manager, entry, target)
	})
}

func fetchModel(ctx context.Context, loader Loader, manager *Manager, entry Entry, target *Set) error {
	root, err := loader.Load(ctx, entry)
	if err != nil {
		err = &LoadError{Name: entry.Name, Path: entry.Path, Err: err}
		manager.ItemError(entry.Name, err)
		return err
	}
	target.Put(entry.Name, root)
	manager.ItemEnd(entry.Name)
	return nil
}

// LoadAll starts every entry on the manager and then fetches them
// concurrently into target. The promise resolves once all of them have
// loaded.
func LoadAll(ctx context.Context, loader Loader, manager *Manager, entries []Entry, target *Set) async.Promise[*Set] {
	for _, entry := range entries {
		manager.ItemStart(entry.Name)
	}
	operations := make([]async.Operation, len(entries))
	for i, entry := range entries {
		operations[i] = FetchModel(ctx, loader, manager, entry, target)
	}
	return async.InjectionPromise(async.JoinOperations(operations...), target)
}
