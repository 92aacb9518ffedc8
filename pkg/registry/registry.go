package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry indexes registered collections by slug. Registration happens at
// startup; lookups afterwards are read-only and safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	collections map[string]*Collection
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{collections: make(map[string]*Collection)}
}

// Register builds a collection from the config and indexes it. Duplicate
// slugs are rejected.
func (r *Registry) Register(cfg Config) (*Collection, error) {
	collection, err := New(cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.collections[collection.Slug()]; exists {
		return nil, fmt.Errorf("registry: collection %q is already registered", collection.Slug())
	}
	r.collections[collection.Slug()] = collection
	return collection, nil
}

// RegisterAll registers every config in order, stopping at the first error.
func (r *Registry) RegisterAll(cfgs []Config) error {
	for _, cfg := range cfgs {
		if _, err := r.Register(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Collection looks up a registered collection by slug.
func (r *Registry) Collection(slug string) (*Collection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	collection, ok := r.collections[slug]
	return collection, ok
}

// Slugs returns the sorted slugs of every registered collection.
func (r *Registry) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slugs := make([]string, 0, len(r.collections))
	for slug := range r.collections {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
