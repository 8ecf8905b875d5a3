package schemagen

import (
	"sort"
	"sync"

	"github.com/getmockd/fixture/pkg/schema"
)

// HandlerFunc produces a value for every node of one kind, replacing the
// built-in strategy. depth is the node's position in the recursion; handlers
// generating children should pass depth+1 through g.GenerateAt.
type HandlerFunc func(g *Generator, node schema.Node, depth int) (any, error)

// MetaFunc produces a value for every node carrying one metadata tag,
// regardless of the node's kind.
type MetaFunc func(g *Generator) (any, error)

// Registry holds type handlers keyed by node kind and metadata generators
// keyed by tag. The zero value is not usable; construct with NewRegistry.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[schema.Kind]HandlerFunc
	meta     map[string]MetaFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[schema.Kind]HandlerFunc),
		meta:     make(map[string]MetaFunc),
	}
}

// Register installs a type handler for a kind, replacing any previous one.
// Panics on a nil handler.
func (r *Registry) Register(kind schema.Kind, fn HandlerFunc) {
	if fn == nil {
		panic("schemagen: Register called with nil handler")
	}
	r.mu.Lock()
	r.handlers[kind] = fn
	r.mu.Unlock()
}

// Unregister removes the type handler for a kind, restoring built-in
// behavior.
func (r *Registry) Unregister(kind schema.Kind) {
	r.mu.Lock()
	delete(r.handlers, kind)
	r.mu.Unlock()
}

// Handler returns the registered type handler for a kind.
func (r *Registry) Handler(kind schema.Kind) (HandlerFunc, bool) {
	r.mu.RLock()
	fn, ok := r.handlers[kind]
	r.mu.RUnlock()
	return fn, ok
}

// Handlers returns the kinds with a registered type handler, sorted.
func (r *Registry) Handlers() []schema.Kind {
	r.mu.RLock()
	kinds := make([]schema.Kind, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	r.mu.RUnlock()
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// RegisterMeta installs a metadata generator for a tag, replacing any
// previous one. Panics on a nil generator.
func (r *Registry) RegisterMeta(tag string, fn MetaFunc) {
	if fn == nil {
		panic("schemagen: RegisterMeta called with nil generator")
	}
	r.mu.Lock()
	r.meta[tag] = fn
	r.mu.Unlock()
}

// UnregisterMeta removes the metadata generator for a tag.
func (r *Registry) UnregisterMeta(tag string) {
	r.mu.Lock()
	delete(r.meta, tag)
	r.mu.Unlock()
}

// Meta returns the registered metadata generator for a tag.
func (r *Registry) Meta(tag string) (MetaFunc, bool) {
	r.mu.RLock()
	fn, ok := r.meta[tag]
	r.mu.RUnlock()
	return fn, ok
}

// Clear removes all type handlers and metadata generators.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.handlers = make(map[schema.Kind]HandlerFunc)
	r.meta = make(map[string]MetaFunc)
	r.mu.Unlock()
}

// defaultRegistry backs the package-level registration functions. Generators
// consult it after their own registry.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry consulted by all
// generators.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterTypeHandler installs a type handler in the default registry.
func RegisterTypeHandler(kind schema.Kind, fn HandlerFunc) {
	defaultRegistry.Register(kind, fn)
}

// UnregisterTypeHandler removes a type handler from the default registry.
func UnregisterTypeHandler(kind schema.Kind) {
	defaultRegistry.Unregister(kind)
}

// TypeHandlers returns the kinds handled by the default registry, sorted.
func TypeHandlers() []schema.Kind {
	return defaultRegistry.Handlers()
}

// ClearTypeHandlers empties the default registry.
func ClearTypeHandlers() {
	defaultRegistry.Clear()
}

// RegisterMetaGenerator installs a metadata generator in the default
// registry.
func RegisterMetaGenerator(tag string, fn MetaFunc) {
	defaultRegistry.RegisterMeta(tag, fn)
}

// UnregisterMetaGenerator removes a metadata generator from the default
// registry.
func UnregisterMetaGenerator(tag string) {
	defaultRegistry.UnregisterMeta(tag)
}
