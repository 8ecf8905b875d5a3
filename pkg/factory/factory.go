package factory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/getmockd/fixture/pkg/faker"
	"github.com/getmockd/fixture/pkg/sequence"
)

// DefaultMaxDepth bounds nested composition when no explicit depth is
// configured.
const DefaultMaxDepth = 5

// GeneratorFunc maps one build invocation to a partial value tree. The tree
// may contain nested maps, iterators, deferred calls, and plain values.
type GeneratorFunc func(b *Build) (map[string]any, error)

// GeneratorContextFunc is the context-taking generator form, runnable only
// through BuildContext/BatchContext.
type GeneratorContextFunc func(ctx context.Context, b *Build) (map[string]any, error)

// Hook transforms a partial value. Before-hooks receive the caller overrides;
// after-hooks receive the merged result. Hooks must return a value and not
// mutate their input.
type Hook func(v map[string]any) (map[string]any, error)

// HookContext is the context-taking hook form.
type HookContext func(ctx context.Context, v map[string]any) (map[string]any, error)

// hook is the tagged sync/context variant stored in the pipelines.
type hook struct {
	fn    Hook
	ctxFn HookContext
}

func (h hook) needsContext() bool { return h.ctxFn != nil }

func (h hook) run(ctx context.Context, v map[string]any) (map[string]any, error) {
	if h.ctxFn != nil {
		return h.ctxFn(ctx, v)
	}
	return h.fn(v)
}

// Option configures a Factory.
type Option func(*Factory)

// WithMaxDepth sets the maximum nested composition depth.
func WithMaxDepth(n int) Option {
	return func(f *Factory) {
		if n > 0 {
			f.maxDepth = n
		}
	}
}

// WithFaker sets the pseudo-random value source handed to generators.
func WithFaker(fk *faker.Faker) Option {
	return func(f *Factory) {
		if fk != nil {
			f.faker = fk
		}
	}
}

// WithLogger enables debug tracing of build pipelines.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// Factory is a reusable template for producing instances of one value shape.
// Hooks may be appended after construction via chaining calls; registration
// and building must not run concurrently with each other.
type Factory struct {
	gen    GeneratorFunc
	genCtx GeneratorContextFunc
	before []hook
	after  []hook

	maxDepth int
	faker    *faker.Faker
	logger   *slog.Logger

	mu sync.RWMutex
}

// New creates a Factory from a plain generator.
func New(gen GeneratorFunc, opts ...Option) *Factory {
	f := &Factory{gen: gen, maxDepth: DefaultMaxDepth, faker: faker.New()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewContext creates a Factory from a context-taking generator. Such a
// factory can only be built through BuildContext/BatchContext.
func NewContext(gen GeneratorContextFunc, opts ...Option) *Factory {
	f := &Factory{genCtx: gen, maxDepth: DefaultMaxDepth, faker: faker.New()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Faker returns the factory's pseudo-random value source.
func (f *Factory) Faker() *faker.Faker { return f.faker }

// BeforeBuild appends a hook run over the caller overrides, in registration
// order, before the generator is invoked. Panics on a nil hook.
func (f *Factory) BeforeBuild(h Hook) *Factory {
	if h == nil {
		panic("factory: BeforeBuild called with nil hook")
	}
	f.mu.Lock()
	f.before = append(f.before, hook{fn: h})
	f.mu.Unlock()
	return f
}

// AfterBuild appends a hook run over the merged result, in registration
// order. Panics on a nil hook.
func (f *Factory) AfterBuild(h Hook) *Factory {
	if h == nil {
		panic("factory: AfterBuild called with nil hook")
	}
	f.mu.Lock()
	f.after = append(f.after, hook{fn: h})
	f.mu.Unlock()
	return f
}

// BeforeBuildContext appends a context-taking before-hook. Registering one
// restricts the factory to BuildContext/BatchContext.
func (f *Factory) BeforeBuildContext(h HookContext) *Factory {
	if h == nil {
		panic("factory: BeforeBuildContext called with nil hook")
	}
	f.mu.Lock()
	f.before = append(f.before, hook{ctxFn: h})
	f.mu.Unlock()
	return f
}

// AfterBuildContext appends a context-taking after-hook.
func (f *Factory) AfterBuildContext(h HookContext) *Factory {
	if h == nil {
		panic("factory: AfterBuildContext called with nil hook")
	}
	f.mu.Lock()
	f.after = append(f.after, hook{ctxFn: h})
	f.mu.Unlock()
	return f
}

// snapshot copies the pipeline state so a build is unaffected by concurrent
// registration.
func (f *Factory) snapshot() (before, after []hook, gen GeneratorFunc, genCtx GeneratorContextFunc) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	before = append([]hook(nil), f.before...)
	after = append([]hook(nil), f.after...)
	return before, after, f.gen, f.genCtx
}

// needsContext reports whether any registered callable is context-taking.
func needsContext(before, after []hook, genCtx GeneratorContextFunc) bool {
	if genCtx != nil {
		return true
	}
	for _, h := range before {
		if h.needsContext() {
			return true
		}
	}
	for _, h := range after {
		if h.needsContext() {
			return true
		}
	}
	return false
}

// Build produces one instance. Overrides are deep-merged over the generator
// output; multiple override maps merge left to right. Fails with a
// ConfigurationError if the generator or any hook is context-taking.
func (f *Factory) Build(overrides ...map[string]any) (map[string]any, error) {
	return f.buildAt(0, 0, f.maxDepth, collapseOverrides(overrides))
}

// BuildContext is Build with support for context-taking generators, hooks,
// and deferred calls. Every step runs strictly in sequence.
func (f *Factory) BuildContext(ctx context.Context, overrides ...map[string]any) (map[string]any, error) {
	return f.buildAtContext(ctx, 0, 0, f.maxDepth, collapseOverrides(overrides))
}

// Batch produces size independent instances, each built at recursion depth 0.
// With no overrides, instances build bare; with one override map it applies
// uniformly; with several they pair with instance indices through a Cycle, so
// a shorter list repeats. Fails with a ValidationError on negative size.
func (f *Factory) Batch(size int, overrides ...map[string]any) ([]map[string]any, error) {
	iter, err := batchOverrides("Batch", size, overrides)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, size)
	for i := 0; i < size; i++ {
		var ov map[string]any
		if iter != nil {
			ov = iter.Next().(map[string]any)
		}
		v, err := f.buildAt(i, 0, f.maxDepth, ov)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// BatchContext is Batch for context-aware factories. Batch elements build
// strictly in sequence, preserving deterministic iterator cursors.
func (f *Factory) BatchContext(ctx context.Context, size int, overrides ...map[string]any) ([]map[string]any, error) {
	iter, err := batchOverrides("BatchContext", size, overrides)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, size)
	for i := 0; i < size; i++ {
		var ov map[string]any
		if iter != nil {
			ov = iter.Next().(map[string]any)
		}
		v, err := f.buildAtContext(ctx, i, 0, f.maxDepth, ov)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func batchOverrides(op string, size int, overrides []map[string]any) (*sequence.Cycle, error) {
	if size < 0 {
		return nil, &ValidationError{Op: op, Message: "size must be a non-negative integer"}
	}
	if len(overrides) == 0 {
		return nil, nil
	}
	domain := make([]any, len(overrides))
	for i, ov := range overrides {
		domain[i] = ov
	}
	return sequence.NewCycle(domain)
}

func collapseOverrides(overrides []map[string]any) map[string]any {
	switch len(overrides) {
	case 0:
		return nil
	case 1:
		return overrides[0]
	default:
		return Merge(overrides[0], overrides[1:]...)
	}
}

// buildAt runs the synchronous pipeline at an explicit recursion context.
func (f *Factory) buildAt(index, depth, maxDepth int, overrides map[string]any) (map[string]any, error) {
	if depth > maxDepth {
		return nil, &CircularReferenceError{Depth: depth, MaxDepth: maxDepth}
	}
	before, after, gen, genCtx := f.snapshot()
	if needsContext(before, after, genCtx) {
		return nil, &ConfigurationError{Op: "Build", Reason: "generator or hook requires a context"}
	}
	if f.logger != nil {
		f.logger.Debug("factory build", "index", index, "depth", depth)
	}

	cur := overrides
	var err error
	for _, h := range before {
		if cur, err = h.fn(cur); err != nil {
			return nil, err
		}
	}

	generated := map[string]any{}
	if gen != nil {
		b := &Build{Index: index, depth: depth, maxDepth: maxDepth, factory: f}
		if generated, err = gen(b); err != nil {
			return nil, err
		}
	}
	resolved, err := resolveMap(generated)
	if err != nil {
		return nil, err
	}

	merged := Merge(resolved, cur)
	for _, h := range after {
		if merged, err = h.fn(merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// buildAtContext runs the context-aware pipeline. Identical semantics to
// buildAt except every step may take the context; steps still execute
// strictly in sequence, each hook completing before the next begins.
func (f *Factory) buildAtContext(ctx context.Context, index, depth, maxDepth int, overrides map[string]any) (map[string]any, error) {
	if depth > maxDepth {
		return nil, &CircularReferenceError{Depth: depth, MaxDepth: maxDepth}
	}
	before, after, gen, genCtx := f.snapshot()
	if f.logger != nil {
		f.logger.Debug("factory build", "index", index, "depth", depth)
	}

	cur := overrides
	var err error
	for _, h := range before {
		if cur, err = h.run(ctx, cur); err != nil {
			return nil, err
		}
	}

	generated := map[string]any{}
	b := &Build{Index: index, depth: depth, maxDepth: maxDepth, factory: f, ctx: ctx}
	if genCtx != nil {
		if generated, err = genCtx(ctx, b); err != nil {
			return nil, err
		}
	} else if gen != nil {
		if generated, err = gen(b); err != nil {
			return nil, err
		}
	}
	resolved, err := resolveMapContext(ctx, generated)
	if err != nil {
		return nil, err
	}

	merged := Merge(resolved, cur)
	for _, h := range after {
		if merged, err = h.run(ctx, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// Iterate constructs a Cycle sequence for placement inside generated trees.
func (f *Factory) Iterate(domain []any) (*sequence.Cycle, error) {
	c, err := sequence.NewCycle(domain)
	if err != nil {
		return nil, &ValidationError{Op: "Iterate", Message: err.Error()}
	}
	return c, nil
}

// Sample constructs a Sample sequence backed by the factory's random source.
func (f *Factory) Sample(domain []any) (*sequence.Sample, error) {
	s, err := sequence.NewSampleWithRand(domain, f.faker.Rand())
	if err != nil {
		return nil, &ValidationError{Op: "Sample", Message: err.Error()}
	}
	return s, nil
}
