package schemagen

import (
	"context"

	"github.com/getmockd/fixture/pkg/factory"
	"github.com/getmockd/fixture/pkg/schema"
)

// valueKey wraps non-object schema output so it can flow through the
// map-shaped factory pipeline.
const valueKey = "value"

// FactoryOption configures a SchemaFactory.
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	genOpts     []Option
	factoryOpts []factory.Option
	handlers    map[schema.Kind]HandlerFunc
	meta        map[string]MetaFunc
	partial     factory.GeneratorFunc
}

// WithTypeHandler installs a type handler scoped to this factory's generator.
func WithTypeHandler(kind schema.Kind, fn HandlerFunc) FactoryOption {
	return func(c *factoryConfig) { c.handlers[kind] = fn }
}

// WithTypeHandlers installs several type handlers at once.
func WithTypeHandlers(handlers map[schema.Kind]HandlerFunc) FactoryOption {
	return func(c *factoryConfig) {
		for kind, fn := range handlers {
			c.handlers[kind] = fn
		}
	}
}

// WithMetaGenerator installs a metadata generator scoped to this factory's
// generator.
func WithMetaGenerator(tag string, fn MetaFunc) FactoryOption {
	return func(c *factoryConfig) { c.meta[tag] = fn }
}

// WithPartial sets a generator whose output overlays the schema-derived
// defaults on every build, before caller overrides apply.
func WithPartial(gen factory.GeneratorFunc) FactoryOption {
	return func(c *factoryConfig) { c.partial = gen }
}

// WithGeneratorOptions forwards options to the underlying value generator.
func WithGeneratorOptions(opts ...Option) FactoryOption {
	return func(c *factoryConfig) { c.genOpts = append(c.genOpts, opts...) }
}

// WithFactoryOptions forwards options to the underlying build factory.
func WithFactoryOptions(opts ...factory.Option) FactoryOption {
	return func(c *factoryConfig) { c.factoryOpts = append(c.factoryOpts, opts...) }
}

// SchemaFactory runs the factory build pipeline with schema-derived defaults
// and validates every result against the schema. Build output assembles as:
// generated defaults, overlaid by the partial generator, overlaid by caller
// overrides, transformed by hooks, then validated.
//
// Non-object schemas build as a map with the value under "value".
type SchemaFactory struct {
	*factory.Factory

	node schema.Node
	gen  *Generator
}

// FromSchema creates a SchemaFactory for a schema given as a Node or as
// either raw representation accepted by schema.Wrap.
func FromSchema(v any, opts ...FactoryOption) (*SchemaFactory, error) {
	node, err := schema.Wrap(v)
	if err != nil {
		return nil, err
	}

	cfg := &factoryConfig{
		handlers: make(map[schema.Kind]HandlerFunc),
		meta:     make(map[string]MetaFunc),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	registry := NewRegistry()
	for kind, fn := range cfg.handlers {
		registry.Register(kind, fn)
	}
	for tag, fn := range cfg.meta {
		registry.RegisterMeta(tag, fn)
	}
	gen := New(append([]Option{WithRegistry(registry)}, cfg.genOpts...)...)

	sf := &SchemaFactory{node: node, gen: gen}
	partial := cfg.partial
	genFn := func(b *factory.Build) (map[string]any, error) {
		generated, err := gen.GenerateAt(node, b.Depth())
		if err != nil {
			return nil, err
		}
		defaults, ok := generated.(map[string]any)
		if !ok {
			defaults = map[string]any{valueKey: generated}
		}
		if partial != nil {
			overlay, err := partial(b)
			if err != nil {
				return nil, err
			}
			defaults = factory.Merge(defaults, overlay)
		}
		return defaults, nil
	}

	fopts := append([]factory.Option{factory.WithFaker(gen.Faker())}, cfg.factoryOpts...)
	sf.Factory = factory.New(genFn, fopts...)
	return sf, nil
}

// Node returns the schema this factory builds against.
func (f *SchemaFactory) Node() schema.Node { return f.node }

// Generator returns the underlying value generator.
func (f *SchemaFactory) Generator() *Generator { return f.gen }

// Generate produces one raw value straight from the schema, bypassing the
// build pipeline and validation.
func (f *SchemaFactory) Generate() (any, error) {
	return f.gen.Generate(f.node)
}

// Build produces one instance and validates it against the schema. A
// validation failure surfaces the schema library's own error.
func (f *SchemaFactory) Build(overrides ...map[string]any) (map[string]any, error) {
	out, err := f.Factory.Build(overrides...)
	if err != nil {
		return nil, err
	}
	if err := f.validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildContext is Build for context-aware pipelines.
func (f *SchemaFactory) BuildContext(ctx context.Context, overrides ...map[string]any) (map[string]any, error) {
	out, err := f.Factory.BuildContext(ctx, overrides...)
	if err != nil {
		return nil, err
	}
	if err := f.validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Batch produces size instances, validating each.
func (f *SchemaFactory) Batch(size int, overrides ...map[string]any) ([]map[string]any, error) {
	out, err := f.Factory.Batch(size, overrides...)
	if err != nil {
		return nil, err
	}
	for _, v := range out {
		if err := f.validate(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BatchContext is Batch for context-aware pipelines.
func (f *SchemaFactory) BatchContext(ctx context.Context, size int, overrides ...map[string]any) ([]map[string]any, error) {
	out, err := f.Factory.BatchContext(ctx, size, overrides...)
	if err != nil {
		return nil, err
	}
	for _, v := range out {
		if err := f.validate(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// validate unwraps the "value" envelope for non-object schemas before
// delegating to the schema library.
func (f *SchemaFactory) validate(out map[string]any) error {
	if v, ok := out[valueKey]; ok && len(out) == 1 && !objectLike(f.node.Kind()) {
		return f.node.Validate(v)
	}
	return f.node.Validate(out)
}

func objectLike(kind schema.Kind) bool {
	switch kind {
	case schema.KindObject, schema.KindRecord, schema.KindIntersection:
		return true
	default:
		return false
	}
}
