package schemagen

import (
	"fmt"
	"log/slog"

	"github.com/getmockd/fixture/pkg/faker"
	"github.com/getmockd/fixture/pkg/schema"
)

// DefaultMaxDepth bounds recursive schema expansion when no explicit depth is
// configured.
const DefaultMaxDepth = 5

// Presence probabilities for fields the schema does not require.
const (
	optionalPresent = 0.7
	nullablePresent = 0.8
)

// Option configures a Generator.
type Option func(*Generator)

// WithFaker sets the pseudo-random value source.
func WithFaker(fk *faker.Faker) Option {
	return func(g *Generator) {
		if fk != nil {
			g.faker = fk
		}
	}
}

// WithRegistry sets the generator's own registry, consulted before the
// package default.
func WithRegistry(r *Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithMaxDepth sets the maximum recursive expansion depth.
func WithMaxDepth(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxDepth = n
		}
	}
}

// WithLogger enables debug tracing of node dispatch.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// Generator produces values from schema constraint trees. It dispatches each
// node through, in order: a metadata generator matching the node's tag, the
// node's declared example(s), a registered type handler for the node's kind,
// and the built-in strategy.
type Generator struct {
	faker    *faker.Faker
	registry *Registry
	maxDepth int
	logger   *slog.Logger
}

// New creates a Generator. Without options it uses an unseeded faker, the
// default registry only, and DefaultMaxDepth.
func New(opts ...Option) *Generator {
	g := &Generator{
		faker:    faker.New(),
		registry: NewRegistry(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Faker returns the generator's pseudo-random value source.
func (g *Generator) Faker() *faker.Faker { return g.faker }

// Registry returns the generator's own registry.
func (g *Generator) Registry() *Registry { return g.registry }

// Generate produces one value for the node.
func (g *Generator) Generate(node schema.Node) (any, error) {
	return g.generate(node, 0, "")
}

// GenerateAt produces one value for the node at an explicit recursion depth.
// Type handlers generating children should call this with depth+1 so
// recursive schemas stay bounded.
func (g *Generator) GenerateAt(node schema.Node, depth int) (any, error) {
	return g.generate(node, depth, "")
}

// GenerateValue is Generate for raw schema representations; the value is
// adapted through schema.Wrap first.
func (g *Generator) GenerateValue(v any) (any, error) {
	node, err := schema.Wrap(v)
	if err != nil {
		return nil, err
	}
	return g.Generate(node)
}

func (g *Generator) generate(node schema.Node, depth int, name string) (any, error) {
	if node == nil {
		return nil, nil
	}
	kind := node.Kind()
	if g.logger != nil {
		g.logger.Debug("schemagen dispatch", "kind", string(kind), "depth", depth, "field", name)
	}
	if depth > g.maxDepth {
		return g.fallbackValue(node, kind), nil
	}

	if tag := node.MetaTag(); tag != "" {
		if fn, ok := g.metaFor(tag); ok {
			return fn(g)
		}
	}
	if example, ok := node.Example(); ok {
		return example, nil
	}
	if examples := node.Examples(); len(examples) > 0 {
		return examples[g.faker.IntN(len(examples))], nil
	}

	// Nullable wraps the underlying kind: sometimes the value is just null.
	if node.Nullable() && kind != schema.KindNull && !g.faker.Chance(nullablePresent) {
		return nil, nil
	}

	if fn, ok := g.handlerFor(kind); ok {
		return fn(g, node, depth)
	}
	return g.builtin(node, kind, depth, name)
}

// handlerFor resolves a type handler, preferring the generator's own registry
// over the package default.
func (g *Generator) handlerFor(kind schema.Kind) (HandlerFunc, bool) {
	if fn, ok := g.registry.Handler(kind); ok {
		return fn, true
	}
	if g.registry != defaultRegistry {
		return defaultRegistry.Handler(kind)
	}
	return nil, false
}

func (g *Generator) metaFor(tag string) (MetaFunc, bool) {
	if fn, ok := g.registry.Meta(tag); ok {
		return fn, true
	}
	if g.registry != defaultRegistry {
		return defaultRegistry.Meta(tag)
	}
	return nil, false
}

func (g *Generator) builtin(node schema.Node, kind schema.Kind, depth int, name string) (any, error) {
	switch kind {
	case schema.KindString:
		return g.stringValue(node.Checks(), name), nil
	case schema.KindInteger:
		return g.integerValue(node.Checks()), nil
	case schema.KindNumber:
		return g.numberValue(node.Checks()), nil
	case schema.KindBoolean:
		return g.faker.Bool(), nil
	case schema.KindNull:
		return nil, nil
	case schema.KindAny:
		return g.faker.Word(), nil
	case schema.KindConst:
		v, _ := node.ConstValue()
		return v, nil
	case schema.KindEnum:
		values := node.EnumValues()
		if len(values) == 0 {
			return nil, nil
		}
		return values[g.faker.IntN(len(values))], nil
	case schema.KindObject:
		return g.objectValue(node, depth)
	case schema.KindRecord:
		return g.recordValue(node, depth)
	case schema.KindArray:
		return g.arrayValue(node, depth)
	case schema.KindTuple:
		return g.tupleValue(node, depth)
	case schema.KindSet:
		return g.setValue(node, depth)
	case schema.KindUnion:
		return g.unionValue(node, depth)
	case schema.KindDiscriminatedUnion:
		return g.discriminatedValue(node, depth)
	case schema.KindIntersection:
		return g.intersectionValue(node, depth)
	case schema.KindLazy:
		return g.lazyValue(node, depth, name)
	case schema.KindNever:
		return nil, &NeverKindError{}
	default:
		return nil, &UnsupportedKindError{Kind: kind}
	}
}

func (g *Generator) objectValue(node schema.Node, depth int) (map[string]any, error) {
	fields := node.Shape()
	obj := make(map[string]any, len(fields))
	for _, f := range fields {
		if !f.Required {
			// At the depth bound optional fields fall back to absent.
			if depth+1 > g.maxDepth || !g.faker.Chance(optionalPresent) {
				continue
			}
		}
		v, err := g.generate(f.Node, depth+1, f.Name)
		if err != nil {
			return nil, err
		}
		obj[f.Name] = v
	}
	return obj, nil
}

func (g *Generator) recordValue(node schema.Node, depth int) (map[string]any, error) {
	c := node.Checks()
	count := g.containerCount(c.MinProps, c.MaxProps)
	value := node.ValueNode()

	obj := make(map[string]any, count)
	for i := 0; i < count; i++ {
		key := g.faker.Word() + g.faker.Digits(2)
		if _, dup := obj[key]; dup {
			key = fmt.Sprintf("%s%d", key, i)
		}
		v, err := g.generate(value, depth+1, "")
		if err != nil {
			return nil, err
		}
		obj[key] = v
	}
	return obj, nil
}

func (g *Generator) arrayValue(node schema.Node, depth int) ([]any, error) {
	c := node.Checks()
	count := g.containerCount(c.MinItems, c.MaxItems)
	item := node.Items()

	out := make([]any, count)
	for i := range out {
		if item == nil {
			out[i] = placeholderItem
			continue
		}
		v, err := g.generate(item, depth+1, "")
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (g *Generator) tupleValue(node schema.Node, depth int) ([]any, error) {
	slots := node.TupleItems()
	out := make([]any, 0, len(slots)+2)
	for _, slot := range slots {
		v, err := g.generate(slot, depth+1, "")
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	// An explicit false rest schema closes the tuple.
	if rest := node.TupleRest(); rest != nil && rest.Kind() != schema.KindNever {
		for i, n := 0, g.faker.IntN(3); i < n; i++ {
			v, err := g.generate(rest, depth+1, "")
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// setValue generates distinct elements, comparing by printed form. If the
// element domain is too small to satisfy the target count the set comes back
// shorter rather than looping forever.
func (g *Generator) setValue(node schema.Node, depth int) ([]any, error) {
	c := node.Checks()
	count := g.containerCount(c.MinItems, c.MaxItems)
	item := node.Items()
	if item == nil {
		return []any{}, nil
	}

	seen := make(map[string]bool, count)
	out := make([]any, 0, count)
	for attempts := 0; len(out) < count && attempts < count*4; attempts++ {
		v, err := g.generate(item, depth+1, "")
		if err != nil {
			return nil, err
		}
		key := fmt.Sprint(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out, nil
}

func (g *Generator) unionValue(node schema.Node, depth int) (any, error) {
	variants := node.Variants()
	if len(variants) == 0 {
		return nil, nil
	}
	pick := variants[g.faker.IntN(len(variants))]
	return g.generate(pick, depth+1, "")
}

// discriminatedValue picks one branch and ensures the discriminating property
// is present on object results.
func (g *Generator) discriminatedValue(node schema.Node, depth int) (any, error) {
	variants := node.Variants()
	if len(variants) == 0 {
		return nil, nil
	}
	pick := variants[g.faker.IntN(len(variants))]
	v, err := g.generate(pick, depth+1, "")
	if err != nil {
		return nil, err
	}
	disc := node.Discriminator()
	if disc == "" {
		return v, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	if _, present := obj[disc]; !present {
		if tag := pick.MetaTag(); tag != "" {
			obj[disc] = tag
		} else {
			obj[disc] = g.faker.Word()
		}
	}
	return obj, nil
}

// intersectionValue generates every part and shallow-merges object results,
// later parts winning on key conflicts. A non-object intersection returns the
// first part's value.
func (g *Generator) intersectionValue(node schema.Node, depth int) (any, error) {
	parts := node.Parts()
	if len(parts) == 0 {
		return map[string]any{}, nil
	}

	merged := make(map[string]any)
	var first any
	sawObject := false
	for i, part := range parts {
		v, err := g.generate(part, depth+1, "")
		if err != nil {
			return nil, err
		}
		if i == 0 {
			first = v
		}
		if m, ok := v.(map[string]any); ok {
			sawObject = true
			for k, val := range m {
				merged[k] = val
			}
		}
	}
	if sawObject {
		return merged, nil
	}
	return first, nil
}

// lazyValue dereferences a reference node one level deeper. A reference that
// cannot be resolved degrades to an empty object placeholder instead of
// failing the whole tree.
func (g *Generator) lazyValue(node schema.Node, depth int, name string) (any, error) {
	if depth+1 > g.maxDepth {
		return g.fallbackValue(node, schema.KindLazy), nil
	}
	resolved, err := node.Resolve()
	if err != nil || resolved == nil {
		return map[string]any{}, nil
	}
	return g.generate(resolved, depth+1, name)
}
