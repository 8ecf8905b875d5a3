package schema

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// MetaTagExtension is the vendor extension carrying a metadata-generator tag
// on OpenAPI schemas.
const MetaTagExtension = "x-fixture-tag"

// oaNode adapts a kin-openapi schema to the Node surface. A non-empty ref
// marks the node lazy: children reached through a $ref resolve on demand so
// reference cycles stay depth-bounded. forced pins one entry of a 3.1
// multi-type declaration.
type oaNode struct {
	s      *openapi3.Schema
	ref    string
	forced string
}

// FromOpenAPI wraps an OpenAPI 3 schema as a Node.
func FromOpenAPI(s *openapi3.Schema) Node {
	if s == nil {
		return nil
	}
	return &oaNode{s: s}
}

// FromOpenAPIRef wraps a schema reference as a Node, preserving its laziness
// when the reference names a component.
func FromOpenAPIRef(r *openapi3.SchemaRef) Node {
	if r == nil || r.Value == nil {
		return nil
	}
	return &oaNode{s: r.Value, ref: r.Ref}
}

func wrapRef(r *openapi3.SchemaRef) Node {
	return FromOpenAPIRef(r)
}

func (n *oaNode) types() []string {
	if n.forced != "" {
		return []string{n.forced}
	}
	if n.s.Type == nil {
		return nil
	}
	return []string(*n.s.Type)
}

// effectiveTypes strips "null" from a 3.1 multi-type declaration; null-ness
// is reported through Nullable.
func (n *oaNode) effectiveTypes() []string {
	types := n.types()
	if len(types) <= 1 {
		return types
	}
	out := make([]string, 0, len(types))
	for _, t := range types {
		if t != "null" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return types
	}
	return out
}

func (n *oaNode) Kind() Kind {
	if n.ref != "" {
		return KindLazy
	}
	s := n.s
	if len(s.Enum) > 0 {
		return KindEnum
	}
	if len(s.AllOf) > 0 {
		return KindIntersection
	}
	if s.Discriminator != nil && len(s.OneOf) > 0 {
		return KindDiscriminatedUnion
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		return KindUnion
	}

	types := n.effectiveTypes()
	switch len(types) {
	case 0:
		if len(s.Properties) > 0 {
			return KindObject
		}
		return KindAny
	case 1:
		return n.kindForType(types[0])
	default:
		return KindUnion
	}
}

func (n *oaNode) kindForType(t string) Kind {
	s := n.s
	switch t {
	case "string":
		return KindString
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "null":
		return KindNull
	case "object":
		if len(s.Properties) == 0 && s.AdditionalProperties.Schema != nil {
			return KindRecord
		}
		return KindObject
	case "array":
		if s.UniqueItems {
			return KindSet
		}
		return KindArray
	default:
		return KindUnsupported
	}
}

func (n *oaNode) MetaTag() string {
	if tag, ok := n.s.Extensions[MetaTagExtension].(string); ok && tag != "" {
		return tag
	}
	return n.s.Title
}

func (n *oaNode) Example() (any, bool) {
	if n.s.Example != nil {
		return n.s.Example, true
	}
	return nil, false
}

func (n *oaNode) Examples() []any { return nil }

func (n *oaNode) ConstValue() (any, bool) { return nil, false }

func (n *oaNode) EnumValues() []any { return n.s.Enum }

func (n *oaNode) Shape() []Field {
	props := n.s.Properties
	if len(props) == 0 {
		return nil
	}
	required := make(map[string]bool, len(n.s.Required))
	for _, r := range n.s.Required {
		required[r] = true
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		node := wrapRef(props[name])
		if node == nil {
			continue
		}
		fields = append(fields, Field{
			Name:     name,
			Node:     node,
			Required: required[name],
		})
	}
	return fields
}

func (n *oaNode) Items() Node { return wrapRef(n.s.Items) }

func (n *oaNode) TupleItems() []Node { return nil }

func (n *oaNode) TupleRest() Node { return nil }

func (n *oaNode) ValueNode() Node {
	return wrapRef(n.s.AdditionalProperties.Schema)
}

func (n *oaNode) Variants() []Node {
	branches := n.s.OneOf
	if len(branches) == 0 {
		branches = n.s.AnyOf
	}
	if len(branches) > 0 {
		out := make([]Node, 0, len(branches))
		for _, r := range branches {
			if node := wrapRef(r); node != nil {
				out = append(out, node)
			}
		}
		return out
	}

	types := n.effectiveTypes()
	if len(types) > 1 {
		out := make([]Node, len(types))
		for i, t := range types {
			out[i] = &oaNode{s: n.s, forced: t}
		}
		return out
	}
	return nil
}

func (n *oaNode) Parts() []Node {
	if len(n.s.AllOf) == 0 {
		return nil
	}
	out := make([]Node, 0, len(n.s.AllOf))
	for _, r := range n.s.AllOf {
		if node := wrapRef(r); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (n *oaNode) Discriminator() string {
	if n.s.Discriminator == nil {
		return ""
	}
	return n.s.Discriminator.PropertyName
}

func (n *oaNode) Nullable() bool {
	if n.s.Nullable {
		return true
	}
	types := n.types()
	if len(types) < 2 {
		return false
	}
	for _, t := range types {
		if t == "null" {
			return true
		}
	}
	return false
}

func (n *oaNode) Unique() bool { return n.s.UniqueItems }

func (n *oaNode) Resolve() (Node, error) {
	if n.ref != "" {
		return &oaNode{s: n.s}, nil
	}
	return n, nil
}

func (n *oaNode) Checks() Checks {
	s := n.s
	var c Checks

	if s.MinLength > 0 {
		c.MinLength = intPtr(int(s.MinLength))
	}
	if s.MaxLength != nil {
		c.MaxLength = intPtr(int(*s.MaxLength))
	}
	c.Pattern = s.Pattern
	c.Format = s.Format

	if s.Min != nil {
		c.Minimum = floatPtr(*s.Min)
		c.ExclusiveMin = s.ExclusiveMin
	}
	if s.Max != nil {
		c.Maximum = floatPtr(*s.Max)
		c.ExclusiveMax = s.ExclusiveMax
	}
	if s.MultipleOf != nil {
		c.MultipleOf = floatPtr(*s.MultipleOf)
	}

	if s.MinItems > 0 {
		c.MinItems = intPtr(int(s.MinItems))
	}
	if s.MaxItems != nil {
		c.MaxItems = intPtr(int(*s.MaxItems))
	}
	if s.MinProps > 0 {
		c.MinProps = intPtr(int(s.MinProps))
	}
	if s.MaxProps != nil {
		c.MaxProps = intPtr(int(*s.MaxProps))
	}
	return c
}

func (n *oaNode) Validate(v any) error {
	normalized, err := normalizeJSON(v)
	if err != nil {
		return err
	}
	return n.s.VisitJSON(normalized)
}
