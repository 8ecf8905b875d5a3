package schema

import (
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// jsonNode adapts a compiled santhosh-tekuri/jsonschema schema to the Node
// surface. forced pins the node to one entry of a multi-type declaration so
// type lists can surface as union variants.
type jsonNode struct {
	s      *jsonschema.Schema
	forced string
}

// FromJSONSchema wraps a compiled JSON Schema as a Node.
func FromJSONSchema(s *jsonschema.Schema) Node {
	if s == nil {
		return nil
	}
	return &jsonNode{s: s}
}

// effectiveTypes returns the declared type list with "null" stripped when it
// appears alongside other types; null-ness is reported through Nullable.
func (n *jsonNode) effectiveTypes() []string {
	if n.forced != "" {
		return []string{n.forced}
	}
	types := n.s.Types
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

func (n *jsonNode) Kind() Kind {
	s := n.s
	if s.Always != nil {
		if *s.Always {
			return KindAny
		}
		return KindNever
	}
	if s.Ref != nil || s.RecursiveRef != nil {
		return KindLazy
	}
	if len(s.Constant) > 0 {
		return KindConst
	}
	if len(s.Enum) > 0 {
		return KindEnum
	}
	if len(s.AllOf) > 0 {
		return KindIntersection
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		return KindUnion
	}

	types := n.effectiveTypes()
	switch len(types) {
	case 0:
		// Typeless schemas with structure still classify.
		if len(s.Properties) > 0 {
			return KindObject
		}
		if n.hasArrayShape() {
			return KindArray
		}
		return KindAny
	case 1:
		return n.kindForType(types[0])
	default:
		return KindUnion
	}
}

func (n *jsonNode) hasArrayShape() bool {
	s := n.s
	if s.Items2020 != nil || len(s.PrefixItems) > 0 {
		return true
	}
	_, ok := s.Items.(*jsonschema.Schema)
	return ok
}

func (n *jsonNode) kindForType(t string) Kind {
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
		if len(s.Properties) == 0 {
			if _, ok := s.AdditionalProperties.(*jsonschema.Schema); ok {
				return KindRecord
			}
		}
		return KindObject
	case "array":
		if len(s.PrefixItems) > 0 {
			return KindTuple
		}
		if _, ok := s.Items.([]*jsonschema.Schema); ok {
			return KindTuple
		}
		if s.UniqueItems {
			return KindSet
		}
		return KindArray
	default:
		return KindUnsupported
	}
}

func (n *jsonNode) MetaTag() string { return n.s.Title }

func (n *jsonNode) Example() (any, bool) { return nil, false }

func (n *jsonNode) Examples() []any { return n.s.Examples }

func (n *jsonNode) ConstValue() (any, bool) {
	// The compiler wraps const in a one-element slice to admit a nil
	// constant.
	if len(n.s.Constant) > 0 {
		return n.s.Constant[0], true
	}
	return nil, false
}

func (n *jsonNode) EnumValues() []any { return n.s.Enum }

func (n *jsonNode) Shape() []Field {
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
		fields = append(fields, Field{
			Name:     name,
			Node:     &jsonNode{s: props[name]},
			Required: required[name],
		})
	}
	return fields
}

func (n *jsonNode) Items() Node {
	if n.s.Items2020 != nil {
		return &jsonNode{s: n.s.Items2020}
	}
	if item, ok := n.s.Items.(*jsonschema.Schema); ok {
		return &jsonNode{s: item}
	}
	return nil
}

func (n *jsonNode) TupleItems() []Node {
	var slots []*jsonschema.Schema
	if len(n.s.PrefixItems) > 0 {
		slots = n.s.PrefixItems
	} else if list, ok := n.s.Items.([]*jsonschema.Schema); ok {
		slots = list
	}
	if len(slots) == 0 {
		return nil
	}
	out := make([]Node, len(slots))
	for i, s := range slots {
		out[i] = &jsonNode{s: s}
	}
	return out
}

func (n *jsonNode) TupleRest() Node {
	if len(n.s.PrefixItems) > 0 && n.s.Items2020 != nil {
		return &jsonNode{s: n.s.Items2020}
	}
	if rest, ok := n.s.AdditionalItems.(*jsonschema.Schema); ok {
		return &jsonNode{s: rest}
	}
	return nil
}

func (n *jsonNode) ValueNode() Node {
	if value, ok := n.s.AdditionalProperties.(*jsonschema.Schema); ok {
		return &jsonNode{s: value}
	}
	return nil
}

func (n *jsonNode) Variants() []Node {
	branches := n.s.OneOf
	if len(branches) == 0 {
		branches = n.s.AnyOf
	}
	if len(branches) > 0 {
		out := make([]Node, len(branches))
		for i, s := range branches {
			out[i] = &jsonNode{s: s}
		}
		return out
	}

	// A multi-type declaration surfaces as one variant per type.
	types := n.effectiveTypes()
	if len(types) > 1 {
		out := make([]Node, len(types))
		for i, t := range types {
			out[i] = &jsonNode{s: n.s, forced: t}
		}
		return out
	}
	return nil
}

func (n *jsonNode) Parts() []Node {
	if len(n.s.AllOf) == 0 {
		return nil
	}
	out := make([]Node, len(n.s.AllOf))
	for i, s := range n.s.AllOf {
		out[i] = &jsonNode{s: s}
	}
	return out
}

func (n *jsonNode) Discriminator() string { return "" }

func (n *jsonNode) Nullable() bool {
	if len(n.s.Types) < 2 {
		return false
	}
	for _, t := range n.s.Types {
		if t == "null" {
			return true
		}
	}
	return false
}

func (n *jsonNode) Unique() bool { return n.s.UniqueItems }

func (n *jsonNode) Resolve() (Node, error) {
	if n.s.Ref != nil {
		return &jsonNode{s: n.s.Ref}, nil
	}
	if n.s.RecursiveRef != nil {
		return &jsonNode{s: n.s.RecursiveRef}, nil
	}
	return n, nil
}

func (n *jsonNode) Checks() Checks {
	s := n.s
	var c Checks

	if s.MinLength >= 0 {
		c.MinLength = intPtr(s.MinLength)
	}
	if s.MaxLength >= 0 {
		c.MaxLength = intPtr(s.MaxLength)
	}
	if s.Pattern != nil {
		c.Pattern = s.Pattern.String()
	}
	c.Format = s.Format

	if s.ExclusiveMinimum != nil {
		f, _ := s.ExclusiveMinimum.Float64()
		c.Minimum = floatPtr(f)
		c.ExclusiveMin = true
	} else if s.Minimum != nil {
		f, _ := s.Minimum.Float64()
		c.Minimum = floatPtr(f)
	}
	if s.ExclusiveMaximum != nil {
		f, _ := s.ExclusiveMaximum.Float64()
		c.Maximum = floatPtr(f)
		c.ExclusiveMax = true
	} else if s.Maximum != nil {
		f, _ := s.Maximum.Float64()
		c.Maximum = floatPtr(f)
	}
	if s.MultipleOf != nil {
		f, _ := s.MultipleOf.Float64()
		c.MultipleOf = floatPtr(f)
	}

	if s.MinItems >= 0 {
		c.MinItems = intPtr(s.MinItems)
	}
	if s.MaxItems >= 0 {
		c.MaxItems = intPtr(s.MaxItems)
	}
	if s.MinProperties >= 0 {
		c.MinProps = intPtr(s.MinProperties)
	}
	if s.MaxProperties >= 0 {
		c.MaxProps = intPtr(s.MaxProperties)
	}
	return c
}

func (n *jsonNode) Validate(v any) error {
	normalized, err := normalizeJSON(v)
	if err != nil {
		return err
	}
	return n.s.Validate(normalized)
}
