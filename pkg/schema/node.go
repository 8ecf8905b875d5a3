package schema

import "encoding/json"

// Kind names the shape family of a schema node. Kind values double as the
// registration keys for type handlers.
type Kind string

// Node kinds.
const (
	KindString             Kind = "string"
	KindInteger            Kind = "integer"
	KindNumber             Kind = "number"
	KindBoolean            Kind = "boolean"
	KindNull               Kind = "null"
	KindAny                Kind = "any"
	KindConst              Kind = "const"
	KindEnum               Kind = "enum"
	KindObject             Kind = "object"
	KindRecord             Kind = "record"
	KindArray              Kind = "array"
	KindTuple              Kind = "tuple"
	KindSet                Kind = "set"
	KindUnion              Kind = "union"
	KindDiscriminatedUnion Kind = "discriminatedUnion"
	KindIntersection       Kind = "intersection"
	KindLazy               Kind = "lazy"
	KindNever              Kind = "never"
	KindUnsupported        Kind = "unsupported"
)

// Field describes one property of an object-like node.
type Field struct {
	Name     string
	Node     Node
	Required bool
}

// Checks carries the declared constraints of a node in a
// representation-independent form. Pointer fields are nil when the
// constraint is not declared.
type Checks struct {
	// Strings.
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    string

	// Numbers.
	Minimum      *float64
	Maximum      *float64
	ExclusiveMin bool
	ExclusiveMax bool
	MultipleOf   *float64

	// Containers.
	MinItems *int
	MaxItems *int
	MinProps *int
	MaxProps *int
}

// Node is the uniform read-only view of one schema constraint-tree element.
// Accessors that do not apply to a node's kind return zero values.
type Node interface {
	// Kind classifies the node.
	Kind() Kind

	// MetaTag returns the caller-supplied descriptive tag (vendor extension
	// or title), or "" when absent.
	MetaTag() string

	// Example returns the node's single declared example value, if any.
	Example() (any, bool)

	// Examples returns the node's declared examples collection.
	Examples() []any

	// ConstValue returns the fixed literal for const nodes.
	ConstValue() (any, bool)

	// EnumValues returns the members of an enumeration node.
	EnumValues() []any

	// Shape returns the declared fields of an object node, in stable order.
	Shape() []Field

	// Items returns the element node of an array or set.
	Items() Node

	// TupleItems returns the per-slot nodes of a tuple; TupleRest returns
	// the rest-element node, or nil when the tuple is closed.
	TupleItems() []Node
	TupleRest() Node

	// ValueNode returns the value node of a record (map-like object).
	ValueNode() Node

	// Variants returns the branches of a union node.
	Variants() []Node

	// Parts returns the operands of an intersection node.
	Parts() []Node

	// Discriminator returns the discriminating property name of a
	// discriminated union, or "".
	Discriminator() string

	// Nullable reports whether null is admitted alongside the node's kind.
	Nullable() bool

	// Unique reports whether array elements must be distinct (set
	// semantics).
	Unique() bool

	// Resolve dereferences a lazy node to its target. Non-lazy nodes return
	// themselves.
	Resolve() (Node, error)

	// Checks returns the node's declared constraints.
	Checks() Checks

	// Validate runs the external schema library's own validating parse over
	// a candidate value. Errors are the library's own error types.
	Validate(v any) error
}

// normalizeJSON round-trips a value through encoding/json so both schema
// libraries see the value types they expect (float64 numbers, map[string]any
// objects).
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// intPtr and floatPtr build optional check values.
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
