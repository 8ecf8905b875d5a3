// Package schema provides a uniform read-only accessor surface over external
// schema definitions, independent of which library models them internally.
//
// Two concrete representations are supported: JSON Schema compiled with
// santhosh-tekuri/jsonschema (drafts 7 through 2020-12) and OpenAPI 3 schemas
// from kin-openapi. Both are adapted to the same Node interface, so code that
// walks a constraint tree never branches on the underlying representation.
// Wrap selects the right adapter by probing the concrete type at the
// boundary.
//
// Nodes are read-only views; this package never mutates the wrapped schema
// and never reimplements validation semantics. Node.Validate delegates to the
// schema library's own validating parse.
package schema
