// Package schemagen generates structurally valid values from schema
// constraint trees.
//
// A Generator walks a schema.Node and produces a value for it, consulting in
// order: a registered metadata generator for the node's tag, the node's
// declared example(s), a registered type handler for the node's kind, and
// finally the built-in kind dispatch. Built-ins respect declared constraints
// (length and numeric bounds, multipleOf, formats, patterns) and bound
// recursive schemas by depth.
//
// SchemaFactory connects a schema to the factory build pipeline: generated
// defaults are overlaid with a partial generator and caller overrides, then
// the merged candidate is validated against the schema before it is returned.
//
//	node, _ := schema.CompileString(`{
//	    "type": "object",
//	    "properties": {
//	        "id":  {"type": "string", "format": "uuid"},
//	        "age": {"type": "integer", "minimum": 18, "maximum": 120}
//	    },
//	    "required": ["id", "age"]
//	}`)
//	f, _ := schemagen.FromSchema(node)
//	user, _ := f.Build()
package schemagen
