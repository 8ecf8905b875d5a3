package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// CompileString compiles a JSON Schema document (2020-12 by default) and
// wraps it as a Node. Annotations (title, examples, defaults) are extracted
// so metadata-driven generation can see them.
func CompileString(document string) (Node, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.ExtractAnnotations = true

	if err := compiler.AddResource("schema.json", strings.NewReader(document)); err != nil {
		return nil, fmt.Errorf("schema: failed to add schema resource: %w", err)
	}
	s, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema: failed to compile schema: %w", err)
	}
	return FromJSONSchema(s), nil
}

// CompileJSON compiles a JSON Schema document from raw JSON bytes.
func CompileJSON(data []byte) (Node, error) {
	return CompileString(string(data))
}

// CompileYAML compiles a JSON Schema document written in YAML. The document
// is converted to JSON first so both loaders see consistent value types.
func CompileYAML(data []byte) (Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: failed to parse YAML schema: %w", err)
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema: failed to convert YAML schema to JSON: %w", err)
	}
	return CompileString(string(jsonBytes))
}

// Wrap adapts a schema value of either supported representation to a Node,
// probing the concrete type at the boundary. Nodes pass through unchanged.
func Wrap(v any) (Node, error) {
	switch t := v.(type) {
	case Node:
		return t, nil
	case *jsonschema.Schema:
		return FromJSONSchema(t), nil
	case *openapi3.Schema:
		return FromOpenAPI(t), nil
	case *openapi3.SchemaRef:
		return FromOpenAPIRef(t), nil
	default:
		return nil, fmt.Errorf("schema: unsupported schema representation %T", v)
	}
}
