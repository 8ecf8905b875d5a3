package schemagen

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fixture/pkg/factory"
	"github.com/getmockd/fixture/pkg/schema"
)

const userDocument = `{
	"type": "object",
	"properties": {
		"id": {"type": "string", "format": "uuid"},
		"age": {"type": "integer", "minimum": 18, "maximum": 120},
		"email": {"type": "string"}
	},
	"required": ["id", "age"]
}`

func TestFromSchemaBuild(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		user, err := f.Build()
		require.NoError(t, err)
		assert.Regexp(t, uuidPattern, user["id"])
		age := user["age"].(int)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 120)
	}
}

func TestFromSchemaAcceptsRawRepresentations(t *testing.T) {
	// OpenAPI schemas wrap transparently.
	oa := &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"code": openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"integer"}}),
		},
		Required: []string{"code"},
	}
	f, err := FromSchema(oa)
	require.NoError(t, err)

	out, err := f.Build()
	require.NoError(t, err)
	_, ok := out["code"].(int)
	assert.True(t, ok)

	_, err = FromSchema(42)
	require.Error(t, err)
}

func TestFromSchemaOverrides(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	user, err := f.Build(map[string]any{"age": 99})
	require.NoError(t, err)
	assert.Equal(t, 99, user["age"])
}

func TestFromSchemaOverrideFailsValidation(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	// Below the declared minimum; the schema library rejects the result.
	_, err = f.Build(map[string]any{"age": 5})
	require.Error(t, err)
}

func TestFromSchemaPartial(t *testing.T) {
	partial := func(b *factory.Build) (map[string]any, error) {
		return map[string]any{"email": "fixed@example.com"}, nil
	}
	f, err := FromSchema(compile(t, userDocument), WithPartial(partial))
	require.NoError(t, err)

	user, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "fixed@example.com", user["email"])

	// Caller overrides still win over the partial.
	user, err = f.Build(map[string]any{"email": "caller@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "caller@example.com", user["email"])
}

func TestFromSchemaTypeHandler(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument),
		WithTypeHandler(schema.KindInteger, func(g *Generator, node schema.Node, depth int) (any, error) {
			return 42, nil
		}))
	require.NoError(t, err)

	user, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 42, user["age"])
}

func TestFromSchemaMetaGenerator(t *testing.T) {
	node := compile(t, `{
		"type": "object",
		"properties": {
			"code": {"type": "string", "title": "orderCode"}
		},
		"required": ["code"]
	}`)
	f, err := FromSchema(node,
		WithMetaGenerator("orderCode", func(g *Generator) (any, error) {
			return "ORD-0001", nil
		}))
	require.NoError(t, err)

	out, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "ORD-0001", out["code"])
}

func TestFromSchemaNonObject(t *testing.T) {
	f, err := FromSchema(compile(t, `{"type": "integer", "minimum": 0, "maximum": 100}`))
	require.NoError(t, err)

	out, err := f.Build()
	require.NoError(t, err)
	n, ok := out["value"].(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, 100)
}

func TestFromSchemaBatch(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	users, err := f.Batch(5)
	require.NoError(t, err)
	require.Len(t, users, 5)
	for _, u := range users {
		assert.Contains(t, u, "id")
		assert.Contains(t, u, "age")
	}
}

func TestFromSchemaBuildContext(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	f.AfterBuildContext(func(ctx context.Context, v map[string]any) (map[string]any, error) {
		out := factory.Merge(v, map[string]any{"email": "hooked@example.com"})
		return out, nil
	})

	user, err := f.BuildContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hooked@example.com", user["email"])

	// The context-taking hook locks out the synchronous path.
	_, err = f.Build()
	var cfgErr *factory.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestFromSchemaHooks(t *testing.T) {
	f, err := FromSchema(compile(t, userDocument))
	require.NoError(t, err)

	f.AfterBuild(func(v map[string]any) (map[string]any, error) {
		return factory.Merge(v, map[string]any{"age": 21}), nil
	})

	user, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 21, user["age"])
}

func TestFromSchemaGenerate(t *testing.T) {
	f, err := FromSchema(compile(t, `{"type": "string", "format": "uuid"}`))
	require.NoError(t, err)

	v, err := f.Generate()
	require.NoError(t, err)
	assert.Regexp(t, uuidPattern, v)
}

func TestFromSchemaDiscriminatedUnion(t *testing.T) {
	cat := &openapi3.Schema{
		Type:  &openapi3.Types{"object"},
		Title: "cat",
		Properties: openapi3.Schemas{
			"meow": openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
		},
		Required: []string{"meow"},
	}
	dog := &openapi3.Schema{
		Type:  &openapi3.Types{"object"},
		Title: "dog",
		Properties: openapi3.Schemas{
			"bark": openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
		},
		Required: []string{"bark"},
	}
	pet := &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", cat),
			openapi3.NewSchemaRef("", dog),
		},
		Discriminator: &openapi3.Discriminator{PropertyName: "petType"},
	}

	g := New()
	node, err := schema.Wrap(pet)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		v, err := g.Generate(node)
		require.NoError(t, err)
		obj := v.(map[string]any)
		assert.Contains(t, []any{"cat", "dog"}, obj["petType"])
	}
}
