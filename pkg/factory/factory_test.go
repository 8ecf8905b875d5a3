package factory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticGen(values map[string]any) GeneratorFunc {
	return func(b *Build) (map[string]any, error) {
		return deepCopyMap(values), nil
	}
}

func TestBuildMergesOverrides(t *testing.T) {
	f := New(staticGen(map[string]any{"id": 1, "name": "generated", "meta": map[string]any{"a": 1}}))

	got, err := f.Build(map[string]any{"name": "override", "meta": map[string]any{"b": 2}})
	require.NoError(t, err)

	assert.Equal(t, 1, got["id"])
	assert.Equal(t, "override", got["name"])
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got["meta"])
}

func TestBuildNilGenerator(t *testing.T) {
	f := New(nil)
	got, err := f.Build(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestHookPipeline(t *testing.T) {
	f := New(staticGen(map[string]any{"role": "user"}))

	f.BeforeBuild(func(v map[string]any) (map[string]any, error) {
		out := deepCopyMap(v)
		if username, ok := out["username"].(string); ok {
			out["email"] = strings.ToLower(username) + "@example.com"
		}
		return out, nil
	})
	f.AfterBuild(func(v map[string]any) (map[string]any, error) {
		out := deepCopyMap(v)
		for _, k := range []string{"username", "email"} {
			if s, ok := out[k].(string); ok {
				out[k] = strings.ToLower(s)
			}
		}
		return out, nil
	})

	got, err := f.Build(map[string]any{"username": "JohnDoe"})
	require.NoError(t, err)

	assert.Equal(t, "johndoe@example.com", got["email"])
	assert.Equal(t, "johndoe", got["username"])
	assert.Equal(t, "user", got["role"])
}

func TestHookOrder(t *testing.T) {
	var order []string
	f := New(func(b *Build) (map[string]any, error) {
		order = append(order, "gen")
		return map[string]any{}, nil
	})
	f.BeforeBuild(func(v map[string]any) (map[string]any, error) {
		order = append(order, "before1")
		return v, nil
	}).BeforeBuild(func(v map[string]any) (map[string]any, error) {
		order = append(order, "before2")
		return v, nil
	}).AfterBuild(func(v map[string]any) (map[string]any, error) {
		order = append(order, "after1")
		return v, nil
	}).AfterBuild(func(v map[string]any) (map[string]any, error) {
		order = append(order, "after2")
		return v, nil
	})

	_, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"before1", "before2", "gen", "after1", "after2"}, order)
}

func TestBuildRejectsContextCallables(t *testing.T) {
	ctxGen := NewContext(func(ctx context.Context, b *Build) (map[string]any, error) {
		return map[string]any{}, nil
	})
	_, err := ctxGen.Build()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	hooked := New(staticGen(map[string]any{})).
		AfterBuildContext(func(ctx context.Context, v map[string]any) (map[string]any, error) {
			return v, nil
		})
	_, err = hooked.Build()
	require.ErrorAs(t, err, &cfgErr)

	// The context entry point accepts both forms.
	_, err = hooked.BuildContext(context.Background())
	require.NoError(t, err)
}

func TestBuildContextSequential(t *testing.T) {
	var order []string
	f := NewContext(func(ctx context.Context, b *Build) (map[string]any, error) {
		order = append(order, "gen")
		return map[string]any{}, nil
	})
	f.BeforeBuildContext(func(ctx context.Context, v map[string]any) (map[string]any, error) {
		order = append(order, "before")
		return v, nil
	})
	f.AfterBuild(func(v map[string]any) (map[string]any, error) {
		order = append(order, "after")
		return v, nil
	})

	_, err := f.BuildContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"before", "gen", "after"}, order)
}

func TestBatchSizes(t *testing.T) {
	f := New(func(b *Build) (map[string]any, error) {
		return map[string]any{"i": b.Index}, nil
	})

	for _, n := range []int{0, 1, 3, 10} {
		got, err := f.Batch(n)
		require.NoError(t, err)
		require.Len(t, got, n)
		for i, v := range got {
			assert.Equal(t, i, v["i"])
		}
	}

	_, err := f.Batch(-1)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestBatchOverrideCycling(t *testing.T) {
	f := New(staticGen(map[string]any{"role": "user"}))

	got, err := f.Batch(5,
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	)
	require.NoError(t, err)
	require.Len(t, got, 5)

	names := make([]any, 5)
	for i, v := range got {
		names[i] = v["name"]
	}
	assert.Equal(t, []any{"a", "b", "a", "b", "a"}, names)
}

func TestBatchUniformOverride(t *testing.T) {
	f := New(staticGen(map[string]any{}))

	got, err := f.Batch(3, map[string]any{"tenant": "acme"})
	require.NoError(t, err)
	for _, v := range got {
		assert.Equal(t, "acme", v["tenant"])
	}
}

func TestDeferredResolution(t *testing.T) {
	calls := 0
	f := New(func(b *Build) (map[string]any, error) {
		return map[string]any{
			"token": Use(func(args ...any) (any, error) {
				calls++
				return args[0].(string) + "-resolved", nil
			}, "seed"),
		}, nil
	})

	got, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "seed-resolved", got["token"])
	assert.Equal(t, 1, calls)
}

func TestDeferredContextRequiresContext(t *testing.T) {
	f := New(func(b *Build) (map[string]any, error) {
		return map[string]any{
			"v": UseContext(func(ctx context.Context, args ...any) (any, error) {
				return "ok", nil
			}),
		}, nil
	})

	_, err := f.Build()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	got, err := f.BuildContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got["v"])
}

func TestIteratorResolution(t *testing.T) {
	f := New(nil)
	cycle, err := f.Iterate([]any{"x", "y"})
	require.NoError(t, err)

	g := New(func(b *Build) (map[string]any, error) {
		return map[string]any{"v": cycle}, nil
	})

	first, err := g.Build()
	require.NoError(t, err)
	second, err := g.Build()
	require.NoError(t, err)
	third, err := g.Build()
	require.NoError(t, err)

	assert.Equal(t, "x", first["v"])
	assert.Equal(t, "y", second["v"])
	assert.Equal(t, "x", third["v"])
}

func TestIterateEmptyDomain(t *testing.T) {
	f := New(nil)
	_, err := f.Iterate(nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = f.Sample([]any{})
	require.ErrorAs(t, err, &valErr)
}

func TestSelfReferentialComposition(t *testing.T) {
	var nodeFactory *Factory
	nodeFactory = New(func(b *Build) (map[string]any, error) {
		child, err := b.SubBuild(nodeFactory)
		if err != nil {
			return nil, err
		}
		out := map[string]any{"name": "node", "depth": b.Depth()}
		if child != nil {
			out["child"] = child
		}
		return out, nil
	}, WithMaxDepth(3))

	got, err := nodeFactory.Build()
	require.NoError(t, err)

	// Depth 0 and 1 materialize; the build at depth 2 would recurse to the
	// bound and gets a placeholder instead.
	depth := 0
	for cur := got; ; depth++ {
		child, ok := cur["child"].(map[string]any)
		if !ok {
			break
		}
		cur = child
	}
	assert.LessOrEqual(t, depth, 3)
}

func TestSubBatchAtDepthLimit(t *testing.T) {
	var catFactory *Factory
	catFactory = New(func(b *Build) (map[string]any, error) {
		children, err := b.SubBatch(catFactory, 2)
		if err != nil {
			return nil, err
		}
		return map[string]any{"children": children}, nil
	}, WithMaxDepth(2))

	got, err := catFactory.Build()
	require.NoError(t, err)

	children := got["children"].([]map[string]any)
	require.Len(t, children, 2)
	for _, c := range children {
		assert.Empty(t, c["children"], "grandchildren should be cut off at the bound")
	}
}

func TestCompose(t *testing.T) {
	base := New(staticGen(map[string]any{"kind": "user", "active": true}))
	profile := New(staticGen(map[string]any{"bio": "hello"}))

	composed := base.Compose(map[string]any{
		"plan":    "pro",
		"profile": profile,
	})

	got, err := composed.Build()
	require.NoError(t, err)

	assert.Equal(t, "user", got["kind"])
	assert.Equal(t, "pro", got["plan"])
	assert.Equal(t, map[string]any{"bio": "hello"}, got["profile"])
}

func TestExtend(t *testing.T) {
	base := New(staticGen(map[string]any{"a": 1, "b": 1}))

	extended := base.Extend(func(b *Build) (map[string]any, error) {
		return map[string]any{"b": 2, "c": 3}, nil
	})

	got, err := extended.Build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "c": 3}, got)

	// The base factory is untouched.
	orig, err := base.Build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 1}, orig)
}

func TestExtendContextAwaitsBase(t *testing.T) {
	base := NewContext(func(ctx context.Context, b *Build) (map[string]any, error) {
		return map[string]any{"a": 1}, nil
	})
	extended := base.Extend(func(b *Build) (map[string]any, error) {
		return map[string]any{"b": 2}, nil
	})

	// Context-taking base keeps requiring the context entry point.
	_, err := extended.Build()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	got, err := extended.BuildContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}

func TestGeneratorErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	f := New(func(b *Build) (map[string]any, error) {
		return nil, boom
	})

	_, err := f.Build()
	require.ErrorIs(t, err, boom)

	_, err = f.Batch(3)
	require.ErrorIs(t, err, boom)
}

func TestDeriveHook(t *testing.T) {
	hook, err := Derive("email", `lower(username) + "@example.com"`)
	require.NoError(t, err)

	f := New(staticGen(map[string]any{"username": "JohnDoe"})).AfterBuild(hook)

	got, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "johndoe@example.com", got["email"])
}

func TestDeriveNestedPath(t *testing.T) {
	hook, err := Derive("profile.display", `upper(name)`)
	require.NoError(t, err)

	f := New(staticGen(map[string]any{"name": "ada"})).AfterBuild(hook)

	got, err := f.Build()
	require.NoError(t, err)
	profile := got["profile"].(map[string]any)
	assert.Equal(t, "ADA", profile["display"])
}

func TestDeriveInvalidExpression(t *testing.T) {
	_, err := Derive("x", "1 +")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestOverridesPathExpansion(t *testing.T) {
	got, err := Overrides(map[string]any{
		"profile.address.city": "Austin",
		"active":               true,
	})
	require.NoError(t, err)

	assert.Equal(t, true, got["active"])
	profile := got["profile"].(map[string]any)
	address := profile["address"].(map[string]any)
	assert.Equal(t, "Austin", address["city"])
}

func TestNilHookPanics(t *testing.T) {
	f := New(nil)
	assert.Panics(t, func() { f.BeforeBuild(nil) })
	assert.Panics(t, func() { f.AfterBuild(nil) })
}
