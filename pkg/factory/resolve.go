package factory

import (
	"context"

	"github.com/getmockd/fixture/pkg/sequence"
)

// resolveValue walks a generated value tree and resolves lazily produced
// values: deferred calls are invoked once, iterators yield exactly one value,
// and nested maps recurse field by field. Everything else passes through
// unchanged.
func resolveValue(v any) (any, error) {
	switch t := v.(type) {
	case *Deferred:
		if t.ctxFn != nil {
			return nil, &ConfigurationError{Op: "Build", Reason: "deferred call requires a context"}
		}
		return t.fn(t.args...)
	case sequence.Iterator:
		return t.Next(), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			r, err := resolveValue(val)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

// resolveValueContext is resolveValue for the context-aware pipeline. The
// semantics are identical except context-taking deferred calls run with ctx.
func resolveValueContext(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case *Deferred:
		if t.ctxFn != nil {
			return t.ctxFn(ctx, t.args...)
		}
		return t.fn(t.args...)
	case sequence.Iterator:
		return t.Next(), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			r, err := resolveValueContext(ctx, val)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

// resolveMap resolves a generator's output, which is always a map at the top
// level.
func resolveMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	out, err := resolveValue(m)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func resolveMapContext(ctx context.Context, m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	out, err := resolveValueContext(ctx, m)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}
