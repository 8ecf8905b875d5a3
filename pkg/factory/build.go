package factory

import (
	"context"

	"github.com/getmockd/fixture/pkg/faker"
)

// Build is the call-scoped recursion context passed to generators. It
// carries the instance index and the explicit (depth, maxDepth) pair that
// bounds nested composition.
type Build struct {
	// Index is the zero-based instance index within a batch; 0 for single
	// builds.
	Index int

	depth    int
	maxDepth int
	factory  *Factory
	ctx      context.Context
}

// Depth returns the current recursion depth (0 at the top level).
func (b *Build) Depth() int { return b.depth }

// MaxDepth returns the configured composition bound.
func (b *Build) MaxDepth() int { return b.maxDepth }

// AtMaxDepth reports whether nested builds from here would be substituted
// with placeholders.
func (b *Build) AtMaxDepth() bool { return b.depth+1 >= b.maxDepth }

// Faker returns the owning factory's pseudo-random value source.
func (b *Build) Faker() *faker.Faker { return b.factory.faker }

// SubBuild builds one instance from another factory (or the same factory,
// for self-reference) one recursion level deeper. At the configured maximum
// depth it returns a nil placeholder instead of recursing, guaranteeing
// termination for self-referential compositions.
func (b *Build) SubBuild(other *Factory, overrides ...map[string]any) (map[string]any, error) {
	if other == nil {
		return nil, &ValidationError{Op: "SubBuild", Message: "nil factory"}
	}
	child := b.depth + 1
	if child >= b.maxDepth {
		return nil, nil
	}
	if b.ctx != nil {
		return other.buildAtContext(b.ctx, 0, child, b.maxDepth, collapseOverrides(overrides))
	}
	return other.buildAt(0, child, b.maxDepth, collapseOverrides(overrides))
}

// SubBatch builds size instances from another factory one recursion level
// deeper. At the configured maximum depth it returns an empty slice.
func (b *Build) SubBatch(other *Factory, size int, overrides ...map[string]any) ([]map[string]any, error) {
	if other == nil {
		return nil, &ValidationError{Op: "SubBatch", Message: "nil factory"}
	}
	if size < 0 {
		return nil, &ValidationError{Op: "SubBatch", Message: "size must be a non-negative integer"}
	}
	child := b.depth + 1
	if child >= b.maxDepth {
		return []map[string]any{}, nil
	}

	iter, err := batchOverrides("SubBatch", size, overrides)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, size)
	for i := 0; i < size; i++ {
		var ov map[string]any
		if iter != nil {
			ov = iter.Next().(map[string]any)
		}
		var v map[string]any
		if b.ctx != nil {
			v, err = other.buildAtContext(b.ctx, i, child, b.maxDepth, ov)
		} else {
			v, err = other.buildAt(i, child, b.maxDepth, ov)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
