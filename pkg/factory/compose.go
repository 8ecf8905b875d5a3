package factory

import "context"

// ExtendFunc produces an additional partial value merged over the base
// factory's output. It receives the depth-limited recursion context.
type ExtendFunc func(b *Build) (map[string]any, error)

// ExtendContextFunc is the context-taking extension form.
type ExtendContextFunc func(ctx context.Context, b *Build) (map[string]any, error)

// Compose returns a new factory whose generator first produces this
// factory's output, then overlays spec's entries. An entry that is itself a
// factory is resolved by building it once, one recursion level deeper; any
// other entry overlays verbatim.
func (f *Factory) Compose(spec map[string]any) *Factory {
	nf := f.derive()
	overlay := func(b *Build, out map[string]any) (map[string]any, error) {
		out = Merge(out)
		for k, v := range spec {
			if sub, ok := v.(*Factory); ok {
				built, err := b.SubBuild(sub)
				if err != nil {
					return nil, err
				}
				out[k] = built
				continue
			}
			out[k] = v
		}
		return out, nil
	}

	if f.genCtx != nil {
		base := f.genCtx
		nf.genCtx = func(ctx context.Context, b *Build) (map[string]any, error) {
			out, err := base(ctx, b)
			if err != nil {
				return nil, err
			}
			return overlay(b, out)
		}
		return nf
	}
	base := f.gen
	nf.gen = func(b *Build) (map[string]any, error) {
		out := map[string]any{}
		if base != nil {
			var err error
			if out, err = base(b); err != nil {
				return nil, err
			}
		}
		return overlay(b, out)
	}
	return nf
}

// Extend returns a new factory whose generator invokes the base generator,
// then merges fn's result over it. A context-taking base stays
// context-taking.
func (f *Factory) Extend(fn ExtendFunc) *Factory {
	nf := f.derive()
	if f.genCtx != nil {
		base := f.genCtx
		nf.genCtx = func(ctx context.Context, b *Build) (map[string]any, error) {
			out, err := base(ctx, b)
			if err != nil {
				return nil, err
			}
			extra, err := fn(b)
			if err != nil {
				return nil, err
			}
			return Merge(out, extra), nil
		}
		return nf
	}
	base := f.gen
	nf.gen = func(b *Build) (map[string]any, error) {
		out := map[string]any{}
		if base != nil {
			var err error
			if out, err = base(b); err != nil {
				return nil, err
			}
		}
		extra, err := fn(b)
		if err != nil {
			return nil, err
		}
		return Merge(out, extra), nil
	}
	return nf
}

// ExtendContext is Extend with a context-taking extension; the resulting
// factory always requires BuildContext.
func (f *Factory) ExtendContext(fn ExtendContextFunc) *Factory {
	nf := f.derive()
	baseCtx := f.genCtx
	base := f.gen
	nf.genCtx = func(ctx context.Context, b *Build) (map[string]any, error) {
		out := map[string]any{}
		var err error
		if baseCtx != nil {
			out, err = baseCtx(ctx, b)
		} else if base != nil {
			out, err = base(b)
		}
		if err != nil {
			return nil, err
		}
		extra, err := fn(ctx, b)
		if err != nil {
			return nil, err
		}
		return Merge(out, extra), nil
	}
	return nf
}

// derive clones configuration and hook pipelines into a new factory, leaving
// the generator to be filled in by the caller.
func (f *Factory) derive() *Factory {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return &Factory{
		before:   append([]hook(nil), f.before...),
		after:    append([]hook(nil), f.after...),
		maxDepth: f.maxDepth,
		faker:    f.faker,
		logger:   f.logger,
	}
}
