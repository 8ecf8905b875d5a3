package factory

import "context"

// DeferredFunc is a plain deferred-call target.
type DeferredFunc func(args ...any) (any, error)

// DeferredContextFunc is a context-taking deferred-call target, runnable only
// through BuildContext/BatchContext.
type DeferredContextFunc func(ctx context.Context, args ...any) (any, error)

// Deferred is a captured (function, arguments) pair placed inside a
// generator's returned tree. It is invoked exactly once, during value
// assembly, which lets generators express relationships between factories
// without eager recursive construction.
type Deferred struct {
	fn    DeferredFunc
	ctxFn DeferredContextFunc
	args  []any
}

// Use captures fn and args as a deferred call.
func Use(fn DeferredFunc, args ...any) *Deferred {
	if fn == nil {
		panic("factory: Use called with nil function")
	}
	return &Deferred{fn: fn, args: args}
}

// UseContext captures a context-taking fn and args as a deferred call.
func UseContext(fn DeferredContextFunc, args ...any) *Deferred {
	if fn == nil {
		panic("factory: UseContext called with nil function")
	}
	return &Deferred{ctxFn: fn, args: args}
}
