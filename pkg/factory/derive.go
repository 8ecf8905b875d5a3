package factory

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/ohler55/ojg/jp"
)

// Derive compiles src as an expression evaluated against the built value and
// returns a hook that stores the result at path. Paths use dotted JSONPath
// child notation ("profile.email"); missing intermediate objects are
// created.
//
//	hook, err := factory.Derive("email", `lower(username) + "@example.com"`)
//	f.AfterBuild(hook)
func Derive(path, src string) (Hook, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, &ValidationError{Op: "Derive", Message: fmt.Sprintf("invalid expression %q: %v", src, err)}
	}
	target, err := jp.ParseString(path)
	if err != nil {
		return nil, &ValidationError{Op: "Derive", Message: fmt.Sprintf("invalid path %q: %v", path, err)}
	}

	return func(v map[string]any) (map[string]any, error) {
		result, err := expr.Run(prog, map[string]any(v))
		if err != nil {
			return nil, &ValidationError{Op: "Derive", Message: fmt.Sprintf("expression %q: %v", src, err)}
		}
		out := deepCopyMap(v)
		if err := target.Set(out, result); err != nil {
			return nil, &ValidationError{Op: "Derive", Message: fmt.Sprintf("path %q: %v", path, err)}
		}
		return out, nil
	}, nil
}

// MustDerive is Derive that panics on a compile error, for static hook
// definitions.
func MustDerive(path, src string) Hook {
	h, err := Derive(path, src)
	if err != nil {
		panic(err)
	}
	return h
}

// Overrides expands dotted paths into a nested override tree:
//
//	factory.Overrides(map[string]any{"profile.address.city": "Austin"})
//	// → map[string]any{"profile": map[string]any{"address": map[string]any{"city": "Austin"}}}
func Overrides(paths map[string]any) (map[string]any, error) {
	out := map[string]any{}
	for path, v := range paths {
		target, err := jp.ParseString(path)
		if err != nil {
			return nil, &ValidationError{Op: "Overrides", Message: fmt.Sprintf("invalid path %q: %v", path, err)}
		}
		if err := target.Set(out, v); err != nil {
			return nil, &ValidationError{Op: "Overrides", Message: fmt.Sprintf("path %q: %v", path, err)}
		}
	}
	return out, nil
}
