// Package factory provides a reusable template engine for building synthetic
// test values.
//
// A Factory pairs a generator function with ordered before/after hook
// pipelines and a depth-limited recursion context. Building merges three
// value sources with fixed precedence: generator output, then hook-transformed
// caller overrides on top.
//
//	userFactory := factory.New(func(b *factory.Build) (map[string]any, error) {
//		return map[string]any{
//			"id":       b.Faker().UUID(),
//			"username": b.Faker().Username(),
//		}, nil
//	})
//	user, err := userFactory.Build(map[string]any{"username": "admin"})
//
// Factories whose generator constructs nested instances from other factories
// use Build.SubBuild / Build.SubBatch, which recurse one level deeper and
// return a neutral placeholder at the configured maximum depth. This makes
// self-referential compositions (trees, graphs) terminate without manual
// depth tracking.
//
// # Synchronous and context-aware execution
//
// Generators, hooks, and deferred calls come in two tagged forms: plain and
// context-taking. Build and Batch run only plain callables and fail with a
// ConfigurationError when any context-taking form is registered;
// BuildContext and BatchContext run both, strictly in sequence. No two
// hooks, and no two batch elements, ever execute concurrently.
package factory
