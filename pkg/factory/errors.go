package factory

import "fmt"

// ConfigurationError is returned when a synchronous entry point is invoked
// against a factory with context-taking generators, hooks, or deferred calls.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("factory: %s: %s", e.Op, e.Reason)
}

// Hint returns a user-friendly suggestion for resolving this error.
func (e *ConfigurationError) Hint() string {
	return "Use BuildContext or BatchContext for factories with context-taking generators, hooks, or deferred calls."
}

// ValidationError is returned for invalid arguments such as a negative batch
// size or an empty sequence domain.
type ValidationError struct {
	Op      string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("factory: %s: %s", e.Op, e.Message)
}

// CircularReferenceError is returned when a composition recurses past its
// depth bound without going through the depth-guarded SubBuild/SubBatch
// calls.
type CircularReferenceError struct {
	Depth    int
	MaxDepth int
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("factory: composition depth %d exceeds maximum %d; likely an unguarded factory cycle", e.Depth, e.MaxDepth)
}

// Hint returns a user-friendly suggestion for resolving this error.
func (e *CircularReferenceError) Hint() string {
	return "Build nested instances through Build.SubBuild or Build.SubBatch so recursion stays depth-limited."
}
