// Package stories resolves which catalog stories are in scope for a
// snapshot run and which categories apply to each.
package stories

import (
	"fmt"
)

// Story is one resolved catalog entry, annotated with the per-category
// test flags. A story with both flags false is never returned.
type Story struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tags        []string    `json:"tags,omitempty"`
	ImportPath  string      `json:"importPath,omitempty"`
	TestOptions TestOptions `json:"_testOptions"`
}

// TestOptions are the per-category flags the external test generator
// consumes.
type TestOptions struct {
	Image    bool `json:"image"`
	Position bool `json:"position"`
}

// InvalidFilterExpressionError reports a snapshot.filters.expression that
// does not compile. Fatal: a broken filter must not silently select
// everything.
type InvalidFilterExpressionError struct {
	Expression string
	Err        error
}

func (e *InvalidFilterExpressionError) Error() string {
	return fmt.Sprintf("invalid filter expression %q: %v", e.Expression, e.Err)
}

func (e *InvalidFilterExpressionError) Unwrap() error { return e.Err }
