// Package engine defines the seam between story resolution and the
// external browser-automation collaborator. This core never navigates to
// a story or compares pixels; it hands a resolved config and story list
// across this boundary.
package engine

import (
	"context"

	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/stories"
)

// Runner executes snapshot tests for a resolved story list. Implemented
// by the external automation engine.
type Runner interface {
	// Run tests the given stories under the given configuration. The
	// per-story TestOptions flags select which snapshot categories to
	// capture.
	Run(ctx context.Context, cfg *config.Config, list []stories.Story) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, cfg *config.Config, list []stories.Story) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, cfg *config.Config, list []stories.Story) error {
	return f(ctx, cfg, list)
}
