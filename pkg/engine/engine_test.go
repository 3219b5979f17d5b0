package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/stories"
)

var _ Runner = RunnerFunc(nil)

func TestRunnerFunc(t *testing.T) {
	cfg := config.Defaults()
	list := []stories.Story{
		{ID: "button--primary", TestOptions: stories.TestOptions{Image: true}},
	}

	var got []stories.Story
	var runner Runner = RunnerFunc(func(ctx context.Context, c *config.Config, l []stories.Story) error {
		assert.Same(t, cfg, c)
		got = l
		return nil
	})

	require.NoError(t, runner.Run(context.Background(), cfg, list))
	assert.Equal(t, list, got)
}

func TestRunnerFunc_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	runner := RunnerFunc(func(ctx context.Context, c *config.Config, l []stories.Story) error {
		return boom
	})
	assert.ErrorIs(t, runner.Run(context.Background(), nil, nil), boom)
}
