package stories

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"

	"github.com/snapcheck/snapcheck/internal/catalog"
	"github.com/snapcheck/snapcheck/internal/matching"
	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/logging"
	"github.com/snapcheck/snapcheck/pkg/snapshot"
)

// Resolver turns a resolved config into the list of stories to test.
// Stateless between calls: every Resolve fetches the catalog fresh.
type Resolver struct {
	cfg    *config.Config
	client *catalog.Client
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClient replaces the catalog client, mainly for tests.
func WithClient(client *catalog.Client) Option {
	return func(r *Resolver) { r.client = client }
}

// NewResolver creates a resolver for one resolved configuration.
func NewResolver(cfg *config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:    cfg,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = catalog.NewClient(
			cfg.Storybook.IndexURL(),
			catalog.WithTimeout(cfg.Storybook.FetchTimeout.Std()),
			catalog.WithLogger(r.logger),
		)
	}
	return r
}

// Resolve fetches the catalog and runs the filter pipeline. When
// includeAllMatching is false, only stories with an existing snapshot on
// disk (image or position file) survive. The result is sorted ascending
// by id.
func (r *Resolver) Resolve(ctx context.Context, includeAllMatching bool) ([]Story, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run", runID)

	logger.Debug("fetching story index", "url", r.client.URL())
	idx, err := r.client.FetchIndex(ctx)
	if err != nil {
		return nil, err
	}

	filterProgram, err := compileFilterExpression(r.cfg.Snapshot.Filters.Expression)
	if err != nil {
		return nil, err
	}

	global := r.cfg.Snapshot.TestMatcher
	imageMatcher := matching.Effective(global, r.cfg.Snapshot.Image.TestMatcher)
	positionMatcher := matching.Effective(global, r.cfg.Snapshot.Position.TestMatcher)
	store := snapshot.FromConfig(r.cfg)
	filters := r.cfg.Snapshot.Filters

	var out []Story
	for _, entry := range idx.Stories() {
		if matching.Excluded(filters.Exclusions, entry) {
			continue
		}
		if filterProgram != nil {
			keep, err := evalFilterExpression(filterProgram, entry)
			if err != nil {
				return nil, &InvalidFilterExpressionError{Expression: filters.Expression, Err: err}
			}
			if !keep {
				continue
			}
		}

		opts := TestOptions{
			Image:    matching.Matches(imageMatcher, entry, entry.ForcedImage()),
			Position: matching.Matches(positionMatcher, entry, entry.ForcedPosition()),
		}
		if !opts.Image && !opts.Position {
			continue
		}

		if !includePath(filters.IncludePaths, entry.ImportPath) {
			continue
		}
		if !includeStoryID(filters.StoryIDs, entry.ID) {
			continue
		}
		if !includeAllMatching && !store.Exists(entry.ID) {
			continue
		}

		out = append(out, Story{
			ID:          entry.ID,
			Name:        entry.Name,
			Tags:        entry.Tags,
			ImportPath:  entry.ImportPath,
			TestOptions: opts,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	logger.Info("resolved stories",
		"catalog", len(idx.Entries),
		"selected", len(out),
		"includeAllMatching", includeAllMatching)
	return out, nil
}

// includePath applies the include-path filter: with a non-empty list, the
// import path must contain at least one listed segment. An empty list
// matches everything.
func includePath(includePaths config.StringList, importPath string) bool {
	if len(includePaths) == 0 {
		return true
	}
	for _, p := range includePaths {
		if p != "" && strings.Contains(importPath, p) {
			return true
		}
	}
	return false
}

func includeStoryID(storyIDs config.StringList, id string) bool {
	if len(storyIDs) == 0 {
		return true
	}
	for _, want := range storyIDs {
		if id == want {
			return true
		}
	}
	return false
}

func compileFilterExpression(expression string) (*vm.Program, error) {
	if expression == "" {
		return nil, nil
	}
	program, err := expr.Compile(expression, expr.Env(exprEnv(catalog.Entry{})), expr.AsBool())
	if err != nil {
		return nil, &InvalidFilterExpressionError{Expression: expression, Err: err}
	}
	return program, nil
}

func evalFilterExpression(program *vm.Program, entry catalog.Entry) (bool, error) {
	result, err := expr.Run(program, exprEnv(entry))
	if err != nil {
		return false, err
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, want bool", result)
	}
	return keep, nil
}

func exprEnv(entry catalog.Entry) map[string]interface{} {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"id":         entry.ID,
		"name":       entry.Name,
		"tags":       tags,
		"importPath": entry.ImportPath,
	}
}
