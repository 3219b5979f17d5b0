package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAML(t *testing.T) {
	path := writeConfig(t, "conf.yaml", `
storybook:
  host: example.test
snapshot:
  image:
    testMatcher:
      tags: [pixel]
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "example.test", cfg.Storybook.Host)
	require.NotNil(t, cfg.Snapshot.Image.TestMatcher)
	assert.Equal(t, StringList{"pixel"}, cfg.Snapshot.Image.TestMatcher.Tags)
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeConfig(t, "conf.json", `{
  "storybook": {"port": 7007},
  "snapshot": {"filters": {"storyIds": ["button--primary"]}}
}`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7007, cfg.Storybook.PortInt())
	assert.Equal(t, StringList{"button--primary"}, cfg.Snapshot.Filters.StoryIDs)
}

func TestLoadFile_BadJSONReportsLineColumn(t *testing.T) {
	path := writeConfig(t, "conf.json", "{\n  \"storybook\": {,}\n}")

	_, err := LoadFile(path)
	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Line)
	assert.Contains(t, loadErr.Error(), "line 2")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, os.IsNotExist(loadErr.Err))
}

func TestFindConfigFile_SearchOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapcheck.config.yaml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".snapcheckrc.json"), []byte("{}"), 0644))

	// Earlier names in the conventional list win.
	assert.Equal(t, filepath.Join(dir, ".snapcheckrc.json"), FindConfigFile(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".snapcheckrc.yaml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(dir, ".snapcheckrc.yaml"), FindConfigFile(dir))
}

func TestFindConfigFile_NoneFound(t *testing.T) {
	assert.Equal(t, "", FindConfigFile(t.TempDir()))
}

func TestResolve_StrictExplicitParseFailureIsFatal(t *testing.T) {
	path := writeConfig(t, "conf.yaml", "storybook: [not: a: mapping\n")

	// Non-strict: warn and continue with defaults.
	cfg, err := Resolve(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Storybook.PortInt())

	// Strict: fatal.
	_, err = Resolve(Options{ConfigFile: path, Strict: true})
	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestResolve_StrictMissingExplicitFileIsRecoverable(t *testing.T) {
	// Strict only promotes parse failures; a missing file stays a warning.
	cfg, err := Resolve(Options{
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
		Strict:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Storybook.Host)
}
