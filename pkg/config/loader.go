package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileNames is the conventional search list, tried in order in the
// working directory when no explicit path is given.
var ConfigFileNames = []string{
	".snapcheckrc.yaml",
	".snapcheckrc.yml",
	".snapcheckrc.json",
	"snapcheck.config.yaml",
	"snapcheck.config.json",
}

// FindConfigFile returns the first conventional config file present in
// dir, or empty string if none exists.
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadFile loads a Config override from a YAML or JSON file. The format is
// chosen by extension; unknown extensions are tried as YAML, which is a
// superset of JSON for our purposes.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileLoadError{Path: path, Message: err.Error(), Err: err}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				line, col := findLineColumn(data, syntaxErr.Offset)
				return nil, &FileLoadError{Path: path, Line: line, Column: col, Message: syntaxErr.Error(), Err: err}
			}
			return nil, &FileLoadError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &FileLoadError{Path: path, Message: err.Error(), Err: err}
		}
	}

	return &cfg, nil
}

// findLineColumn converts a byte offset into a 1-based line and column.
func findLineColumn(data []byte, offset int64) (line, col int) {
	line = 1
	col = 1
	for i := int64(0); i < offset && int(i) < len(data); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// loadProjectConfig resolves the file layer for Resolve. A load failure is
// recoverable (returned via warn, with an empty override) except when an
// explicitly named file fails to parse under strict mode.
func loadProjectConfig(explicitPath string, strict bool) (cfg *Config, path string, warn, fatal error) {
	path = explicitPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return &Config{}, "", nil, nil
		}
		path = FindConfigFile(cwd)
		if path == "" {
			return &Config{}, "", nil, nil
		}
	}

	loaded, err := LoadFile(path)
	if err == nil {
		return loaded, path, nil, nil
	}

	// An explicitly named file that fails to parse is fatal in strict
	// mode. Everything else falls back to an empty override.
	var loadErr *FileLoadError
	if strict && explicitPath != "" && errors.As(err, &loadErr) && !os.IsNotExist(loadErr.Err) {
		return nil, path, nil, fmt.Errorf("loading config file: %w", err)
	}
	return &Config{}, path, err, nil
}
