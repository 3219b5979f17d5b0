package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanExports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "Button.tsx"), `
import React from "react";

export const Button = () => null;
export default Button;
  export function helper() {}
const internal = 1;
`)
	writeFile(t, filepath.Join(dir, "src", "nested", "Badge.tsx"), `
export const Badge = () => null;
// export const commentedOut = 1;
`)
	writeFile(t, filepath.Join(dir, "README.md"), "export nothing here\n")

	scan, err := ScanExports([]string{filepath.Join(dir, "src", "**", "*.tsx")})
	require.NoError(t, err)

	require.Len(t, scan.Files, 2)
	// Sorted by path.
	assert.Equal(t, filepath.Join(dir, "src", "Button.tsx"), scan.Files[0].Path)
	assert.Equal(t, 3, scan.Files[0].Exports)
	assert.Equal(t, filepath.Join(dir, "src", "nested", "Badge.tsx"), scan.Files[1].Path)
	assert.Equal(t, 1, scan.Files[1].Exports)
	assert.Equal(t, 4, scan.TotalExports)
}

func TestScanExports_DuplicatePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "export const a = 1;\n")

	pattern := filepath.Join(dir, "*.ts")
	scan, err := ScanExports([]string{pattern, pattern})
	require.NoError(t, err)

	// Overlapping patterns count each file once.
	require.Len(t, scan.Files, 1)
	assert.Equal(t, 1, scan.TotalExports)
}

func TestScanExports_NoPatterns(t *testing.T) {
	scan, err := ScanExports(nil)
	require.NoError(t, err)
	assert.Empty(t, scan.Files)
	assert.Zero(t, scan.TotalExports)
}
