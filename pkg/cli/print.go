package cli

import "github.com/snapcheck/snapcheck/pkg/cli/internal/output"

// printResult outputs a single operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is
// written to stdout. Human-readable prose must go to stderr or be omitted
// entirely. textFn is called only in text mode.
func printResult(data any, textFn func()) {
	if jsonOutput {
		_ = output.JSON(data)
		return
	}
	textFn()
}
