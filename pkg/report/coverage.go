// Package report gathers inputs for the external report renderer.
package report

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileExports is the naive export count for one scanned file.
type FileExports struct {
	Path    string `json:"path"`
	Exports int    `json:"exports"`
}

// ExportScan summarizes export statements across the configured component
// scan paths. Counting is deliberately naive: lines starting with
// "export " after trimming. No parsing happens here.
type ExportScan struct {
	Files        []FileExports `json:"files"`
	TotalExports int           `json:"totalExports"`
}

// ScanExports counts export statements in every file matched by the given
// glob patterns. Patterns support doublestar "**" recursion. Files are
// returned sorted by path; a file that cannot be read is skipped.
func ScanExports(patterns []string) (*ExportScan, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	scan := &ExportScan{Files: []FileExports{}}
	for _, path := range paths {
		count, err := countExports(path)
		if err != nil {
			continue
		}
		scan.Files = append(scan.Files, FileExports{Path: path, Exports: count})
		scan.TotalExports += count
	}
	return scan, nil
}

func countExports(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(strings.TrimSpace(scanner.Text()), "export ") {
			count++
		}
	}
	return count, scanner.Err()
}
