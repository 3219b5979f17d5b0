// snapcheck CLI - resolves which UI stories get visual snapshot tests.
package main

import (
	"github.com/snapcheck/snapcheck/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
