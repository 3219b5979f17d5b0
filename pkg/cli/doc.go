// Package cli implements the snapcheck command-line interface.
//
// Commands resolve configuration with pkg/config, resolve stories with
// pkg/stories, and print results honoring the --json contract: with
// --json, stdout carries only the JSON result and all prose goes to
// stderr.
package cli
