// Package matching evaluates test-matcher rule sets against catalog
// entries.
package matching

import (
	"strings"

	"github.com/snapcheck/snapcheck/internal/catalog"
	"github.com/snapcheck/snapcheck/pkg/config"
)

// Effective resolves the matcher for one snapshot category: the
// category-specific override wins, otherwise the global matcher applies.
func Effective(global config.TestMatcher, override *config.TestMatcher) config.TestMatcher {
	if override != nil {
		return *override
	}
	return global
}

// Matches evaluates the rule set against an entry. Rules are tried in
// order, first match wins:
//
//  1. tag intersection: any matcher tag present in the entry's tags
//  2. suffix: the id's trailing segment or the display name ends with a
//     declared suffix
//  3. keyword: trailing segment or display name contains a declared
//     keyword, case-insensitively
//
// The forced flag, when true, matches regardless of the rules. A false
// forced flag is not a veto.
func Matches(m config.TestMatcher, entry catalog.Entry, forced *bool) bool {
	if forced != nil && *forced {
		return true
	}
	if matchesTags(m.Tags, entry.Tags) {
		return true
	}
	segment := TrailingSegment(entry.ID)
	if matchesSuffix(m.Suffix, segment, entry.Name) {
		return true
	}
	return matchesKeywords(m.Keywords, segment, entry.Name)
}

// TrailingSegment returns the part of a story id after the last "--",
// which is the story-level name in catalog ids like
// "components-button--primary". Ids without a separator return unchanged.
func TrailingSegment(id string) string {
	if idx := strings.LastIndex(id, "--"); idx >= 0 {
		return id[idx+2:]
	}
	return id
}

func matchesTags(tags config.StringList, entryTags []string) bool {
	if len(tags) == 0 || len(entryTags) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(entryTags))
	for _, t := range entryTags {
		set[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func matchesSuffix(suffixes config.StringList, segment, name string) bool {
	for _, s := range suffixes {
		if s == "" {
			continue
		}
		if strings.HasSuffix(segment, s) || strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func matchesKeywords(keywords config.StringList, segment, name string) bool {
	segment = strings.ToLower(segment)
	name = strings.ToLower(name)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		k = strings.ToLower(k)
		if strings.Contains(segment, k) || strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// Excluded reports whether the entry matches any exclusion pattern:
// case-insensitive substring match against the id, the display name, or
// the import path. An empty pattern list excludes nothing.
func Excluded(patterns config.StringList, entry catalog.Entry) bool {
	if len(patterns) == 0 {
		return false
	}
	id := strings.ToLower(entry.ID)
	name := strings.ToLower(entry.Name)
	importPath := strings.ToLower(entry.ImportPath)
	for _, p := range patterns {
		p = strings.ToLower(p)
		if p == "" {
			continue
		}
		if strings.Contains(id, p) || strings.Contains(name, p) || strings.Contains(importPath, p) {
			return true
		}
	}
	return false
}
