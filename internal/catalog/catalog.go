// Package catalog fetches the story index from a running Storybook-style
// catalog server.
package catalog

import (
	"sort"
)

// Entry is one entry of the served index document. Unknown fields are
// ignored.
type Entry struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Name       string      `json:"name,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	ImportPath string      `json:"importPath,omitempty"`
	Parameters *Parameters `json:"parameters,omitempty"`
}

// Parameters carries the per-story snapshot override flags some catalogs
// attach to entries.
type Parameters struct {
	Snapshot *SnapshotParams `json:"snapshot,omitempty"`
}

// SnapshotParams force a category match regardless of matcher rules when
// set to true. False is not a veto: the normal rules still apply.
type SnapshotParams struct {
	Image    *bool `json:"image,omitempty"`
	Position *bool `json:"position,omitempty"`
}

// ForcedImage returns the explicit image override, if any.
func (e Entry) ForcedImage() *bool {
	if e.Parameters == nil || e.Parameters.Snapshot == nil {
		return nil
	}
	return e.Parameters.Snapshot.Image
}

// ForcedPosition returns the explicit position override, if any.
func (e Entry) ForcedPosition() *bool {
	if e.Parameters == nil || e.Parameters.Snapshot == nil {
		return nil
	}
	return e.Parameters.Snapshot.Position
}

// IsStory reports whether the entry is a discoverable story rather than a
// docs page or other non-story entry.
func (e Entry) IsStory() bool {
	return e.Type == "story" && e.ID != ""
}

// Index is the served index document.
type Index struct {
	Version int              `json:"v,omitempty"`
	Entries map[string]Entry `json:"entries"`
}

// Stories returns the story entries of the index, sorted by id for
// deterministic iteration.
func (idx *Index) Stories() []Entry {
	out := make([]Entry, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		if e.IsStory() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
