// Package snapshot names snapshot files and checks their presence on
// disk.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/snapcheck/snapcheck/pkg/config"
)

// Sanitize converts a story id into a filesystem-safe snapshot name:
// lowercased, every run of characters outside [a-z0-9] collapsed into a
// single dash, leading and trailing dashes trimmed. A viewport appends
// "-{width}x{height}".
//
// This is the only naming implementation; both the existence checks here
// and external naming consumers go through it, so names can never diverge
// between subsystems.
func Sanitize(storyID string, viewport *config.Viewport) string {
	var b strings.Builder
	b.Grow(len(storyID))

	dashPending := false
	for _, r := range strings.ToLower(storyID) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dashPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			dashPending = false
			b.WriteRune(r)
			continue
		}
		dashPending = true
	}

	name := b.String()
	if viewport != nil {
		name = fmt.Sprintf("%s-%dx%d", name, viewport.Width, viewport.Height)
	}
	return name
}
