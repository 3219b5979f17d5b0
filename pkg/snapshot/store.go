package snapshot

import (
	"os"
	"path/filepath"

	"github.com/snapcheck/snapcheck/pkg/config"
)

// File extensions per snapshot category.
const (
	ImageExt    = ".png"
	PositionExt = ".positions.json"
)

// MobileSubdir is the directory layer added for mobile-viewport runs.
const MobileSubdir = "mobile"

// Store locates snapshot files for one resolved configuration. Read-only:
// this core checks existence, it never writes snapshots.
type Store struct {
	// Root is the snapshots directory.
	Root string

	// Mobile adds the mobile subdirectory layer.
	Mobile bool

	// Locale adds a locale-code subdirectory layer (after mobile).
	Locale string

	// Viewport qualifies filenames with its dimensions.
	Viewport *config.Viewport
}

// FromConfig derives the snapshot layout for a resolved config: the
// mobile layer when a viewport is active, the locale layer when a locale
// was resolved.
func FromConfig(cfg *config.Config) Store {
	s := Store{
		Root:     cfg.Snapshot.Paths.SnapshotsDir,
		Viewport: cfg.ActiveViewport,
		Mobile:   cfg.ActiveViewport != nil,
	}
	if cfg.Locale != nil {
		s.Locale = cfg.Locale.Code
	}
	return s
}

// Dir is the directory snapshots for this layout live in.
func (s Store) Dir() string {
	dir := s.Root
	if s.Mobile {
		dir = filepath.Join(dir, MobileSubdir)
	}
	if s.Locale != "" {
		dir = filepath.Join(dir, s.Locale)
	}
	return dir
}

// ImagePath is the pixel-snapshot file path for a story.
func (s Store) ImagePath(storyID string) string {
	return filepath.Join(s.Dir(), Sanitize(storyID, s.Viewport)+ImageExt)
}

// PositionPath is the layout-position file path for a story.
func (s Store) PositionPath(storyID string) string {
	return filepath.Join(s.Dir(), Sanitize(storyID, s.Viewport)+PositionExt)
}

// Exists reports whether a snapshot already exists for the story: true
// when either the image file or the position file is present.
func (s Store) Exists(storyID string) bool {
	return fileExists(s.ImagePath(storyID)) || fileExists(s.PositionPath(storyID))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
