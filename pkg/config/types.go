package config

// Config is the fully resolved snapcheck configuration. Resolve returns a
// fresh value per invocation; treat it as immutable once returned.
type Config struct {
	Storybook StorybookConfig `yaml:"storybook,omitempty" json:"storybook"`
	Snapshot  SnapshotConfig  `yaml:"snapshot,omitempty" json:"snapshot"`

	// ActiveViewport is set by the mobile overlay. Runtime-only: never
	// read from a config file, never replaced by a generic merge unless
	// the caller supplies a structured viewport override.
	ActiveViewport *Viewport `yaml:"-" json:"activeViewport,omitempty"`

	// Locale is set by the locale overlay after validating the requested
	// code against the configured locale list. Runtime-only, same
	// protection as ActiveViewport.
	Locale *ResolvedLocale `yaml:"-" json:"locale,omitempty"`
}

// StorybookConfig describes the story-catalog server.
type StorybookConfig struct {
	Host      string  `yaml:"host,omitempty" json:"host,omitempty"`
	Port      FlexInt `yaml:"port,omitempty" json:"port,omitempty"`
	IndexPath string  `yaml:"indexPath,omitempty" json:"indexPath,omitempty"`

	// Command launches the server when it is not already running. Consumed
	// by the external automation engine, not by this core.
	Command       string   `yaml:"command,omitempty" json:"command,omitempty"`
	LaunchTimeout Duration `yaml:"launchTimeout,omitempty" json:"launchTimeout,omitempty"`
	ReuseExisting FlexBool `yaml:"reuseExisting,omitempty" json:"reuseExisting,omitempty"`

	// FetchTimeout bounds the catalog index fetch.
	FetchTimeout Duration `yaml:"fetchTimeout,omitempty" json:"fetchTimeout,omitempty"`

	// Viewport is the outward-facing emulation setting handed to the
	// automation engine. The mobile overlay projects the first configured
	// mobile viewport here.
	Viewport *Viewport `yaml:"viewport,omitempty" json:"viewport,omitempty"`
}

// SnapshotConfig groups everything that decides which stories are tested
// and where their snapshots live.
type SnapshotConfig struct {
	// TestMatcher is the global rule set. Per-category overrides in Image
	// and Position win over it when present.
	TestMatcher TestMatcher `yaml:"testMatcher,omitempty" json:"testMatcher"`

	Image    ImageConfig    `yaml:"image,omitempty" json:"image"`
	Position PositionConfig `yaml:"position,omitempty" json:"position"`
	Filters  FilterConfig   `yaml:"filters,omitempty" json:"filters"`
	Paths    PathsConfig    `yaml:"paths,omitempty" json:"paths"`
	Mobile   MobileConfig   `yaml:"mobile,omitempty" json:"mobile"`
	Locale   LocaleConfig   `yaml:"locale,omitempty" json:"locale"`

	// Legacy flattened threshold keys. Normalization migrates them into
	// Position and clears them here.
	PositionThreshold FlexFloat `yaml:"positionThreshold,omitempty" json:"positionThreshold,omitempty"`
	SizeThreshold     FlexFloat `yaml:"sizeThreshold,omitempty" json:"sizeThreshold,omitempty"`
}

// TestMatcher decides whether a story is in scope for a snapshot category.
// Rules are tried in order: tag intersection, id/name suffix, keyword
// substring. First match wins.
type TestMatcher struct {
	Tags     StringList `yaml:"tags,omitempty" json:"tags,omitempty"`
	Suffix   StringList `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Keywords StringList `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// IsZero reports whether no rule list is present.
func (m TestMatcher) IsZero() bool {
	return m.Tags == nil && m.Suffix == nil && m.Keywords == nil
}

// ImageConfig configures the pixel-screenshot category.
type ImageConfig struct {
	TestMatcher *TestMatcher `yaml:"testMatcher,omitempty" json:"testMatcher,omitempty"`
}

// PositionConfig configures the layout-position category.
type PositionConfig struct {
	TestMatcher *TestMatcher `yaml:"testMatcher,omitempty" json:"testMatcher,omitempty"`

	// Threshold is the per-element position drift tolerance in pixels.
	Threshold FlexFloat `yaml:"threshold,omitempty" json:"threshold,omitempty"`

	// SizeThreshold is the element size drift tolerance in pixels.
	SizeThreshold FlexFloat `yaml:"sizeThreshold,omitempty" json:"sizeThreshold,omitempty"`
}

// FilterConfig narrows the story set after matcher evaluation.
type FilterConfig struct {
	IncludePaths StringList `yaml:"includePaths,omitempty" json:"includePaths,omitempty"`
	StoryIDs     StringList `yaml:"storyIds,omitempty" json:"storyIds,omitempty"`
	Exclusions   StringList `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`

	// Expression is an optional boolean expression over
	// {id, name, tags, importPath}, evaluated per story.
	Expression string `yaml:"expression,omitempty" json:"expression,omitempty"`
}

// PathsConfig locates snapshot storage and reporting inputs.
type PathsConfig struct {
	SnapshotsDir     string     `yaml:"snapshotsDir,omitempty" json:"snapshotsDir,omitempty"`
	LogsDir          string     `yaml:"logsDir,omitempty" json:"logsDir,omitempty"`
	PlaywrightConfig string     `yaml:"playwrightConfig,omitempty" json:"playwrightConfig,omitempty"`
	ScanPaths        StringList `yaml:"scanPaths,omitempty" json:"scanPaths,omitempty"`
}

// MobileConfig enables mobile-viewport runs.
type MobileConfig struct {
	Enabled     FlexBool     `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Viewports   []Viewport   `yaml:"viewports,omitempty" json:"viewports,omitempty"`
	TestMatcher *TestMatcher `yaml:"testMatcher,omitempty" json:"testMatcher,omitempty"`
	ExcludeTags StringList   `yaml:"excludeTags,omitempty" json:"excludeTags,omitempty"`
	Discovery   Discovery    `yaml:"discovery,omitempty" json:"discovery,omitempty"`
}

// Discovery tunes which stories the external engine pulls into mobile
// runs. Core validates and forwards these, nothing more.
type Discovery struct {
	MinStories  FlexFloat `yaml:"minStories,omitempty" json:"minStories,omitempty"`
	MinCoverage FlexFloat `yaml:"minCoverage,omitempty" json:"minCoverage,omitempty"`
}

// LocaleConfig enables per-locale runs.
type LocaleConfig struct {
	Enabled     FlexBool     `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Locales     []LocaleSpec `yaml:"locales,omitempty" json:"locales,omitempty"`
	GlobalParam string       `yaml:"globalParam,omitempty" json:"globalParam,omitempty"`
	TestMatcher *TestMatcher `yaml:"testMatcher,omitempty" json:"testMatcher,omitempty"`
}

// LocaleSpec is one configured locale.
type LocaleSpec struct {
	Code      string   `yaml:"code" json:"code"`
	Name      string   `yaml:"name,omitempty" json:"name,omitempty"`
	Direction string   `yaml:"direction,omitempty" json:"direction,omitempty"`
	Default   FlexBool `yaml:"default,omitempty" json:"default,omitempty"`
}

// ResolvedLocale is the runtime locale selected by the locale overlay.
type ResolvedLocale struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Direction   string `json:"direction"`
	Default     bool   `json:"default"`
	GlobalParam string `json:"globalParam"`
}

// Viewport is a width/height pair used to emulate a device.
type Viewport struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Clone returns a deep copy. Sequential per-locale runs each resolve their
// own Config; Clone exists for callers that need a scratch copy anyway.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Storybook.Viewport = cloneViewport(c.Storybook.Viewport)
	out.Snapshot.TestMatcher = c.Snapshot.TestMatcher.clone()
	out.Snapshot.Image.TestMatcher = cloneMatcher(c.Snapshot.Image.TestMatcher)
	out.Snapshot.Position.TestMatcher = cloneMatcher(c.Snapshot.Position.TestMatcher)
	out.Snapshot.Mobile.TestMatcher = cloneMatcher(c.Snapshot.Mobile.TestMatcher)
	out.Snapshot.Locale.TestMatcher = cloneMatcher(c.Snapshot.Locale.TestMatcher)
	out.Snapshot.Mobile.Viewports = append([]Viewport(nil), c.Snapshot.Mobile.Viewports...)
	out.Snapshot.Mobile.ExcludeTags = cloneList(c.Snapshot.Mobile.ExcludeTags)
	out.Snapshot.Locale.Locales = append([]LocaleSpec(nil), c.Snapshot.Locale.Locales...)
	out.Snapshot.Filters.IncludePaths = cloneList(c.Snapshot.Filters.IncludePaths)
	out.Snapshot.Filters.StoryIDs = cloneList(c.Snapshot.Filters.StoryIDs)
	out.Snapshot.Filters.Exclusions = cloneList(c.Snapshot.Filters.Exclusions)
	out.Snapshot.Paths.ScanPaths = cloneList(c.Snapshot.Paths.ScanPaths)
	out.ActiveViewport = cloneViewport(c.ActiveViewport)
	if c.Locale != nil {
		loc := *c.Locale
		out.Locale = &loc
	}
	return &out
}

func (m TestMatcher) clone() TestMatcher {
	return TestMatcher{
		Tags:     cloneList(m.Tags),
		Suffix:   cloneList(m.Suffix),
		Keywords: cloneList(m.Keywords),
	}
}

func cloneMatcher(m *TestMatcher) *TestMatcher {
	if m == nil {
		return nil
	}
	out := m.clone()
	return &out
}

func cloneViewport(v *Viewport) *Viewport {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneList(l StringList) StringList {
	if l == nil {
		return nil
	}
	return append(StringList(nil), l...)
}
