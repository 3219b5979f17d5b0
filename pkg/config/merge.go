package config

// Merge layers overlay onto base field by field and returns a new Config.
// Neither input is modified.
//
// Rules, declared once here rather than patched after a generic deep
// merge:
//   - scalars replace the base value only when set (empty string, unset
//     Flex values, and zero durations are skipped)
//   - lists replace wholesale when present, never element-wise
//   - nested sections recurse
//   - pointer-valued fields (per-category matchers, viewports, the
//     runtime Locale) replace only when the overlay carries a structured
//     value, which is what protects overlay-computed runtime fields from
//     bare-string caller input
func Merge(base, overlay *Config) *Config {
	out := base.Clone()
	if overlay == nil {
		return out
	}

	mergeStorybook(&out.Storybook, &overlay.Storybook)
	mergeSnapshot(&out.Snapshot, &overlay.Snapshot)

	if overlay.ActiveViewport != nil {
		out.ActiveViewport = cloneViewport(overlay.ActiveViewport)
	}
	if overlay.Locale != nil {
		loc := *overlay.Locale
		out.Locale = &loc
	}
	return out
}

func mergeStorybook(dst, src *StorybookConfig) {
	mergeString(&dst.Host, src.Host)
	if src.Port.IsSet() {
		dst.Port = src.Port
	}
	mergeString(&dst.IndexPath, src.IndexPath)
	mergeString(&dst.Command, src.Command)
	if src.LaunchTimeout != 0 {
		dst.LaunchTimeout = src.LaunchTimeout
	}
	if src.ReuseExisting.IsSet() {
		dst.ReuseExisting = src.ReuseExisting
	}
	if src.FetchTimeout != 0 {
		dst.FetchTimeout = src.FetchTimeout
	}
	if src.Viewport != nil {
		dst.Viewport = cloneViewport(src.Viewport)
	}
}

func mergeSnapshot(dst, src *SnapshotConfig) {
	mergeTestMatcher(&dst.TestMatcher, &src.TestMatcher)

	if src.Image.TestMatcher != nil {
		dst.Image.TestMatcher = mergedOverride(dst.Image.TestMatcher, src.Image.TestMatcher)
	}
	if src.Position.TestMatcher != nil {
		dst.Position.TestMatcher = mergedOverride(dst.Position.TestMatcher, src.Position.TestMatcher)
	}
	if src.Position.Threshold.IsSet() {
		dst.Position.Threshold = src.Position.Threshold
	}
	if src.Position.SizeThreshold.IsSet() {
		dst.Position.SizeThreshold = src.Position.SizeThreshold
	}
	if src.PositionThreshold.IsSet() {
		dst.PositionThreshold = src.PositionThreshold
	}
	if src.SizeThreshold.IsSet() {
		dst.SizeThreshold = src.SizeThreshold
	}

	mergeList(&dst.Filters.IncludePaths, src.Filters.IncludePaths)
	mergeList(&dst.Filters.StoryIDs, src.Filters.StoryIDs)
	mergeList(&dst.Filters.Exclusions, src.Filters.Exclusions)
	mergeString(&dst.Filters.Expression, src.Filters.Expression)

	mergeString(&dst.Paths.SnapshotsDir, src.Paths.SnapshotsDir)
	mergeString(&dst.Paths.LogsDir, src.Paths.LogsDir)
	mergeString(&dst.Paths.PlaywrightConfig, src.Paths.PlaywrightConfig)
	mergeList(&dst.Paths.ScanPaths, src.Paths.ScanPaths)

	mergeMobile(&dst.Mobile, &src.Mobile)
	mergeLocale(&dst.Locale, &src.Locale)
}

func mergeMobile(dst, src *MobileConfig) {
	if src.Enabled.IsSet() {
		dst.Enabled = src.Enabled
	}
	if src.Viewports != nil {
		dst.Viewports = append([]Viewport(nil), src.Viewports...)
	}
	if src.TestMatcher != nil {
		dst.TestMatcher = mergedOverride(dst.TestMatcher, src.TestMatcher)
	}
	mergeList(&dst.ExcludeTags, src.ExcludeTags)
	if src.Discovery.MinStories.IsSet() {
		dst.Discovery.MinStories = src.Discovery.MinStories
	}
	if src.Discovery.MinCoverage.IsSet() {
		dst.Discovery.MinCoverage = src.Discovery.MinCoverage
	}
}

func mergeLocale(dst, src *LocaleConfig) {
	if src.Enabled.IsSet() {
		dst.Enabled = src.Enabled
	}
	if src.Locales != nil {
		dst.Locales = append([]LocaleSpec(nil), src.Locales...)
	}
	mergeString(&dst.GlobalParam, src.GlobalParam)
	if src.TestMatcher != nil {
		dst.TestMatcher = mergedOverride(dst.TestMatcher, src.TestMatcher)
	}
}

// mergeTestMatcher recurses into the rule set; each rule list replaces
// wholesale when present.
func mergeTestMatcher(dst, src *TestMatcher) {
	mergeList(&dst.Tags, src.Tags)
	mergeList(&dst.Suffix, src.Suffix)
	mergeList(&dst.Keywords, src.Keywords)
}

// mergedOverride layers src onto an optional existing override.
func mergedOverride(dst, src *TestMatcher) *TestMatcher {
	out := TestMatcher{}
	if dst != nil {
		out = dst.clone()
	}
	mergeTestMatcher(&out, src)
	return &out
}

// OverlayMatcher merges an overlay rule set onto the global matcher and
// returns the result. Used by the mobile and locale overlays, which fold
// their matcher into the global one rather than into a category override.
func OverlayMatcher(global TestMatcher, overlay *TestMatcher) TestMatcher {
	out := global.clone()
	if overlay != nil {
		mergeTestMatcher(&out, overlay)
	}
	return out
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeList(dst *StringList, src StringList) {
	if src != nil {
		*dst = cloneList(src)
	}
}
