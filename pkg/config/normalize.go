package config

// normalize coerces loosely-typed input into canonical form. It is
// idempotent: normalizing an already-normalized Config changes nothing.
func normalize(cfg *Config) {
	cfg.Storybook.Port = cfg.Storybook.Port.canonical()
	cfg.Storybook.ReuseExisting = cfg.Storybook.ReuseExisting.canonical()

	normalizeMatcher(&cfg.Snapshot.TestMatcher)
	if cfg.Snapshot.Image.TestMatcher != nil {
		normalizeMatcher(cfg.Snapshot.Image.TestMatcher)
	}
	if cfg.Snapshot.Position.TestMatcher != nil {
		normalizeMatcher(cfg.Snapshot.Position.TestMatcher)
	}
	if cfg.Snapshot.Mobile.TestMatcher != nil {
		normalizeMatcher(cfg.Snapshot.Mobile.TestMatcher)
	}
	if cfg.Snapshot.Locale.TestMatcher != nil {
		normalizeMatcher(cfg.Snapshot.Locale.TestMatcher)
	}

	cfg.Snapshot.Filters.IncludePaths = cfg.Snapshot.Filters.IncludePaths.Normalize()
	cfg.Snapshot.Filters.StoryIDs = cfg.Snapshot.Filters.StoryIDs.Normalize()
	cfg.Snapshot.Filters.Exclusions = cfg.Snapshot.Filters.Exclusions.Normalize()
	cfg.Snapshot.Paths.ScanPaths = cfg.Snapshot.Paths.ScanPaths.Normalize()

	cfg.Snapshot.Mobile.Enabled = cfg.Snapshot.Mobile.Enabled.canonical()
	cfg.Snapshot.Mobile.ExcludeTags = cfg.Snapshot.Mobile.ExcludeTags.Normalize()
	cfg.Snapshot.Mobile.Discovery.MinStories = cfg.Snapshot.Mobile.Discovery.MinStories.canonical()
	cfg.Snapshot.Mobile.Discovery.MinCoverage = cfg.Snapshot.Mobile.Discovery.MinCoverage.canonical()

	cfg.Snapshot.Locale.Enabled = cfg.Snapshot.Locale.Enabled.canonical()
	if cfg.Snapshot.Locale.GlobalParam == "" {
		cfg.Snapshot.Locale.GlobalParam = DefaultGlobalParam
	}
	for i := range cfg.Snapshot.Locale.Locales {
		cfg.Snapshot.Locale.Locales[i].Default = cfg.Snapshot.Locale.Locales[i].Default.canonical()
	}

	cfg.Snapshot.Position.Threshold = cfg.Snapshot.Position.Threshold.canonical()
	cfg.Snapshot.Position.SizeThreshold = cfg.Snapshot.Position.SizeThreshold.canonical()
	migrateLegacyThresholds(cfg)
}

func normalizeMatcher(m *TestMatcher) {
	m.Tags = m.Tags.Normalize()
	m.Suffix = m.Suffix.Normalize()
	m.Keywords = m.Keywords.Normalize()
}

// migrateLegacyThresholds moves the flattened snapshot.positionThreshold
// and snapshot.sizeThreshold keys into their nested position form. The
// nested field wins when both are present.
func migrateLegacyThresholds(cfg *Config) {
	if legacy := cfg.Snapshot.PositionThreshold.canonical(); legacy.IsSet() {
		if !cfg.Snapshot.Position.Threshold.IsSet() {
			cfg.Snapshot.Position.Threshold = legacy
		}
	}
	cfg.Snapshot.PositionThreshold = ""

	if legacy := cfg.Snapshot.SizeThreshold.canonical(); legacy.IsSet() {
		if !cfg.Snapshot.Position.SizeThreshold.IsSet() {
			cfg.Snapshot.Position.SizeThreshold = legacy
		}
	}
	cfg.Snapshot.SizeThreshold = ""
}
