package config

import (
	"fmt"
	"net/url"
	"time"
)

// Built-in defaults.
const (
	DefaultHost      = "localhost"
	DefaultPort      = 6006
	DefaultIndexPath = "/index.json"

	DefaultLaunchTimeout = 60 * time.Second
	DefaultFetchTimeout  = 30 * time.Second

	DefaultSnapshotsDir = ".snapshots"
	DefaultLogsDir      = ".snapshots/logs"

	// DefaultGlobalParam is the Storybook global under which the active
	// locale code is published.
	DefaultGlobalParam = "locale"

	// DefaultDirection is assumed for locales that do not declare one.
	DefaultDirection = "ltr"
)

// Defaults returns the built-in base configuration. Every resolution
// starts from a fresh copy of this.
func Defaults() *Config {
	return &Config{
		Storybook: StorybookConfig{
			Host:          DefaultHost,
			Port:          FlexInt(fmt.Sprintf("%d", DefaultPort)),
			IndexPath:     DefaultIndexPath,
			LaunchTimeout: Duration(DefaultLaunchTimeout),
			FetchTimeout:  Duration(DefaultFetchTimeout),
			ReuseExisting: "true",
		},
		Snapshot: SnapshotConfig{
			TestMatcher: TestMatcher{
				Tags: StringList{"visual-test"},
			},
			Paths: PathsConfig{
				SnapshotsDir: DefaultSnapshotsDir,
				LogsDir:      DefaultLogsDir,
			},
			Locale: LocaleConfig{
				GlobalParam: DefaultGlobalParam,
			},
		},
	}
}

// PortInt returns the validated port. Call only after Resolve has
// succeeded; unparseable input falls back to the default.
func (s StorybookConfig) PortInt() int {
	port, err := s.Port.Int()
	if err != nil {
		return DefaultPort
	}
	return port
}

// IndexURL is the catalog index endpoint.
func (s StorybookConfig) IndexURL() string {
	u := url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", s.Host, s.PortInt()),
		Path:   s.IndexPath,
	}
	return u.String()
}
