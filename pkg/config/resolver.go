package config

import (
	"log/slog"

	"github.com/snapcheck/snapcheck/pkg/logging"
)

// Options are the caller-supplied inputs to Resolve.
type Options struct {
	// ConfigFile is an explicit config file path. Empty means search the
	// conventional filenames in the working directory.
	ConfigFile string

	// Strict makes a parse failure of an explicitly named config file
	// fatal instead of a warning.
	Strict bool

	// Mobile requests the mobile overlay. It only takes effect when the
	// file config enables snapshot.mobile.
	Mobile bool

	// Locale is a bare locale code (e.g. "de-DE") requesting the locale
	// overlay. It only takes effect when the file config enables
	// snapshot.locale, and must match a configured locale exactly.
	Locale string

	// Overrides are structured programmatic overrides, merged last.
	Overrides *Config

	// Logger receives warnings for recoverable problems. Defaults to a
	// no-op logger.
	Logger *slog.Logger
}

// Resolve builds the configuration for one invocation:
// defaults, then the config file, then the mobile and locale overlays,
// then structured overrides, then normalization and validation.
//
// Fatal errors: *InvalidLocaleError, *InvalidPortError,
// *InvalidThresholdError, and in strict mode *FileLoadError (wrapped).
// A non-strict file load failure is logged and resolution continues.
func Resolve(opts Options) (*Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	cfg := Defaults()

	fileCfg, path, warn, fatal := loadProjectConfig(opts.ConfigFile, opts.Strict)
	if fatal != nil {
		return nil, fatal
	}
	if warn != nil {
		logger.Warn("config file load failed, continuing without it", "path", path, "error", warn)
	} else if path != "" {
		logger.Debug("loaded config file", "path", path)
	}
	cfg = Merge(cfg, fileCfg)

	applyMobileOverlay(cfg, opts)
	if err := applyLocaleOverlay(cfg, opts); err != nil {
		return nil, err
	}

	cfg = Merge(cfg, opts.Overrides)

	normalize(cfg)
	if err := validate(cfg, logger); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyMobileOverlay folds the mobile matcher into the global one and
// projects the first configured viewport, both outward (storybook
// viewport) and as the runtime ActiveViewport.
func applyMobileOverlay(cfg *Config, opts Options) {
	if !opts.Mobile || !cfg.Snapshot.Mobile.Enabled.Bool(false) {
		return
	}
	cfg.Snapshot.TestMatcher = OverlayMatcher(cfg.Snapshot.TestMatcher, cfg.Snapshot.Mobile.TestMatcher)
	if len(cfg.Snapshot.Mobile.Viewports) > 0 {
		projected := cfg.Snapshot.Mobile.Viewports[0]
		active := projected
		cfg.Storybook.Viewport = &projected
		cfg.ActiveViewport = &active
	}
}

// applyLocaleOverlay validates the requested code against the configured
// locale list, folds the locale matcher into the global one, and sets the
// runtime Locale.
func applyLocaleOverlay(cfg *Config, opts Options) error {
	if opts.Locale == "" || !cfg.Snapshot.Locale.Enabled.Bool(false) {
		return nil
	}

	spec, ok := findLocale(cfg.Snapshot.Locale.Locales, opts.Locale)
	if !ok {
		return &InvalidLocaleError{
			Requested: opts.Locale,
			Available: LocaleCodes(cfg.Snapshot.Locale.Locales),
		}
	}

	cfg.Snapshot.TestMatcher = OverlayMatcher(cfg.Snapshot.TestMatcher, cfg.Snapshot.Locale.TestMatcher)

	name := spec.Name
	if name == "" {
		name = spec.Code
	}
	direction := spec.Direction
	if direction == "" {
		direction = DefaultDirection
	}
	globalParam := cfg.Snapshot.Locale.GlobalParam
	if globalParam == "" {
		globalParam = DefaultGlobalParam
	}
	cfg.Locale = &ResolvedLocale{
		Code:        spec.Code,
		Name:        name,
		Direction:   direction,
		Default:     spec.Default.Bool(false),
		GlobalParam: globalParam,
	}
	return nil
}

func findLocale(locales []LocaleSpec, code string) (LocaleSpec, bool) {
	for _, spec := range locales {
		if spec.Code == code {
			return spec, true
		}
	}
	return LocaleSpec{}, false
}

// LocaleCodes lists the configured codes in declaration order.
func LocaleCodes(locales []LocaleSpec) []string {
	codes := make([]string, 0, len(locales))
	for _, spec := range locales {
		codes = append(codes, spec.Code)
	}
	return codes
}

// ResolveAllLocales plans sequential per-locale runs: one fully
// independent Config per configured locale, resolved from scratch with
// that locale's code. The locale flagged default is skipped, since the
// baseline desktop run already covers it.
//
// Returns nil when locale runs are disabled. When every configured locale
// is marked default the plan is empty and a warning is logged.
func ResolveAllLocales(opts Options) ([]*Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	baseOpts := opts
	baseOpts.Locale = ""
	base, err := Resolve(baseOpts)
	if err != nil {
		return nil, err
	}
	if !base.Snapshot.Locale.Enabled.Bool(false) {
		return nil, nil
	}

	var configs []*Config
	for _, spec := range base.Snapshot.Locale.Locales {
		if spec.Default.Bool(false) {
			logger.Debug("skipping default locale, covered by baseline run", "code", spec.Code)
			continue
		}
		localeOpts := opts
		localeOpts.Locale = spec.Code
		cfg, err := Resolve(localeOpts)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if len(configs) == 0 && len(base.Snapshot.Locale.Locales) > 0 {
		logger.Warn("every configured locale is marked default; no locale runs planned")
	}
	return configs, nil
}
