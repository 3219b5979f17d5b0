package config

import (
	"log/slog"

	"golang.org/x/text/language"
)

// validate enforces the fatal constraints. Call after normalize so
// threshold fields are either absent or numeric.
func validate(cfg *Config, logger *slog.Logger) error {
	port, err := cfg.Storybook.Port.Int()
	if err != nil || port < 1 || port > 65535 {
		return &InvalidPortError{Value: string(cfg.Storybook.Port)}
	}

	thresholds := []struct {
		field string
		value FlexFloat
	}{
		{"snapshot.position.threshold", cfg.Snapshot.Position.Threshold},
		{"snapshot.position.sizeThreshold", cfg.Snapshot.Position.SizeThreshold},
		{"snapshot.mobile.discovery.minStories", cfg.Snapshot.Mobile.Discovery.MinStories},
		{"snapshot.mobile.discovery.minCoverage", cfg.Snapshot.Mobile.Discovery.MinCoverage},
	}
	for _, t := range thresholds {
		if !t.value.IsSet() {
			continue
		}
		v, err := t.value.Float()
		if err != nil || v < 0 {
			return &InvalidThresholdError{Field: t.field, Value: string(t.value)}
		}
	}

	// Malformed locale codes are not fatal: matching is by exact string.
	// Warn so typos like "de_DE" surface before a locale run silently
	// matches nothing.
	for _, spec := range cfg.Snapshot.Locale.Locales {
		if spec.Code == "" {
			continue
		}
		if _, err := language.Parse(spec.Code); err != nil {
			logger.Warn("configured locale code is not a well-formed language tag",
				"code", spec.Code, "error", err)
		}
	}

	return nil
}
