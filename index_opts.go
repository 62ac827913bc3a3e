package datasetindex

import "log/slog"

// config holds configuration for an index build.
type config struct {
	logger  *slog.Logger
	filters []Filter
}

// Option configures an index build.
type Option func(*config)

// WithLogger sets the logger for build diagnostics.
// A nil logger discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithFilter adds exclusion filters on top of DefaultFilters.
// The defaults always apply and cannot be removed.
func WithFilter(filters ...Filter) Option {
	return func(cfg *config) {
		cfg.filters = append(cfg.filters, filters...)
	}
}
