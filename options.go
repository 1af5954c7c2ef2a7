package rive

import "log/slog"

// Option configures a SceneFactory or SceneRenderer during creation.
//
// Example:
//
//	// Panic on the first contract violation.
//	r := rive.NewSceneRenderer(s, rive.WithStrict(true))
//
//	// Log through a dedicated logger instead of rive.Logger().
//	f := rive.NewSceneFactory(rive.WithLogger(l))
type Option func(*options)

// options holds optional configuration shared by factories and renderers.
type options struct {
	strict bool
	logger *slog.Logger
}

// defaultOptions returns the default options. Strict mode follows the
// riveassert build tag.
func defaultOptions() options {
	return options{
		strict: defaultStrict,
		logger: nil, // Falls back to Logger() at call time
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict makes contract violations panic with a *ContractError instead
// of being recorded and logged. Builds with the riveassert tag default to
// strict.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger sets a logger for one factory or renderer, overriding the
// package logger. Nil restores the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
