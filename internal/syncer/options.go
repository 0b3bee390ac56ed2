package syncer

import "log/slog"

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithView sets the render sink.
func WithView(v View) Option {
	return func(o *Orchestrator) {
		if v != nil {
			o.view = v
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}
