package guard

import (
	"context"
	"log/slog"

	"github.com/bwhmather/validation/pkg/logger"
	"github.com/bwhmather/validation/pkg/validator"
)

// Guard checks values arriving at an API boundary with a single validator
// and logs the ones it rejects.
type Guard struct {
	validator validator.Validator
	log       *slog.Logger
	cfg       Config
	source    string
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used for rejections. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.log = l
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(g *Guard) { g.cfg = cfg }
}

// WithSource names where checked values come from, for example an endpoint.
func WithSource(name string) Option {
	return func(g *Guard) { g.source = name }
}

// New creates a Guard around v. It panics if v is nil.
func New(v validator.Validator, opts ...Option) *Guard {
	if v == nil {
		panic("guard: validator must not be nil")
	}
	g := &Guard{
		validator: v,
		log:       slog.Default(),
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("guard"))
	return g
}

// Validator returns the validator the guard applies.
func (g *Guard) Validator() validator.Validator {
	return g.validator
}

// Check validates value. The validator's error is returned unchanged.
func (g *Guard) Check(ctx context.Context, value any) error {
	err := g.validator.Check(value)
	if err != nil && g.cfg.LogRejections {
		g.log.InfoContext(ctx, "value rejected",
			logger.Source(g.source),
			logger.Validator(g.validator),
			logger.ErrorKind(err),
			logger.Rejection(err),
		)
	}
	return err
}
