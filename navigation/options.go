package navigation

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Options configures a Navigator.
type Options struct {
	Mode   gridgraph.DirectionMode // adjacency rule for Rebuild
	Logger *zap.Logger             // never nil after New
}

// Option represents a functional option for configuring a Navigator.
type Option func(*Options)

// DefaultOptions returns Omnidirectional adjacency and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Mode:   gridgraph.Omnidirectional,
		Logger: zap.NewNop(),
	}
}

// WithMode sets the direction mode used by Rebuild. Panics on an unknown
// mode, which is a programmer error.
func WithMode(mode gridgraph.DirectionMode) Option {
	if !mode.Valid() {
		panic("navigation: WithMode(" + mode.String() + "): unknown direction mode")
	}
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("navigation: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
