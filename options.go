// SPDX-License-Identifier: EPL-2.0

package pcmprint

import (
	"log/slog"

	"github.com/ik5/pcmprint/synth"
)

// Option tunes a print.
type Option func(*synth.Config)

// WithLogger sends failure and per-voice debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *synth.Config) { c.Logger = l }
}

// WithSeed fixes the noise generator seed.
func WithSeed(seed uint64) Option {
	return func(c *synth.Config) { c.Seed = seed }
}

func newConfig(opts []Option) synth.Config {
	var cfg synth.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
