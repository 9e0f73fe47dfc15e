// SPDX-License-Identifier: MIT
// Package: regcolor/resolve

package resolve

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Options configures Resolve.
//
// Logger      – receives one debug event per override. Default zerolog.Nop().
// OnOverride  – optional hook called synchronously after every override.
// MinMaxColor – floor for the initial color budget; 0 keeps the observed maximum.
type Options struct {
	Logger      zerolog.Logger
	OnOverride  func(Override)
	MinMaxColor int

	err error // first option violation, surfaced by Resolve
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration defaults.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes override events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnOverride installs a hook called after every override.
// A nil hook is an ErrOptionViolation.
func WithOnOverride(fn func(Override)) Option {
	return func(o *Options) {
		if fn == nil {
			o.fail(fmt.Errorf("WithOnOverride: nil hook: %w", ErrOptionViolation))
			return
		}
		o.OnOverride = fn
	}
}

// WithMinMaxColor raises the initial color budget to at least m.
// A negative m is an ErrOptionViolation.
func WithMinMaxColor(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.fail(fmt.Errorf("WithMinMaxColor(%d): %w", m, ErrOptionViolation))
			return
		}
		o.MinMaxColor = m
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
