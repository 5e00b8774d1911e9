// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options and their resolved config.
//
// Option constructors validate and panic on meaningless input; builders
// themselves only return errors.

package sampling

import (
	"fmt"
	"log/slog"
)

// Option customizes a build by mutating its config before it starts.
type Option func(*config)

// config aggregates every knob of a build. It is resolved once and passed
// by value.
type config struct {
	t          int
	iterations int
	nameFn     NameFn
	logger     *slog.Logger
}

// newConfig applies opts in order over deterministic defaults; later
// options override earlier ones.
func newConfig(opts ...Option) config {
	cfg := config{
		t:          DefaultT,
		iterations: DefaultIterations,
		nameFn:     UUIDName,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithT sets the baseline arity. t == 0 makes the baseline vacuous.
// Panics if t < 0.
func WithT(t int) Option {
	if t < 0 {
		panic(fmt.Sprintf("sampling: WithT(%d)", t))
	}
	return func(c *config) { c.t = t }
}

// WithIterations sets the iteration budget handed to the sampler.
// Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sampling: WithIterations(%d)", n))
	}
	return func(c *config) { c.iterations = n }
}

// WithNameFn sets the artificial variable naming scheme. Panics on nil.
func WithNameFn(fn NameFn) Option {
	if fn == nil {
		panic("sampling: WithNameFn(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}

// WithSequentialNames names artificial variables prefix0, prefix1, ...
func WithSequentialNames(prefix string) Option {
	return WithNameFn(SequentialNames(prefix))
}

// WithLogger sets the logger for debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampling: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
