// SPDX-License-Identifier: MIT

// Package sparse: functional options for the arithmetic engine.
//
// Design:
//   - No global state; each call gathers its own Options.
//   - Defaults keep the observed behaviour: mismatched Add/Sub fail without a
//     Confirmer, and zero-valued results are stored.
package sparse

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPruneZeros controls whether results drop entries that sum to 0.
	DefaultPruneZeros = false
)

// Options holds the resolved configuration of a single operation.
// Fields are unexported; build it through Option values.
type Options struct {
	confirm    Confirmer
	pruneZeros bool
}

// Option mutates Options.
type Option func(*Options)

// WithConfirm installs the Confirmer consulted by Add/Sub on a shape
// mismatch. A nil Confirmer restores the default (fail with
// ErrDimensionMismatch). Mul ignores it.
func WithConfirm(c Confirmer) Option {
	return func(o *Options) { o.confirm = c }
}

// WithPruneZeros drops result entries whose value is 0.
func WithPruneZeros(prune bool) Option {
	return func(o *Options) { o.pruneZeros = prune }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{pruneZeros: DefaultPruneZeros}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
