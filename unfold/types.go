// Package unfold defines search options and sentinel errors.
package unfold

import (
	"errors"

	"github.com/unfoldlab/rotunfold/record"
)

var (
	// ErrBaseFaceRange is returned when a root pair names a face the
	// polyhedron does not have.
	ErrBaseFaceRange = errors.New("unfold: base face out of range")

	// ErrBaseEdgeNotOnFace is returned when a root pair's base edge does
	// not bound its base face.
	ErrBaseEdgeNotOnFace = errors.New("unfold: base edge not on base face")

	// ErrSymmetryMode is returned for a symmetry mode other than
	// "on", "off", or "auto".
	ErrSymmetryMode = errors.New("unfold: unknown symmetry mode")
)

// Emit receives each emitted record. The record and its faces slice are
// reused across emissions; implementations must copy what they keep.
type Emit func(rec *record.Record) error

// Options holds configurable parameters for one search.
type Options struct {
	// Symmetric enables the mirror-symmetry pruning. The flag is also
	// recorded on every emitted record as symmetric_used.
	Symmetric bool

	// Emit receives each candidate record in traversal order.
	Emit Emit
}

// Option configures a search. Use with Search(p, root, opts...).
type Option func(*Options)

// DefaultOptions returns the zero configuration: no symmetry pruning,
// records discarded.
func DefaultOptions() Options {
	return Options{Emit: func(*record.Record) error { return nil }}
}

// WithSymmetry sets the symmetry pruning flag.
func WithSymmetry(on bool) Option {
	return func(o *Options) { o.Symmetric = on }
}

// WithEmit sets the record sink.
func WithEmit(fn Emit) Option {
	return func(o *Options) { o.Emit = fn }
}
