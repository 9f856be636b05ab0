// SPDX-License-Identifier: MIT
// Package sparse: the kernel Descriptor and its functional options.
//
// A Descriptor bundles the execution flags every kernel understands:
//   - mask complement: invert every mask read;
//   - structural mask: treat value masks as structural;
//   - replace: clear masked-out output positions instead of keeping them;
//   - transpose A / transpose B: read the named input with rows and
//     columns swapped.
//
// A nil *Descriptor is valid and means "all defaults". Descriptors are
// immutable once built and may be shared between goroutines.

package sparse

import "github.com/go-logr/logr"

// Defaults: the single source of truth for a nil or empty Descriptor.
const (
	// DefaultMaskComplement leaves mask reads as reported.
	DefaultMaskComplement = false

	// DefaultStructuralMask honors value masks as value masks.
	DefaultStructuralMask = false

	// DefaultReplace keeps masked-out output entries untouched.
	DefaultReplace = false

	// DefaultTransposeA reads the first input as stored.
	DefaultTransposeA = false

	// DefaultTransposeB reads the second input as stored.
	DefaultTransposeB = false
)

// Option configures a Descriptor.
type Option func(*Descriptor)

// Descriptor is the set of execution flags passed to a kernel.
type Descriptor struct {
	maskComplement bool
	structuralMask bool
	replace        bool
	transposeA     bool
	transposeB     bool
	log            logr.Logger
}

// NewDescriptor resolves opts in order (later options win).
func NewDescriptor(opts ...Option) *Descriptor {
	d := &Descriptor{
		maskComplement: DefaultMaskComplement,
		structuralMask: DefaultStructuralMask,
		replace:        DefaultReplace,
		transposeA:     DefaultTransposeA,
		transposeB:     DefaultTransposeB,
		log:            logr.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithMaskComplement inverts every mask read.
func WithMaskComplement() Option { return func(d *Descriptor) { d.maskComplement = true } }

// WithStructuralMask makes value masks behave as structural masks.
func WithStructuralMask() Option { return func(d *Descriptor) { d.structuralMask = true } }

// WithReplace clears every output position the mask does not allow.
func WithReplace() Option { return func(d *Descriptor) { d.replace = true } }

// WithTransposeA reads the first matrix input transposed.
func WithTransposeA() Option { return func(d *Descriptor) { d.transposeA = true } }

// WithTransposeB reads the second matrix input transposed.
func WithTransposeB() Option { return func(d *Descriptor) { d.transposeB = true } }

// WithLogger routes kernel tracing (V(2)) to l.
func WithLogger(l logr.Logger) Option { return func(d *Descriptor) { d.log = l } }

// MaskComplement reports the mask-complement flag.
func (d *Descriptor) MaskComplement() bool { return d != nil && d.maskComplement }

// StructuralMask reports the structural-only flag.
func (d *Descriptor) StructuralMask() bool { return d != nil && d.structuralMask }

// Replace reports the replace flag.
func (d *Descriptor) Replace() bool { return d != nil && d.replace }

// TransposeA reports the transpose flag of the first input.
func (d *Descriptor) TransposeA() bool { return d != nil && d.transposeA }

// TransposeB reports the transpose flag of the second input.
func (d *Descriptor) TransposeB() bool { return d != nil && d.transposeB }

// Logger returns the tracing logger; logr.Discard() by default.
func (d *Descriptor) Logger() logr.Logger {
	if d == nil {
		return logr.Discard()
	}

	return d.log
}
