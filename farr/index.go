// Package farr provides Fortran-style one-based array views over the
// zero-based nd engine. The first element of every axis is addressed by
// index 1; index 0 is rejected; negative indices count from the end, as in
// the zero-based convention; ranges are inclusive of both endpoints.
//
// Views returned by indexing share the storage of the array they were taken
// from and carry a link to it. Once that parent's storage is released, every
// operation on the view fails with errors.ErrStaleView.
package farr

import "github.com/teranos/farr/nd"

// NoAxis is the axis sentinel meaning "over the whole array".
const NoAxis = nd.NoAxis

// Index is one element of a one-based index expression. Variants:
//
//	Ix      one-based scalar position
//	Rng     one-based range, inclusive of both endpoints
//	Seq     ordered list of one-based positions (advanced mode)
//	*FArray integer index array or boolean mask (advanced mode)
//	Ell     ellipsis: covers however many axes the rest leaves open
//
// A multi-dimension expression is a sequence of these, one per axis. When
// the expression has fewer entries than the array's rank and does not start
// with Ell, a leading Ell is implied, so a partial index applies to the
// trailing axes: a single scalar into a rank-2 array addresses its last
// axis.
type Index interface {
	farrIndex()
}

// Ix is a one-based scalar index. Zero is never valid; negative values
// count from the end of the axis.
type Ix int

// Rng is a one-based range, inclusive of both endpoints: Rng{Start: 1,
// Stop: 2} covers the first two elements. A zero field is unset (0 is never
// a valid one-based index): unset Start means the beginning of the axis,
// unset Stop the end, unset Step 1.
type Rng struct {
	Start, Stop, Step int
}

// Seq is an ordered list of one-based positions. Using a Seq anywhere in an
// expression upgrades the whole expression to advanced (copying) mode.
type Seq []int

// Ell is the ellipsis placeholder. At most one may appear per expression.
type Ell struct{}

func (Ix) farrIndex()      {}
func (Rng) farrIndex()     {}
func (Seq) farrIndex()     {}
func (Ell) farrIndex()     {}
func (*FArray) farrIndex() {}
