// Package seqvec implements a resizable numeric sequence with lazily
// evaluated elementwise arithmetic.
//
// Arithmetic on sequences builds an expression tree instead of computing
// anything; the whole tree is evaluated in a single pass, one element at a
// time, when it is materialized into a Seq.  No intermediate sequence is
// ever allocated for a chained expression like a.Mul(a).Mul(a).Div(b).
package seqvec

import "golang.org/x/exp/constraints"

// Num is the set of element types a Seq can hold.
type Num interface {
	constraints.Integer | constraints.Float
}

// Operand is anything that can appear in an expression: a *Seq, a *Expr, or
// a Const scalar.
//
// At must be total over non-negative indexes: reading past Len yields the
// operand's zero element rather than failing.  A Len of 0 means the operand
// broadcasts; the other side of a binary expression governs the length.
type Operand[E Num] interface {
	At(i int) E
	Len() int
}

// Op is a pure binary element function.  The catalogue in ops.go supplies
// the standard ten; callers may plug their own through Bin.
//
// An Op must be referentially transparent.  Whether a materialization reuses
// the destination's storage (the compound-assignment path) or allocates
// fresh storage (Eval) never changes the values an Op produces.
type Op[E Num] func(a, b E) E
