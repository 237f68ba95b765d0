package seqvec

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
)

// Seq is a resizable, owning sequence of numeric elements.  It is both a
// leaf operand in expressions and the only place an expression is
// materialized into concrete storage.
//
// Reads are total: At past the length yields the zero element.  Writes are
// total: Set past the length grows the sequence, zero filling the gap.
type Seq[E Num] struct {
	elems []E
}

// New returns an empty sequence.
func New[E Num]() *Seq[E] {
	return &Seq[E]{}
}

// Of constructs a sequence from a list of elements.  Of(v) is the scalar
// form: a sequence of length 1.
func Of[E Num](vs ...E) *Seq[E] {
	return &Seq[E]{elems: slices.Clone(vs)}
}

// Eval materializes an expression: it allocates exactly x.Len() elements and
// fills them in one pass, in ascending index order.  No other sequence is
// allocated no matter how deeply x is nested.
func Eval[E Num](x Operand[E]) *Seq[E] {
	out := &Seq[E]{elems: make([]E, x.Len())}
	for i := range out.elems {
		out.elems[i] = x.At(i)
	}
	return out
}

// Clone returns an independent deep copy.
func (s *Seq[E]) Clone() *Seq[E] {
	return &Seq[E]{elems: slices.Clone(s.elems)}
}

func (s *Seq[E]) Len() int { return len(s.elems) }
func (s *Seq[E]) Cap() int { return cap(s.elems) }

// At returns the element at i, or the zero element when i >= Len.  It never
// grows the sequence.
func (s *Seq[E]) At(i int) E {
	if i >= len(s.elems) {
		var zero E
		return zero
	}
	return s.elems[i]
}

// Set writes the element at i, growing the sequence to hold i+1 elements
// first when needed.  Writing index 1000 before index 0 is well defined.
func (s *Seq[E]) Set(i int, v E) *Seq[E] {
	if i >= len(s.elems) {
		s.Resize(i + 1)
	}
	s.elems[i] = v
	return s
}

// Resize grows or shrinks to exactly n elements.  New elements are zero.
func (s *Seq[E]) Resize(n int) *Seq[E] {
	var zero E
	return s.ResizeFill(n, zero)
}

// ResizeFill grows or shrinks to exactly n elements.  New elements on growth
// take v; shrinking truncates.
func (s *Seq[E]) ResizeFill(n int, v E) *Seq[E] {
	switch {
	case n > len(s.elems):
		s.elems = slices.Grow(s.elems, n-len(s.elems))
		for len(s.elems) < n {
			s.elems = append(s.elems, v)
		}
	case n > 0:
		s.elems = s.elems[:n]
	default:
		s.elems = nil
	}
	return s
}

// Reserve requests capacity for at least n elements without changing the
// length.
func (s *Seq[E]) Reserve(n int) *Seq[E] {
	if n > cap(s.elems) {
		s.elems = slices.Grow(s.elems, n-len(s.elems))
	}
	return s
}

// PushBack appends one element.
func (s *Seq[E]) PushBack(v E) *Seq[E] {
	s.elems = append(s.elems, v)
	return s
}

// PopBack removes the last element.  Popping an empty sequence is a no-op.
func (s *Seq[E]) PopBack() *Seq[E] {
	if len(s.elems) > 0 {
		s.elems = s.elems[:len(s.elems)-1]
	}
	return s
}

// Insert inserts vs starting at position at.  If at exceeds the current
// length the sequence first grows to length at, zero filling, so the
// insertion point exists.
func (s *Seq[E]) Insert(at int, vs ...E) *Seq[E] {
	if at > len(s.elems) {
		s.Resize(at)
	}
	s.elems = slices.Insert(s.elems, at, vs...)
	return s
}

// Apply transforms every element in place, in ascending index order.
func (s *Seq[E]) Apply(fn func(E) E) *Seq[E] {
	for i := range s.elems {
		s.elems[i] = fn(s.elems[i])
	}
	return s
}

// TryApply transforms every element in place until fn fails.  The error is
// returned unmodified; elements before the failing index stay transformed.
func (s *Seq[E]) TryApply(fn func(E) (E, error)) error {
	for i := range s.elems {
		v, err := fn(s.elems[i])
		if err != nil {
			return err
		}
		s.elems[i] = v
	}
	return nil
}

// Zip transforms s elementwise against x, growing s to the longer of the two
// lengths first.  The shorter operand reads as zero past its length.
func (s *Seq[E]) Zip(x Operand[E], fn Op[E]) *Seq[E] {
	return s.accum(fn, x)
}

// Assign overwrites s from x, growing s to max(s.Len(), x.Len()) first.
// Assigning a shorter operand zero fills the tail it does not cover.
func (s *Seq[E]) Assign(x Operand[E]) *Seq[E] {
	limit := max(len(s.elems), x.Len())
	if len(s.elems) < limit {
		s.Resize(limit)
	}
	for i := 0; i < limit; i++ {
		s.elems[i] = x.At(i)
	}
	return s
}

// accum is the mutating materialization path shared by the compound
// assignment operators: one pass, no intermediate sequence.
func (s *Seq[E]) accum(op Op[E], x Operand[E]) *Seq[E] {
	limit := max(len(s.elems), x.Len())
	if len(s.elems) < limit {
		s.Resize(limit)
	}
	for i := 0; i < limit; i++ {
		s.elems[i] = op(s.elems[i], x.At(i))
	}
	return s
}

func (s *Seq[E]) AddEq(x Operand[E]) *Seq[E] { return s.accum(AddOp[E](), x) }
func (s *Seq[E]) SubEq(x Operand[E]) *Seq[E] { return s.accum(SubOp[E](), x) }
func (s *Seq[E]) MulEq(x Operand[E]) *Seq[E] { return s.accum(MulOp[E](), x) }
func (s *Seq[E]) DivEq(x Operand[E]) *Seq[E] { return s.accum(DivOp[E](), x) }
func (s *Seq[E]) ModEq(x Operand[E]) *Seq[E] { return s.accum(ModOp[E](), x) }
func (s *Seq[E]) AndEq(x Operand[E]) *Seq[E] { return s.accum(AndOp[E](), x) }
func (s *Seq[E]) OrEq(x Operand[E]) *Seq[E]  { return s.accum(OrOp[E](), x) }
func (s *Seq[E]) XorEq(x Operand[E]) *Seq[E] { return s.accum(XorOp[E](), x) }
func (s *Seq[E]) ShlEq(x Operand[E]) *Seq[E] { return s.accum(ShlOp[E](), x) }
func (s *Seq[E]) ShrEq(x Operand[E]) *Seq[E] { return s.accum(ShrOp[E](), x) }

func (s *Seq[E]) Add(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), AddOp[E](), r) }
func (s *Seq[E]) Sub(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), SubOp[E](), r) }
func (s *Seq[E]) Mul(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), MulOp[E](), r) }
func (s *Seq[E]) Div(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), DivOp[E](), r) }
func (s *Seq[E]) Mod(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), ModOp[E](), r) }
func (s *Seq[E]) And(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), AndOp[E](), r) }
func (s *Seq[E]) Or(r Operand[E]) *Expr[E]  { return Bin(Operand[E](s), OrOp[E](), r) }
func (s *Seq[E]) Xor(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), XorOp[E](), r) }
func (s *Seq[E]) Shl(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), ShlOp[E](), r) }
func (s *Seq[E]) Shr(r Operand[E]) *Expr[E] { return Bin(Operand[E](s), ShrOp[E](), r) }

// Bin starts an expression under a caller-supplied Op.
func (s *Seq[E]) Bin(op Op[E], r Operand[E]) *Expr[E] { return Bin(Operand[E](s), op, r) }

// Neg returns a negated copy.
func (s *Seq[E]) Neg() *Seq[E] {
	return s.Clone().Apply(func(a E) E { return -a })
}

// Not returns a bitwise-complemented copy.  Not panics for float element
// types.
func (s *Seq[E]) Not() *Seq[E] {
	return s.Clone().Apply(notOf[E])
}

// Cmp orders two sequences by length alone: -1 when s is shorter than b, +1
// when longer, 0 when the lengths match.  Element values are ignored; two
// same-length sequences with different contents compare as equivalent.
func (s *Seq[E]) Cmp(b *Seq[E]) int {
	switch {
	case len(s.elems) < len(b.elems):
		return -1
	case len(s.elems) > len(b.elems):
		return 1
	}
	return 0
}

// Equal reports whether s and b are equivalent under Cmp's length-only
// order.  Use ElemsEqual for value-wise equality.
func (s *Seq[E]) Equal(b *Seq[E]) bool {
	return s.Cmp(b) == 0
}

// ElemsEqual reports whether s and b hold identical elements.
func (s *Seq[E]) ElemsEqual(b *Seq[E]) bool {
	return slices.Equal(s.elems, b.elems)
}

// Any reports whether any element is nonzero.  An empty sequence is false.
func (s *Seq[E]) Any() bool {
	for _, v := range s.elems {
		if v != 0 {
			return true
		}
	}
	return false
}

// All iterates the elements in ascending index order.
func (s *Seq[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String renders the sequence as a parenthesized comma separated list,
// like (1,2,3).  An empty sequence renders as the empty string.
func (s *Seq[E]) String() string {
	if len(s.elems) == 0 {
		return ""
	}
	parts := slices2.Map(s.elems, func(e E) string {
		return fmt.Sprint(e)
	})
	return "(" + strings.Join(parts, ",") + ")"
}
