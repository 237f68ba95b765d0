package seqvec

// Expr is one node of an unevaluated elementwise computation.  It holds its
// two operands and an Op; nothing is computed until an element is read
// through At, so nesting Exprs to any depth never materializes an
// intermediate sequence.
//
// An Expr borrows any *Seq operand read-only and must not outlive the
// statement that materializes it.  It never mutates its operands.
type Expr[E Num] struct {
	left, right Operand[E]
	op          Op[E]
}

// Bin composes l and r under an arbitrary Op.
func Bin[E Num](l Operand[E], op Op[E], r Operand[E]) *Expr[E] {
	if op == nil {
		panic("seqvec: Bin(nil op)")
	}
	return &Expr[E]{left: l, op: op, right: r}
}

// At computes the element at i on demand.
func (e *Expr[E]) At(i int) E {
	return e.op(e.left.At(i), e.right.At(i))
}

// Len is the left operand's length unless that is 0 (a broadcasting
// operand), in which case the right operand's length governs.
func (e *Expr[E]) Len() int {
	if l := e.left.Len(); l != 0 {
		return l
	}
	return e.right.Len()
}

func (e *Expr[E]) Add(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), AddOp[E](), r) }
func (e *Expr[E]) Sub(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), SubOp[E](), r) }
func (e *Expr[E]) Mul(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), MulOp[E](), r) }
func (e *Expr[E]) Div(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), DivOp[E](), r) }
func (e *Expr[E]) Mod(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), ModOp[E](), r) }
func (e *Expr[E]) And(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), AndOp[E](), r) }
func (e *Expr[E]) Or(r Operand[E]) *Expr[E]  { return Bin(Operand[E](e), OrOp[E](), r) }
func (e *Expr[E]) Xor(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), XorOp[E](), r) }
func (e *Expr[E]) Shl(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), ShlOp[E](), r) }
func (e *Expr[E]) Shr(r Operand[E]) *Expr[E] { return Bin(Operand[E](e), ShrOp[E](), r) }

// Bin continues the chain under a caller-supplied Op.
func (e *Expr[E]) Bin(op Op[E], r Operand[E]) *Expr[E] { return Bin(Operand[E](e), op, r) }

type scalar[E Num] struct {
	v E
}

// Const is a broadcasting scalar operand: it reports length 0 and yields v
// at every index.
func Const[E Num](v E) Operand[E] {
	return scalar[E]{v: v}
}

func (s scalar[E]) At(int) E { return s.v }
func (s scalar[E]) Len() int { return 0 }
