package seqexpr

import (
	"fmt"

	"myceliumweb.org/seqvec"
)

// Env supplies the named sequences an expression can reference.
type Env map[string]*seqvec.Seq[int64]

type ErrUnknownSeq struct {
	Name string
}

func (e ErrUnknownSeq) Error() string {
	return fmt.Sprintf("seqexpr: unknown sequence %q", e.Name)
}

// Eval materializes the expression described by n against env.  The tree is
// translated into a seqvec operand chain and evaluated in one pass; no
// intermediate sequence is built for inner nodes.  An expression of scalars
// alone broadcasts, so it has length 0 and yields an empty sequence.
func Eval(n Node, env Env) (*seqvec.Seq[int64], error) {
	x, err := operand(n, env)
	if err != nil {
		return nil, err
	}
	return seqvec.Eval(x), nil
}

func operand(n Node, env Env) (seqvec.Operand[int64], error) {
	switch n := n.(type) {
	case IntLit:
		return seqvec.Const(n.X), nil
	case SeqLit:
		return seqvec.Of(n.Elems...), nil
	case Ref:
		s, ok := env[n.Name]
		if !ok {
			return nil, ErrUnknownSeq{Name: n.Name}
		}
		return s, nil
	case *BinOp:
		l, err := operand(n.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := operand(n.Right, env)
		if err != nil {
			return nil, err
		}
		return seqvec.Bin(l, opFor(n.Op), r), nil
	}
	return nil, fmt.Errorf("seqexpr: cannot evaluate %T", n)
}

func opFor(ty TokenType) seqvec.Op[int64] {
	switch ty {
	case Plus:
		return seqvec.AddOp[int64]()
	case Minus:
		return seqvec.SubOp[int64]()
	case Star:
		return seqvec.MulOp[int64]()
	case Slash:
		return seqvec.DivOp[int64]()
	case Percent:
		return seqvec.ModOp[int64]()
	case Amp:
		return seqvec.AndOp[int64]()
	case Pipe:
		return seqvec.OrOp[int64]()
	case Caret:
		return seqvec.XorOp[int64]()
	case Shl:
		return seqvec.ShlOp[int64]()
	case Shr:
		return seqvec.ShrOp[int64]()
	}
	panic(fmt.Sprintf("seqexpr: not an operator token: %v", ty))
}
