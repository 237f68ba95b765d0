package seqvec

// The operation catalogue.  Each entry returns a pure Op for the element
// type; the expression methods on Seq and Expr consume them, and callers
// with their own element functions can go through Bin instead.
//
// Policy: mod by zero yields zero, not an error.  Division by zero is passed
// through to the element type's own semantics (runtime panic for integers,
// Inf/NaN for floats).  Left and right shift are strictly symmetric.
// The integer-only entries panic for float element types.

func AddOp[E Num]() Op[E] { return func(a, b E) E { return a + b } }
func SubOp[E Num]() Op[E] { return func(a, b E) E { return a - b } }
func MulOp[E Num]() Op[E] { return func(a, b E) E { return a * b } }
func DivOp[E Num]() Op[E] { return func(a, b E) E { return a / b } }

// The integer entries operate on the 64 bit widening of the element.  Sign
// extension in, truncation out; the result is bit for bit what the operation
// would produce at the element's own width.

func ModOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E {
			if b == 0 {
				return 0
			}
			return E(int64(a) % int64(b))
		}
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E {
			if b == 0 {
				return 0
			}
			return E(uint64(a) % uint64(b))
		}
	}
	panic("seqvec: Mod on float element type")
}

func AndOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E { return E(int64(a) & int64(b)) }
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E { return E(uint64(a) & uint64(b)) }
	}
	panic("seqvec: And on float element type")
}

func OrOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E { return E(int64(a) | int64(b)) }
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E { return E(uint64(a) | uint64(b)) }
	}
	panic("seqvec: Or on float element type")
}

func XorOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E { return E(int64(a) ^ int64(b)) }
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E { return E(uint64(a) ^ uint64(b)) }
	}
	panic("seqvec: Xor on float element type")
}

func ShlOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E { return E(int64(a) << uint64(b)) }
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E { return E(uint64(a) << uint64(b)) }
	}
	panic("seqvec: Shl on float element type")
}

func ShrOp[E Num]() Op[E] {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return func(a, b E) E { return E(int64(a) >> uint64(b)) }
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return func(a, b E) E { return E(uint64(a) >> uint64(b)) }
	}
	panic("seqvec: Shr on float element type")
}

func notOf[E Num](a E) E {
	switch any(E(0)).(type) {
	case int, int8, int16, int32, int64:
		return E(^int64(a))
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return E(^uint64(a))
	}
	panic("seqvec: Not on float element type")
}
