// Package ringbuf is a small fixed-capacity ring, used by the expression
// parser for token lookahead.
package ringbuf

type RingBuf[T any] struct {
	buf        []T
	head, tail int
}

func New[T any](n int) RingBuf[T] {
	return RingBuf[T]{buf: make([]T, n)}
}

func (rb *RingBuf[T]) MaxLen() int {
	return len(rb.buf)
}

func (rb *RingBuf[T]) Len() int {
	return rb.tail - rb.head
}

// PushBack appends val.  It panics when the ring is full.
func (rb *RingBuf[T]) PushBack(val T) {
	if rb.Len() >= len(rb.buf) {
		panic("ringbuf: full")
	}
	rb.buf[mod(rb.tail, len(rb.buf))] = val
	rb.tail++
}

// PopFront removes and returns the oldest element.
func (rb *RingBuf[T]) PopFront() T {
	val := rb.At(0)
	rb.head++
	return val
}

// At returns the i'th element from the front without removing it.
func (rb *RingBuf[T]) At(i int) T {
	if i >= rb.Len() {
		panic(i)
	}
	return rb.buf[mod(rb.head+i, len(rb.buf))]
}

func mod(x, n int) int {
	return ((x % n) + n) % n
}
