package rop

// Pair is a 2-tuple used by combinators that thread an intermediate value
// alongside a computed one.
type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}
