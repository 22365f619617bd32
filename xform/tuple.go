package xform

// T0 is the empty aggregate.
type T0 struct{}

// T2 is an ordered pair.
type T2[A, B any] struct {
	first  A
	second B
}

func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

func (t T2[A, B]) First() A  { return t.first }
func (t T2[A, B]) Second() B { return t.second }

// Unpack returns the members as multiple return values.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

func (t T3[A, B, C]) First() A  { return t.first }
func (t T3[A, B, C]) Second() B { return t.second }
func (t T3[A, B, C]) Third() C  { return t.third }

func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

func NewT4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{first: a, second: b, third: c, fourth: d}
}

func (t T4[A, B, C, D]) First() A  { return t.first }
func (t T4[A, B, C, D]) Second() B { return t.second }
func (t T4[A, B, C, D]) Third() C  { return t.third }
func (t T4[A, B, C, D]) Fourth() D { return t.fourth }

func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

// Tuple is the aggregate produced by the dynamic tuplifier.
type Tuple []any

func (t Tuple) Len() int {
	return len(t)
}
