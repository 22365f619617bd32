package xform

// Composed holds two functions and calls outer on the result of inner.
type Composed[X, B, C any] struct {
	outer func(B) C
	inner func(X) B
}

// NewComposed pairs outer with inner.
func NewComposed[X, B, C any](outer func(B) C, inner func(X) B) Composed[X, B, C] {
	return Composed[X, B, C]{outer: outer, inner: inner}
}

// Call returns outer(inner(x)).
func (c Composed[X, B, C]) Call(x X) C {
	return c.outer(c.inner(x))
}

// ComposedY1 is a Composed pair whose outer function takes one trailing argument.
type ComposedY1[X, Y1, B, C any] struct {
	outer func(B, Y1) C
	inner func(X) B
}

func NewComposedY1[X, Y1, B, C any](outer func(B, Y1) C, inner func(X) B) ComposedY1[X, Y1, B, C] {
	return ComposedY1[X, Y1, B, C]{outer: outer, inner: inner}
}

// Call returns outer(inner(x), y1).
func (c ComposedY1[X, Y1, B, C]) Call(x X, y1 Y1) C {
	return c.outer(c.inner(x), y1)
}

// ComposedY2 is a Composed pair whose outer function takes two trailing arguments.
type ComposedY2[X, Y1, Y2, B, C any] struct {
	outer func(B, Y1, Y2) C
	inner func(X) B
}

func NewComposedY2[X, Y1, Y2, B, C any](outer func(B, Y1, Y2) C, inner func(X) B) ComposedY2[X, Y1, Y2, B, C] {
	return ComposedY2[X, Y1, Y2, B, C]{outer: outer, inner: inner}
}

// Call returns outer(inner(x), y1, y2).
func (c ComposedY2[X, Y1, Y2, B, C]) Call(x X, y1 Y1, y2 Y2) C {
	return c.outer(c.inner(x), y1, y2)
}

// Comp1 returns f unchanged.
func Comp1[X, B any](f func(X) B) func(X) B {
	return f
}

// Comp2 returns g such that g(x) = f1(f2(x)).
func Comp2[X, B, C any](f1 func(B) C, f2 func(X) B) func(X) C {
	return NewComposed(f1, f2).Call
}

// Comp3 returns g such that g(x) = f1(f2(f3(x))).
func Comp3[X, B, C, D any](
	f1 func(C) D,
	f2 func(B) C,
	f3 func(X) B,
) func(X) D {
	return Comp2(f1, Comp2(f2, f3))
}

func Comp4[X, B, C, D, E any](
	f1 func(D) E,
	f2 func(C) D,
	f3 func(B) C,
	f4 func(X) B,
) func(X) E {
	return Comp2(f1, Comp3(f2, f3, f4))
}

func Comp5[X, B, C, D, E, F any](
	f1 func(E) F,
	f2 func(D) E,
	f3 func(C) D,
	f4 func(B) C,
	f5 func(X) B,
) func(X) F {
	return Comp2(f1, Comp4(f2, f3, f4, f5))
}

func Comp6[X, B, C, D, E, F, G any](
	f1 func(F) G,
	f2 func(E) F,
	f3 func(D) E,
	f4 func(C) D,
	f5 func(B) C,
	f6 func(X) B,
) func(X) G {
	return Comp2(f1, Comp5(f2, f3, f4, f5, f6))
}

// Comp2Y1 returns g such that g(x, y1) = f1(f2(x), y1).
// The trailing argument bypasses f2.
func Comp2Y1[X, Y1, B, C any](f1 func(B, Y1) C, f2 func(X) B) func(X, Y1) C {
	return NewComposedY1(f1, f2).Call
}

// Comp3Y1 returns g such that g(x, y1) = f1(f2(f3(x)), y1).
func Comp3Y1[X, Y1, B, C, D any](
	f1 func(C, Y1) D,
	f2 func(B) C,
	f3 func(X) B,
) func(X, Y1) D {
	return Comp2Y1(f1, Comp2(f2, f3))
}

func Comp4Y1[X, Y1, B, C, D, E any](
	f1 func(D, Y1) E,
	f2 func(C) D,
	f3 func(B) C,
	f4 func(X) B,
) func(X, Y1) E {
	return Comp2Y1(f1, Comp3(f2, f3, f4))
}

// Comp2Y2 returns g such that g(x, y1, y2) = f1(f2(x), y1, y2).
func Comp2Y2[X, Y1, Y2, B, C any](f1 func(B, Y1, Y2) C, f2 func(X) B) func(X, Y1, Y2) C {
	return NewComposedY2(f1, f2).Call
}

func Comp3Y2[X, Y1, Y2, B, C, D any](
	f1 func(C, Y1, Y2) D,
	f2 func(B) C,
	f3 func(X) B,
) func(X, Y1, Y2) D {
	return Comp2Y2(f1, Comp2(f2, f3))
}
