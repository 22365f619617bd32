package xform

// Constant holds a value captured once at construction.
// The value is never mutated or re-evaluated afterwards.
type Constant[T any] struct {
	value T
}

// Constantly captures v and returns a Constant whose calls always yield v.
func Constantly[T any](v T) Constant[T] {
	return Constant[T]{value: v}
}

func (c Constant[T]) Value() T {
	return c.value
}

// Call ignores its arguments and returns the stored value.
func (c Constant[T]) Call(...any) T {
	return c.value
}

// Fn returns the dynamic form of c.
func (c Constant[T]) Fn() Fn {
	return func(any, ...any) any {
		return c.value
	}
}

func ConstantlyI0[T any](v T) func() T {
	k := Constantly(v)
	return func() T {
		return k.value
	}
}

// ConstantlyI1 returns a single-argument stage that discards its input and
// yields v, ready to be used inside a Comp chain.
func ConstantlyI1[X, T any](v T) func(X) T {
	k := Constantly(v)
	return func(X) T {
		return k.value
	}
}

func ConstantlyI2[X1, X2, T any](v T) func(X1, X2) T {
	k := Constantly(v)
	return func(X1, X2) T {
		return k.value
	}
}
