package xform

// Tuplify0 returns the empty aggregate.
func Tuplify0() T0 {
	return T0{}
}

// Tuplify1 returns a unchanged; a single value is never wrapped.
func Tuplify1[A any](a A) A {
	return a
}

func Tuplify2[A, B any](a A, b B) T2[A, B] {
	return NewT2(a, b)
}

func Tuplify3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return NewT3(a, b, c)
}

func Tuplify4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return NewT4(a, b, c, d)
}

// Tuplify decides by argument count at run time: T0{} for none, the bare
// value for one, and a Tuple holding a copy of args otherwise.
func Tuplify(args ...any) any {
	switch len(args) {
	case 0:
		return T0{}
	case 1:
		return args[0]
	default:
		return append(Tuple(nil), args...)
	}
}

// TuplifyFn is Tuplify in Fn form.
func TuplifyFn(x any, ys ...any) any {
	if len(ys) == 0 {
		return x
	}
	t := make(Tuple, 0, len(ys)+1)
	t = append(t, x)
	return append(t, ys...)
}
