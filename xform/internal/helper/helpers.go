package helper

import (
	"fmt"
)

var (
	ErrUnexpectedType  = fmt.Errorf("stage argument type mismatch")
	ErrUnexpectedArity = fmt.Errorf("stage argument count mismatch")
)

// TypedValueOf asserts v to T. A nil v is accepted only when T is an
// interface type, in which case the zero T is returned.
func TypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil && any(zero) == nil {
		return zero, nil
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, zero, v)
	}
	return val, nil
}

// MustTypedValueOf is the panic-on-failure variant of TypedValueOf.
// stage names the function whose argument failed the assertion.
func MustTypedValueOf[T any](stage string, v any) T {
	val, err := TypedValueOf[T](v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", stage, err))
	}
	return val
}

// MustArity panics unless exactly want trailing arguments were passed to stage.
func MustArity(stage string, want int, ys []any) {
	if len(ys) != want {
		panic(fmt.Errorf("%w: %s takes %d trailing arguments, got %d", ErrUnexpectedArity, stage, want, len(ys)))
	}
}
