package xform

import (
	"fmt"

	"github.com/on-the-ground/xform_go/xform/internal/helper"
)

// Fn is the uniform callable of dynamic chains: a first argument plus any
// trailing arguments.
//
// Unlike the Comp family, chains of Fn are checked at call time. Use them only
// when the stages are not known at compile time.
type Fn func(x any, ys ...any) any

var (
	// ErrStageType is wrapped by the panic value when a lifted stage receives
	// an argument of the wrong type.
	ErrStageType = helper.ErrUnexpectedType

	// ErrStageArity is wrapped by the panic value when a stage receives the
	// wrong number of trailing arguments.
	ErrStageArity = helper.ErrUnexpectedArity
)

type composed struct {
	outer Fn
	inner Fn
}

func (c composed) call(x any, ys ...any) any {
	return c.outer(c.inner(x), ys...)
}

// Compose returns g such that g(x, ys...) = f(fs[0](...fs[n-1](x)...), ys...).
// With no fs, f itself is returned.
func Compose(f Fn, fs ...Fn) Fn {
	if len(fs) == 0 {
		return f
	}
	return composed{outer: f, inner: Compose(fs[0], fs[1:]...)}.call
}

// Lift adapts f into an Fn that takes no trailing arguments.
func Lift[X, R any](f func(X) R) Fn {
	stage := fmt.Sprintf("%T", f)
	return func(x any, ys ...any) any {
		helper.MustArity(stage, 0, ys)
		return f(helper.MustTypedValueOf[X](stage, x))
	}
}

func LiftY1[X, Y1, R any](f func(X, Y1) R) Fn {
	stage := fmt.Sprintf("%T", f)
	return func(x any, ys ...any) any {
		helper.MustArity(stage, 1, ys)
		return f(
			helper.MustTypedValueOf[X](stage, x),
			helper.MustTypedValueOf[Y1](stage, ys[0]),
		)
	}
}

func LiftY2[X, Y1, Y2, R any](f func(X, Y1, Y2) R) Fn {
	stage := fmt.Sprintf("%T", f)
	return func(x any, ys ...any) any {
		helper.MustArity(stage, 2, ys)
		return f(
			helper.MustTypedValueOf[X](stage, x),
			helper.MustTypedValueOf[Y1](stage, ys[0]),
			helper.MustTypedValueOf[Y2](stage, ys[1]),
		)
	}
}
