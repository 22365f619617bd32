// Package xform provides generic function combinators for building
// transformation pipelines.
//
// The centerpiece is the Comp family, which composes functions right to left:
//
//	g := xform.Comp3(f1, f2, f3)
//	g(x) == f1(f2(f3(x)))
//
// Go has no variadic type parameters, so each arity gets its own name, the same
// way TableizeI1O1..TableizeI2O2 do in purefn. Comp3 is defined as
// Comp2(f1, Comp2(f2, f3)), so every chain is a right-nested tree of Composed
// pairs. Mismatched stages are rejected by the compiler, never at run time.
//
// Trailing arguments skip the inner stages and reach the outermost function:
//
//	add := func(x, y int) int { return x + y }
//	double := func(x int) int { return x * 2 }
//	xform.Comp2Y1(add, double)(3, 4) // add(double(3), 4) == 10
//
// The leaf combinators are meant to be dropped into such chains:
//   - Identity: returns its argument.
//   - Constantly: captures a value and returns it for any input.
//   - Tuplify0..Tuplify4: normalize zero, one, or many values into
//     T0, the bare value, or a T2/T3/T4 aggregate.
//
// When the chain shape is only known at run time, Fn and Compose offer the same
// semantics over untyped values. Lift adapts typed functions into Fn; a type or
// arity mismatch there panics with an error wrapping ErrStageType or
// ErrStageArity.
//
// All combinators are stateless or hold an immutable capture, so they are safe
// for concurrent use whenever the wrapped functions are.
package xform
