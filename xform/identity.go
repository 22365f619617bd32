package xform

import "github.com/on-the-ground/xform_go/xform/internal/helper"

// Identity returns x. Reference types (pointers, slices, maps, channels) come
// back as the same reference, never a copy of the referent.
func Identity[T any](x T) T {
	return x
}

// IdentityFn is Identity for dynamic chains. It accepts exactly one argument.
func IdentityFn(x any, ys ...any) any {
	helper.MustArity("IdentityFn", 0, ys)
	return x
}
