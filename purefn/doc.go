// Package purefn memoizes pure pipeline stages.
//
// Tableize is not just a cache in front of a function. Wrapping a stage with
// Tableize is a statement that the stage is referentially transparent: same
// inputs, same outputs, no observable side effects. If that is not true, the
// table will happily serve stale answers.
//
// The Tableize family mirrors the arity-suffixed naming of xform.Comp:
//   - TableizeI1O1 to TableizeI4O1: one result.
//   - TableizeI1O2 to TableizeI4O2: two results, stored as an xform.T2.
//
// Arguments become table keys. Comparable values are used as-is; values that
// implement fmt.Stringer are keyed by the 64-bit xxhash digest of their String
// form, so two arguments whose strings collide on that digest share one entry.
// Anything else panics on first use. A nil interface argument is a valid key.
//
// The default table is a bounded Trie that keeps two generations of entries and
// drops the older one when the live generation fills up. Any Table can be
// supplied through the ...With variants.
//
// A tableized stage composes like any other function:
//
//	parse := purefn.TableizeI1O1(expensiveParse, 1024)
//	stage := xform.Comp2(render, parse)
//
// WARNING: Do not tableize impure functions (time, I/O, randomness, mutable
// captures).
package purefn
