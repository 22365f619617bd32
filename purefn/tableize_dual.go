package purefn

import "github.com/on-the-ground/xform_go/xform"

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	return TableizeI1O2With[I1, O1, O2](pureFn, NewTrie[xform.T2[O1, O2]](maxTableSize))
}

// TableizeI1O2With stores both results together as one xform.T2 entry.
func TableizeI1O2With[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	table Table[xform.T2[O1, O2]],
) func(I1) (O1, O2) {
	tableized := tableize[xform.T2[O1, O2]](
		func(args ...ComparableOrStringer) xform.T2[O1, O2] {
			o1, o2 := pureFn(argOf[I1](args[0]))
			return xform.Tuplify2(o1, o2)
		},
		table,
	)
	return func(i1 I1) (O1, O2) {
		return tableized(i1).Unpack()
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	return TableizeI2O2With[I1, I2, O1, O2](pureFn, NewTrie[xform.T2[O1, O2]](maxTableSize))
}

func TableizeI2O2With[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	table Table[xform.T2[O1, O2]],
) func(I1, I2) (O1, O2) {
	tableized := tableize[xform.T2[O1, O2]](
		func(args ...ComparableOrStringer) xform.T2[O1, O2] {
			o1, o2 := pureFn(argOf[I1](args[0]), argOf[I2](args[1]))
			return xform.Tuplify2(o1, o2)
		},
		table,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(i1, i2).Unpack()
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, O2) {
	return TableizeI3O2With[I1, I2, I3, O1, O2](pureFn, NewTrie[xform.T2[O1, O2]](maxTableSize))
}

func TableizeI3O2With[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	table Table[xform.T2[O1, O2]],
) func(I1, I2, I3) (O1, O2) {
	tableized := tableize[xform.T2[O1, O2]](
		func(args ...ComparableOrStringer) xform.T2[O1, O2] {
			o1, o2 := pureFn(argOf[I1](args[0]), argOf[I2](args[1]), argOf[I3](args[2]))
			return xform.Tuplify2(o1, o2)
		},
		table,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return tableized(i1, i2, i3).Unpack()
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3, I4) (O1, O2) {
	return TableizeI4O2With[I1, I2, I3, I4, O1, O2](pureFn, NewTrie[xform.T2[O1, O2]](maxTableSize))
}

func TableizeI4O2With[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	table Table[xform.T2[O1, O2]],
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableize[xform.T2[O1, O2]](
		func(args ...ComparableOrStringer) xform.T2[O1, O2] {
			o1, o2 := pureFn(
				argOf[I1](args[0]),
				argOf[I2](args[1]),
				argOf[I3](args[2]),
				argOf[I4](args[3]),
			)
			return xform.Tuplify2(o1, o2)
		},
		table,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return tableized(i1, i2, i3, i4).Unpack()
	}
}
