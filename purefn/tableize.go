package purefn

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	return TableizeI1O1With[I1, O1](pureFn, NewTrie[O1](maxTableSize))
}

func TableizeI1O1With[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	table Table[O1],
) func(I1) O1 {
	tableized := tableize[O1](
		func(args ...ComparableOrStringer) O1 {
			return pureFn(argOf[I1](args[0]))
		},
		table,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	return TableizeI2O1With[I1, I2, O1](pureFn, NewTrie[O1](maxTableSize))
}

func TableizeI2O1With[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	table Table[O1],
) func(I1, I2) O1 {
	tableized := tableize[O1](
		func(args ...ComparableOrStringer) O1 {
			return pureFn(argOf[I1](args[0]), argOf[I2](args[1]))
		},
		table,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	return TableizeI3O1With[I1, I2, I3, O1](pureFn, NewTrie[O1](maxTableSize))
}

func TableizeI3O1With[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	table Table[O1],
) func(I1, I2, I3) O1 {
	tableized := tableize[O1](
		func(args ...ComparableOrStringer) O1 {
			return pureFn(argOf[I1](args[0]), argOf[I2](args[1]), argOf[I3](args[2]))
		},
		table,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	return TableizeI4O1With[I1, I2, I3, I4, O1](pureFn, NewTrie[O1](maxTableSize))
}

func TableizeI4O1With[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	table Table[O1],
) func(I1, I2, I3, I4) O1 {
	tableized := tableize[O1](
		func(args ...ComparableOrStringer) O1 {
			return pureFn(
				argOf[I1](args[0]),
				argOf[I2](args[1]),
				argOf[I3](args[2]),
				argOf[I4](args[3]),
			)
		},
		table,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	table Table[O],
) func(...ComparableOrStringer) O {
	return func(args ...ComparableOrStringer) O {
		keys := tableKeys(args)
		v, ok := table.Load(keys)
		if !ok {
			v = pureFn(args...)
			table.Store(keys, v)
		}
		return v
	}
}
