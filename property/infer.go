package property

// Infer reconstructs ValueProperties from a concrete public Value. This is
// the authoritative source of properties for any node whose release is
// materialized and marked public (spec invariant: inference overrides
// propagation once a concrete value exists).
//
// A ScalarValue infers as a one-row, one-column Array whose bounds are the
// scalar itself. A ScalarValue of DataType Bool or Str infers with its
// bounds left unset (LowerF64/UpperF64 are only meaningful for numeric data).
func Infer(v Value) (ValueProperties, error) {
	switch val := v.(type) {
	case ScalarValue:
		return inferScalar(val), nil
	case ArrayValue:
		return inferArray(val), nil
	case JaggedValue:
		return inferJagged(val), nil
	case IndexmapValue:
		return inferIndexmap(val)
	default:
		return nil, TypeMismatch(KindArray, v.Kind())
	}
}

func inferScalar(s ScalarValue) ValueProperties {
	props := ArrayProperties{
		NumRecords: intPtr(1),
		NumColumns: intPtr(1),
		Nullable:   false,
		Releasable: false,
		DataType:   s.DataType(),
		IsPublic:   true,
	}
	if s.DataType() == F64 {
		props.LowerF64 = []float64{s.F64()}
		props.UpperF64 = []float64{s.F64()}
	}
	if s.DataType() == I64 {
		f := float64(s.I64())
		props.LowerF64 = []float64{f}
		props.UpperF64 = []float64{f}
	}
	return props
}

func inferArray(a ArrayValue) ValueProperties {
	props := ArrayProperties{
		NumRecords: intPtr(a.NumRecords()),
		NumColumns: intPtr(a.NumColumns()),
		Nullable:   false,
		Releasable: false,
		DataType:   a.DataType(),
		IsPublic:   true,
	}
	if a.DataType() == F64 {
		lower := make([]float64, len(a.f64Cols))
		upper := make([]float64, len(a.f64Cols))
		for i, col := range a.f64Cols {
			lo, hi := minMaxF64(col)
			lower[i], upper[i] = lo, hi
		}
		props.LowerF64 = lower
		props.UpperF64 = upper
	}
	if a.DataType() == I64 {
		lower := make([]float64, len(a.i64Cols))
		upper := make([]float64, len(a.i64Cols))
		for i, col := range a.i64Cols {
			lo, hi := minMaxI64(col)
			lower[i], upper[i] = float64(lo), float64(hi)
		}
		props.LowerF64 = lower
		props.UpperF64 = upper
	}
	return props
}

func inferJagged(j JaggedValue) ValueProperties {
	return JaggedProperties{
		DataType:   j.DataType(),
		NumColumns: intPtr(j.NumColumns()),
	}
}

func inferIndexmap(m IndexmapValue) (ValueProperties, error) {
	children := make(map[string]ValueProperties, m.Len())
	var numRecords *int
	for _, key := range m.Keys() {
		child, _ := m.Get(key)
		childProps, err := Infer(child)
		if err != nil {
			return nil, err
		}
		children[key] = childProps
		if numRecords == nil {
			if n, err := NumRecords(childProps); err == nil {
				numRecords = intPtr(n)
			}
		}
	}
	return IndexmapProperties{
		NumRecords: numRecords,
		Disjoint:   false,
		Children:   children,
		Variant:    Dataframe,
	}, nil
}

func minMaxF64(col []float64) (float64, float64) {
	if len(col) == 0 {
		return 0, 0
	}
	lo, hi := col[0], col[0]
	for _, v := range col[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func minMaxI64(col []int64) (int64, int64) {
	if len(col) == 0 {
		return 0, 0
	}
	lo, hi := col[0], col[0]
	for _, v := range col[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
