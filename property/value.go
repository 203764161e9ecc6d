package property

import "sort"

// DataType identifies the scalar element type carried by an Array or Jagged
// value: float64, int64, bool, or string.
type DataType uint8

const (
	F64 DataType = iota
	I64
	Bool
	Str
)

// String returns the canonical name of the data type.
func (d DataType) String() string {
	switch d {
	case F64:
		return "F64"
	case I64:
		return "I64"
	case Bool:
		return "Bool"
	case Str:
		return "Str"
	default:
		return "unknown"
	}
}

// ValueKind identifies which variant of the Value sum a value holds.
type ValueKind uint8

const (
	KindScalar ValueKind = iota
	KindArray
	KindJagged
	KindIndexmap
)

// String returns the canonical name of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindArray:
		return "Array"
	case KindJagged:
		return "Jagged"
	case KindIndexmap:
		return "Indexmap"
	default:
		return "unknown"
	}
}

// Value is a closed sum of the concrete shapes a released or argument value
// can take: a single scalar, a typed rectangular array, a jagged (per-column
// ragged) array, or a heterogeneous string/int-keyed map of values.
//
// Value is immutable once constructed; the constructors below each take
// ownership of any slice passed in, mirroring the rest of this module's
// "construct once, never mutate" convention.
type Value interface {
	Kind() ValueKind

	// value is an unexported marker method that closes the Value sum over
	// this package's four concrete implementations.
	value()
}

// ScalarValue is a single typed value, e.g. a numeric accuracy parameter
// or a public argument supplied directly in an analysis request.
type ScalarValue struct {
	dataType DataType
	f64      float64
	i64      int64
	b        bool
	str      string
}

func (ScalarValue) value() {}

// Kind implements Value.
func (ScalarValue) Kind() ValueKind { return KindScalar }

// DataType returns the scalar's element type.
func (s ScalarValue) DataType() DataType { return s.dataType }

// F64 returns the wrapped float64, zero if the data type is not F64.
func (s ScalarValue) F64() float64 { return s.f64 }

// I64 returns the wrapped int64, zero if the data type is not I64.
func (s ScalarValue) I64() int64 { return s.i64 }

// Bool returns the wrapped bool, false if the data type is not Bool.
func (s ScalarValue) Bool() bool { return s.b }

// Str returns the wrapped string, empty if the data type is not Str.
func (s ScalarValue) Str() string { return s.str }

// F64Scalar builds a ScalarValue holding a float64.
func F64Scalar(v float64) ScalarValue { return ScalarValue{dataType: F64, f64: v} }

// I64Scalar builds a ScalarValue holding an int64.
func I64Scalar(v int64) ScalarValue { return ScalarValue{dataType: I64, i64: v} }

// BoolScalar builds a ScalarValue holding a bool.
func BoolScalar(v bool) ScalarValue { return ScalarValue{dataType: Bool, b: v} }

// StrScalar builds a ScalarValue holding a string.
func StrScalar(v string) ScalarValue { return ScalarValue{dataType: Str, str: v} }

// ArrayValue is a typed rectangular array: numRecords rows by len(columns)
// columns, stored column-major so each column is independently addressable.
// Exactly one of the typed column slices is populated, selected by DataType.
type ArrayValue struct {
	dataType   DataType
	numRecords int
	f64Cols    [][]float64
	i64Cols    [][]int64
	boolCols   [][]bool
	strCols    [][]string
}

func (ArrayValue) value() {}

// Kind implements Value.
func (ArrayValue) Kind() ValueKind { return KindArray }

// DataType returns the array's element type.
func (a ArrayValue) DataType() DataType { return a.dataType }

// NumRecords returns the row count.
func (a ArrayValue) NumRecords() int { return a.numRecords }

// NumColumns returns the column count.
func (a ArrayValue) NumColumns() int {
	switch a.dataType {
	case F64:
		return len(a.f64Cols)
	case I64:
		return len(a.i64Cols)
	case Bool:
		return len(a.boolCols)
	case Str:
		return len(a.strCols)
	default:
		return 0
	}
}

// F64Columns returns the column-major float64 data, nil if DataType is not F64.
func (a ArrayValue) F64Columns() [][]float64 { return a.f64Cols }

// I64Columns returns the column-major int64 data, nil if DataType is not I64.
func (a ArrayValue) I64Columns() [][]int64 { return a.i64Cols }

// BoolColumns returns the column-major bool data, nil if DataType is not Bool.
func (a ArrayValue) BoolColumns() [][]bool { return a.boolCols }

// StrColumns returns the column-major string data, nil if DataType is not Str.
func (a ArrayValue) StrColumns() [][]string { return a.strCols }

// NewF64Array builds an ArrayValue from column-major float64 data. All
// columns must have the same length; that length becomes NumRecords.
func NewF64Array(cols [][]float64) ArrayValue {
	return ArrayValue{dataType: F64, numRecords: columnLen(len(cols), func(i int) int { return len(cols[i]) }), f64Cols: cols}
}

// NewI64Array builds an ArrayValue from column-major int64 data.
func NewI64Array(cols [][]int64) ArrayValue {
	return ArrayValue{dataType: I64, numRecords: columnLen(len(cols), func(i int) int { return len(cols[i]) }), i64Cols: cols}
}

// NewBoolArray builds an ArrayValue from column-major bool data.
func NewBoolArray(cols [][]bool) ArrayValue {
	return ArrayValue{dataType: Bool, numRecords: columnLen(len(cols), func(i int) int { return len(cols[i]) }), boolCols: cols}
}

// NewStrArray builds an ArrayValue from column-major string data.
func NewStrArray(cols [][]string) ArrayValue {
	return ArrayValue{dataType: Str, numRecords: columnLen(len(cols), func(i int) int { return len(cols[i]) }), strCols: cols}
}

func columnLen(numCols int, lenAt func(int) int) int {
	if numCols == 0 {
		return 0
	}
	return lenAt(0)
}

// JaggedValue holds a per-column list of values whose lengths may differ
// across columns, e.g. the distinct categories observed in each column of
// a partitioned dataset.
type JaggedValue struct {
	dataType DataType
	f64Cols  [][]float64
	i64Cols  [][]int64
	boolCols [][]bool
	strCols  [][]string
}

func (JaggedValue) value() {}

// Kind implements Value.
func (JaggedValue) Kind() ValueKind { return KindJagged }

// DataType returns the jagged value's element type.
func (j JaggedValue) DataType() DataType { return j.dataType }

// NumColumns returns the column count.
func (j JaggedValue) NumColumns() int {
	switch j.dataType {
	case F64:
		return len(j.f64Cols)
	case I64:
		return len(j.i64Cols)
	case Bool:
		return len(j.boolCols)
	case Str:
		return len(j.strCols)
	default:
		return 0
	}
}

// F64Columns returns the per-column float64 lists, nil if DataType is not F64.
func (j JaggedValue) F64Columns() [][]float64 { return j.f64Cols }

// I64Columns returns the per-column int64 lists, nil if DataType is not I64.
func (j JaggedValue) I64Columns() [][]int64 { return j.i64Cols }

// BoolColumns returns the per-column bool lists, nil if DataType is not Bool.
func (j JaggedValue) BoolColumns() [][]bool { return j.boolCols }

// StrColumns returns the per-column string lists, nil if DataType is not Str.
func (j JaggedValue) StrColumns() [][]string { return j.strCols }

// NewF64Jagged builds a JaggedValue from per-column float64 lists.
func NewF64Jagged(cols [][]float64) JaggedValue { return JaggedValue{dataType: F64, f64Cols: cols} }

// NewI64Jagged builds a JaggedValue from per-column int64 lists.
func NewI64Jagged(cols [][]int64) JaggedValue { return JaggedValue{dataType: I64, i64Cols: cols} }

// NewBoolJagged builds a JaggedValue from per-column bool lists.
func NewBoolJagged(cols [][]bool) JaggedValue { return JaggedValue{dataType: Bool, boolCols: cols} }

// NewStrJagged builds a JaggedValue from per-column string lists.
func NewStrJagged(cols [][]string) JaggedValue { return JaggedValue{dataType: Str, strCols: cols} }

// IndexmapValue is a heterogeneous, string-keyed map of values, e.g. the
// per-partition children produced by a Partition component.
type IndexmapValue struct {
	entries map[string]Value
}

func (IndexmapValue) value() {}

// Kind implements Value.
func (IndexmapValue) Kind() ValueKind { return KindIndexmap }

// NewIndexmap builds an IndexmapValue. The caller must not mutate entries
// afterward.
func NewIndexmap(entries map[string]Value) IndexmapValue {
	return IndexmapValue{entries: entries}
}

// Get returns the child value for key and whether it was present.
func (m IndexmapValue) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the child keys in sorted order, for deterministic iteration.
func (m IndexmapValue) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of children.
func (m IndexmapValue) Len() int { return len(m.entries) }
