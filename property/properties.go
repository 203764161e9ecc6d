package property

import "sort"

// GroupElement is one layer of a GroupID: the partition a value descends
// from, and optionally which branch of that partition.
type GroupElement struct {
	PartitionID string
	Index       *int
}

// GroupID is the ordered provenance chain of Partition layers a value has
// passed through. It monotonically extends: a Partition component appends
// exactly one layer, and two GroupIDs may only be composed (by a join) when
// their trailing layers match.
type GroupID []GroupElement

// Extend returns a copy of g with one more Partition layer appended.
func (g GroupID) Extend(partitionID string, index *int) GroupID {
	extended := make(GroupID, len(g)+1)
	copy(extended, g)
	extended[len(g)] = GroupElement{PartitionID: partitionID, Index: index}
	return extended
}

// CompatibleWith reports whether g and other share a common trailing layer,
// the precondition for composing them across a join.
func (g GroupID) CompatibleWith(other GroupID) bool {
	if len(g) == 0 || len(other) == 0 {
		return true
	}
	a, b := g[len(g)-1], other[len(other)-1]
	return a.PartitionID == b.PartitionID
}

// IndexmapVariant distinguishes the two shapes an Indexmap's children can
// take: a dataframe's named columns, or a Partition's disjoint branches.
type IndexmapVariant uint8

const (
	Dataframe IndexmapVariant = iota
	Partition
)

// String returns the canonical name of the variant.
func (v IndexmapVariant) String() string {
	switch v {
	case Dataframe:
		return "Dataframe"
	case Partition:
		return "Partition"
	default:
		return "unknown"
	}
}

// ValueProperties is a closed sum mirroring Value: the static properties
// known about an Array, Indexmap, or Jagged value before (and possibly
// without ever) seeing its concrete data.
//
// Properties may be pessimistically widened (an attribute moved from known
// to unknown) as propagation proceeds, but a known attribute must never be
// incorrectly tightened.
type ValueProperties interface {
	Kind() ValueKind

	// properties is an unexported marker method that closes the
	// ValueProperties sum over this package's three implementations.
	properties()
}

// ArrayProperties is the static shape of an Array value.
type ArrayProperties struct {
	NumRecords *int
	NumColumns *int
	Nullable   bool
	Releasable bool
	LowerF64   []float64 // per-column, nil entries mean "unknown for this column"
	UpperF64   []float64
	Categories *JaggedValue
	DataType   DataType
	DatasetID  *string
	GroupID    GroupID
	IsPublic   bool
}

func (ArrayProperties) properties() {}

// Kind implements ValueProperties.
func (ArrayProperties) Kind() ValueKind { return KindArray }

// IndexmapProperties is the static shape of an Indexmap value.
type IndexmapProperties struct {
	NumRecords *int
	Disjoint   bool
	Children   map[string]ValueProperties
	Variant    IndexmapVariant
	DatasetID  *string
}

func (IndexmapProperties) properties() {}

// Kind implements ValueProperties.
func (IndexmapProperties) Kind() ValueKind { return KindIndexmap }

// ChildNames returns the child keys in sorted order, for deterministic
// iteration over Children.
func (p IndexmapProperties) ChildNames() []string {
	names := make([]string, 0, len(p.Children))
	for name := range p.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JaggedProperties is the static shape of a Jagged value.
type JaggedProperties struct {
	DataType   DataType
	NumColumns *int
}

func (JaggedProperties) properties() {}

// Kind implements ValueProperties.
func (JaggedProperties) Kind() ValueKind { return KindJagged }

// Array projects vp to *ArrayProperties, failing with ErrTypeMismatch if vp
// is not an Array.
func Array(vp ValueProperties) (*ArrayProperties, error) {
	a, ok := vp.(ArrayProperties)
	if !ok {
		return nil, TypeMismatch(KindArray, vp.Kind())
	}
	return &a, nil
}

// Indexmap projects vp to *IndexmapProperties, failing with ErrTypeMismatch
// if vp is not an Indexmap.
func Indexmap(vp ValueProperties) (*IndexmapProperties, error) {
	m, ok := vp.(IndexmapProperties)
	if !ok {
		return nil, TypeMismatch(KindIndexmap, vp.Kind())
	}
	return &m, nil
}

// Jagged projects vp to *JaggedProperties, failing with ErrTypeMismatch if
// vp is not a Jagged.
func Jagged(vp ValueProperties) (*JaggedProperties, error) {
	j, ok := vp.(JaggedProperties)
	if !ok {
		return nil, TypeMismatch(KindJagged, vp.Kind())
	}
	return &j, nil
}

// TypeMismatch wraps ErrTypeMismatch with the expected and actual kinds.
func TypeMismatch(want, got ValueKind) error {
	return &typeMismatchError{want: want, got: got}
}

type typeMismatchError struct {
	want, got ValueKind
}

func (e *typeMismatchError) Error() string {
	return ErrTypeMismatch.Error() + ": expected " + e.want.String() + ", got " + e.got.String()
}

func (e *typeMismatchError) Unwrap() error { return ErrTypeMismatch }

// LowerF64 returns vp's per-column lower bounds, failing if vp is not an
// Array or the bound is unset.
func LowerF64(vp ValueProperties) ([]float64, error) {
	a, err := Array(vp)
	if err != nil {
		return nil, err
	}
	if a.LowerF64 == nil {
		return nil, MissingField("lower")
	}
	return a.LowerF64, nil
}

// UpperF64 returns vp's per-column upper bounds, failing if vp is not an
// Array or the bound is unset.
func UpperF64(vp ValueProperties) ([]float64, error) {
	a, err := Array(vp)
	if err != nil {
		return nil, err
	}
	if a.UpperF64 == nil {
		return nil, MissingField("upper")
	}
	return a.UpperF64, nil
}

// NumRecords returns vp's record count, failing if unset. Works for both
// Array and Indexmap variants.
func NumRecords(vp ValueProperties) (int, error) {
	switch vp.Kind() {
	case KindArray:
		a, _ := Array(vp)
		if a.NumRecords == nil {
			return 0, MissingField("num_records")
		}
		return *a.NumRecords, nil
	case KindIndexmap:
		m, _ := Indexmap(vp)
		if m.NumRecords == nil {
			return 0, MissingField("num_records")
		}
		return *m.NumRecords, nil
	default:
		return 0, TypeMismatch(KindArray, vp.Kind())
	}
}

// NumColumns returns vp's column count, failing if vp is not an Array or
// the column count is unset.
func NumColumns(vp ValueProperties) (int, error) {
	a, err := Array(vp)
	if err != nil {
		return 0, err
	}
	if a.NumColumns == nil {
		return 0, MissingField("num_columns")
	}
	return *a.NumColumns, nil
}

// Categories returns vp's per-column category lists, failing if vp is not
// an Array or categories are unset.
func Categories(vp ValueProperties) (*JaggedValue, error) {
	a, err := Array(vp)
	if err != nil {
		return nil, err
	}
	if a.Categories == nil {
		return nil, MissingField("categories")
	}
	return a.Categories, nil
}

func intPtr(v int) *int { return &v }
