package property

import (
	"errors"
	"testing"
)

func TestGroupID_Extend(t *testing.T) {
	var g GroupID
	g1 := g.Extend("p1", nil)

	if len(g1) != 1 {
		t.Fatalf("len(g1) = %d; want 1", len(g1))
	}
	if g1[0].PartitionID != "p1" {
		t.Errorf("g1[0].PartitionID = %q; want p1", g1[0].PartitionID)
	}
	if len(g) != 0 {
		t.Error("Extend mutated the original GroupID")
	}

	idx := 2
	g2 := g1.Extend("p2", &idx)
	if len(g2) != 2 {
		t.Fatalf("len(g2) = %d; want 2", len(g2))
	}
	if *g2[1].Index != 2 {
		t.Errorf("g2[1].Index = %d; want 2", *g2[1].Index)
	}
}

func TestGroupID_CompatibleWith(t *testing.T) {
	var empty GroupID
	a := empty.Extend("p1", nil)
	b := empty.Extend("p1", nil)
	c := empty.Extend("p2", nil)

	if !a.CompatibleWith(b) {
		t.Error("identical trailing partition should be compatible")
	}
	if a.CompatibleWith(c) {
		t.Error("different trailing partition should be incompatible")
	}
	if !empty.CompatibleWith(a) {
		t.Error("empty GroupID should be compatible with anything")
	}
}

func TestArray_Projection(t *testing.T) {
	vp := ArrayProperties{DataType: F64}

	a, err := Array(vp)
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if a.DataType != F64 {
		t.Errorf("DataType = %s; want F64", a.DataType)
	}

	_, err = Array(JaggedProperties{})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Array(Jagged) error = %v; want ErrTypeMismatch", err)
	}
}

func TestIndexmap_Projection(t *testing.T) {
	vp := IndexmapProperties{Variant: Partition}

	m, err := Indexmap(vp)
	if err != nil {
		t.Fatalf("Indexmap() error = %v", err)
	}
	if m.Variant != Partition {
		t.Errorf("Variant = %s; want Partition", m.Variant)
	}

	_, err = Indexmap(ArrayProperties{})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Indexmap(Array) error = %v; want ErrTypeMismatch", err)
	}
}

func TestJagged_Projection(t *testing.T) {
	vp := JaggedProperties{DataType: Str}

	j, err := Jagged(vp)
	if err != nil {
		t.Fatalf("Jagged() error = %v", err)
	}
	if j.DataType != Str {
		t.Errorf("DataType = %s; want Str", j.DataType)
	}

	_, err = Jagged(ArrayProperties{})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Jagged(Array) error = %v; want ErrTypeMismatch", err)
	}
}

func TestLowerUpperF64(t *testing.T) {
	vp := ArrayProperties{LowerF64: []float64{0, -1}, UpperF64: []float64{10, 1}}

	lower, err := LowerF64(vp)
	if err != nil {
		t.Fatalf("LowerF64() error = %v", err)
	}
	if lower[0] != 0 || lower[1] != -1 {
		t.Errorf("LowerF64() = %v; want [0 -1]", lower)
	}

	upper, err := UpperF64(vp)
	if err != nil {
		t.Fatalf("UpperF64() error = %v", err)
	}
	if upper[0] != 10 || upper[1] != 1 {
		t.Errorf("UpperF64() = %v; want [10 1]", upper)
	}
}

func TestLowerF64_Missing(t *testing.T) {
	vp := ArrayProperties{}

	_, err := LowerF64(vp)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("LowerF64() error = %v; want ErrMissing", err)
	}
}

func TestNumRecords_Array(t *testing.T) {
	n := 5
	vp := ArrayProperties{NumRecords: &n}

	got, err := NumRecords(vp)
	if err != nil {
		t.Fatalf("NumRecords() error = %v", err)
	}
	if got != 5 {
		t.Errorf("NumRecords() = %d; want 5", got)
	}
}

func TestNumRecords_Indexmap(t *testing.T) {
	n := 9
	vp := IndexmapProperties{NumRecords: &n}

	got, err := NumRecords(vp)
	if err != nil {
		t.Fatalf("NumRecords() error = %v", err)
	}
	if got != 9 {
		t.Errorf("NumRecords() = %d; want 9", got)
	}
}

func TestNumRecords_MissingOrWrongKind(t *testing.T) {
	if _, err := NumRecords(ArrayProperties{}); !errors.Is(err, ErrMissing) {
		t.Errorf("NumRecords(unset Array) error = %v; want ErrMissing", err)
	}
	if _, err := NumRecords(JaggedProperties{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("NumRecords(Jagged) error = %v; want ErrTypeMismatch", err)
	}
}

func TestNumColumns(t *testing.T) {
	n := 3
	vp := ArrayProperties{NumColumns: &n}

	got, err := NumColumns(vp)
	if err != nil {
		t.Fatalf("NumColumns() error = %v", err)
	}
	if got != 3 {
		t.Errorf("NumColumns() = %d; want 3", got)
	}

	if _, err := NumColumns(ArrayProperties{}); !errors.Is(err, ErrMissing) {
		t.Errorf("NumColumns(unset) error = %v; want ErrMissing", err)
	}
}

func TestCategories(t *testing.T) {
	cats := NewStrJagged([][]string{{"a", "b"}})
	vp := ArrayProperties{Categories: &cats}

	got, err := Categories(vp)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if got.NumColumns() != 1 {
		t.Errorf("Categories().NumColumns() = %d; want 1", got.NumColumns())
	}

	if _, err := Categories(ArrayProperties{}); !errors.Is(err, ErrMissing) {
		t.Errorf("Categories(unset) error = %v; want ErrMissing", err)
	}
}

func TestIndexmapProperties_ChildNames(t *testing.T) {
	props := IndexmapProperties{Children: map[string]ValueProperties{
		"z": ArrayProperties{},
		"a": ArrayProperties{},
	}}

	names := props.ChildNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "z" {
		t.Errorf("ChildNames() = %v; want sorted [a z]", names)
	}
}

func TestIndexmapVariant_String(t *testing.T) {
	if Dataframe.String() != "Dataframe" {
		t.Errorf("Dataframe.String() = %q", Dataframe.String())
	}
	if Partition.String() != "Partition" {
		t.Errorf("Partition.String() = %q", Partition.String())
	}
	if IndexmapVariant(99).String() != "unknown" {
		t.Errorf("IndexmapVariant(99).String() = %q", IndexmapVariant(99).String())
	}
}
