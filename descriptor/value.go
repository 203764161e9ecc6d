package descriptor

import (
	"fmt"

	"github.com/privaxis/dpval/property"
)

// Value is the wire encoding of a property.Value: a discriminated union
// selected by Kind, decoded from (and encoded to) JSON/JSONC release
// documents.
type Value struct {
	Kind     string            `json:"kind"`
	DataType string            `json:"dataType,omitzero"`
	F64      float64           `json:"f64,omitzero"`
	I64      int64             `json:"i64,omitzero"`
	Bool     bool              `json:"bool,omitzero"`
	Str      string            `json:"str,omitzero"`
	F64Cols  [][]float64       `json:"f64Cols,omitzero"`
	I64Cols  [][]int64         `json:"i64Cols,omitzero"`
	BoolCols [][]bool          `json:"boolCols,omitzero"`
	StrCols  [][]string        `json:"strCols,omitzero"`
	Entries  map[string]*Value `json:"entries,omitzero"`
}

// ToProperty decodes the wire Value into a property.Value.
func (v *Value) ToProperty() (property.Value, error) {
	if v == nil {
		return nil, fmt.Errorf("descriptor: nil value")
	}
	switch v.Kind {
	case "scalar":
		return v.toScalar()
	case "array":
		return v.toArray()
	case "jagged":
		return v.toJagged()
	case "indexmap":
		return v.toIndexmap()
	default:
		return nil, fmt.Errorf("descriptor: unknown value kind %q", v.Kind)
	}
}

func (v *Value) toScalar() (property.Value, error) {
	switch v.DataType {
	case "F64":
		return property.F64Scalar(v.F64), nil
	case "I64":
		return property.I64Scalar(v.I64), nil
	case "Bool":
		return property.BoolScalar(v.Bool), nil
	case "Str":
		return property.StrScalar(v.Str), nil
	default:
		return nil, fmt.Errorf("descriptor: unknown scalar dataType %q", v.DataType)
	}
}

func (v *Value) toArray() (property.Value, error) {
	switch v.DataType {
	case "F64":
		return property.NewF64Array(v.F64Cols), nil
	case "I64":
		return property.NewI64Array(v.I64Cols), nil
	case "Bool":
		return property.NewBoolArray(v.BoolCols), nil
	case "Str":
		return property.NewStrArray(v.StrCols), nil
	default:
		return nil, fmt.Errorf("descriptor: unknown array dataType %q", v.DataType)
	}
}

func (v *Value) toJagged() (property.Value, error) {
	switch v.DataType {
	case "F64":
		return property.NewF64Jagged(v.F64Cols), nil
	case "I64":
		return property.NewI64Jagged(v.I64Cols), nil
	case "Bool":
		return property.NewBoolJagged(v.BoolCols), nil
	case "Str":
		return property.NewStrJagged(v.StrCols), nil
	default:
		return nil, fmt.Errorf("descriptor: unknown jagged dataType %q", v.DataType)
	}
}

func (v *Value) toIndexmap() (property.Value, error) {
	entries := make(map[string]property.Value, len(v.Entries))
	for key, child := range v.Entries {
		decoded, err := child.ToProperty()
		if err != nil {
			return nil, fmt.Errorf("descriptor: entry %q: %w", key, err)
		}
		entries[key] = decoded
	}
	return property.NewIndexmap(entries), nil
}
