package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Mean computes the per-column arithmetic mean of its data argument,
// collapsing every column to a single row. It is the data-touching half of
// DpMean's expansion (see dpmean.go).
type Mean struct {
	Data string `json:"data"` // argument name supplying the array to average, conventionally "data"
}

// Kind implements Variant.
func (Mean) Kind() Kind { return KindMean }

// PropagateProperty implements PropertyPropagator.
func (m Mean) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := m.Data
	if argName == "" {
		argName = "data"
	}

	data, ok := ctx.ArgProperties[argName]
	if !ok {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}

	a, err := property.Array(data)
	if err != nil {
		return diag.Warnable[property.ValueProperties]{}, err
	}

	one := 1
	out := property.ArrayProperties{
		NumRecords: &one,
		NumColumns: a.NumColumns,
		Nullable:   false,
		Releasable: false,
		LowerF64:   a.LowerF64,
		UpperF64:   a.UpperF64,
		DataType:   property.F64,
		DatasetID:  a.DatasetID,
		GroupID:    a.GroupID,
		IsPublic:   false,
	}
	return diag.NoWarnings[property.ValueProperties](out), nil
}
