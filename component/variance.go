package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Variance computes the per-column variance of its data argument,
// collapsing every column to a single row. It is the data-touching half
// of DpVariance's expansion (see dpvariance.go), mirroring Mean's role
// in DpMean's.
type Variance struct {
	Data string `json:"data"`
}

// Kind implements Variant.
func (Variance) Kind() Kind { return KindVariance }

// PropagateProperty implements PropertyPropagator.
func (v Variance) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := v.Data
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
		DataType:   property.F64,
		DatasetID:  a.DatasetID,
		GroupID:    a.GroupID,
		IsPublic:   false,
	}
	return diag.NoWarnings[property.ValueProperties](out), nil
}
