package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Quantile computes the Alpha-quantile of its data argument per column,
// collapsing every column to a single row. It is DpQuantile's non-DP
// sibling, inserted by DpQuantile's expansion (see dpquantile.go).
type Quantile struct {
	Data          string  `json:"data"`
	Alpha         float64 `json:"alpha"`
	Interpolation string  `json:"interpolation,omitzero"`
}

// Kind implements Variant.
func (Quantile) Kind() Kind { return KindQuantile }

// PropagateProperty implements PropertyPropagator.
func (q Quantile) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := q.Data
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
	out := *a
	out.NumRecords = &one
	out.Releasable = false
	return diag.NoWarnings[property.ValueProperties](out), nil
}
