package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Clamp narrows its data argument's bounds to [Lower, Upper] per column.
// Mean, Impute, and Partition's declared pre-conditions all presuppose an
// upstream component establishing bounds; Clamp is that component.
type Clamp struct {
	Data  string    `json:"data"`
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// Kind implements Variant.
func (Clamp) Kind() Kind { return KindClamp }

// PropagateProperty implements PropertyPropagator.
func (c Clamp) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := c.Data
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
	if a.NumColumns == nil || len(c.Lower) != *a.NumColumns || len(c.Upper) != *a.NumColumns {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}

	out := *a
	out.LowerF64 = c.Lower
	out.UpperF64 = c.Upper
	return diag.NoWarnings[property.ValueProperties](out), nil
}
