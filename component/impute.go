package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Impute fills nulls in its data argument, leaving every other property
// unchanged. It is valid only when lower, upper, and num_records are
// already defined on data: imputation needs bounds and a row count to
// fabricate values consistently with the rest of the column.
type Impute struct {
	Data string `json:"data"`
}

// Kind implements Variant.
func (Impute) Kind() Kind { return KindImpute }

// PropagateProperty implements PropertyPropagator.
func (im Impute) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := im.Data
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
	if a.LowerF64 == nil || a.UpperF64 == nil || a.NumRecords == nil {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}

	out := *a
	out.Nullable = false
	return diag.NoWarnings[property.ValueProperties](out), nil
}
