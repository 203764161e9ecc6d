package component

import (
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Resize changes its data argument's declared record count, e.g. to
// reconcile a public estimate of dataset size with a downstream mechanism
// that needs a known sensitivity. It otherwise passes properties through.
type Resize struct {
	Data       string `json:"data"`
	NumRecords int    `json:"numRecords"`
}

// Kind implements Variant.
func (Resize) Kind() Kind { return KindResize }

// PropagateProperty implements PropertyPropagator.
func (r Resize) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := r.Data
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

	out := *a
	n := r.NumRecords
	out.NumRecords = &n
	return diag.NoWarnings[property.ValueProperties](out), nil
}
