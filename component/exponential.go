package component

import (
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// ExponentialMechanism selects a single category from its data argument's
// candidate set weighted by a quality score, consuming PrivacyUsage.Epsilon.
// Unlike Laplace/Gaussian it has no closed-form accuracy conversion (the
// bound depends on the quality function's sensitivity and the score gap
// between candidates, which this module does not model), so it does not
// implement AccuracyConverter.
type ExponentialMechanism struct {
	Data         string          `json:"data"`
	PrivacyUsage []privacy.Usage `json:"privacyUsage"`
}

// Kind implements Variant.
func (ExponentialMechanism) Kind() Kind { return KindExponentialMechanism }

// DeclaredUsage implements UsageDeclarer.
func (e ExponentialMechanism) DeclaredUsage() []privacy.Usage { return e.PrivacyUsage }

// Summarize implements Summarizer, contributing one report row per output
// column noised by this mechanism.
func (e ExponentialMechanism) Summarize(nodeID descriptor.NodeID, c Variant, publicArgs map[string]property.Value, props NodeProperties, release property.Value, varNames []string) ([]SummaryEntry, error) {
	entries := make([]SummaryEntry, len(varNames))
	for i, name := range varNames {
		entries[i] = SummaryEntry{NodeID: nodeID, VariableName: name, Mechanism: "Exponential"}
	}
	return entries, nil
}

// PropagateProperty implements PropertyPropagator. The output is a single
// selected category, so NumRecords collapses to one row.
func (e ExponentialMechanism) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := e.Data
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
	out.Releasable = true
	return diag.NoWarnings[property.ValueProperties](out), nil
}
