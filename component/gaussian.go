package component

import (
	"math"

	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// GaussianMechanism adds Gaussian-distributed noise scaled to its data
// argument's sensitivity, consuming both PrivacyUsage.Epsilon and Delta.
type GaussianMechanism struct {
	Data         string          `json:"data"`
	PrivacyUsage []privacy.Usage `json:"privacyUsage"`
}

// Kind implements Variant.
func (GaussianMechanism) Kind() Kind { return KindGaussianMechanism }

// PropagateProperty implements PropertyPropagator.
func (g GaussianMechanism) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := g.Data
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
	out.Releasable = true
	return diag.NoWarnings[property.ValueProperties](out), nil
}

// DeclaredUsage implements UsageDeclarer.
func (g GaussianMechanism) DeclaredUsage() []privacy.Usage { return g.PrivacyUsage }

// Summarize implements Summarizer, contributing one report row per output
// column noised by this mechanism.
func (g GaussianMechanism) Summarize(nodeID descriptor.NodeID, c Variant, publicArgs map[string]property.Value, props NodeProperties, release property.Value, varNames []string) ([]SummaryEntry, error) {
	entries := make([]SummaryEntry, len(varNames))
	for i, name := range varNames {
		entries[i] = SummaryEntry{NodeID: nodeID, VariableName: name, Mechanism: "Gaussian"}
	}
	return entries, nil
}

// AccuracyToPrivacyUsage implements AccuracyConverter using the analytic
// Gaussian mechanism bound: sigma = sensitivity * sqrt(2*ln(1.25/delta))/epsilon,
// with accuracy taken as the z-score-scaled tail bound at confidence 1-alpha.
func (g GaussianMechanism) AccuracyToPrivacyUsage(def descriptor.PrivacyDefinition, props NodeProperties, acc Accuracy) (*privacy.Usage, error) {
	argName := g.Data
	if argName == "" {
		argName = "data"
	}
	sens, err := sensitivity(props, argName)
	if err != nil {
		return nil, err
	}
	if acc.Value <= 0 || acc.Alpha <= 0 || acc.Alpha >= 1 {
		return nil, ErrInvalidArgument
	}
	if len(g.PrivacyUsage) == 0 || g.PrivacyUsage[0].Delta <= 0 {
		return nil, privacy.ErrUsageUndefined
	}
	delta := g.PrivacyUsage[0].Delta
	z := math.Sqrt(2 * math.Log(1/acc.Alpha))
	sigma := acc.Value / z
	eps := sens * math.Sqrt(2*math.Log(1.25/delta)) / sigma
	return &privacy.Usage{Epsilon: eps, Delta: delta}, nil
}

// PrivacyUsageToAccuracy is the inverse of AccuracyToPrivacyUsage.
func (g GaussianMechanism) PrivacyUsageToAccuracy(def descriptor.PrivacyDefinition, props NodeProperties, alpha float64) (*Accuracy, error) {
	argName := g.Data
	if argName == "" {
		argName = "data"
	}
	sens, err := sensitivity(props, argName)
	if err != nil {
		return nil, err
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, ErrInvalidArgument
	}
	if len(g.PrivacyUsage) == 0 || g.PrivacyUsage[0].Epsilon <= 0 || g.PrivacyUsage[0].Delta <= 0 {
		return nil, privacy.ErrUsageUndefined
	}
	eps, delta := g.PrivacyUsage[0].Epsilon, g.PrivacyUsage[0].Delta
	sigma := sens * math.Sqrt(2*math.Log(1.25/delta)) / eps
	z := math.Sqrt(2 * math.Log(1/alpha))
	return &Accuracy{Value: sigma * z, Alpha: alpha}, nil
}
