package component

import (
	"math"

	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// LaplaceMechanism adds Laplace-distributed noise scaled to its data
// argument's sensitivity, consuming PrivacyUsage.Epsilon. Delta is expected
// to be zero for a pure-Laplace release.
type LaplaceMechanism struct {
	Data         string          `json:"data"`
	PrivacyUsage []privacy.Usage `json:"privacyUsage"`
}

// Kind implements Variant.
func (LaplaceMechanism) Kind() Kind { return KindLaplaceMechanism }

// PropagateProperty implements PropertyPropagator. Noising marks its output
// Releasable (spec invariant: releasable iff every path to raw data passes
// through a DP mechanism) without otherwise reshaping the argument.
func (l LaplaceMechanism) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := l.Data
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
func (l LaplaceMechanism) DeclaredUsage() []privacy.Usage { return l.PrivacyUsage }

// Summarize implements Summarizer, contributing one report row per output
// column noised by this mechanism.
func (l LaplaceMechanism) Summarize(nodeID descriptor.NodeID, c Variant, publicArgs map[string]property.Value, props NodeProperties, release property.Value, varNames []string) ([]SummaryEntry, error) {
	entries := make([]SummaryEntry, len(varNames))
	for i, name := range varNames {
		entries[i] = SummaryEntry{NodeID: nodeID, VariableName: name, Mechanism: "Laplace"}
	}
	return entries, nil
}

// sensitivity estimates the L1 sensitivity of a single-column mean given
// its bounds and record count: (upper-lower)/numRecords.
func sensitivity(props NodeProperties, argName string) (float64, error) {
	a, err := property.Array(props[argName])
	if err != nil {
		return 0, err
	}
	if a.LowerF64 == nil || a.UpperF64 == nil || len(a.LowerF64) == 0 {
		return 0, property.MissingField("lower/upper")
	}
	if a.NumRecords == nil || *a.NumRecords == 0 {
		return 0, property.MissingField("num_records")
	}
	return (a.UpperF64[0] - a.LowerF64[0]) / float64(*a.NumRecords), nil
}

// AccuracyToPrivacyUsage implements AccuracyConverter using the classic
// Laplace accuracy bound: Pr[|noise| > acc] = alpha when
// epsilon = sensitivity * ln(1/alpha) / acc.
func (l LaplaceMechanism) AccuracyToPrivacyUsage(def descriptor.PrivacyDefinition, props NodeProperties, acc Accuracy) (*privacy.Usage, error) {
	argName := l.Data
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
	eps := sens * math.Log(1/acc.Alpha) / acc.Value
	return &privacy.Usage{Epsilon: eps, Delta: 0}, nil
}

// PrivacyUsageToAccuracy is the inverse of AccuracyToPrivacyUsage.
func (l LaplaceMechanism) PrivacyUsageToAccuracy(def descriptor.PrivacyDefinition, props NodeProperties, alpha float64) (*Accuracy, error) {
	argName := l.Data
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
	if len(l.PrivacyUsage) == 0 || l.PrivacyUsage[0].Epsilon <= 0 {
		return nil, privacy.ErrUsageUndefined
	}
	acc := sens * math.Log(1/alpha) / l.PrivacyUsage[0].Epsilon
	return &Accuracy{Value: acc, Alpha: alpha}, nil
}
