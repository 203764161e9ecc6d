package component

import (
	"fmt"

	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// DpQuantile computes a differentially private Alpha-quantile: like
// DpMean it expands into a data-touching node (Quantile) feeding a
// mechanism node, but the mechanism is chosen by name since quantile
// release supports more than one (Laplace, Gaussian, Exponential).
type DpQuantile struct {
	Data          string          `json:"data"`
	Alpha         float64         `json:"alpha"`
	Interpolation string          `json:"interpolation,omitzero"`
	PrivacyUsage  []privacy.Usage `json:"privacyUsage"`
	Mechanism     string          `json:"mechanism,omitzero"` // "Laplace" (default), "Gaussian", or "Exponential"
}

// Kind implements Variant.
func (DpQuantile) Kind() Kind { return KindDpQuantile }

// PropagateProperty implements PropertyPropagator by deferring to
// expansion.
func (DpQuantile) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	return diag.Warnable[property.ValueProperties]{}, errAbstract
}

// ExpandComponent implements Expandable, mirroring DpMean's shape: a new
// Quantile node computes the raw quantile, and this node is rewritten in
// place into the selected mechanism over it.
func (d DpQuantile) ExpandComponent(ctx ExpansionContext) (ComponentExpansion, error) {
	dataArg, ok := ctx.Arguments["data"]
	if !ok {
		return ComponentExpansion{}, ErrInvalidArgument
	}

	quantileID := ctx.MaxID + 1

	quantileVariant, err := Encode(Quantile{Data: "data", Alpha: d.Alpha, Interpolation: d.Interpolation})
	if err != nil {
		return ComponentExpansion{}, err
	}

	mechanism, err := d.mechanismVariant()
	if err != nil {
		return ComponentExpansion{}, err
	}

	nodes := map[descriptor.NodeID]descriptor.Component{
		quantileID: {
			Arguments: map[string]descriptor.NodeID{"data": dataArg},
			Omit:      true,
			Variant:   quantileVariant,
		},
		ctx.NodeID: {
			Arguments: map[string]descriptor.NodeID{"data": quantileID},
			Variant:   mechanism,
		},
	}

	return ComponentExpansion{
		Nodes:     nodes,
		NewMaxID:  quantileID,
		Traversal: []descriptor.NodeID{quantileID},
	}, nil
}

func (d DpQuantile) mechanismVariant() (descriptor.Variant, error) {
	switch d.Mechanism {
	case "", "Laplace":
		return Encode(LaplaceMechanism{Data: "data", PrivacyUsage: d.PrivacyUsage})
	case "Gaussian":
		return Encode(GaussianMechanism{Data: "data", PrivacyUsage: d.PrivacyUsage})
	case "Exponential":
		return Encode(ExponentialMechanism{Data: "data", PrivacyUsage: d.PrivacyUsage})
	default:
		return descriptor.Variant{}, fmt.Errorf("%w: unknown mechanism %q", ErrInvalidArgument, d.Mechanism)
	}
}
