package component

import (
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// DpVariance computes a differentially private variance, following the
// same mean-then-noise shape as DpMean: a Variance node feeds a
// LaplaceMechanism carrying the composite's declared privacy usage.
type DpVariance struct {
	Data         string          `json:"data"`
	PrivacyUsage []privacy.Usage `json:"privacyUsage"`
}

// Kind implements Variant.
func (DpVariance) Kind() Kind { return KindDpVariance }

// PropagateProperty implements PropertyPropagator by deferring to
// expansion.
func (DpVariance) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	return diag.Warnable[property.ValueProperties]{}, errAbstract
}

// ExpandComponent implements Expandable, inserting a Variance node at
// MaxID+1 and rewriting this node in place into a LaplaceMechanism over
// it, exactly as DpMean rewrites into Mean+LaplaceMechanism.
func (d DpVariance) ExpandComponent(ctx ExpansionContext) (ComponentExpansion, error) {
	dataArg, ok := ctx.Arguments["data"]
	if !ok {
		return ComponentExpansion{}, ErrInvalidArgument
	}

	varianceID := ctx.MaxID + 1

	varianceVariant, err := Encode(Variance{Data: "data"})
	if err != nil {
		return ComponentExpansion{}, err
	}
	laplaceVariant, err := Encode(LaplaceMechanism{Data: "data", PrivacyUsage: d.PrivacyUsage})
	if err != nil {
		return ComponentExpansion{}, err
	}

	nodes := map[descriptor.NodeID]descriptor.Component{
		varianceID: {
			Arguments: map[string]descriptor.NodeID{"data": dataArg},
			Omit:      true,
			Variant:   varianceVariant,
		},
		ctx.NodeID: {
			Arguments: map[string]descriptor.NodeID{"data": varianceID},
			Variant:   laplaceVariant,
		},
	}

	return ComponentExpansion{
		Nodes:     nodes,
		NewMaxID:  varianceID,
		Traversal: []descriptor.NodeID{varianceID},
	}, nil
}
