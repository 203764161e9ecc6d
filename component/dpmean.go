package component

import (
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// DpMean computes a differentially private mean: it expands into a Mean
// feeding a LaplaceMechanism, splitting the non-private computation from
// the noising step so the engine can reason about each separately.
type DpMean struct {
	Data         string          `json:"data"`
	PrivacyUsage []privacy.Usage `json:"privacyUsage"`
}

// Kind implements Variant.
func (DpMean) Kind() Kind { return KindDpMean }

// PropagateProperty implements PropertyPropagator by deferring to
// expansion: a composite has no properties of its own until the engine
// replaces it with its expanded subgraph.
func (DpMean) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	return diag.Warnable[property.ValueProperties]{}, errAbstract
}

// ExpandComponent implements Expandable. It inserts a new Mean node at
// MaxID+1 consuming this node's data argument, then rewrites this node
// in place into a LaplaceMechanism over the new Mean node, carrying the
// original privacy usage forward.
func (d DpMean) ExpandComponent(ctx ExpansionContext) (ComponentExpansion, error) {
	dataArg, ok := ctx.Arguments["data"]
	if !ok {
		return ComponentExpansion{}, ErrInvalidArgument
	}

	meanID := ctx.MaxID + 1

	meanVariant, err := Encode(Mean{Data: "data"})
	if err != nil {
		return ComponentExpansion{}, err
	}
	laplaceVariant, err := Encode(LaplaceMechanism{Data: "data", PrivacyUsage: d.PrivacyUsage})
	if err != nil {
		return ComponentExpansion{}, err
	}

	nodes := map[descriptor.NodeID]descriptor.Component{
		meanID: {
			Arguments: map[string]descriptor.NodeID{"data": dataArg},
			Omit:      true,
			Variant:   meanVariant,
		},
		ctx.NodeID: {
			Arguments: map[string]descriptor.NodeID{"data": meanID},
			Variant:   laplaceVariant,
		},
	}

	return ComponentExpansion{
		Nodes:     nodes,
		NewMaxID:  meanID,
		Traversal: []descriptor.NodeID{meanID},
	}, nil
}
