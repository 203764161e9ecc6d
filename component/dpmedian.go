package component

import (
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// DpMedian is sugar for DpQuantile at alpha=0.5: unlike DpMean, which
// splits into two nodes, it rewrites itself in place, forwarding its
// interpolation, privacy usage, and mechanism choice unchanged.
type DpMedian struct {
	Data          string          `json:"data"`
	Interpolation string          `json:"interpolation,omitzero"`
	PrivacyUsage  []privacy.Usage `json:"privacyUsage"`
	Mechanism     string          `json:"mechanism,omitzero"`
}

// Kind implements Variant.
func (DpMedian) Kind() Kind { return KindDpMedian }

// PropagateProperty implements PropertyPropagator by deferring to
// expansion.
func (DpMedian) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	return diag.Warnable[property.ValueProperties]{}, errAbstract
}

// ExpandComponent implements Expandable. It replaces this node's variant
// with an equivalent DpQuantile{Alpha: 0.5} occupying the same node id
// and arguments; no new node id is allocated.
func (d DpMedian) ExpandComponent(ctx ExpansionContext) (ComponentExpansion, error) {
	dataArg, ok := ctx.Arguments["data"]
	if !ok {
		return ComponentExpansion{}, ErrInvalidArgument
	}

	quantileVariant, err := Encode(DpQuantile{
		Data:          "data",
		Alpha:         0.5,
		Interpolation: d.Interpolation,
		PrivacyUsage:  d.PrivacyUsage,
		Mechanism:     d.Mechanism,
	})
	if err != nil {
		return ComponentExpansion{}, err
	}

	nodes := map[descriptor.NodeID]descriptor.Component{
		ctx.NodeID: {
			Arguments: map[string]descriptor.NodeID{"data": dataArg},
			Variant:   quantileVariant,
		},
	}

	return ComponentExpansion{
		Nodes:     nodes,
		NewMaxID:  ctx.MaxID,
		Traversal: []descriptor.NodeID{ctx.NodeID},
	}, nil
}
