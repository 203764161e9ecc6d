// Package component implements the closed set of dpval component variants:
// primitives that propagate properties directly, and composites that expand
// into a subgraph of simpler components.
package component

import (
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// Kind identifies which component variant a Variant value implements.
type Kind uint8

const (
	KindMean Kind = iota
	KindImpute
	KindClamp
	KindResize
	KindLaplaceMechanism
	KindGaussianMechanism
	KindExponentialMechanism
	KindPartition
	KindQuantile
	KindDpMean
	KindDpMedian
	KindDpQuantile
	KindDpVariance
	KindVariance
)

// String returns the wire name of the kind, matching descriptor.Variant.Kind.
func (k Kind) String() string {
	switch k {
	case KindMean:
		return "Mean"
	case KindImpute:
		return "Impute"
	case KindClamp:
		return "Clamp"
	case KindResize:
		return "Resize"
	case KindLaplaceMechanism:
		return "LaplaceMechanism"
	case KindGaussianMechanism:
		return "GaussianMechanism"
	case KindExponentialMechanism:
		return "ExponentialMechanism"
	case KindPartition:
		return "Partition"
	case KindQuantile:
		return "Quantile"
	case KindDpMean:
		return "DpMean"
	case KindDpMedian:
		return "DpMedian"
	case KindDpQuantile:
		return "DpQuantile"
	case KindDpVariance:
		return "DpVariance"
	case KindVariance:
		return "Variance"
	default:
		return "unknown"
	}
}

// Variant is the closed interface every component implementation satisfies.
// Capability interfaces below (PropertyPropagator, Expandable, Namer,
// AccuracyConverter, Summarizer) are implemented selectively: a primitive
// implements PropertyPropagator but not Expandable; a composite implements
// Expandable and returns errAbstract from PropagateProperty.
type Variant interface {
	Kind() Kind
}

// NodeProperties maps an argument name to the static properties already
// computed for the node supplying it.
type NodeProperties map[string]property.ValueProperties

// PropagationContext carries everything PropagateProperty needs: the
// analysis-wide privacy definition, any public argument values available
// for inference, and the already-known properties of this node's arguments.
type PropagationContext struct {
	PrivacyDef    descriptor.PrivacyDefinition
	PublicArgs    map[string]property.Value
	ArgProperties NodeProperties
	NodeID        descriptor.NodeID
}

// PropertyPropagator is implemented by variants that can compute their own
// output properties directly from their arguments' properties.
type PropertyPropagator interface {
	PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error)
}

// ExpansionContext carries the state an Expandable variant needs to rewrite
// itself into a subgraph: its own node id, the arguments it was given, and
// the highest node id allocated so far in the graph.
type ExpansionContext struct {
	NodeID    descriptor.NodeID
	Arguments map[string]descriptor.NodeID
	MaxID     descriptor.NodeID
}

// ComponentExpansion is the result of expanding a composite: the new nodes
// to splice into the graph (keyed by the id they should occupy, which may
// reuse NodeID itself), the new high-water mark for node ids, and the
// traversal order the engine should revisit to keep propagating.
type ComponentExpansion struct {
	Nodes     map[descriptor.NodeID]descriptor.Component
	NewMaxID  descriptor.NodeID
	Traversal []descriptor.NodeID
}

// Expandable is implemented by composite variants: components whose
// PropagateProperty signals errAbstract until the engine expands them into
// an equivalent subgraph of simpler components.
type Expandable interface {
	ExpandComponent(ctx ExpansionContext) (ComponentExpansion, error)
}

// Namer is implemented by variants whose output columns need user-facing
// names derived from their arguments (e.g. forwarding a parent dataframe's
// column names, or naming partition children by category).
type Namer interface {
	GetNames(publicArgs map[string]property.Value, argNames map[string][]string, release *property.Value) ([]string, error)
}

// UsageDeclarer is implemented by mechanism primitives that carry their
// own privacy usage directly (as opposed to a composite, whose usage only
// becomes visible on its expanded mechanism node).
type UsageDeclarer interface {
	DeclaredUsage() []privacy.Usage
}

// Accuracy is a (value, alpha) accuracy bound: the statistic is within
// Value of the true answer with probability at least 1-Alpha.
type Accuracy struct {
	Value float64
	Alpha float64
}

// AccuracyConverter is implemented by mechanisms with a closed-form
// relationship between privacy usage and accuracy (e.g. Laplace, Gaussian).
type AccuracyConverter interface {
	AccuracyToPrivacyUsage(def descriptor.PrivacyDefinition, props NodeProperties, acc Accuracy) (*privacy.Usage, error)
	PrivacyUsageToAccuracy(def descriptor.PrivacyDefinition, props NodeProperties, alpha float64) (*Accuracy, error)
}

// Summarizer is implemented by variants that contribute entries to the
// human-readable release report.
type Summarizer interface {
	Summarize(nodeID descriptor.NodeID, c Variant, publicArgs map[string]property.Value, props NodeProperties, release property.Value, varNames []string) ([]SummaryEntry, error)
}

// SummaryEntry is one row a Summarizer contributes to the report (see the
// report package for the wire encoding built from these).
type SummaryEntry struct {
	NodeID      descriptor.NodeID
	VariableName string
	Statistic   string
	Mechanism   string
}
