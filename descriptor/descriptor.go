// Package descriptor holds the wire-level representation of a dpval
// analysis: the computation graph, privacy definition, and release, as
// decoded from an analysis request before any validation or expansion.
package descriptor

import (
	"encoding/json"

	"github.com/privaxis/dpval/privacy"
)

// NodeID identifies a node in the computation graph.
type NodeID uint32

// NeighboringMetric identifies the neighboring-dataset relation a privacy
// definition's group size is measured against.
type NeighboringMetric uint8

const (
	Substitute NeighboringMetric = iota
	AddRemove
)

// String returns the canonical name of the metric.
func (m NeighboringMetric) String() string {
	switch m {
	case Substitute:
		return "Substitute"
	case AddRemove:
		return "AddRemove"
	default:
		return "unknown"
	}
}

// PrivacyDefinition carries the neighboring-dataset relation an analysis is
// protecting against.
type PrivacyDefinition struct {
	GroupSize       int
	Neighboring     NeighboringMetric
	ProtectAddition bool
	ProtectRemoval  bool
}

// Variant is the raw, not-yet-interpreted component payload: a kind tag
// plus its parameters as still-encoded JSON. The component package parses
// Params into a concrete runtime Variant once the Kind is known.
type Variant struct {
	Kind   string
	Params json.RawMessage
}

// Component is one node of the computation graph. Every component variant
// shares these fields regardless of what Variant.Kind it carries.
type Component struct {
	Arguments  map[string]NodeID
	Omit       bool
	Submission int
	Variant    Variant
}

// Analysis is a computation graph paired with the privacy definition it
// must respect.
type Analysis struct {
	Graph   map[NodeID]Component
	Privacy PrivacyDefinition
}

// ReleaseNode is one node's materialized outcome: its value (if any),
// privacy usage actually spent producing it, and whether the value may be
// read during static analysis.
type ReleaseNode struct {
	Value  *Value
	Usages map[string]privacy.Usage
	Public bool
}

// Release maps node id to its ReleaseNode. Only nodes marked Public may
// have Value read during static analysis (spec security invariant).
type Release map[NodeID]ReleaseNode
