package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/internal/trace"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

// DefaultExpansionDepthLimit bounds how many times a single node id may be
// re-expanded during one propagation pass before the engine gives up and
// reports ErrExpansionLoop.
const DefaultExpansionDepthLimit = 64

// Engine runs the graph-expansion-and-property-propagation algorithm over
// one Analysis+Release pair. Engine holds no long-lived state across
// operations: each public method builds its working state from scratch and
// returns fresh values, so independent calls never interfere even when run
// concurrently (spec ownership rule — see [Engine] is itself immutable
// after construction).
type Engine struct {
	expansionDepthLimit int
	issueLimit          int
	logger              *slog.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithExpansionDepthLimit overrides DefaultExpansionDepthLimit.
func WithExpansionDepthLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.expansionDepthLimit = limit
	}
}

// WithIssueLimit caps the number of diagnostics a pass collects; see
// diag.NewCollector. Zero (the default) means unlimited.
func WithIssueLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.issueLimit = limit
	}
}

// WithLogger enables debug logging for engine operations. Operation
// boundaries (expand, propagate) are logged at Debug level via
// internal/trace; a nil logger (the default) disables logging entirely at
// near-zero cost.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New builds an Engine with the given options applied over the defaults.
func New(opts ...EngineOption) *Engine {
	e := &Engine{expansionDepthLimit: DefaultExpansionDepthLimit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GraphProperties is the result of a property-propagation pass: the
// properties inferred for each node reached, plus accumulated non-fatal
// warnings.
type GraphProperties struct {
	Properties map[descriptor.NodeID]property.ValueProperties
	Warnings   diag.Result
}

// ValidateAnalysis checks that analysis is a DAG and that every
// component's static pre-conditions hold, given release. It returns a
// diag.Result carrying any structural or property errors found; a non-nil
// error indicates an internal failure distinct from a validation failure
// (mirrors the (output, diag.Result, error) convention the rest of this
// module follows).
func (e *Engine) ValidateAnalysis(ctx context.Context, analysis descriptor.Analysis, release descriptor.Release) (diag.Result, error) {
	gp, err := e.PropagateProperties(ctx, analysis, release)
	if err != nil {
		return diag.Result{}, err
	}
	return gp.Warnings, nil
}

// GetProperties runs a full propagation pass and returns the properties
// and warnings restricted to nodeIDs (all nodes if nodeIDs is empty).
func (e *Engine) GetProperties(ctx context.Context, analysis descriptor.Analysis, release descriptor.Release, nodeIDs []descriptor.NodeID) (GraphProperties, error) {
	gp, err := e.PropagateProperties(ctx, analysis, release)
	if err != nil {
		return GraphProperties{}, err
	}
	if len(nodeIDs) == 0 {
		return gp, nil
	}

	filtered := make(map[descriptor.NodeID]property.ValueProperties, len(nodeIDs))
	for _, id := range nodeIDs {
		if p, ok := gp.Properties[id]; ok {
			filtered[id] = p
		}
	}
	return GraphProperties{Properties: filtered, Warnings: gp.Warnings}, nil
}

// RequestExpandComponent is the input to ExpandComponent: one node's
// component and the node-id bookkeeping the expansion needs.
type RequestExpandComponent struct {
	NodeID    descriptor.NodeID
	Component descriptor.Component
	MaxID     descriptor.NodeID
}

// ExpandComponent expands a single composite component in isolation,
// without running a full propagation pass. It fails if the component's
// variant does not implement component.Expandable.
func (e *Engine) ExpandComponent(ctx context.Context, req RequestExpandComponent) (component.ComponentExpansion, error) {
	op := trace.Begin(ctx, e.logger, "dpval.graph.expand_component", slog.Uint64("node_id", uint64(req.NodeID)))

	v, err := component.Decode(req.Component.Variant)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInternal, err)
		op.End(err)
		return component.ComponentExpansion{}, err
	}
	expandable, ok := v.(component.Expandable)
	if !ok {
		err := fmt.Errorf("%w: component %s is not expandable", ErrInternal, req.Component.Variant.Kind)
		op.End(err)
		return component.ComponentExpansion{}, err
	}
	exp, err := expandable.ExpandComponent(component.ExpansionContext{
		NodeID:    req.NodeID,
		Arguments: req.Component.Arguments,
		MaxID:     req.MaxID,
	})
	op.End(err)
	return exp, err
}

// ExpandAnalysis runs the expansion fixed point over analysis and returns
// the resulting primitive-and-composite-mixed graph (every composite
// expanded at least until a depth limit or a fixed point is reached) along
// with the final high-water node id. Callers that need to walk the
// post-expansion graph directly (e.g. the report package) use this instead
// of re-deriving it from PropagateProperties.
func (e *Engine) ExpandAnalysis(ctx context.Context, analysis descriptor.Analysis) (map[descriptor.NodeID]descriptor.Component, descriptor.NodeID, error) {
	return e.expandFixedPoint(ctx, analysis)
}

// ComputePrivacyUsage sums the privacy usage declared by every mechanism
// node in analysis (after expanding composites so mechanism nodes are
// visible), preferring a node's actual recorded usage from release when
// present. If budget is non-nil, the total is checked against it; in
// strict mode exceeding the budget is returned as an error.
func (e *Engine) ComputePrivacyUsage(ctx context.Context, analysis descriptor.Analysis, release descriptor.Release, budget *privacy.Usage, strict bool) (privacy.Usage, bool, error) {
	expanded, _, err := e.expandFixedPoint(ctx, analysis)
	if err != nil {
		return privacy.Usage{}, false, err
	}

	declared := make(map[descriptor.NodeID]privacy.Usage)
	for id, comp := range expanded {
		v, err := component.Decode(comp.Variant)
		if err != nil {
			continue
		}
		ud, ok := v.(component.UsageDeclarer)
		if !ok {
			continue
		}
		u, err := sumUsages(ud.DeclaredUsage())
		if err != nil {
			return privacy.Usage{}, false, err
		}
		declared[id] = u
	}

	actual := make(map[descriptor.NodeID]privacy.Usage)
	for id, rn := range release {
		if u, ok := sumUsageMap(rn.Usages); ok {
			actual[id] = u
		}
	}

	total, err := privacy.ComputeGraphUsage(declared, actual)
	if err != nil {
		return privacy.Usage{}, false, err
	}

	exceeded, err := privacy.Check(total, budget, strict)
	return total, exceeded, err
}

func sumUsages(usages []privacy.Usage) (privacy.Usage, error) {
	total := privacy.Usage{}
	var err error
	for _, u := range usages {
		total, err = privacy.Add(total, u)
		if err != nil {
			return privacy.Usage{}, err
		}
	}
	return total, nil
}

func sumUsageMap(usages map[string]privacy.Usage) (privacy.Usage, bool) {
	if len(usages) == 0 {
		return privacy.Usage{}, false
	}
	total := privacy.Usage{}
	for _, u := range usages {
		total, _ = privacy.Add(total, u)
	}
	return total, true
}
