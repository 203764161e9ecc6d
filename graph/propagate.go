package graph

import (
	"context"
	"log/slog"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/internal/trace"
	"github.com/privaxis/dpval/property"
)

// PropagateProperties runs the full graph-expansion-and-property-
// propagation pass: it expands every composite to a fixed point, then
// walks the resulting primitive-only graph in topological order inferring
// each node's output properties.
//
// Property-propagation failures (missing/mismatched arguments, a type
// projection failure) are collected as diagnostics tied to the offending
// node rather than aborting the pass; only structural failures (cycles,
// a composite that fails to decode or expand, an expansion loop) return a
// non-nil error, per spec §4.3's
// "warnings accumulate but do not abort traversal unless hard errors
// occur".
func (e *Engine) PropagateProperties(ctx context.Context, analysis descriptor.Analysis, release descriptor.Release) (GraphProperties, error) {
	op := trace.Begin(ctx, e.logger, "dpval.graph.propagate", slog.Int("nodes", len(analysis.Graph)))

	g, _, err := e.expandFixedPoint(ctx, analysis)
	if err != nil {
		op.End(err)
		return GraphProperties{}, err
	}

	collector := diag.NewCollector(e.issueLimit)
	props := make(map[descriptor.NodeID]property.ValueProperties, len(g))

	// resolveProps materializes a node's properties from its already-public
	// release value when one exists (spec invariant: inference overrides
	// propagation once a concrete value exists), falling back to whatever
	// propagation has already computed for it. This is also how a root
	// dataset node — one with a Public release value but no entry of its
	// own in the component graph — gets its initial properties.
	resolveProps := func(id descriptor.NodeID) (property.ValueProperties, bool) {
		if rn, ok := release[id]; ok && rn.Public && rn.Value != nil {
			if val, err := rn.Value.ToProperty(); err == nil {
				if inferred, err := property.Infer(val); err == nil {
					return inferred, true
				}
			}
		}
		p, ok := props[id]
		return p, ok
	}

	order := topologicalOrder(g)
	for _, id := range order {
		comp := g[id]
		v, err := component.Decode(comp.Variant)
		if err != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_INTERNAL, err.Error()).WithNode(uint32(id)).Build())
			continue
		}

		propagator, ok := v.(component.PropertyPropagator)
		if !ok {
			continue
		}

		argProps := make(component.NodeProperties, len(comp.Arguments))
		missing := false
		for name, argID := range comp.Arguments {
			p, ok := resolveProps(argID)
			if !ok {
				collector.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_ARGUMENT, "argument references a node with no computed properties").
					WithNode(uint32(id)).WithPath(name + ":").Build())
				missing = true
				continue
			}
			argProps[name] = p
		}
		if missing {
			continue
		}

		publicArgs := make(map[string]property.Value, len(comp.Arguments))
		for name, argID := range comp.Arguments {
			rn, ok := release[argID]
			if !ok || !rn.Public || rn.Value == nil {
				continue
			}
			val, err := rn.Value.ToProperty()
			if err != nil {
				collector.Collect(diag.NewIssue(diag.Error, diag.E_INTERNAL, err.Error()).WithNode(uint32(id)).WithPath(name + ":").Build())
				continue
			}
			publicArgs[name] = val
		}

		warnable, err := propagator.PropagateProperty(component.PropagationContext{
			PrivacyDef:    analysis.Privacy,
			PublicArgs:    publicArgs,
			ArgProperties: argProps,
			NodeID:        id,
		})
		if err != nil {
			if component.IsAbstract(err) {
				continue
			}
			collector.Collect(diag.NewIssue(diag.Error, diag.E_INVARIANT_VIOLATION, err.Error()).WithNode(uint32(id)).Build())
			continue
		}

		props[id] = warnable.Value
		for _, w := range warnable.Warnings {
			collector.Collect(w)
		}
	}

	result := collector.Result()
	if result.HasFatal() {
		trace.Warn(ctx, e.logger, "propagation completed with fatal diagnostics", slog.Int("count", result.Len()))
	}
	op.End(nil, slog.Int("properties", len(props)), slog.Int("issues", result.Len()))
	return GraphProperties{Properties: props, Warnings: result}, nil
}
