package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/internal/trace"
)

// expandFixedPoint repeatedly expands composite nodes until every node in
// the graph is a primitive (implements component.PropertyPropagator but
// not component.Expandable), or a node's expansion count exceeds the
// engine's configured depth limit.
//
// The engine mutates the graph while iterating it (spec §9 "graph
// rewriting"): each expansion may splice in new nodes and rewrite the
// expanded node itself, so the topological order is recomputed from
// scratch after every expansion rather than iterated over a stale
// snapshot.
func (e *Engine) expandFixedPoint(ctx context.Context, analysis descriptor.Analysis) (map[descriptor.NodeID]descriptor.Component, descriptor.NodeID, error) {
	op := trace.Begin(ctx, e.logger, "dpval.graph.expand", slog.Int("nodes", len(analysis.Graph)))

	g := make(map[descriptor.NodeID]descriptor.Component, len(analysis.Graph))
	var maxID descriptor.NodeID
	for id, comp := range analysis.Graph {
		g[id] = comp
		if id > maxID {
			maxID = id
		}
	}

	if _, err := detectCycle(g); err != nil {
		op.End(err)
		return nil, 0, err
	}

	expansionCount := make(map[descriptor.NodeID]int)

	for {
		order := topologicalOrder(g)
		expandedAny := false

		for _, id := range order {
			comp := g[id]
			v, err := component.Decode(comp.Variant)
			if err != nil {
				err = fmt.Errorf("%w: node %d: %v", ErrInternal, id, err)
				op.End(err)
				return nil, 0, err
			}

			expandable, ok := v.(component.Expandable)
			if !ok {
				continue
			}

			expansionCount[id]++
			if expansionCount[id] > e.depthLimit() {
				err := fmt.Errorf("%w: node %d", ErrExpansionLoop, id)
				op.End(err)
				return nil, 0, err
			}

			// A composite's own arguments may reference a root dataset node
			// that lives only in the release (never in the graph); that is
			// resolved by inference during propagation, not here. A
			// reference resolving to neither the graph nor the release is
			// reported as a missing argument at propagation time instead of
			// failing the expansion itself.
			exp, err := expandable.ExpandComponent(component.ExpansionContext{
				NodeID:    id,
				Arguments: comp.Arguments,
				MaxID:     maxID,
			})
			if err != nil {
				err = fmt.Errorf("%w: node %d: %v", ErrInternal, id, err)
				op.End(err)
				return nil, 0, err
			}

			trace.Debug(ctx, e.logger, "node expanded",
				slog.Uint64("node_id", uint64(id)), slog.String("kind", comp.Variant.Kind))

			for newID, newComp := range exp.Nodes {
				newComp.Submission = comp.Submission
				g[newID] = newComp
			}
			if exp.NewMaxID > maxID {
				maxID = exp.NewMaxID
			}
			expandedAny = true
			break // graph changed; recompute topological order from scratch
		}

		if !expandedAny {
			op.End(nil, slog.Int("final_nodes", len(g)))
			return g, maxID, nil
		}
	}
}

func (e *Engine) depthLimit() int {
	if e.expansionDepthLimit <= 0 {
		return DefaultExpansionDepthLimit
	}
	return e.expansionDepthLimit
}
