package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/graph"
	"github.com/privaxis/dpval/internal/trace"
	"github.com/privaxis/dpval/privacy"
	"github.com/privaxis/dpval/property"
)

var citations = map[string]string{
	"Laplace":     "Dwork & Roth, The Algorithmic Foundations of Differential Privacy",
	"Gaussian":    "Dwork & Roth, The Algorithmic Foundations of Differential Privacy",
	"Exponential": "McSherry & Talwar, Mechanism Design via Differential Privacy",
}

// Option configures a Generate call.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for report generation and the
// graph engine it drives internally; see internal/trace.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Generate runs a full expansion-and-propagation pass over analysis and
// release, then walks the expanded graph in ascending node-id order
// collecting a JSONRelease for every node whose component implements
// component.Summarizer and has a materialized release value.
func Generate(ctx context.Context, analysis descriptor.Analysis, release descriptor.Release, opts ...Option) (Document, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "dpval.report.generate", slog.Int("nodes", len(analysis.Graph)))

	e := graph.New(graph.WithLogger(cfg.logger))

	expanded, _, err := e.ExpandAnalysis(ctx, analysis)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInternal, err)
		op.End(err)
		return Document{}, err
	}

	gp, err := e.PropagateProperties(ctx, analysis, release)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInternal, err)
		op.End(err)
		return Document{}, err
	}
	if gp.Warnings.HasErrors() {
		trace.Warn(ctx, cfg.logger, "generating report over a graph with propagation diagnostics",
			slog.Int("issues", gp.Warnings.Len()), slog.String("summary", gp.Warnings.String()))
	}

	ids := make([]descriptor.NodeID, 0, len(expanded))
	for id := range expanded {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	col := collate.New(language.Und)

	var releases []JSONRelease
	for _, id := range ids {
		comp := expanded[id]
		rn, ok := release[id]
		if !ok || rn.Value == nil {
			continue
		}

		v, err := component.Decode(comp.Variant)
		if err != nil {
			continue
		}
		summarizer, ok := v.(component.Summarizer)
		if !ok {
			continue
		}

		argProps, publicArgs := resolveArgs(comp, release, gp.Properties)

		releaseValue, err := rn.Value.ToProperty()
		if err != nil {
			continue
		}

		varNames := namesFor(v, publicArgs, releaseValue, gp.Properties[id])
		col.Strings(varNames)

		entries, err := summarizer.Summarize(id, v, publicArgs, argProps, releaseValue, varNames)
		if err != nil {
			continue
		}

		loss := nodeUsage(rn, v)
		for i, entry := range entries {
			jr := toJSONRelease(entry, comp, argProps, loss)
			if vals, ok := columnValues(rn.Value, i); ok {
				jr.ReleaseInfo = map[string][]float64{entry.VariableName: vals}
			}
			releases = append(releases, jr)
		}
	}

	doc := Document{ReportID: uuid.New(), Releases: releases}
	op.End(nil, slog.Int("releases", len(releases)))
	return doc, nil
}

// toJSONRelease enriches one component.SummaryEntry with the argument
// bounds, record count, privacy loss, and citation the report carries
// alongside it.
func toJSONRelease(entry component.SummaryEntry, comp descriptor.Component, argProps component.NodeProperties, loss privacy.Usage) JSONRelease {
	arg := AlgorithmArgument{}
	if a, err := property.Array(argProps["data"]); err == nil {
		if a.NumRecords != nil {
			n := *a.NumRecords
			arg.N = &n
		}
		if len(a.LowerF64) > 0 && len(a.UpperF64) > 0 {
			lower, upper := a.LowerF64[0], a.UpperF64[0]
			arg.Constraint = &AlgorithmArgumentConstraint{LowerBound: &lower, UpperBound: &upper}
		}
	}

	statistic := entry.Statistic
	if statistic == "" {
		// Expansion replaces a composite like DpMean with its mechanism
		// node, so the original statistic name is gone by the time a
		// report is generated; fall back to the mechanism's own kind.
		statistic = comp.Variant.Kind
	}

	return JSONRelease{
		Description: fmt.Sprintf("%s mechanism release", entry.Mechanism),
		Statistic:   statistic,
		Variables:   []string{entry.VariableName},
		PrivacyLoss: loss,
		Submission:  comp.Submission,
		NodeID:      entry.NodeID,
		Postprocess: false,
		AlgorithmInfo: AlgorithmInfo{
			Name:      comp.Variant.Kind,
			Cite:      citations[entry.Mechanism],
			Mechanism: entry.Mechanism,
			Argument:  arg,
		},
	}
}

// nodeUsage prefers the actual usage recorded in the release (what the
// mechanism really spent) and falls back to the node's declared usage
// (what it was configured to spend) when no actual usage was recorded.
func nodeUsage(rn descriptor.ReleaseNode, v component.Variant) privacy.Usage {
	total := privacy.Usage{}
	if len(rn.Usages) > 0 {
		for _, u := range rn.Usages {
			total, _ = privacy.Add(total, u)
		}
		return total
	}
	if ud, ok := v.(component.UsageDeclarer); ok {
		for _, u := range ud.DeclaredUsage() {
			total, _ = privacy.Add(total, u)
		}
	}
	return total
}

// columnValues returns the i'th F64 column of a released array value, when
// the release is in fact an F64 array with at least i+1 columns.
func columnValues(v *descriptor.Value, i int) ([]float64, bool) {
	if v == nil || v.Kind != "array" || v.DataType != "F64" || i >= len(v.F64Cols) {
		return nil, false
	}
	return v.F64Cols[i], true
}

func resolveArgs(comp descriptor.Component, release descriptor.Release, props map[descriptor.NodeID]property.ValueProperties) (component.NodeProperties, map[string]property.Value) {
	argProps := make(component.NodeProperties, len(comp.Arguments))
	publicArgs := make(map[string]property.Value, len(comp.Arguments))
	for name, argID := range comp.Arguments {
		if p, ok := props[argID]; ok {
			argProps[name] = p
		}
		rn, ok := release[argID]
		if !ok || !rn.Public || rn.Value == nil {
			continue
		}
		if val, err := rn.Value.ToProperty(); err == nil {
			publicArgs[name] = val
		}
	}
	return argProps, publicArgs
}

func namesFor(v component.Variant, publicArgs map[string]property.Value, release property.Value, props property.ValueProperties) []string {
	if namer, ok := v.(component.Namer); ok {
		if names, err := namer.GetNames(publicArgs, nil, &release); err == nil {
			return names
		}
	}
	n := 1
	if a, err := property.Array(props); err == nil && a.NumColumns != nil {
		n = *a.NumColumns
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("col_%d", i)
	}
	return names
}
