// Package dpval provides static validation and graph expansion for
// differentially-private analysis graphs.
//
// A dpval analysis is a computation graph of components (clamp, impute,
// resize, partition, a closed set of noising mechanisms, and the
// differentially-private composites built on them) paired with a privacy
// definition. dpval never touches raw data: it works from an Analysis
// descriptor and an optional Release of already-materialized, explicitly
// Public values, proving properties (bounds, nullability, releasability)
// about a computation before it runs, and verifying its total privacy
// usage stays within budget.
//
// # Architecture Overview
//
//	Foundation tier (no internal dependencies):
//	  - diag: Structured diagnostics with stable error codes
//	  - privacy: Usage accounting (epsilon/delta composition, budget checks)
//	  - property: Static value properties (Array, Indexmap, Jagged) and inference
//
//	Core tier:
//	  - descriptor: Wire-level Analysis/Release decoding (JSONC)
//	  - component: The closed component variant set and its capability interfaces
//	  - graph: DAG validation, composite expansion, property propagation
//
//	Reporting tier:
//	  - report: Human-readable JSON release report generation
//
// # Entry Points
//
// Loading an analysis and release:
//
//	analysis, err := descriptor.LoadAnalysis(data)
//	release, err := descriptor.LoadRelease(data)
//
// Validating a graph:
//
//	e := graph.New(graph.WithLogger(logger))
//	result, err := e.ValidateAnalysis(ctx, *analysis, release)
//	if err != nil {
//	    // internal failure (cycle, expansion loop)
//	}
//	if !result.OK() {
//	    // property-propagation diagnostics
//	}
//
// Computing privacy usage against a budget:
//
//	total, exceeded, err := e.ComputePrivacyUsage(ctx, *analysis, release, &budget, true)
//
// Generating a release report:
//
//	doc, err := report.Generate(ctx, *analysis, release, report.WithLogger(logger))
//	fmt.Println(doc.String())
package dpval
