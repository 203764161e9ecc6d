// Package diag provides structured diagnostics for the dpval validation and
// graph-expansion engine.
//
// This package sits at the foundation tier, providing the single diagnostic
// infrastructure used across graph validation, property propagation, component
// expansion, and privacy accounting.
//
// # Design Principles
//
// The diag package follows several key design principles:
//
//   - Structured data, string-last presentation: location is stored as data
//     (node id, argument-name breadcrumb), never embedded in message strings.
//   - Immutable results: [Result] stores issues in unexported fields and exposes
//     accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools can
//     match on, even when message text changes. The Code type uses an unexported
//     struct to enforce a closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by node id and
//     code to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// All public entry points follow a consistent pattern:
//
//   - err != nil: catastrophic failure (I/O, internal corruption, runtime failures)
//   - err == nil and !result.OK(): semantic failure represented as structured issues
//   - err == nil and result.OK(): success (may still include warnings/info/hints)
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Fatal]: Unrecoverable condition
//   - [Error]: Validation failure but collection can continue
//   - [Warning], [Info], [Hint]: Non-blocking diagnostics
//
// The [Severity.IsFailure] method returns true for Fatal and Error severities,
// matching the !result.OK() check.
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH, `argument "data" expected Array, got Indexmap`).
//	    WithNode(nodeID).
//	    WithPath("data:").
//	    WithHint("wrap the argument in a Cast component").
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during a graph-engine pass:
//
//	collector := diag.NewCollector(100) // limit of 100 issues
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle semantic failures
//	}
//
// [Collector] is not safe for concurrent use: the graph engine is
// single-threaded and synchronous, so each pass owns a single Collector.
//
// # JSON Output
//
// [FormatResultJSON] and [FormatIssueJSON] produce a stable wire format for
// machine-readable diagnostic output.
//
// # Package Dependencies
//
// diag imports only the standard library. It must not import higher-level
// packages like property, descriptor, component, graph, or privacy.
package diag
