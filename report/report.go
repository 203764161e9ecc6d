// Package report builds the human-readable JSON release report: one entry
// per node whose component contributed a Summarizer result, describing
// what statistic was released, which mechanism protected it, and how much
// privacy budget it consumed.
package report

import (
	"github.com/google/uuid"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/privacy"
)

// AlgorithmArgumentConstraint carries the bounds a mechanism's input
// argument was clamped to, when known.
type AlgorithmArgumentConstraint struct {
	LowerBound *float64
	UpperBound *float64
}

// AlgorithmArgument describes the argument a mechanism noised: its record
// count, if known, and any bound constraint.
type AlgorithmArgument struct {
	N          *int
	Constraint *AlgorithmArgumentConstraint
}

// AlgorithmInfo names the mechanism that produced a release and the
// argument it was applied to.
type AlgorithmInfo struct {
	Name      string
	Cite      string
	Mechanism string
	Argument  AlgorithmArgument
}

// JSONRelease is one row of the release report: everything a reader needs
// to understand and audit a single released statistic.
type JSONRelease struct {
	Description   string
	Statistic     string
	Variables     []string
	ReleaseInfo   map[string][]float64
	PrivacyLoss   privacy.Usage
	Accuracy      *component.Accuracy
	Submission    int
	NodeID        descriptor.NodeID
	Postprocess   bool
	AlgorithmInfo AlgorithmInfo
}

// Document is the full report: a stamped identifier (for idempotency and
// log correlation across repeated generate_report calls) plus the release
// rows themselves.
type Document struct {
	ReportID uuid.UUID
	Releases []JSONRelease
}

// String returns the report's JSON wire representation.
func (d Document) String() string {
	return string(FormatDocumentJSON(d))
}
