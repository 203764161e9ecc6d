package report

import "encoding/json"

// Wire format types for JSON serialization.
//
// These types define the stable JSON output format. All field names use
// snake_case and optional fields use omitzero.

// documentWire is the JSON wire format for Document.
type documentWire struct {
	ReportID string             `json:"report_id"`
	Releases []jsonReleaseWire `json:"releases"`
}

// jsonReleaseWire is the JSON wire format for JSONRelease.
type jsonReleaseWire struct {
	Description   string             `json:"description"`
	Statistic     string             `json:"statistic"`
	Variables     []string           `json:"variables"`
	ReleaseInfo   map[string][]float64 `json:"release_info,omitzero"`
	PrivacyLoss   usageWire          `json:"privacy_loss"`
	Accuracy      *accuracyWire      `json:"accuracy,omitzero"`
	Submission    int                `json:"submission"`
	NodeID        uint32             `json:"node_id"`
	Postprocess   bool               `json:"postprocess"`
	AlgorithmInfo algorithmInfoWire  `json:"algorithm_info"`
}

// usageWire is the JSON wire format for privacy.Usage.
type usageWire struct {
	Epsilon float64 `json:"epsilon"`
	Delta   float64 `json:"delta"`
}

// accuracyWire is the JSON wire format for component.Accuracy.
type accuracyWire struct {
	Value float64 `json:"value"`
	Alpha float64 `json:"alpha"`
}

// algorithmArgumentConstraintWire is the JSON wire format for
// AlgorithmArgumentConstraint.
type algorithmArgumentConstraintWire struct {
	LowerBound *float64 `json:"lowerbound,omitzero"`
	UpperBound *float64 `json:"upperbound,omitzero"`
}

// algorithmArgumentWire is the JSON wire format for AlgorithmArgument.
type algorithmArgumentWire struct {
	N          *int                             `json:"n,omitzero"`
	Constraint *algorithmArgumentConstraintWire `json:"constraint,omitzero"`
}

// algorithmInfoWire is the JSON wire format for AlgorithmInfo.
type algorithmInfoWire struct {
	Name      string                `json:"name"`
	Cite      string                `json:"cite,omitzero"`
	Mechanism string                `json:"mechanism"`
	Argument  algorithmArgumentWire `json:"argument"`
}

// FormatDocumentJSON returns the JSON representation of a report Document.
func FormatDocumentJSON(d Document) json.RawMessage {
	wire := toDocumentWire(d)
	data, err := json.Marshal(wire)
	if err != nil {
		panic("report: unexpected JSON marshal error: " + err.Error())
	}
	return data
}

func toDocumentWire(d Document) documentWire {
	releases := make([]jsonReleaseWire, len(d.Releases))
	for i, r := range d.Releases {
		releases[i] = toJSONReleaseWire(r)
	}
	return documentWire{ReportID: d.ReportID.String(), Releases: releases}
}

func toJSONReleaseWire(r JSONRelease) jsonReleaseWire {
	wire := jsonReleaseWire{
		Description: r.Description,
		Statistic:   r.Statistic,
		Variables:   r.Variables,
		ReleaseInfo: r.ReleaseInfo,
		PrivacyLoss: usageWire{Epsilon: r.PrivacyLoss.Epsilon, Delta: r.PrivacyLoss.Delta},
		Submission:  r.Submission,
		NodeID:      uint32(r.NodeID),
		Postprocess: r.Postprocess,
		AlgorithmInfo: algorithmInfoWire{
			Name:      r.AlgorithmInfo.Name,
			Cite:      r.AlgorithmInfo.Cite,
			Mechanism: r.AlgorithmInfo.Mechanism,
			Argument: algorithmArgumentWire{
				N: r.AlgorithmInfo.Argument.N,
			},
		},
	}
	if r.Variables == nil {
		wire.Variables = []string{}
	}
	if r.Accuracy != nil {
		wire.Accuracy = &accuracyWire{Value: r.Accuracy.Value, Alpha: r.Accuracy.Alpha}
	}
	if c := r.AlgorithmInfo.Argument.Constraint; c != nil {
		wire.AlgorithmInfo.Argument.Constraint = &algorithmArgumentConstraintWire{
			LowerBound: c.LowerBound,
			UpperBound: c.UpperBound,
		}
	}
	return wire
}
