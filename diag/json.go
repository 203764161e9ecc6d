package diag

import "encoding/json"

// Wire format types for JSON serialization.
//
// These types define the stable JSON output format. All field names use
// camelCase and optional fields use omitzero.

// issueWire is the JSON wire format for Issue.
type issueWire struct {
	NodeID   *uint32      `json:"nodeId,omitzero"`
	Path     string       `json:"path,omitzero"`
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Hint     string       `json:"hint,omitzero"`
	Details  []detailWire `json:"details,omitzero"`
}

// detailWire is the JSON wire format for Detail.
type detailWire struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// resultWire is the JSON wire format for Result.
type resultWire struct {
	Issues       []issueWire `json:"issues"`
	Limit        int         `json:"limit,omitzero"`
	LimitReached bool        `json:"limitReached,omitzero"`
	DroppedCount int         `json:"droppedCount,omitzero"`
}

// FormatIssueJSON returns the JSON representation of a single issue.
func FormatIssueJSON(issue Issue) json.RawMessage {
	wire := toIssueWire(issue)
	data, err := json.Marshal(wire)
	if err != nil {
		panic("diag: unexpected JSON marshal error: " + err.Error())
	}
	return data
}

// FormatResultJSON returns the JSON representation of a diagnostic result.
func FormatResultJSON(res Result) json.RawMessage {
	wire := toResultWire(res)
	data, err := json.Marshal(wire)
	if err != nil {
		panic("diag: unexpected JSON marshal error: " + err.Error())
	}
	return data
}

// toResultWire converts a Result to its JSON wire format.
func toResultWire(res Result) resultWire {
	var issues []issueWire
	for issue := range res.Issues() {
		issues = append(issues, toIssueWire(issue))
	}
	if issues == nil {
		issues = []issueWire{}
	}

	wire := resultWire{Issues: issues}
	if res.LimitReached() {
		wire.Limit = res.limit
		wire.LimitReached = true
		wire.DroppedCount = res.DroppedCount()
	}
	return wire
}

// toIssueWire converts an Issue to its JSON wire format.
func toIssueWire(issue Issue) issueWire {
	wire := issueWire{
		Severity: issue.Severity().String(),
		Code:     issue.Code().String(),
		Message:  issue.Message(),
		Hint:     issue.Hint(),
		Path:     issue.Path(),
	}

	if nodeID, ok := issue.NodeID(); ok {
		wire.NodeID = &nodeID
	}

	details := issue.Details()
	if len(details) > 0 {
		wire.Details = make([]detailWire, len(details))
		for i, d := range details {
			wire.Details[i] = detailWire(d)
		}
	}

	return wire
}
