package descriptor

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/privaxis/dpval/privacy"
)

// analysisWire mirrors Analysis for JSON decoding: maps can't carry
// non-string keys in JSON, so node ids are decoded as strings and
// converted afterward.
type analysisWire struct {
	Graph   map[string]componentWire `json:"graph"`
	Privacy privacyWire              `json:"privacy"`
}

type privacyWire struct {
	GroupSize       int    `json:"groupSize"`
	Neighboring     string `json:"neighboring"`
	ProtectAddition bool   `json:"protectAddition"`
	ProtectRemoval  bool   `json:"protectRemoval"`
}

type componentWire struct {
	Arguments  map[string]string `json:"arguments"`
	Omit       bool              `json:"omit,omitzero"`
	Submission int               `json:"submission,omitzero"`
	Kind       string            `json:"kind"`
	Params     json.RawMessage   `json:"params,omitzero"`
}

type releaseWire map[string]releaseNodeWire

type releaseNodeWire struct {
	Value  *Value               `json:"value,omitzero"`
	Usages map[string]usageWire `json:"usages,omitzero"`
	Public bool                 `json:"public,omitzero"`
}

type usageWire struct {
	Epsilon float64 `json:"epsilon"`
	Delta   float64 `json:"delta"`
}

// LoadAnalysis decodes a JSONC-commented analysis document into an
// Analysis. Comments and trailing commas are stripped via jsonc.ToJSON
// before strict decoding.
func LoadAnalysis(data []byte) (*Analysis, error) {
	var wire analysisWire
	if err := json.Unmarshal(jsonc.ToJSON(data), &wire); err != nil {
		return nil, fmt.Errorf("descriptor: decode analysis: %w", err)
	}

	graph := make(map[NodeID]Component, len(wire.Graph))
	for idStr, c := range wire.Graph {
		id, err := parseNodeID(idStr)
		if err != nil {
			return nil, fmt.Errorf("descriptor: graph key %q: %w", idStr, err)
		}

		args := make(map[string]NodeID, len(c.Arguments))
		for name, argIDStr := range c.Arguments {
			argID, err := parseNodeID(argIDStr)
			if err != nil {
				return nil, fmt.Errorf("descriptor: node %d argument %q: %w", id, name, err)
			}
			args[name] = argID
		}

		graph[id] = Component{
			Arguments:  args,
			Omit:       c.Omit,
			Submission: c.Submission,
			Variant:    Variant{Kind: c.Kind, Params: c.Params},
		}
	}

	neighboring, err := parseNeighboring(wire.Privacy.Neighboring)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Graph: graph,
		Privacy: PrivacyDefinition{
			GroupSize:       wire.Privacy.GroupSize,
			Neighboring:     neighboring,
			ProtectAddition: wire.Privacy.ProtectAddition,
			ProtectRemoval:  wire.Privacy.ProtectRemoval,
		},
	}, nil
}

// LoadRelease decodes a JSONC-commented release document into a Release.
func LoadRelease(data []byte) (Release, error) {
	var wire releaseWire
	if err := json.Unmarshal(jsonc.ToJSON(data), &wire); err != nil {
		return nil, fmt.Errorf("descriptor: decode release: %w", err)
	}

	release := make(Release, len(wire))
	for idStr, node := range wire {
		id, err := parseNodeID(idStr)
		if err != nil {
			return nil, fmt.Errorf("descriptor: release key %q: %w", idStr, err)
		}

		release[id] = ReleaseNode{
			Value:  node.Value,
			Usages: toUsages(node.Usages),
			Public: node.Public,
		}
	}
	return release, nil
}

func parseNodeID(s string) (NodeID, error) {
	var n uint32
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid node id: %w", err)
	}
	return NodeID(n), nil
}

func parseNeighboring(s string) (NeighboringMetric, error) {
	switch s {
	case "", "Substitute":
		return Substitute, nil
	case "AddRemove":
		return AddRemove, nil
	default:
		return 0, fmt.Errorf("descriptor: unknown neighboring metric %q", s)
	}
}

func toUsages(wire map[string]usageWire) map[string]privacy.Usage {
	if len(wire) == 0 {
		return nil
	}
	usages := make(map[string]privacy.Usage, len(wire))
	for mechanism, u := range wire {
		usages[mechanism] = privacy.Usage{Epsilon: u.Epsilon, Delta: u.Delta}
	}
	return usages
}
