package component

import (
	"testing"

	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/privacy"
)

func TestDpMean_PropagateProperty_Abstract(t *testing.T) {
	_, err := DpMean{}.PropagateProperty(PropagationContext{})
	if !IsAbstract(err) {
		t.Errorf("err = %v, want abstract", err)
	}
}

func TestDpMean_ExpandComponent(t *testing.T) {
	d := DpMean{PrivacyUsage: []privacy.Usage{{Epsilon: 1, Delta: 0}}}
	exp, err := d.ExpandComponent(ExpansionContext{
		NodeID:    7,
		Arguments: map[string]descriptor.NodeID{"data": 7},
		MaxID:     10,
	})
	if err != nil {
		t.Fatalf("ExpandComponent: %v", err)
	}
	if exp.NewMaxID != 11 {
		t.Errorf("NewMaxID = %d, want 11", exp.NewMaxID)
	}
	if len(exp.Traversal) != 1 || exp.Traversal[0] != 11 {
		t.Errorf("Traversal = %v, want [11]", exp.Traversal)
	}

	meanNode, ok := exp.Nodes[11]
	if !ok {
		t.Fatal("missing node 11")
	}
	if !meanNode.Omit {
		t.Error("mean node must have Omit=true")
	}
	if meanNode.Variant.Kind != "Mean" {
		t.Errorf("node 11 kind = %q, want Mean", meanNode.Variant.Kind)
	}
	if meanNode.Arguments["data"] != 7 {
		t.Errorf("node 11 data arg = %d, want 7", meanNode.Arguments["data"])
	}

	laplaceNode, ok := exp.Nodes[7]
	if !ok {
		t.Fatal("missing node 7")
	}
	if laplaceNode.Variant.Kind != "LaplaceMechanism" {
		t.Errorf("node 7 kind = %q, want LaplaceMechanism", laplaceNode.Variant.Kind)
	}
	if laplaceNode.Arguments["data"] != 11 {
		t.Errorf("node 7 data arg = %d, want 11", laplaceNode.Arguments["data"])
	}

	laplace, err := Decode(laplaceNode.Variant)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	lm := laplace.(LaplaceMechanism)
	if len(lm.PrivacyUsage) != 1 || lm.PrivacyUsage[0].Epsilon != 1 {
		t.Errorf("forwarded privacy usage = %v", lm.PrivacyUsage)
	}
}
