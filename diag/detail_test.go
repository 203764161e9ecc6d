package diag

import "testing"

func TestDetailKeyConstants(t *testing.T) {
	keys := []struct {
		name  string
		value string
	}{
		{"DetailKeyExpected", DetailKeyExpected},
		{"DetailKeyGot", DetailKeyGot},
		{"DetailKeyArgument", DetailKeyArgument},
		{"DetailKeyField", DetailKeyField},
		{"DetailKeyCycle", DetailKeyCycle},
		{"DetailKeyDepth", DetailKeyDepth},
	}

	for _, k := range keys {
		t.Run(k.name, func(t *testing.T) {
			if k.value == "" {
				t.Errorf("%s is empty", k.name)
			}
			for _, r := range k.value {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("%s contains uppercase: %q", k.name, k.value)
					break
				}
			}
		})
	}
}

func TestDetailKeyConstants_Uniqueness(t *testing.T) {
	keys := []string{
		DetailKeyExpected,
		DetailKeyGot,
		DetailKeyArgument,
		DetailKeyField,
		DetailKeyCycle,
		DetailKeyDepth,
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key: %q", k)
		}
		seen[k] = true
	}
}

func TestExpectedGot(t *testing.T) {
	details := ExpectedGot("Array", "Indexmap")

	if len(details) != 2 {
		t.Fatalf("ExpectedGot returned %d details; want 2", len(details))
	}

	if details[0].Key != DetailKeyExpected {
		t.Errorf("first detail key = %q; want %q", details[0].Key, DetailKeyExpected)
	}
	if details[0].Value != "Array" {
		t.Errorf("first detail value = %q; want %q", details[0].Value, "Array")
	}

	if details[1].Key != DetailKeyGot {
		t.Errorf("second detail key = %q; want %q", details[1].Key, DetailKeyGot)
	}
	if details[1].Value != "Indexmap" {
		t.Errorf("second detail value = %q; want %q", details[1].Value, "Indexmap")
	}
}

func TestArgumentField(t *testing.T) {
	details := ArgumentField("data", "num_records")

	if len(details) != 2 {
		t.Fatalf("ArgumentField returned %d details; want 2", len(details))
	}

	if details[0].Key != DetailKeyArgument {
		t.Errorf("first detail key = %q; want %q", details[0].Key, DetailKeyArgument)
	}
	if details[0].Value != "data" {
		t.Errorf("first detail value = %q; want %q", details[0].Value, "data")
	}

	if details[1].Key != DetailKeyField {
		t.Errorf("second detail key = %q; want %q", details[1].Key, DetailKeyField)
	}
	if details[1].Value != "num_records" {
		t.Errorf("second detail value = %q; want %q", details[1].Value, "num_records")
	}
}

func TestDetail_ZeroValue(t *testing.T) {
	var d Detail
	if d.Key != "" {
		t.Errorf("zero Detail.Key = %q; want empty", d.Key)
	}
	if d.Value != "" {
		t.Errorf("zero Detail.Value = %q; want empty", d.Value)
	}
}
