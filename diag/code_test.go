package diag

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{E_INTERNAL, "E_INTERNAL"},
		{E_CYCLE_DETECTED, "E_CYCLE_DETECTED"},
		{E_MISSING_NODE, "E_MISSING_NODE"},
		{E_TYPE_MISMATCH, "E_TYPE_MISMATCH"},
		{E_BUDGET_EXCEEDED, "E_BUDGET_EXCEEDED"},
		{W_PROPERTY_WIDENED, "W_PROPERTY_WIDENED"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want CodeCategory
	}{
		{E_INTERNAL, CategorySentinel},
		{E_CYCLE_DETECTED, CategoryStructural},
		{E_MISSING_NODE, CategoryStructural},
		{E_EXPANSION_LOOP, CategoryStructural},
		{E_TYPE_MISMATCH, CategoryType},
		{E_ARITY, CategoryType},
		{E_MISSING_FIELD, CategoryProperty},
		{E_INVARIANT_VIOLATION, CategoryProperty},
		{E_BUDGET_EXCEEDED, CategoryPrivacy},
		{E_USAGE_UNDEFINED, CategoryPrivacy},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("%s.Category() = %s; want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestCode_IsZero(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"zero value", Code{}, true},
		{"empty string value", code("", CategorySentinel), true},
		{"valid code", E_TYPE_MISMATCH, false},
		{"sentinel code", E_INTERNAL, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsZero(); got != tt.want {
				t.Errorf("Code.IsZero() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory_String(t *testing.T) {
	tests := []struct {
		cat  CodeCategory
		want string
	}{
		{CategorySentinel, "sentinel"},
		{CategoryStructural, "structural"},
		{CategoryType, "type"},
		{CategoryProperty, "property"},
		{CategoryPrivacy, "privacy"},
		{CodeCategory(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("CodeCategory(%d).String() = %q; want %q", tt.cat, got, tt.want)
			}
		})
	}
}

func TestAllCodes(t *testing.T) {
	codes := AllCodes()

	if len(codes) < 10 {
		t.Errorf("AllCodes() returned %d codes; expected at least 10", len(codes))
	}

	original := AllCodes()
	codes[0] = Code{}
	afterMod := AllCodes()
	if afterMod[0].IsZero() {
		t.Error("AllCodes() should return a copy, not the internal slice")
	}
	if original[0].IsZero() {
		t.Error("original should not be affected by modifications to copy")
	}
}

func TestAllCodes_Uniqueness(t *testing.T) {
	codes := AllCodes()
	seen := make(map[string]Code)

	for _, c := range codes {
		str := c.String()
		if str == "" {
			t.Error("found code with empty string")
			continue
		}
		if prev, ok := seen[str]; ok {
			t.Errorf("duplicate code string %q: categories %s and %s",
				str, prev.Category(), c.Category())
		}
		seen[str] = c
	}

	if len(seen) != len(codes) {
		t.Errorf("unique codes: %d, total codes: %d", len(seen), len(codes))
	}
}

func TestAllCodes_NoZeroValues(t *testing.T) {
	for _, c := range AllCodes() {
		if c.IsZero() {
			t.Errorf("AllCodes() contains zero-value code")
		}
	}
}

func TestCodesByCategory(t *testing.T) {
	tests := []struct {
		cat         CodeCategory
		minExpected int
		mustContain []Code
	}{
		{
			cat:         CategorySentinel,
			minExpected: 1,
			mustContain: []Code{E_INTERNAL},
		},
		{
			cat:         CategoryStructural,
			minExpected: 4,
			mustContain: []Code{E_CYCLE_DETECTED, E_MISSING_NODE, E_MISSING_ARGUMENT},
		},
		{
			cat:         CategoryType,
			minExpected: 3,
			mustContain: []Code{E_TYPE_MISMATCH, E_ARITY},
		},
		{
			cat:         CategoryProperty,
			minExpected: 3,
			mustContain: []Code{E_MISSING_FIELD, E_INVARIANT_VIOLATION},
		},
		{
			cat:         CategoryPrivacy,
			minExpected: 4,
			mustContain: []Code{E_BUDGET_EXCEEDED, E_USAGE_UNDEFINED},
		},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			codes := CodesByCategory(tt.cat)

			if len(codes) < tt.minExpected {
				t.Errorf("CodesByCategory(%s) returned %d codes; expected at least %d",
					tt.cat, len(codes), tt.minExpected)
			}

			for _, c := range codes {
				if c.Category() != tt.cat {
					t.Errorf("code %s has category %s; expected %s",
						c, c.Category(), tt.cat)
				}
			}

			codeSet := make(map[string]bool)
			for _, c := range codes {
				codeSet[c.String()] = true
			}
			for _, required := range tt.mustContain {
				if !codeSet[required.String()] {
					t.Errorf("CodesByCategory(%s) missing required code %s",
						tt.cat, required)
				}
			}
		})
	}
}

func TestCodesByCategory_ReturnsNewSlice(t *testing.T) {
	codes1 := CodesByCategory(CategoryStructural)
	if len(codes1) == 0 {
		t.Skip("no structural codes to test with")
	}

	codes1[0] = Code{}
	codes2 := CodesByCategory(CategoryStructural)

	if codes2[0].IsZero() {
		t.Error("CodesByCategory should return a new slice each time")
	}
}

func TestCodesByCategory_AllCategoriesCovered(t *testing.T) {
	allByCategory := make(map[string]bool)
	categories := []CodeCategory{
		CategorySentinel,
		CategoryStructural,
		CategoryType,
		CategoryProperty,
		CategoryPrivacy,
	}

	for _, cat := range categories {
		for _, c := range CodesByCategory(cat) {
			if allByCategory[c.String()] {
				t.Errorf("code %s appears in multiple categories", c)
			}
			allByCategory[c.String()] = true
		}
	}

	for _, c := range AllCodes() {
		if !allByCategory[c.String()] {
			t.Errorf("code %s not returned by any CodesByCategory call", c)
		}
	}
}

// TestAllCodes_MatchesDefinedCodes uses AST parsing to verify that every
// exported E_*/W_* variable in code.go appears in allCodes exactly once.
// This prevents drift between code definitions and the allCodes slice.
func TestAllCodes_MatchesDefinedCodes(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "code.go", nil, 0)
	if err != nil {
		t.Fatalf("failed to parse code.go: %v", err)
	}

	definedCodes := make(map[string]bool)
	ast.Inspect(f, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.VAR {
			return true
		}

		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, name := range valueSpec.Names {
				if (strings.HasPrefix(name.Name, "E_") || strings.HasPrefix(name.Name, "W_")) && name.IsExported() {
					definedCodes[name.Name] = true
				}
			}
		}
		return true
	})

	if len(definedCodes) == 0 {
		t.Fatal("no E_*/W_* variables found in code.go")
	}

	allCodesMap := make(map[string]bool)
	for _, c := range AllCodes() {
		str := c.String()
		if allCodesMap[str] {
			t.Errorf("allCodes contains duplicate: %s", str)
		}
		allCodesMap[str] = true
	}

	for name := range definedCodes {
		if !allCodesMap[name] {
			t.Errorf("E_*/W_* variable %s defined in code.go but missing from allCodes", name)
		}
	}

	for name := range allCodesMap {
		if !definedCodes[name] {
			t.Errorf("allCodes contains %s but no matching E_*/W_* variable in code.go", name)
		}
	}

	t.Logf("found %d E_*/W_* definitions, %d entries in allCodes", len(definedCodes), len(allCodesMap))
}
