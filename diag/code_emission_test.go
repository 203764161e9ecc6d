package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privaxis/dpval/diag"
)

// TestCodeEmission_AllCodes verifies that every defined code can be used
// to create a valid issue that passes through the diagnostic pipeline.
func TestCodeEmission_AllCodes(t *testing.T) {
	t.Parallel()

	codes := diag.AllCodes()
	require.NotEmpty(t, codes, "AllCodes should return all defined codes")

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			t.Parallel()
			issue := diag.NewIssue(diag.Error, code, "test message for "+code.String()).Build()

			assert.True(t, issue.IsValid(), "Issue with %s should be valid", code.String())
			assert.Equal(t, code, issue.Code())
			assert.Contains(t, issue.Message(), code.String())

			collector := diag.NewCollector(100)
			collector.Collect(issue)

			result := collector.Result()
			assert.True(t, result.HasErrors())

			foundCode := false
			for i := range result.Issues() {
				if i.Code() == code {
					foundCode = true
					break
				}
			}
			assert.True(t, foundCode, "Code %s should be present in result", code.String())
		})
	}
}

// TestCodeEmission_Categories verifies that each category has at least one code.
func TestCodeEmission_Categories(t *testing.T) {
	t.Parallel()

	categories := []diag.CodeCategory{
		diag.CategorySentinel,
		diag.CategoryStructural,
		diag.CategoryType,
		diag.CategoryProperty,
		diag.CategoryPrivacy,
	}

	for _, cat := range categories {
		t.Run(cat.String(), func(t *testing.T) {
			t.Parallel()
			codes := diag.CodesByCategory(cat)
			assert.NotEmpty(t, codes, "Category %s should have at least one code", cat.String())
		})
	}
}

// TestCodeEmission_Uniqueness verifies that all code string values are unique.
func TestCodeEmission_Uniqueness(t *testing.T) {
	t.Parallel()

	codes := diag.AllCodes()
	seen := make(map[string]bool)

	for _, code := range codes {
		str := code.String()
		assert.False(t, seen[str], "Duplicate code string: %s", str)
		seen[str] = true
	}
}

// TestCodeEmission_SentinelCodes verifies the sentinel codes behave correctly.
func TestCodeEmission_SentinelCodes(t *testing.T) {
	t.Parallel()

	t.Run("E_INTERNAL", func(t *testing.T) {
		t.Parallel()
		issue := diag.NewIssue(diag.Fatal, diag.E_INTERNAL, "internal error").Build()
		assert.Equal(t, diag.E_INTERNAL, issue.Code())
		assert.Equal(t, diag.Fatal, issue.Severity())
	})
}

// TestCodeEmission_WithNode verifies codes work with node id breadcrumbs.
func TestCodeEmission_WithNode(t *testing.T) {
	t.Parallel()

	codes := []diag.Code{
		diag.E_CYCLE_DETECTED,
		diag.E_TYPE_MISMATCH,
		diag.E_MISSING_ARGUMENT,
		diag.E_BUDGET_EXCEEDED,
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			t.Parallel()
			issue := diag.NewIssue(diag.Error, code, "test message").
				WithNode(42).
				Build()

			nodeID, ok := issue.NodeID()
			assert.True(t, ok)
			assert.Equal(t, uint32(42), nodeID)
			assert.Equal(t, code, issue.Code())
		})
	}
}

// TestCodeEmission_WithDetails verifies codes work with detail fields.
func TestCodeEmission_WithDetails(t *testing.T) {
	t.Parallel()

	issue := diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH, "type mismatch").
		WithExpectedGot("Array", "Indexmap").
		WithDetail("argument", "data").
		Build()

	assert.Equal(t, diag.E_TYPE_MISMATCH, issue.Code())

	details := issue.Details()
	detailMap := make(map[string]string)
	for _, d := range details {
		detailMap[d.Key] = d.Value
	}
	assert.Equal(t, "Array", detailMap["expected"])
	assert.Equal(t, "Indexmap", detailMap["got"])
	assert.Equal(t, "data", detailMap["argument"])
}

// TestCodeEmission_StructuralCodes verifies structural codes can be created.
func TestCodeEmission_StructuralCodes(t *testing.T) {
	t.Parallel()

	codes := diag.CodesByCategory(diag.CategoryStructural)
	require.NotEmpty(t, codes)

	for _, code := range codes {
		assert.Equal(t, diag.CategoryStructural, code.Category())
	}
}

// TestCodeEmission_PropertyCodes verifies property codes can be created.
func TestCodeEmission_PropertyCodes(t *testing.T) {
	t.Parallel()

	codes := diag.CodesByCategory(diag.CategoryProperty)
	require.NotEmpty(t, codes)

	for _, code := range codes {
		assert.Equal(t, diag.CategoryProperty, code.Category())
	}
}

// TestCodeEmission_PrivacyCodes verifies privacy codes can be created.
func TestCodeEmission_PrivacyCodes(t *testing.T) {
	t.Parallel()

	codes := diag.CodesByCategory(diag.CategoryPrivacy)
	require.NotEmpty(t, codes)

	for _, code := range codes {
		assert.Equal(t, diag.CategoryPrivacy, code.Category())
	}
}

// TestCodeEmission_TypeCodes verifies type codes can be created.
func TestCodeEmission_TypeCodes(t *testing.T) {
	t.Parallel()

	codes := diag.CodesByCategory(diag.CategoryType)
	require.NotEmpty(t, codes)

	for _, code := range codes {
		assert.Equal(t, diag.CategoryType, code.Category())
	}
}

// TestCodeEmission_ZeroCode verifies zero code behavior.
func TestCodeEmission_ZeroCode(t *testing.T) {
	t.Parallel()

	var zeroCode diag.Code
	assert.True(t, zeroCode.IsZero())
	assert.Equal(t, "", zeroCode.String())
}

// TestCodeEmission_CollectorPreservesCode verifies the collector preserves codes.
func TestCodeEmission_CollectorPreservesCode(t *testing.T) {
	t.Parallel()

	collector := diag.NewCollector(100)

	codes := []diag.Code{
		diag.E_TYPE_MISMATCH,
		diag.E_MISSING_ARGUMENT,
		diag.E_CYCLE_DETECTED,
		diag.E_BUDGET_EXCEEDED,
	}

	for _, code := range codes {
		issue := diag.NewIssue(diag.Error, code, "test "+code.String()).Build()
		collector.Collect(issue)
	}

	result := collector.Result()
	assert.True(t, result.HasErrors())

	collectedCodes := make(map[string]bool)
	for issue := range result.Issues() {
		collectedCodes[issue.Code().String()] = true
	}

	for _, code := range codes {
		assert.True(t, collectedCodes[code.String()], "Code %s should be in result", code.String())
	}
}

// TestCodeEmission_ResultFilterByCode tests filtering issues by code.
func TestCodeEmission_ResultFilterByCode(t *testing.T) {
	t.Parallel()

	collector := diag.NewCollector(100)
	collector.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH, "type error 1").Build())
	collector.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH, "type error 2").Build())
	collector.Collect(diag.NewIssue(diag.Error, diag.E_CYCLE_DETECTED, "cycle error").Build())

	result := collector.Result()

	typeMismatchCount := 0
	cycleCount := 0
	for issue := range result.Issues() {
		switch issue.Code() {
		case diag.E_TYPE_MISMATCH:
			typeMismatchCount++
		case diag.E_CYCLE_DETECTED:
			cycleCount++
		}
	}

	assert.Equal(t, 2, typeMismatchCount)
	assert.Equal(t, 1, cycleCount)
}
