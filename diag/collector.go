package diag

import (
	"cmp"
	"fmt"
	"slices"
)

// Collector accumulates diagnostic issues during a single graph-engine pass.
//
// Unlike a general-purpose diagnostics sink, Collector is not safe for
// concurrent use: the graph engine is single-threaded and synchronous (every
// pass is owned by one caller), so no internal locking is needed.
//
// Limit behavior: When the issue limit is reached, additional issues are
// dropped but [Collector.OK] is not affected. Use [Collector.LimitReached]
// to detect truncated results.
//
// Create a Collector with [NewCollector], then use [Collector.Collect] to add
// issues and [Collector.Result] to get an immutable snapshot.
type Collector struct {
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int

	fatalCount   int
	errorCount   int
	warningCount int
	infoCount    int
	hintCount    int

	cachedResult *Result
}

// NoLimit is the sentinel value indicating unlimited issue collection.
const NoLimit = 0

// NewCollector creates a collector with an optional issue limit.
//
// A limit of 0 means no limit (use [NoLimit] constant for clarity). Negative
// values are normalized to 0.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{limit: limit}
}

// Collect adds an issue to the collector.
//
// Collect panics if the issue is a zero value or is invalid. Use [NewIssue]
// and [IssueBuilder] to construct valid issues.
func (c *Collector) Collect(issue Issue) {
	c.validateIssue(issue)
	c.collectOne(issue)
}

// CollectAll adds multiple issues.
//
// Panics if any issue is invalid (see [Collect]).
func (c *Collector) CollectAll(issues []Issue) {
	for _, issue := range issues {
		c.validateIssue(issue)
	}
	for _, issue := range issues {
		c.collectOne(issue)
	}
}

// Merge incorporates all issues from a Result.
//
// Results are structurally guaranteed to contain only valid issues because
// the Result type has no public constructor accepting arbitrary issues, so
// Merge does not re-validate.
func (c *Collector) Merge(res Result) {
	for issue := range res.Issues() {
		c.collectOne(issue)
	}
}

func (c *Collector) validateIssue(issue Issue) {
	if issue.IsZero() {
		panic("diag.Collector.Collect: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.Collector.Collect: invalid Issue (code=%s, message=%q)",
			issue.Code().String(), issue.Message()))
	}
}

func (c *Collector) collectOne(issue Issue) {
	c.cachedResult = nil

	if c.limit > 0 && len(c.issues) >= c.limit {
		c.limitReached = true
		c.droppedCount++
		return
	}

	c.issues = append(c.issues, issue)

	switch issue.Severity() {
	case Fatal:
		c.fatalCount++
	case Error:
		c.errorCount++
	case Warning:
		c.warningCount++
	case Info:
		c.infoCount++
	case Hint:
		c.hintCount++
	}
}

// Result produces a sorted, immutable snapshot.
//
// The returned Result is independent of the Collector; subsequent Collect
// calls do not affect it. Results are cached until the next Collect call.
//
// Issues are sorted by node id, then code, severity, message, hint, path,
// and details for deterministic reports
// (spec §4.3's tie-break-by-lowest-id determinism requirement extends to
// diagnostic ordering).
func (c *Collector) Result() Result {
	if c.cachedResult != nil {
		return *c.cachedResult
	}

	sorted := make([]Issue, len(c.issues))
	copy(sorted, c.issues)
	slices.SortFunc(sorted, compareIssues)

	result := newResult(sorted, c.limit, c.limitReached, c.droppedCount)
	c.cachedResult = &result
	return result
}

// compareIssues compares two issues for deterministic sorting.
//
// Ordering rules:
//  1. Node-id-backed issues before node-less issues, by ascending node id.
//  2. Common tie-breakers: Code, Severity, Message, Hint, Path.
//  3. Details, for a true total order.
func compareIssues(a, b Issue) int {
	if a.hasNode != b.hasNode {
		if a.hasNode {
			return -1
		}
		return 1
	}
	if a.hasNode {
		if c := cmp.Compare(a.nodeID, b.nodeID); c != 0 {
			return c
		}
	}

	if c := cmp.Compare(a.code.value, b.code.value); c != 0 {
		return c
	}
	if c := cmp.Compare(a.severity, b.severity); c != 0 {
		return c
	}
	if c := cmp.Compare(a.message, b.message); c != 0 {
		return c
	}
	if c := cmp.Compare(a.hint, b.hint); c != 0 {
		return c
	}
	if c := cmp.Compare(a.path, b.path); c != 0 {
		return c
	}
	return compareDetails(a.details, b.details)
}

// compareDetails compares two Detail slices lexicographically.
func compareDetails(a, b []Detail) int {
	minLen := min(len(a), len(b))
	for i := range minLen {
		if c := cmp.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := cmp.Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// HasFatal reports whether any Fatal issue has been collected.
func (c *Collector) HasFatal() bool {
	return c.fatalCount > 0
}

// HasErrors reports whether any Fatal or Error issue has been collected.
func (c *Collector) HasErrors() bool {
	return c.fatalCount > 0 || c.errorCount > 0
}

// OK reports whether no Fatal or Error issues have been collected.
func (c *Collector) OK() bool {
	return c.fatalCount == 0 && c.errorCount == 0
}

// Len returns the number of collected issues.
func (c *Collector) Len() int {
	return len(c.issues)
}

// LimitReached reports whether the limit was reached.
func (c *Collector) LimitReached() bool {
	return c.limitReached
}

// DroppedCount returns how many issues were dropped after hitting the limit.
func (c *Collector) DroppedCount() int {
	return c.droppedCount
}
