package component

import (
	"fmt"

	"github.com/privaxis/dpval/diag"
	"github.com/privaxis/dpval/property"
)

// Partition splits its data argument into an index-map of children, either
// keyed by the categories supplied in its By argument ("by categories"),
// or into NumPartitions roughly-equal children ("by count").
type Partition struct {
	Data          string `json:"data"`
	By            string `json:"by,omitzero"` // argument name of a single-column jagged category list; empty selects "by count"
	NumPartitions int    `json:"numPartitions,omitzero"`
}

// Kind implements Variant.
func (Partition) Kind() Kind { return KindPartition }

// PropagateProperty implements PropertyPropagator.
func (p Partition) PropagateProperty(ctx PropagationContext) (diag.Warnable[property.ValueProperties], error) {
	argName := p.Data
	if argName == "" {
		argName = "data"
	}

	data, ok := ctx.ArgProperties[argName]
	if !ok {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}
	a, err := property.Array(data)
	if err != nil {
		return diag.Warnable[property.ValueProperties]{}, err
	}

	if p.By != "" {
		return p.propagateByCategories(ctx, a)
	}
	return p.propagateByCount(ctx, a)
}

func (p Partition) propagateByCategories(ctx PropagationContext, parent *property.ArrayProperties) (diag.Warnable[property.ValueProperties], error) {
	byValue, ok := ctx.PublicArgs[p.By]
	if !ok {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}
	byJagged, ok := byValue.(property.JaggedValue)
	if !ok {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}
	if byJagged.NumColumns() != 1 {
		return diag.Warnable[property.ValueProperties]{}, ErrInvalidArgument
	}
	if byJagged.DataType() == property.F64 {
		return diag.Warnable[property.ValueProperties]{}, ErrUnsupportedCategoryType
	}

	keys := categoryKeys(byJagged)
	newGroupID := parent.GroupID.Extend(fmt.Sprint(ctx.NodeID), nil)

	children := make(map[string]property.ValueProperties, len(keys))
	for _, key := range keys {
		child := *parent
		child.NumRecords = nil
		child.GroupID = newGroupID
		children[key] = child
	}

	out := property.IndexmapProperties{
		NumRecords: nil,
		Disjoint:   true,
		Children:   children,
		Variant:    property.Partition,
		DatasetID:  parent.DatasetID,
	}
	return diag.NoWarnings[property.ValueProperties](out), nil
}

func (p Partition) propagateByCount(ctx PropagationContext, parent *property.ArrayProperties) (diag.Warnable[property.ValueProperties], error) {
	k := p.NumPartitions
	children := make(map[string]property.ValueProperties, k)

	var lengths []int
	if parent.NumRecords != nil {
		lengths = evenSplitLengths(*parent.NumRecords, k)
	}

	for i := 0; i < k; i++ {
		child := *parent
		child.NumRecords = nil
		if lengths != nil {
			n := lengths[i]
			child.NumRecords = &n
		}
		children[fmt.Sprint(i)] = child
	}

	out := property.IndexmapProperties{
		NumRecords: parent.NumRecords,
		Disjoint:   true,
		Children:   children,
		Variant:    property.Partition,
		DatasetID:  parent.DatasetID,
	}
	return diag.NoWarnings[property.ValueProperties](out), nil
}

// GetNames implements Namer: a partition's children are named by category
// key ("by categories") or by ordinal index ("by count").
func (p Partition) GetNames(publicArgs map[string]property.Value, argNames map[string][]string, release *property.Value) ([]string, error) {
	if p.By == "" {
		names := make([]string, p.NumPartitions)
		for i := range names {
			names[i] = fmt.Sprint(i)
		}
		return names, nil
	}

	byValue, ok := publicArgs[p.By]
	if !ok {
		return nil, ErrInvalidArgument
	}
	byJagged, ok := byValue.(property.JaggedValue)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return categoryKeys(byJagged), nil
}

// categoryKeys returns the string key for each category in a single-column
// jagged value, in stored order.
func categoryKeys(j property.JaggedValue) []string {
	switch j.DataType() {
	case property.Bool:
		col := j.BoolColumns()[0]
		keys := make([]string, len(col))
		for i, v := range col {
			keys[i] = fmt.Sprint(v)
		}
		return keys
	case property.I64:
		col := j.I64Columns()[0]
		keys := make([]string, len(col))
		for i, v := range col {
			keys[i] = fmt.Sprint(v)
		}
		return keys
	case property.Str:
		col := j.StrColumns()[0]
		keys := make([]string, len(col))
		copy(keys, col)
		return keys
	default:
		return nil
	}
}

// evenSplitLengths splits n rows into k roughly-equal partitions: the
// first n mod k partitions get ceil(n/k) rows, the rest get floor(n/k).
func evenSplitLengths(n, k int) []int {
	if k <= 0 {
		return []int{}
	}
	out := make([]int, k)
	rem := n % k
	ceilVal := (n + k - 1) / k
	floorVal := n / k
	for i := 0; i < k; i++ {
		if i < rem {
			out[i] = ceilVal
		} else {
			out[i] = floorVal
		}
	}
	return out
}
