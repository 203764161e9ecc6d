package component

import (
	"encoding/json"
	"fmt"

	"github.com/privaxis/dpval/descriptor"
)

// factory decodes a variant's wire parameters into its concrete Go type.
type factory func(json.RawMessage) (Variant, error)

// registry maps a descriptor.Variant.Kind wire name to the factory that
// decodes it. It is built once at package init and never mutated
// afterward, so no locking is needed (unlike a registry that accepts
// runtime registrations).
var registry = map[string]factory{
	KindMean.String(): func(p json.RawMessage) (Variant, error) {
		var v Mean
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindImpute.String(): func(p json.RawMessage) (Variant, error) {
		var v Impute
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindClamp.String(): func(p json.RawMessage) (Variant, error) {
		var v Clamp
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindResize.String(): func(p json.RawMessage) (Variant, error) {
		var v Resize
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindLaplaceMechanism.String(): func(p json.RawMessage) (Variant, error) {
		var v LaplaceMechanism
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindGaussianMechanism.String(): func(p json.RawMessage) (Variant, error) {
		var v GaussianMechanism
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindExponentialMechanism.String(): func(p json.RawMessage) (Variant, error) {
		var v ExponentialMechanism
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindPartition.String(): func(p json.RawMessage) (Variant, error) {
		var v Partition
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindQuantile.String(): func(p json.RawMessage) (Variant, error) {
		var v Quantile
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindDpMean.String(): func(p json.RawMessage) (Variant, error) {
		var v DpMean
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindDpMedian.String(): func(p json.RawMessage) (Variant, error) {
		var v DpMedian
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindDpQuantile.String(): func(p json.RawMessage) (Variant, error) {
		var v DpQuantile
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindDpVariance.String(): func(p json.RawMessage) (Variant, error) {
		var v DpVariance
		err := unmarshalParams(p, &v)
		return v, err
	},
	KindVariance.String(): func(p json.RawMessage) (Variant, error) {
		var v Variance
		err := unmarshalParams(p, &v)
		return v, err
	},
}

func unmarshalParams(p json.RawMessage, v any) error {
	if len(p) == 0 {
		return nil
	}
	if err := json.Unmarshal(p, v); err != nil {
		return fmt.Errorf("component: decode params: %w", err)
	}
	return nil
}

// Decode builds the concrete Variant a descriptor.Variant describes.
func Decode(v descriptor.Variant) (Variant, error) {
	f, ok := registry[v.Kind]
	if !ok {
		return nil, fmt.Errorf("component: unknown kind %q", v.Kind)
	}
	return f(v.Params)
}

// Encode serializes v back into its wire descriptor.Variant form, the
// inverse of Decode. Used by Expandable implementations to build the new
// descriptor.Component nodes they splice into the graph.
func Encode(v Variant) (descriptor.Variant, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return descriptor.Variant{}, fmt.Errorf("component: encode params: %w", err)
	}
	return descriptor.Variant{Kind: v.Kind().String(), Params: data}, nil
}
