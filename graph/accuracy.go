package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/privaxis/dpval/component"
	"github.com/privaxis/dpval/descriptor"
	"github.com/privaxis/dpval/internal/trace"
	"github.com/privaxis/dpval/privacy"
)

// AccuracyToPrivacyUsage converts each of accuracies to the privacy usage a
// component would need to spend to achieve it, via component.AccuracyConverter.
// It fails with ErrUnsupportedConversion if comp's variant does not implement
// the capability, or if the conversion declines any individual accuracy.
func (e *Engine) AccuracyToPrivacyUsage(ctx context.Context, comp descriptor.Component, privacyDef descriptor.PrivacyDefinition, props component.NodeProperties, accuracies []component.Accuracy) ([]privacy.Usage, error) {
	op := trace.Begin(ctx, e.logger, "dpval.graph.accuracy_to_privacy_usage", slog.Int("count", len(accuracies)))

	converter, err := decodeAccuracyConverter(comp)
	if err != nil {
		op.End(err)
		return nil, err
	}

	usages := make([]privacy.Usage, len(accuracies))
	for i, acc := range accuracies {
		u, err := converter.AccuracyToPrivacyUsage(privacyDef, props, acc)
		if err != nil {
			op.End(err)
			return nil, err
		}
		if u == nil {
			op.End(ErrUnsupportedConversion)
			return nil, ErrUnsupportedConversion
		}
		usages[i] = *u
	}

	op.End(nil)
	return usages, nil
}

// PrivacyUsageToAccuracy is the inverse of AccuracyToPrivacyUsage: it
// reports, for each alpha, the accuracy bound comp's declared privacy usage
// achieves at that confidence level.
func (e *Engine) PrivacyUsageToAccuracy(ctx context.Context, comp descriptor.Component, privacyDef descriptor.PrivacyDefinition, props component.NodeProperties, alphas []float64) ([]component.Accuracy, error) {
	op := trace.Begin(ctx, e.logger, "dpval.graph.privacy_usage_to_accuracy", slog.Int("count", len(alphas)))

	converter, err := decodeAccuracyConverter(comp)
	if err != nil {
		op.End(err)
		return nil, err
	}

	accuracies := make([]component.Accuracy, len(alphas))
	for i, alpha := range alphas {
		acc, err := converter.PrivacyUsageToAccuracy(privacyDef, props, alpha)
		if err != nil {
			op.End(err)
			return nil, err
		}
		if acc == nil {
			op.End(ErrUnsupportedConversion)
			return nil, ErrUnsupportedConversion
		}
		accuracies[i] = *acc
	}

	op.End(nil)
	return accuracies, nil
}

func decodeAccuracyConverter(comp descriptor.Component) (component.AccuracyConverter, error) {
	v, err := component.Decode(comp.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	converter, ok := v.(component.AccuracyConverter)
	if !ok {
		return nil, fmt.Errorf("%w: component %s does not implement accuracy conversion", ErrUnsupportedConversion, comp.Variant.Kind)
	}
	return converter, nil
}
