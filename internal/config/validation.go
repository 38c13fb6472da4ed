package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mnhtng/shadcn-chart/pkg/chart"
	charterrors "github.com/mnhtng/shadcn-chart/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on a
// chart document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return charterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(doc.Charts))
	for i, spec := range doc.Charts {
		if _, exists := seen[spec.ID]; exists {
			return charterrors.NewValidationError(fieldForChart(i, "id"), fmt.Sprintf("duplicate chart id %q", spec.ID), nil)
		}
		seen[spec.ID] = struct{}{}

		if err := validateChart(spec, i); err != nil {
			return err
		}
	}

	return nil
}

func validateChart(spec ChartSpec, i int) error {
	kind, _ := chart.ParseKind(spec.Kind)

	if spec.Variant != "" && !variantKnown(kind, spec.Variant) {
		return charterrors.NewValidationError(
			fieldForChart(i, "variant"),
			fmt.Sprintf("unknown %s variant %q (valid: %s)", spec.Kind, spec.Variant, strings.Join(chart.VariantNames(kind), ", ")),
			nil,
		)
	}

	switch kind {
	case chart.KindArea, chart.KindBar, chart.KindLine:
		if spec.XKey == "" {
			return charterrors.NewValidationError(fieldForChart(i, "x_key"), "required for area, bar and line charts", nil)
		}
		if len(spec.Series) == 0 {
			return charterrors.NewValidationError(fieldForChart(i, "series"), "at least one series is required", nil)
		}
	case chart.KindPie, chart.KindRadial:
		if spec.NameKey == "" {
			return charterrors.NewValidationError(fieldForChart(i, "name_key"), "required for pie and radial charts", nil)
		}
		if spec.ValueKey == "" {
			return charterrors.NewValidationError(fieldForChart(i, "value_key"), "required for pie and radial charts", nil)
		}
	}

	seenKeys := make(map[string]struct{}, len(spec.Series))
	for _, s := range spec.Series {
		if _, exists := seenKeys[s.Key]; exists {
			return charterrors.NewValidationError(fieldForChart(i, "series"), fmt.Sprintf("duplicate series key %q", s.Key), nil)
		}
		seenKeys[s.Key] = struct{}{}
	}

	return nil
}

func variantKnown(kind chart.Kind, name string) bool {
	for _, known := range chart.VariantNames(kind) {
		if known == name {
			return true
		}
	}
	return false
}

func fieldForChart(i int, field string) string {
	return fmt.Sprintf("charts[%d].%s", i, field)
}

// convertValidationError flattens the first struct tag failure into the
// package's typed error.
func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return charterrors.NewValidationError("document", err.Error(), err)
	}

	fe := verrs[0]
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Document."))
	return charterrors.NewValidationError(field, fmt.Sprintf("failed %q constraint", fe.Tag()), err)
}
