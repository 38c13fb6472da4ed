package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charterrors "github.com/mnhtng/shadcn-chart/pkg/errors"
)

func minimalChart() ChartSpec {
	return ChartSpec{
		ID:     "visitors",
		Kind:   "line",
		XKey:   "month",
		Series: []Series{{Key: "desktop", Label: "Desktop"}},
		Data:   []Row{{"month": "January", "desktop": 186}},
	}
}

func minimalDocument() *Document {
	return &Document{Version: "1.0", Charts: []ChartSpec{minimalChart()}}
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var valErr *charterrors.ValidationError
	require.True(t, errors.As(err, &valErr), "expected validation error, got %v", err)
	assert.Equal(t, field, valErr.Field)
}

func TestValidateDocumentAcceptsMinimal(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDocument(minimalDocument()))
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	requireValidationError(t, ValidateDocument(nil), "document")
}

func TestValidateDocumentUnknownKind(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].Kind = "scatter"

	var valErr *charterrors.ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &valErr))
	assert.Contains(t, valErr.Field, "kind")
}

func TestValidateDocumentUnknownVariant(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].Variant = "sparkle"

	err := ValidateDocument(doc)
	requireValidationError(t, err, "charts[0].variant")
	assert.Contains(t, err.Error(), "sparkle")
}

func TestValidateDocumentVariantMustMatchKind(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	// donut belongs to pie, not line.
	doc.Charts[0].Variant = "donut"

	requireValidationError(t, ValidateDocument(doc), "charts[0].variant")
}

func TestValidateDocumentDuplicateChartIDs(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts = append(doc.Charts, minimalChart())

	requireValidationError(t, ValidateDocument(doc), "charts[1].id")
}

func TestValidateDocumentMissingXKey(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].XKey = ""

	requireValidationError(t, ValidateDocument(doc), "charts[0].x_key")
}

func TestValidateDocumentPieNeedsValueKey(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0] = ChartSpec{
		ID:      "browsers",
		Kind:    "pie",
		NameKey: "browser",
		Data:    []Row{{"browser": "chrome", "visitors": 275}},
	}

	requireValidationError(t, ValidateDocument(doc), "charts[0].value_key")
}

func TestValidateDocumentBadHexColor(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].Series[0].Color = "tomato"

	var valErr *charterrors.ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &valErr))
	assert.Contains(t, valErr.Field, "color")
}

func TestValidateDocumentDuplicateSeriesKeys(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].Series = append(doc.Charts[0].Series, Series{Key: "desktop"})

	requireValidationError(t, ValidateDocument(doc), "charts[0].series")
}

func TestValidateDocumentBadChartID(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].ID = "Has Spaces"

	var valErr *charterrors.ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &valErr))
	assert.Contains(t, valErr.Field, "id")
}

func TestValidateDocumentEmptyData(t *testing.T) {
	t.Parallel()

	doc := minimalDocument()
	doc.Charts[0].Data = nil

	var valErr *charterrors.ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &valErr))
	assert.Contains(t, valErr.Field, "data")
}
