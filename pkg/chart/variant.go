package chart

// Kind identifies a chart component family.
type Kind int

const (
	KindArea Kind = iota
	KindBar
	KindLine
	KindPie
	KindRadial
)

var kindNames = map[string]Kind{
	"area":   KindArea,
	"bar":    KindBar,
	"line":   KindLine,
	"pie":    KindPie,
	"radial": KindRadial,
}

// ParseKind resolves a chart kind from its document name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindArea:
		return "area"
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPie:
		return "pie"
	case KindRadial:
		return "radial"
	default:
		return "unknown"
	}
}

// Curve selects how a line or area interpolates between data points.
type Curve int

const (
	CurveNatural Curve = iota
	CurveLinear
	CurveStep
)

// Indicator selects the tooltip swatch shape.
type Indicator int

const (
	IndicatorDot Indicator = iota
	IndicatorLine
	IndicatorDashed
)

// Each chart kind has a closed set of named variants. A variant is a preset
// bundle of display defaults resolved through an explicit lookup table;
// unknown tags resolve to the kind's default record.

// AreaVariant tags the area chart presets.
type AreaVariant int

const (
	AreaDefault AreaVariant = iota
	AreaLinear
	AreaStep
	AreaStacked
	AreaStackedExpand
	AreaGradient
	AreaLegend
)

// AreaDefaults is the record of concrete defaults one area variant expands to.
type AreaDefaults struct {
	Curve      Curve
	Gradient   bool
	Stacked    bool
	Expand     bool
	ShowLegend bool
	ShowXAxis  bool
	ShowYAxis  bool
	ShowGrid   bool
	Indicator  Indicator
}

var areaDefaults = map[AreaVariant]AreaDefaults{
	AreaDefault:       {Curve: CurveNatural, Gradient: false, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
	AreaLinear:        {Curve: CurveLinear, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
	AreaStep:          {Curve: CurveStep, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
	AreaStacked:       {Curve: CurveNatural, Stacked: true, ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
	AreaStackedExpand: {Curve: CurveNatural, Stacked: true, Expand: true, ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorLine},
	AreaGradient:      {Curve: CurveNatural, Gradient: true, Stacked: true, ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
	AreaLegend:        {Curve: CurveNatural, ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDot},
}

// Defaults resolves the variant's preset record.
func (v AreaVariant) Defaults() AreaDefaults {
	if d, ok := areaDefaults[v]; ok {
		return d
	}
	return areaDefaults[AreaDefault]
}

var areaVariantNames = map[string]AreaVariant{
	"default":        AreaDefault,
	"linear":         AreaLinear,
	"step":           AreaStep,
	"stacked":        AreaStacked,
	"stacked-expand": AreaStackedExpand,
	"gradient":       AreaGradient,
	"legend":         AreaLegend,
}

// ParseAreaVariant resolves an area variant tag.
func ParseAreaVariant(name string) (AreaVariant, bool) {
	v, ok := areaVariantNames[name]
	return v, ok
}

// BarVariant tags the bar chart presets.
type BarVariant int

const (
	BarDefault BarVariant = iota
	BarHorizontal
	BarStacked
	BarMixed
	BarNegative
	BarLegend
)

// BarDefaults is the record of concrete defaults one bar variant expands to.
type BarDefaults struct {
	Horizontal bool
	Stacked    bool
	// Mixed colors each category bar from the numbered slots instead of
	// coloring per series.
	Mixed      bool
	ShowLegend bool
	ShowXAxis  bool
	ShowYAxis  bool
	ShowGrid   bool
	ShowValues bool
	Indicator  Indicator
}

var barDefaults = map[BarVariant]BarDefaults{
	BarDefault:    {ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDashed},
	BarHorizontal: {Horizontal: true, ShowValues: true, Indicator: IndicatorDashed},
	BarStacked:    {Stacked: true, ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDashed},
	BarMixed:      {Mixed: true, Horizontal: true, ShowValues: true, Indicator: IndicatorDashed},
	BarNegative:   {ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDashed},
	BarLegend:     {ShowLegend: true, ShowXAxis: true, ShowGrid: true, Indicator: IndicatorDashed},
}

// Defaults resolves the variant's preset record.
func (v BarVariant) Defaults() BarDefaults {
	if d, ok := barDefaults[v]; ok {
		return d
	}
	return barDefaults[BarDefault]
}

var barVariantNames = map[string]BarVariant{
	"default":    BarDefault,
	"horizontal": BarHorizontal,
	"stacked":    BarStacked,
	"mixed":      BarMixed,
	"negative":   BarNegative,
	"legend":     BarLegend,
}

// ParseBarVariant resolves a bar variant tag.
func ParseBarVariant(name string) (BarVariant, bool) {
	v, ok := barVariantNames[name]
	return v, ok
}

// LineVariant tags the line chart presets.
type LineVariant int

const (
	LineDefault LineVariant = iota
	LineLinear
	LineStep
	LineDots
	LineLegend
)

// LineDefaults is the record of concrete defaults one line variant expands to.
type LineDefaults struct {
	Curve      Curve
	Dots       bool
	ShowLegend bool
	ShowXAxis  bool
	ShowYAxis  bool
	ShowGrid   bool
	TickCount  int
	Indicator  Indicator
}

var lineDefaults = map[LineVariant]LineDefaults{
	LineDefault: {Curve: CurveNatural, ShowXAxis: true, ShowYAxis: true, ShowGrid: true, TickCount: 5, Indicator: IndicatorLine},
	LineLinear:  {Curve: CurveLinear, ShowXAxis: true, ShowYAxis: true, ShowGrid: true, TickCount: 5, Indicator: IndicatorLine},
	LineStep:    {Curve: CurveStep, ShowXAxis: true, ShowYAxis: true, ShowGrid: true, TickCount: 5, Indicator: IndicatorLine},
	LineDots:    {Curve: CurveLinear, Dots: true, ShowXAxis: true, ShowGrid: true, TickCount: 5, Indicator: IndicatorDot},
	LineLegend:  {Curve: CurveNatural, ShowLegend: true, ShowXAxis: true, ShowYAxis: true, ShowGrid: true, TickCount: 5, Indicator: IndicatorLine},
}

// Defaults resolves the variant's preset record.
func (v LineVariant) Defaults() LineDefaults {
	if d, ok := lineDefaults[v]; ok {
		return d
	}
	return lineDefaults[LineDefault]
}

var lineVariantNames = map[string]LineVariant{
	"default": LineDefault,
	"linear":  LineLinear,
	"step":    LineStep,
	"dots":    LineDots,
	"legend":  LineLegend,
}

// ParseLineVariant resolves a line variant tag.
func ParseLineVariant(name string) (LineVariant, bool) {
	v, ok := lineVariantNames[name]
	return v, ok
}

// PieVariant tags the pie chart presets.
type PieVariant int

const (
	PieDefault PieVariant = iota
	PieDonut
	PieDonutText
	PieLegend
)

// PieDefaults is the record of concrete defaults one pie variant expands to.
type PieDefaults struct {
	Donut      bool
	CenterText bool
	ShowLegend bool
	Indicator  Indicator
}

var pieDefaults = map[PieVariant]PieDefaults{
	PieDefault:   {Indicator: IndicatorDot},
	PieDonut:     {Donut: true, Indicator: IndicatorDot},
	PieDonutText: {Donut: true, CenterText: true, Indicator: IndicatorDot},
	PieLegend:    {ShowLegend: true, Indicator: IndicatorDot},
}

// Defaults resolves the variant's preset record.
func (v PieVariant) Defaults() PieDefaults {
	if d, ok := pieDefaults[v]; ok {
		return d
	}
	return pieDefaults[PieDefault]
}

var pieVariantNames = map[string]PieVariant{
	"default":    PieDefault,
	"donut":      PieDonut,
	"donut-text": PieDonutText,
	"legend":     PieLegend,
}

// ParsePieVariant resolves a pie variant tag.
func ParsePieVariant(name string) (PieVariant, bool) {
	v, ok := pieVariantNames[name]
	return v, ok
}

// RadialVariant tags the radial chart presets.
type RadialVariant int

const (
	RadialDefault RadialVariant = iota
	RadialLabel
	RadialGrid
	RadialText
	RadialStacked
)

// RadialDefaults is the record of concrete defaults one radial variant
// expands to.
type RadialDefaults struct {
	ShowLabel  bool
	ShowGrid   bool
	CenterText bool
	Stacked    bool
	ShowLegend bool
}

var radialDefaults = map[RadialVariant]RadialDefaults{
	RadialDefault: {},
	RadialLabel:   {ShowLabel: true},
	RadialGrid:    {ShowGrid: true},
	RadialText:    {CenterText: true},
	RadialStacked: {Stacked: true, ShowLegend: true},
}

// Defaults resolves the variant's preset record.
func (v RadialVariant) Defaults() RadialDefaults {
	if d, ok := radialDefaults[v]; ok {
		return d
	}
	return radialDefaults[RadialDefault]
}

var radialVariantNames = map[string]RadialVariant{
	"default": RadialDefault,
	"label":   RadialLabel,
	"grid":    RadialGrid,
	"text":    RadialText,
	"stacked": RadialStacked,
}

// ParseRadialVariant resolves a radial variant tag.
func ParseRadialVariant(name string) (RadialVariant, bool) {
	v, ok := radialVariantNames[name]
	return v, ok
}

// VariantNames lists the valid variant tags for a kind, used by document
// validation.
func VariantNames(kind Kind) []string {
	switch kind {
	case KindArea:
		return namesOf(areaVariantNames)
	case KindBar:
		return namesOf(barVariantNames)
	case KindLine:
		return namesOf(lineVariantNames)
	case KindPie:
		return namesOf(pieVariantNames)
	case KindRadial:
		return namesOf(radialVariantNames)
	default:
		return nil
	}
}

func namesOf[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
