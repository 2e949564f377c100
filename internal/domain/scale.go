package domain

// IntensityLevel is one step of the Modified Intensity scale with its
// display label and the color code assigned by the seismology department.
type IntensityLevel struct {
	Level int
	Label string
	Color string
}

// intensityScale is the fixed 10-entry IMM presentation table. Reports up
// to level 10 are common per Worden et al. (2012).
var intensityScale = [10]IntensityLevel{
	{Level: 1, Label: "Not felt", Color: "#0000A6"},
	{Level: 2, Label: "Very weak", Color: "#49FE03"},
	{Level: 3, Label: "Weak", Color: "#FFFF01"},
	{Level: 4, Label: "Moderate", Color: "#FFC800"},
	{Level: 5, Label: "Rather strong", Color: "#FFDE01"},
	{Level: 6, Label: "Strong", Color: "#FFBD01"},
	{Level: 7, Label: "Very strong", Color: "#FF9C01"},
	{Level: 8, Label: "Destructive", Color: "#FF7C01"},
	{Level: 9, Label: "Very destructive", Color: "#C73E10"},
	{Level: 10, Label: "Disastrous", Color: "#90001F"},
}

// IntensityScale returns the ordered 10-entry presentation table, lowest
// level first. The returned slice is a copy.
func IntensityScale() []IntensityLevel {
	scale := make([]IntensityLevel, len(intensityScale))
	copy(scale, intensityScale[:])
	return scale
}

// ClampIntensity maps any observed value into the 1-10 presentation range.
func ClampIntensity(observed int) int {
	if observed < 1 {
		return 1
	}
	if observed > 10 {
		return 10
	}
	return observed
}

// ColorForIntensity returns the scale color for an observed value,
// clamping out-of-range input into 1-10.
func ColorForIntensity(observed int) string {
	return intensityScale[ClampIntensity(observed)-1].Color
}

// IntensityBucket returns the 1-10 layer bucket for this report.
func (er EnrichedReport) IntensityBucket() int {
	return ClampIntensity(er.Intensity)
}

// ResidualBucket is the three-way classification driving the difference map.
type ResidualBucket string

// Residual buckets, in legend order.
const (
	ResidualZero    ResidualBucket = "zero"
	ResidualOne     ResidualBucket = "one"
	ResidualTwoPlus ResidualBucket = "two-or-more"
)

// ResidualClass pairs a residual bucket with its stoplight presentation.
type ResidualClass struct {
	Bucket ResidualBucket
	Label  string
	Color  string
}

var residualClasses = [3]ResidualClass{
	{Bucket: ResidualZero, Label: "residual = 0", Color: "#00A600"},
	{Bucket: ResidualOne, Label: "residual = 1", Color: "#FF9A00"},
	{Bucket: ResidualTwoPlus, Label: "residual >= 2", Color: "#C00000"},
}

// ResidualClasses returns the ordered stoplight table. The returned slice
// is a copy.
func ResidualClasses() []ResidualClass {
	classes := make([]ResidualClass, len(residualClasses))
	copy(classes, residualClasses[:])
	return classes
}

// ClassifyResidual buckets an unsigned residual: 0, 1, or two-or-more.
func ClassifyResidual(residual int) ResidualBucket {
	switch residual {
	case 0:
		return ResidualZero
	case 1:
		return ResidualOne
	default:
		return ResidualTwoPlus
	}
}

// ColorForResidual returns the stoplight color for a residual bucket.
func ColorForResidual(bucket ResidualBucket) string {
	for _, c := range residualClasses {
		if c.Bucket == bucket {
			return c.Color
		}
	}
	return residualClasses[2].Color
}

// ResidualClass returns the three-way bucket for this report's residual.
func (er EnrichedReport) ResidualClass() ResidualBucket {
	return ClassifyResidual(er.Residual)
}

// MarkerSize returns the square marker edge in pixels for an observed
// intensity: base 6, growing 2 px per step above 3, saturating at
// intensity >= 8 (size 16).
func MarkerSize(observed int) int {
	step := observed - 3
	if step < 0 {
		step = 0
	}
	if step > 5 {
		step = 5
	}
	return 2 * (3 + step)
}
