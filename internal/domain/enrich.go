package domain

import "math"

const (
	// kmPerDegree is the flat-earth scale factor: 1 degree ~ 110 km.
	// Valid for the regional distances felt reports cover.
	kmPerDegree = 110.0

	// minDistanceKm floors R before log10 so reports at the epicenter
	// don't produce log10(0).
	minDistanceKm = 1e-6

	// observedThreshold selects between the two regression lines. It is
	// the IMM_o = 4.22 threshold from Worden et al. (2012). Selection is
	// by observed intensity, not distance, and must stay that way.
	observedThreshold = 4.22
)

// DistanceKm returns the approximate distance in kilometers between two
// coordinates: Euclidean distance in degree space times 110 km/degree.
// Symmetric, and zero for identical points.
func DistanceKm(a, b Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return math.Sqrt(dLat*dLat+dLon*dLon) * kmPerDegree
}

// PredictIntensity returns the theoretical IMM for a report at distanceKm
// from an event of the given magnitude. The regression line is chosen by
// the report's own observed intensity (threshold 4.22). The continuous
// value is floored and clamped to a minimum of 1; there is no upper clamp.
func PredictIntensity(distanceKm, magnitude float64, observed int) int {
	r := distanceKm
	if r <= 0 {
		r = minDistanceKm
	}

	var v float64
	if float64(observed) <= observedThreshold {
		v = 3.598 - 0.004805*r - 0.53*math.Log10(r) + 0.295*magnitude
	} else {
		v = 4.002 - 0.011470*r - 2.68*math.Log10(r) + 0.940*magnitude
	}

	predicted := int(math.Floor(v))
	if predicted < 1 {
		predicted = 1
	}
	return predicted
}

// ResidualOf returns |observed - predicted|.
func ResidualOf(observed, predicted int) int {
	d := observed - predicted
	if d < 0 {
		d = -d
	}
	return d
}

// EnrichReport computes all derived fields for one report against one event.
func EnrichReport(r Report, ev Event) EnrichedReport {
	dist := DistanceKm(r.Coordinate(), ev.Epicenter())
	predicted := PredictIntensity(dist, ev.Magnitude, r.Intensity)
	return EnrichedReport{
		Report:     r,
		DistanceKm: dist,
		Predicted:  predicted,
		Residual:   ResidualOf(r.Intensity, predicted),
	}
}

// EnrichReports enriches a whole collection, preserving order.
func EnrichReports(reports []Report, ev Event) []EnrichedReport {
	enriched := make([]EnrichedReport, len(reports))
	for i, r := range reports {
		enriched[i] = EnrichReport(r, ev)
	}
	return enriched
}
