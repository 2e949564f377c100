// Package domain models crowd-sourced earthquake felt reports and the
// numeric pipeline that turns them into renderable map data.
//
// # Data Source
//
// Reports come from the "did you feel it" feature of an earthquake early
// warning app. Each submission carries the reporter's coordinates and an
// observed Modified Intensity (IMM) value, an integer scale (1-10+)
// describing felt-shaking severity. One eventinfo row describes the
// earthquake itself: id, origin time, epicenter, magnitude.
//
// # Distance
//
// Epicentral distance uses a flat-earth approximation: Euclidean distance
// in degree space scaled by 110 km per degree. Valid at regional scale;
// accuracy degrades with distance and away from the equator. This is an
// accepted limitation, not a defect.
//
// # Attenuation Model
//
// Predicted intensity is piecewise on the OBSERVED intensity, not on
// distance. The 4.22 threshold is the one given by Worden, Gerstenberger,
// Rhoades and Wald (2012); the two regression lines compose the Worden et
// al. (2012) model with the Ordaz, Jara and Singh model as described in
// Moncayo Theurer et al. (2016):
//
//	observed <= 4.22:  3.598 - 0.004805*R - 0.53*log10(R) + 0.295*M
//	observed  > 4.22:  4.002 - 0.011470*R - 2.68*log10(R) + 0.940*M
//
// R is the epicentral distance in km, floored to 1e-6 to avoid log10 of
// zero. The continuous value is floored to an integer and clamped to a
// minimum of 1. There is no upper clamp. Formula selection by observed
// value must be preserved exactly for parity with the calibrated model.
//
// # Residuals
//
// The residual is |observed - predicted|, always a non-negative integer,
// bucketed three ways for the difference map: zero, one, two-or-more.
//
// # Bounds Policy
//
// Observed intensity is clamped into 1-10 for bucketing and coloring only;
// the raw value still drives formula selection, marker sizing and the
// residual. Magnitude and coordinates are passed through unvalidated; the
// store is the trust boundary, matching the reference behavior.
package domain
