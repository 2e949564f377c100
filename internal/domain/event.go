package domain

import "time"

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Event is one earthquake row from the event store. Immutable after load.
type Event struct {
	ID         string
	OriginTime time.Time
	Latitude   float64
	Longitude  float64
	Magnitude  float64
}

// Epicenter returns the event's surface reference coordinate.
func (e Event) Epicenter() Coordinate {
	return Coordinate{Lat: e.Latitude, Lon: e.Longitude}
}

// Report is one user-submitted felt report. Coordinates are required
// non-null by the store contract; Intensity is the observed IMM value.
type Report struct {
	UserID    string
	Lat       float64
	Lon       float64
	Intensity int
}

// Coordinate returns the report's submission location.
func (r Report) Coordinate() Coordinate {
	return Coordinate{Lat: r.Lat, Lon: r.Lon}
}

// EnrichedReport is a Report plus every derived field the map layers need.
// Produced once per report by EnrichReport and immutable thereafter.
type EnrichedReport struct {
	Report
	DistanceKm float64 // epicentral distance, >= 0
	Predicted  int     // model intensity, >= 1
	Residual   int     // |observed - predicted|, >= 0
}
