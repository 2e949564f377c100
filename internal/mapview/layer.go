// Package mapview turns enriched felt reports into renderable map
// artifacts: marker layers, legends, and self-contained Leaflet HTML
// documents. Builders are pure; rendering is confined to Map.Render.
package mapview

import (
	"fmt"

	"github.com/quakewatch/feltmaps/internal/domain"
)

// Marker is one square report marker: position, pixel edge, fill color and
// hover tooltip. The builder decides what to draw, not how.
type Marker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Size    int     `json:"size"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
}

// Layer is an independently toggleable marker group.
type Layer struct {
	Name    string   `json:"name"`
	Markers []Marker `json:"markers"`
}

// BuildIntensityLayers groups reports by clamped observed intensity into
// ten layers, one per scale level, lowest first. Every level produces a
// layer even when empty so the layer control stays consistent across events.
func BuildIntensityLayers(reports []domain.EnrichedReport) []Layer {
	scale := domain.IntensityScale()
	layers := make([]Layer, len(scale))
	index := make(map[int]int, len(scale))
	for i, lvl := range scale {
		layers[i] = Layer{Name: lvl.Label, Markers: []Marker{}}
		index[lvl.Level] = i
	}

	for _, er := range reports {
		i := index[er.IntensityBucket()]
		layers[i].Markers = append(layers[i].Markers, Marker{
			Lat:     er.Lat,
			Lon:     er.Lon,
			Size:    domain.MarkerSize(er.Intensity),
			Color:   domain.ColorForIntensity(er.Intensity),
			Tooltip: fmt.Sprintf("R = %.1f km | IMM obs = %d", er.DistanceKm, er.Intensity),
		})
	}
	return layers
}

// BuildResidualLayers groups reports into the three stoplight residual
// layers. Marker size is still driven by observed intensity, not residual.
func BuildResidualLayers(reports []domain.EnrichedReport) []Layer {
	classes := domain.ResidualClasses()
	layers := make([]Layer, len(classes))
	index := make(map[domain.ResidualBucket]int, len(classes))
	for i, c := range classes {
		layers[i] = Layer{Name: c.Label, Markers: []Marker{}}
		index[c.Bucket] = i
	}

	for _, er := range reports {
		bucket := er.ResidualClass()
		i := index[bucket]
		layers[i].Markers = append(layers[i].Markers, Marker{
			Lat:     er.Lat,
			Lon:     er.Lon,
			Size:    domain.MarkerSize(er.Intensity),
			Color:   domain.ColorForResidual(bucket),
			Tooltip: fmt.Sprintf("IMM obs = %d | IMM pred = %d | residual = %d", er.Intensity, er.Predicted, er.Residual),
		})
	}
	return layers
}
