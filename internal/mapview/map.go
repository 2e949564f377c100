package mapview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/quakewatch/feltmaps/internal/domain"
)

// Epicenter is the distinguished event marker: a dark-blue circle with an
// event summary tooltip.
type Epicenter struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Tooltip string  `json:"tooltip"`
}

// NewEpicenter builds the epicenter marker spec for an event.
func NewEpicenter(ev domain.Event) Epicenter {
	return Epicenter{
		Lat:     ev.Latitude,
		Lon:     ev.Longitude,
		Tooltip: fmt.Sprintf("Event: %s | M=%.2f", ev.ID, ev.Magnitude),
	}
}

// Map is one renderable artifact: a base map centered on the epicenter,
// the epicenter marker, toggleable overlay layers and a legend. Assemble
// composes it; Render writes the HTML document.
type Map struct {
	Title       string
	Center      domain.Coordinate
	Zoom        int
	Epicenter   Epicenter
	Layers      []Layer
	Legend      template.HTML
	GeneratedAt time.Time
}

// Assemble composes the map artifact. Pure composition; no domain value is
// recomputed here.
func Assemble(title string, ev domain.Event, zoom int, layers []Layer, legend template.HTML) Map {
	return Map{
		Title:       title,
		Center:      ev.Epicenter(),
		Zoom:        zoom,
		Epicenter:   NewEpicenter(ev),
		Layers:      layers,
		Legend:      legend,
		GeneratedAt: domain.Now(),
	}
}

// payload is the JSON blob embedded in the document's script block. The
// static JS in the template builds the Leaflet map from it.
type payload struct {
	Center    [2]float64 `json:"center"`
	Zoom      int        `json:"zoom"`
	Epicenter Epicenter  `json:"epicenter"`
	Layers    []Layer    `json:"layers"`
}

var mapTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta name="generated" content="{{.Generated}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
{{.Legend}}
<script>
var data = {{.Payload}};
var map = L.map("map", {center: data.center, zoom: data.zoom});
L.control.scale().addTo(map);

var attribution = "&copy; OpenStreetMap contributors &copy; CARTO";
var base = {
  "No populated places": L.tileLayer("https://{s}.basemaps.cartocdn.com/light_nolabels/{z}/{x}/{y}{r}.png", {attribution: attribution}),
  "Populated places": L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {attribution: attribution})
};
base["No populated places"].addTo(map);

L.circleMarker([data.epicenter.lat, data.epicenter.lon], {
  radius: 10, color: "darkblue", fill: true, fillColor: "darkblue", fillOpacity: 0.9
}).bindTooltip(data.epicenter.tooltip).addTo(map);

var overlays = {};
data.layers.forEach(function (layer) {
  var group = L.layerGroup();
  layer.markers.forEach(function (m) {
    var icon = L.divIcon({
      className: "",
      iconSize: [m.size, m.size],
      iconAnchor: [m.size / 2, m.size / 2],
      html: '<div style="width:' + m.size + 'px;height:' + m.size + 'px;background:' + m.color + ';opacity:0.75;"></div>'
    });
    L.marker([m.lat, m.lon], {icon: icon}).bindTooltip(m.tooltip).addTo(group);
  });
  group.addTo(map);
  overlays[layer.name] = group;
});
L.control.layers(base, overlays, {collapsed: false}).addTo(map);
</script>
</body>
</html>
`))

type mapData struct {
	Title     string
	Generated string
	Legend    template.HTML
	Payload   template.JS
}

// Render writes the self-contained HTML document.
func (m Map) Render(w io.Writer) error {
	blob, err := json.Marshal(payload{
		Center:    [2]float64{m.Center.Lat, m.Center.Lon},
		Zoom:      m.Zoom,
		Epicenter: m.Epicenter,
		Layers:    m.Layers,
	})
	if err != nil {
		return fmt.Errorf("marshal map payload: %w", err)
	}

	data := mapData{
		Title:     m.Title,
		Generated: m.GeneratedAt.UTC().Format(time.RFC3339),
		Legend:    m.Legend,
		Payload:   template.JS(blob), //nolint:gosec // JSON-encoded, no raw user input
	}
	if err := mapTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render map %s: %w", m.Title, err)
	}
	return nil
}
