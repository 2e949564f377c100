package mapview

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/quakewatch/feltmaps/internal/domain"
)

// LegendItem is one color swatch row in the legend.
type LegendItem struct {
	Color string
	Label string
}

// IntensityLegendItems returns the legend rows for the ten-level scale.
func IntensityLegendItems() []LegendItem {
	scale := domain.IntensityScale()
	items := make([]LegendItem, len(scale))
	for i, lvl := range scale {
		items[i] = LegendItem{Color: lvl.Color, Label: lvl.Label}
	}
	return items
}

// ResidualLegendItems returns the legend rows for the stoplight scheme.
func ResidualLegendItems() []LegendItem {
	classes := domain.ResidualClasses()
	items := make([]LegendItem, len(classes))
	for i, c := range classes {
		items[i] = LegendItem{Color: c.Color, Label: c.Label}
	}
	return items
}

var legendTmpl = template.Must(template.New("legend").Parse(`
<div style="position: fixed; bottom: 20px; right: 20px; z-index: 9999; background: white; padding: 10px 12px;
            border: 1px solid #ccc; border-radius: 6px; font-size: 14px; max-width: 320px;">
  <h2 style="margin: 0 0 6px 0; font-size: 18px;">Legend</h2>

  <div style="display:flex; align-items:center; margin: 6px 0 8px 0;">
    <span style="display:inline-block; width:16px; height:16px; border-radius:50%;
                 background:#00008B; margin-right:6px;"></span>
    <span><b>Epicenter</b></span>
  </div>

  <div style="margin-left:22px; font-size: 13px;">
    <div><b>Event:</b> {{.EventID}}</div>
    <div><b>Date:</b> {{.Date}}</div>
    <div><b>Time (UTC):</b> {{.Time}}</div>
    <div><b>Latitude:</b> {{.Latitude}}</div>
    <div><b>Longitude:</b> {{.Longitude}}</div>
    <div><b>Magnitude:</b> {{.Magnitude}}</div>
  </div>

  <hr style="margin:10px 0;">
  <h4 style="margin: 0 0 6px 0;">{{.SchemeTitle}}</h4>
{{- range .Items}}
  <div><span style="background:{{.Color}}; width:12px; height:12px; display:inline-block;"></span> {{.Label}}</div>
{{- end}}
</div>
`))

type legendData struct {
	EventID     string
	Date        string
	Time        string
	Latitude    string
	Longitude   string
	Magnitude   string
	SchemeTitle string
	Items       []LegendItem
}

// ComposeLegend renders the self-contained legend block for an event and
// an ordered color scheme. Pure function of its inputs.
func ComposeLegend(ev domain.Event, schemeTitle string, items []LegendItem) (template.HTML, error) {
	origin := ev.OriginTime.UTC()
	data := legendData{
		EventID:     ev.ID,
		Date:        origin.Format("2006-01-02"),
		Time:        origin.Format("15:04:05"),
		Latitude:    fmt.Sprintf("%.6f", ev.Latitude),
		Longitude:   fmt.Sprintf("%.6f", ev.Longitude),
		Magnitude:   fmt.Sprintf("%.2f", ev.Magnitude),
		SchemeTitle: schemeTitle,
		Items:       items,
	}

	var sb strings.Builder
	if err := legendTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render legend: %w", err)
	}
	return template.HTML(sb.String()), nil //nolint:gosec // template output, already escaped
}
