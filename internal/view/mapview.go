package view

import (
	"fmt"

	"github.com/sells-group/acceptance-map/internal/model"
)

// Fixed presentation settings for the choropleth.
const (
	MapScope           = "europe"
	MapColorScale      = "ice"
	MapColorbarTitle   = "Acceptance (%)"
	MapCenterLat       = 54.0
	MapCenterLon       = 15.0
	MapProjectionScale = 4.0
)

// MapPoint is one colored country on the map.
type MapPoint struct {
	Location  string  `json:"location"`
	Z         float64 `json:"z"`
	HoverName string  `json:"hover_name"`
	HoverText string  `json:"hover_text"`
}

// MapView describes a choropleth keyed by alpha-3 geo codes.
type MapView struct {
	Title           string     `json:"title"`
	Scope           string     `json:"scope"`
	ColorScale      string     `json:"color_scale"`
	ColorbarTitle   string     `json:"colorbar_title"`
	RangeColor      [2]float64 `json:"range_color"`
	CenterLat       float64    `json:"center_lat"`
	CenterLon       float64    `json:"center_lon"`
	ProjectionScale float64    `json:"projection_scale"`
	Points          []MapPoint `json:"points"`
	// Unplaced lists countries with no geo code; they still appear in the table.
	Unplaced []string `json:"unplaced,omitempty"`
}

// BuildMap renders filtered rows as a map view titled title.
func BuildMap(rows *model.Table, title string) MapView {
	m := MapView{
		Title:           title,
		Scope:           MapScope,
		ColorScale:      MapColorScale,
		ColorbarTitle:   MapColorbarTitle,
		RangeColor:      [2]float64{0, 100},
		CenterLat:       MapCenterLat,
		CenterLon:       MapCenterLon,
		ProjectionScale: MapProjectionScale,
		Points:          []MapPoint{},
	}
	for _, r := range rows.Records() {
		if r.GeoCode.IsMissing() {
			m.Unplaced = append(m.Unplaced, r.CountryName.Value)
			continue
		}
		m.Points = append(m.Points, MapPoint{
			Location:  r.GeoCode.Value,
			Z:         r.Acceptance,
			HoverName: r.CountryName.Value,
			HoverText: fmt.Sprintf("%s<br>Acceptance: %.1f%%", r.CountryName.Value, r.Acceptance),
		})
	}
	return m
}
