package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/acceptance-map/internal/model"
)

func TestBuildMap(t *testing.T) {
	rows := sampleTable().FilterByQuestion(labelEqual)
	m := BuildMap(rows, labelEqual)

	assert.Equal(t, labelEqual, m.Title)
	assert.Equal(t, "europe", m.Scope)
	assert.Equal(t, [2]float64{0, 100}, m.RangeColor)
	assert.Equal(t, "Acceptance (%)", m.ColorbarTitle)
	assert.InDelta(t, 54.0, m.CenterLat, 0.001)
	assert.InDelta(t, 15.0, m.CenterLon, 0.001)

	require.Len(t, m.Points, 2)
	p := m.Points[1]
	assert.Equal(t, "BEL", p.Location)
	assert.InDelta(t, 91.0, p.Z, 0.001)
	assert.Equal(t, "Belgium", p.HoverName)
	assert.Equal(t, "Belgium<br>Acceptance: 91.0%", p.HoverText)
}

func TestBuildMap_UnplacedRows(t *testing.T) {
	rows := model.NewTable([]model.Record{
		{QuestionLabel: labelEqual, CountryCode: "XK", CountryName: model.Fallback("XK", "XK"), GeoCode: model.Fallback("", "XK"), Acceptance: 40},
	}, model.TableMeta{})

	want := MapView{
		Title:           labelEqual,
		Scope:           MapScope,
		ColorScale:      MapColorScale,
		ColorbarTitle:   MapColorbarTitle,
		RangeColor:      [2]float64{0, 100},
		CenterLat:       MapCenterLat,
		CenterLon:       MapCenterLon,
		ProjectionScale: MapProjectionScale,
		Points:          []MapPoint{},
		Unplaced:        []string{"XK"},
	}
	if diff := cmp.Diff(want, BuildMap(rows, labelEqual)); diff != "" {
		t.Errorf("BuildMap mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMap_HoverRounding(t *testing.T) {
	rows := model.NewTable([]model.Record{
		{CountryName: model.Resolved("Malta", "MT"), GeoCode: model.Resolved("MLT", "MT"), Acceptance: 74.26},
	}, model.TableMeta{})

	m := BuildMap(rows, "")
	require.Len(t, m.Points, 1)
	assert.Equal(t, "Malta<br>Acceptance: 74.3%", m.Points[0].HoverText)
	assert.InDelta(t, 74.26, m.Points[0].Z, 0.0001)
}
