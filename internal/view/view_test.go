package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/acceptance-map/internal/country"
	"github.com/sells-group/acceptance-map/internal/model"
)

const (
	labelEqual = "Equal rights for gay, lesbian, and bisexual people"
	labelRel   = "Acceptance of same-sex relationships"
)

func rec(label, code string, acceptance float64) model.Record {
	return model.Record{
		QuestionLabel: label,
		CountryCode:   code,
		CountryName:   country.Name(code),
		GeoCode:       country.GeoCode(code),
		Acceptance:    acceptance,
	}
}

func sampleTable() *model.Table {
	return model.NewTable([]model.Record{
		rec(labelEqual, "DE", 84.5),
		rec(labelRel, "DE", 80),
		rec(labelEqual, "BE", 91.0),
		rec(labelEqual, "XK", 40),
		rec(labelRel, "BE", 88),
	}, model.TableMeta{Generation: "g1"})
}

func TestSelect_Scenario(t *testing.T) {
	sel := Select(sampleTable(), labelEqual)

	assert.Equal(t, labelEqual, sel.Label)
	assert.Equal(t, 3, sel.Rows)

	require.Len(t, sel.Table.Rows, 3)
	assert.Equal(t, DisplayRow{Country: "Belgium", Acceptance: "91.0%", Value: 91}, sel.Table.Rows[0])
	assert.Equal(t, DisplayRow{Country: "Germany", Acceptance: "84.5%", Value: 84.5}, sel.Table.Rows[1])
	assert.Equal(t, "40.0%", sel.Table.Rows[2].Acceptance)

	require.Len(t, sel.Map.Points, 2)
	assert.Equal(t, "DEU", sel.Map.Points[0].Location)
	assert.Equal(t, "BEL", sel.Map.Points[1].Location)
	assert.Len(t, sel.Map.Unplaced, 1)
}

func TestSelect_UnknownLabel(t *testing.T) {
	sel := Select(sampleTable(), "not a question")

	assert.Equal(t, 0, sel.Rows)
	assert.Empty(t, sel.Table.Rows)
	assert.NotNil(t, sel.Table.Rows)
	assert.Empty(t, sel.Map.Points)
	assert.NotNil(t, sel.Map.Points)
}

func TestSelect_ViewsAreIndependent(t *testing.T) {
	sel := Select(sampleTable(), labelEqual)
	sel.Table.Rows[0].Country = "changed"
	assert.Equal(t, "Germany", sel.Map.Points[0].HoverName)
	assert.Equal(t, "Belgium", sel.Map.Points[1].HoverName)
}

func TestDefaultLabel(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, labelEqual, DefaultLabel(tbl, ""))
	assert.Equal(t, labelRel, DefaultLabel(tbl, labelRel))
	assert.Equal(t, labelEqual, DefaultLabel(tbl, "bogus"))
	assert.Equal(t, "", DefaultLabel(model.NewTable(nil, model.TableMeta{}), ""))
}
