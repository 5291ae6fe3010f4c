package view

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sells-group/acceptance-map/internal/model"
)

// Display table column headers.
const (
	ColumnCountry    = "Country"
	ColumnAcceptance = "Acceptance (%)"
)

// DisplayRow is one formatted row of the data table.
type DisplayRow struct {
	Country    string  `json:"country" csv:"Country" yaml:"country"`
	Acceptance string  `json:"acceptance" csv:"Acceptance (%)" yaml:"acceptance"`
	Value      float64 `json:"value" csv:"-" yaml:"value"`
}

// DisplayTable is the sorted, formatted companion to the map.
type DisplayTable struct {
	Columns []string     `json:"columns" yaml:"columns"`
	Rows    []DisplayRow `json:"rows" yaml:"rows"`
}

// BuildTable formats rows for display, highest acceptance first. Ties keep
// their source order and NaN values sort last.
func BuildTable(rows *model.Table) DisplayTable {
	dt := DisplayTable{
		Columns: []string{ColumnCountry, ColumnAcceptance},
		Rows:    make([]DisplayRow, 0, rows.Len()),
	}
	for _, r := range rows.Records() {
		dt.Rows = append(dt.Rows, DisplayRow{
			Country:    r.CountryName.Value,
			Acceptance: FormatPercent(r.Acceptance),
			Value:      r.Acceptance,
		})
	}
	sort.SliceStable(dt.Rows, func(i, j int) bool {
		a, b := dt.Rows[i].Value, dt.Rows[j].Value
		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a) && math.IsNaN(b)
		}
		return a > b
	})
	return dt
}

// FormatPercent renders v the way the survey export prints floats, always
// with a fractional part, followed by a percent sign: 91 -> "91.0%",
// 84.5 -> "84.5%", 91.25 -> "91.25%".
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
