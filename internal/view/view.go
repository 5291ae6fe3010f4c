// Package view turns a normalized table into the map and table views shown
// for one selected question.
package view

import "github.com/sells-group/acceptance-map/internal/model"

// Selection holds both views for one question. Map and Table are built from
// separate copies of the filtered rows.
type Selection struct {
	Label string       `json:"label"`
	Rows  int          `json:"rows"`
	Map   MapView      `json:"map"`
	Table DisplayTable `json:"table"`
}

// Select filters t to label and builds both views. An unknown label produces
// empty views, not an error.
func Select(t *model.Table, label string) Selection {
	filtered := t.FilterByQuestion(label)
	return Selection{
		Label: label,
		Rows:  filtered.Len(),
		Map:   BuildMap(filtered, label),
		Table: BuildTable(filtered),
	}
}

// DefaultLabel returns the label a fresh session starts on: requested when it
// is present in t, otherwise the first label of t.
func DefaultLabel(t *model.Table, requested string) string {
	if requested != "" && t.HasLabel(requested) {
		return requested
	}
	labels := t.Labels()
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}
