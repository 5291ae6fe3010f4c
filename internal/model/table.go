package model

import "time"

// TableMeta describes where and when a table was built.
type TableMeta struct {
	Generation string    `json:"generation"`
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	Issues     []Issue   `json:"issues,omitempty"`
}

// Table is an ordered, read-only set of records. A Table is never modified
// after NewTable returns, so it can be shared between goroutines.
type Table struct {
	records []Record
	meta    TableMeta
}

// NewTable copies records into a new Table.
func NewTable(records []Record, meta TableMeta) *Table {
	rs := make([]Record, len(records))
	copy(rs, records)
	if meta.Issues != nil {
		meta.Issues = append([]Issue(nil), meta.Issues...)
	}
	return &Table{records: rs, meta: meta}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the i-th row.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all rows in order.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Meta returns the table's load metadata.
func (t *Table) Meta() TableMeta {
	m := t.meta
	m.Issues = append([]Issue(nil), t.meta.Issues...)
	return m
}

// Labels returns the distinct question labels in order of first appearance.
func (t *Table) Labels() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool, 4)
	var labels []string
	for _, r := range t.records {
		if seen[r.QuestionLabel] {
			continue
		}
		seen[r.QuestionLabel] = true
		labels = append(labels, r.QuestionLabel)
	}
	return labels
}

// HasLabel reports whether any row carries label.
func (t *Table) HasLabel(label string) bool {
	if t == nil {
		return false
	}
	for _, r := range t.records {
		if r.QuestionLabel == label {
			return true
		}
	}
	return false
}

// FilterByQuestion returns the rows whose label equals label, preserving
// order. The result shares no storage with t. No match yields an empty table.
func (t *Table) FilterByQuestion(label string) *Table {
	out := &Table{}
	if t == nil {
		return out
	}
	out.meta = t.Meta()
	for _, r := range t.records {
		if r.QuestionLabel == label {
			out.records = append(out.records, r)
		}
	}
	return out
}
