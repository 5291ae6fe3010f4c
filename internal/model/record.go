package model

import "fmt"

// Record is one normalized row: a single country's answer to a single question.
type Record struct {
	QuestionID    string     `json:"question_id"`
	QuestionLabel string     `json:"question"`
	CountryCode   string     `json:"code"`
	CountryName   Resolution `json:"country_name"`
	GeoCode       Resolution `json:"iso_alpha"`
	Acceptance    float64    `json:"acceptance"`
}

// Issue describes a row that does not fit the expected dataset shape.
type Issue struct {
	Line   int    `json:"line" yaml:"line"`
	Field  string `json:"field" yaml:"field"`
	Value  string `json:"value" yaml:"value"`
	Reason string `json:"reason" yaml:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s %q: %s", i.Line, i.Field, i.Value, i.Reason)
}
