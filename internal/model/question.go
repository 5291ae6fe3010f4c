package model

// Question identifiers as they appear in the combined survey export. Each one
// names the Eurobarometer QB15 sheet the row was extracted from.
const (
	QuestionEqualRights   = "Question from sheet 'QB15_1'"
	QuestionRelationships = "Question from sheet 'QB15_2'"
	QuestionMarriage      = "Question from sheet 'QB15_3'"
	QuestionAdoption      = "Question from sheet 'QB15_4'"
)

// Question pairs a source identifier with its human-readable label.
type Question struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// questions is the fixed four-question set, in sheet order.
var questions = []Question{
	{ID: QuestionEqualRights, Label: "Equal rights for gay, lesbian, and bisexual people"},
	{ID: QuestionRelationships, Label: "Acceptance of same-sex relationships"},
	{ID: QuestionMarriage, Label: "Allowance of same-sex marriage throughout Europe"},
	{ID: QuestionAdoption, Label: "Adoption rights for same-sex couples"},
}

var labelByID = func() map[string]string {
	m := make(map[string]string, len(questions))
	for _, q := range questions {
		m[q.ID] = q.Label
	}
	return m
}()

// Questions returns a copy of the fixed question set.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionLabel maps a source identifier to its label. The second return is
// false for identifiers outside the fixed set.
func QuestionLabel(id string) (string, bool) {
	label, ok := labelByID[id]
	return label, ok
}

// IsKnownLabel reports whether label belongs to the fixed question set.
func IsKnownLabel(label string) bool {
	for _, q := range questions {
		if q.Label == label {
			return true
		}
	}
	return false
}
