package models

// QuestionKind represents how a question is answered.
type QuestionKind int

const (
	// SingleChoice picks exactly one value from Options.
	SingleChoice QuestionKind = iota
	// FreeText accepts typed input checked by Validate.
	FreeText
)

// Question defines a single choice collected from the user.
type Question struct {
	Key         string             // Answer key in the returned map
	Prompt      string             // Question title
	Description string             // Optional help text
	Kind        QuestionKind       // SingleChoice or FreeText
	Options     []Option           // Choices for SingleChoice questions
	Default     string             // Used when no answer is given
	Required    bool               // Whether an empty answer is rejected
	Validate    func(string) error // Optional check for FreeText answers
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
