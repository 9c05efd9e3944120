package models

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeCalculation    QuestionType = "calculation"
	TypeShortAnswer    QuestionType = "short_answer"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeMultipleChoice: true,
	TypeTrueFalse:      true,
	TypeFillBlank:      true,
	TypeCalculation:    true,
	TypeShortAnswer:    true,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// Rank orders difficulties for averaging: beginner=0, intermediate=1, advanced=2.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 0
	}
}

// ── Core Structs ───────────────────────────────────────

type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	Options     []string     `json:"options,omitempty"`
	AnswerKey   AnswerKey    `json:"answer_key"`
	Explanation string       `json:"explanation"`
	Skills      []string     `json:"skills"`
	Subject     string       `json:"subject"`
	Grade       string       `json:"grade"`
	Topic       string       `json:"topic"`
	Difficulty  Difficulty   `json:"difficulty"`
}

// AnswerKey is the correct answer for a question. Exactly one field is
// set, matching the question type: Choice for multiple_choice, Truth
// for true_false, Text for fill_blank and short_answer, Number for
// calculation.
type AnswerKey struct {
	Choice *int     `json:"choice,omitempty"`
	Truth  *bool    `json:"truth,omitempty"`
	Text   *string  `json:"text,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

func ChoiceKey(i int) AnswerKey     { return AnswerKey{Choice: &i} }
func TruthKey(b bool) AnswerKey     { return AnswerKey{Truth: &b} }
func TextKey(s string) AnswerKey    { return AnswerKey{Text: &s} }
func NumberKey(n float64) AnswerKey { return AnswerKey{Number: &n} }

// Answer is a learner's submitted answer, decoded at the submission
// boundary into the shape the question type expects.
type Answer struct {
	Choice *int
	Truth  *bool
	Text   *string
	Number *float64
}

// ── Serving Types (strip answer data) ──────────────────

type ServedQuestion struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Prompt     string       `json:"prompt"`
	Options    []string     `json:"options,omitempty"`
	Topic      string       `json:"topic"`
	Difficulty Difficulty   `json:"difficulty"`
}

func (q *Question) ToServed() ServedQuestion {
	return ServedQuestion{
		ID:         q.ID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Options:    q.Options,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
	}
}
