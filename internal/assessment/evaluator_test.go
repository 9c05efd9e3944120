package assessment

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/brightlearn/assessment/internal/models"
)

func TestEvaluateMultipleChoice(t *testing.T) {
	q := &models.Question{
		Type:      models.TypeMultipleChoice,
		Options:   []string{"4", "1/2", "0.75"},
		AnswerKey: models.ChoiceKey(0),
	}

	right := 0
	wrong := 2
	if !Evaluate(q, models.Answer{Choice: &right}) {
		t.Error("matching option index should be correct")
	}
	if Evaluate(q, models.Answer{Choice: &wrong}) {
		t.Error("non-matching option index should be incorrect")
	}
}

func TestEvaluateTrueFalse(t *testing.T) {
	q := &models.Question{Type: models.TypeTrueFalse, AnswerKey: models.TruthKey(false)}

	yes := true
	no := false
	if !Evaluate(q, models.Answer{Truth: &no}) {
		t.Error("matching boolean should be correct")
	}
	if Evaluate(q, models.Answer{Truth: &yes}) {
		t.Error("non-matching boolean should be incorrect")
	}
}

func TestEvaluateFillBlank(t *testing.T) {
	q := &models.Question{Type: models.TypeFillBlank, AnswerKey: models.TextKey("positive")}

	tests := []struct {
		given string
		want  bool
	}{
		{"positive", true},
		{"  Positive  ", true}, // case and surrounding whitespace ignored
		{"POSITIVE", true},
		{"negative", false},
		{"", false},
	}
	for _, tt := range tests {
		got := Evaluate(q, models.Answer{Text: &tt.given})
		if got != tt.want {
			t.Errorf("fill_blank %q = %v, want %v", tt.given, got, tt.want)
		}
	}
}

func TestEvaluateCalculation(t *testing.T) {
	q := &models.Question{Type: models.TypeCalculation, AnswerKey: models.NumberKey(5)}

	tests := []struct {
		given float64
		want  bool
	}{
		{5, true},
		{5.005, true}, // within tolerance
		{4.995, true},
		{5.02, false},
		{-5, false},
	}
	for _, tt := range tests {
		got := Evaluate(q, models.Answer{Number: &tt.given})
		if got != tt.want {
			t.Errorf("calculation %v = %v, want %v", tt.given, got, tt.want)
		}
	}
}

func TestEvaluateShortAnswer(t *testing.T) {
	q := &models.Question{
		Type:      models.TypeShortAnswer,
		AnswerKey: models.TextKey("chlorophyll absorbs light"),
	}

	covering := "leaves use chlorophyll to absorb light"
	unrelated := "plants need water"
	if !Evaluate(q, models.Answer{Text: &covering}) {
		t.Error("answer covering the key tokens should be correct")
	}
	if Evaluate(q, models.Answer{Text: &unrelated}) {
		t.Error("answer sharing no key tokens should be incorrect")
	}

	// Same inputs, same verdict.
	first := Evaluate(q, models.Answer{Text: &covering})
	second := Evaluate(q, models.Answer{Text: &covering})
	if first != second {
		t.Error("evaluation should be deterministic")
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name    string
		qt      models.QuestionType
		raw     string
		wantErr bool
	}{
		{"mcq index", models.TypeMultipleChoice, `2`, false},
		{"mcq string rejected", models.TypeMultipleChoice, `"two"`, true},
		{"true_false bool", models.TypeTrueFalse, `true`, false},
		{"true_false number rejected", models.TypeTrueFalse, `1`, true},
		{"fill_blank string", models.TypeFillBlank, `"positive"`, false},
		{"fill_blank number rejected", models.TypeFillBlank, `7`, true},
		{"short_answer string", models.TypeShortAnswer, `"some words"`, false},
		{"calculation number", models.TypeCalculation, `4.5`, false},
		{"calculation string rejected", models.TypeCalculation, `"four"`, true},
		{"empty answer", models.TypeCalculation, ``, true},
		{"unknown type", models.QuestionType("essay"), `"text"`, true},
	}

	for _, tt := range tests {
		_, err := ParseAnswer(tt.qt, json.RawMessage(tt.raw))
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("%s: got %v, want a validation error", tt.name, err)
			}
		} else if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestTokenOverlap(t *testing.T) {
	if got := tokenOverlap("", "anything"); got != 0 {
		t.Errorf("empty key overlap = %f, want 0", got)
	}
	if got := tokenOverlap("one two three", "one two three"); got != 1 {
		t.Errorf("identical text overlap = %f, want 1", got)
	}
	got := tokenOverlap("one two three four", "one two")
	if got != 0.5 {
		t.Errorf("half coverage overlap = %f, want 0.5", got)
	}
}
