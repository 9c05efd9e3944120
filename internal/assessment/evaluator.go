package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/brightlearn/assessment/internal/models"
)

// calcTolerance is the absolute tolerance for calculation answers.
const calcTolerance = 0.01

// shortAnswerOverlap is the token-overlap fraction a short answer
// needs to count as correct. A heuristic, tunable constant — not
// semantic matching.
const shortAnswerOverlap = 0.7

// ParseAnswer decodes a raw JSON answer into the shape the question
// type requires. A wrong-typed answer is a validation error caught
// here, before it can reach the evaluator.
func ParseAnswer(qt models.QuestionType, raw json.RawMessage) (models.Answer, error) {
	if len(raw) == 0 {
		return models.Answer{}, fmt.Errorf("%w: answer is required", ErrValidation)
	}

	switch qt {
	case models.TypeMultipleChoice:
		var idx int
		if err := json.Unmarshal(raw, &idx); err != nil {
			return models.Answer{}, fmt.Errorf("%w: multiple_choice expects an option index", ErrValidation)
		}
		return models.Answer{Choice: &idx}, nil

	case models.TypeTrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return models.Answer{}, fmt.Errorf("%w: true_false expects a boolean", ErrValidation)
		}
		return models.Answer{Truth: &b}, nil

	case models.TypeFillBlank, models.TypeShortAnswer:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.Answer{}, fmt.Errorf("%w: %s expects a string", ErrValidation, qt)
		}
		return models.Answer{Text: &s}, nil

	case models.TypeCalculation:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return models.Answer{}, fmt.Errorf("%w: calculation expects a number", ErrValidation)
		}
		return models.Answer{Number: &n}, nil

	default:
		return models.Answer{}, fmt.Errorf("%w: unknown question type %q", ErrValidation, qt)
	}
}

// Evaluate scores a submitted answer against the question's answer
// key. Pure: same inputs, same verdict, no side effects.
func Evaluate(q *models.Question, ans models.Answer) bool {
	switch q.Type {
	case models.TypeMultipleChoice:
		return q.AnswerKey.Choice != nil && ans.Choice != nil && *ans.Choice == *q.AnswerKey.Choice

	case models.TypeTrueFalse:
		return q.AnswerKey.Truth != nil && ans.Truth != nil && *ans.Truth == *q.AnswerKey.Truth

	case models.TypeFillBlank:
		if q.AnswerKey.Text == nil || ans.Text == nil {
			return false
		}
		return normalizeText(*ans.Text) == normalizeText(*q.AnswerKey.Text)

	case models.TypeCalculation:
		return q.AnswerKey.Number != nil && ans.Number != nil &&
			math.Abs(*ans.Number-*q.AnswerKey.Number) <= calcTolerance

	case models.TypeShortAnswer:
		if q.AnswerKey.Text == nil || ans.Text == nil {
			return false
		}
		return tokenOverlap(*q.AnswerKey.Text, *ans.Text) >= shortAnswerOverlap
	}
	return false
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenOverlap returns the fraction of key tokens that appear in the
// given answer, counting a token as found when either string contains
// the other. Deliberately lenient; a known precision limitation.
func tokenOverlap(key, given string) float64 {
	keyTokens := strings.Fields(normalizeText(key))
	givenTokens := strings.Fields(normalizeText(given))
	if len(keyTokens) == 0 {
		return 0
	}

	found := 0
	for _, kt := range keyTokens {
		for _, gt := range givenTokens {
			if strings.Contains(gt, kt) || strings.Contains(kt, gt) {
				found++
				break
			}
		}
	}
	return float64(found) / float64(len(keyTokens))
}
