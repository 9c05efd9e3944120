package bank

import (
	"log"

	"github.com/brightlearn/assessment/internal/models"
)

// Fallback tries the primary store first and falls back when the
// primary has nothing for the key or fails. A miss on the primary is
// not an error — it is logged for curriculum-coverage visibility and
// served from the fallback.
type Fallback struct {
	primary  Store
	fallback Store
}

func NewFallback(primary, fallback Store) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

func (f *Fallback) GetQuestions(subject, grade, topic string, difficulty models.Difficulty) ([]models.Question, error) {
	if f.primary != nil {
		qs, err := f.primary.GetQuestions(subject, grade, topic, difficulty)
		if err != nil {
			log.Printf("WARN: bank: primary store failed for %s/%s/%s: %v", subject, grade, topic, err)
		} else if len(qs) > 0 {
			return qs, nil
		} else {
			log.Printf("WARN: bank: primary store empty for %s/%s/%s (%s), using fallback", subject, grade, topic, difficulty)
		}
	}
	return f.fallback.GetQuestions(subject, grade, topic, difficulty)
}
