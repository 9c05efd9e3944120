package bank

import "github.com/brightlearn/assessment/internal/models"

// Store serves question items keyed by subject, grade, topic and
// difficulty. Implementations must be safe for concurrent use.
//
// A store may return an empty slice without error when it has nothing
// for the key; callers decide whether that is a miss worth falling
// back on. The synthesizing memory store never returns empty.
type Store interface {
	GetQuestions(subject, grade, topic string, difficulty models.Difficulty) ([]models.Question, error)
}
