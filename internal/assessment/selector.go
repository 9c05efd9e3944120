package assessment

import (
	"log"
	"math/rand"
	"sort"

	"github.com/brightlearn/assessment/internal/bank"
	"github.com/brightlearn/assessment/internal/models"
)

// Selector implements the adaptivity policy: weakest topic first, then
// band-matched difficulty, then a uniform-random pick among the
// remaining candidates. The bias is toward remediating demonstrated
// weaknesses, not toward measurement efficiency.
type Selector struct {
	bank bank.Store
}

func NewSelector(b bank.Store) *Selector {
	return &Selector{bank: b}
}

// SelectNext chooses the next question for the session, or nil when no
// topic yields an unused candidate. A nil result is the normal
// termination signal, not an error.
func (s *Selector) SelectNext(sess *models.Session) *models.Question {
	band := DifficultyBand(sess.AbilityEstimate)

	seenID := make(map[string]bool, len(sess.PresentedQuestions))
	seenPrompt := make(map[string]bool, len(sess.PresentedQuestions))
	for i := range sess.PresentedQuestions {
		seenID[sess.PresentedQuestions[i].ID] = true
		seenPrompt[sess.PresentedQuestions[i].Prompt] = true
	}

	for _, topic := range rankTopicsByWeakness(sess) {
		qs, err := s.bank.GetQuestions(sess.Subject, sess.Learner.Grade, topic, band)
		if err != nil {
			log.Printf("WARN: selector: bank lookup failed for %s/%s: %v", sess.Subject, topic, err)
			continue
		}

		var candidates []models.Question
		for _, q := range qs {
			if seenID[q.ID] || seenPrompt[q.Prompt] {
				continue
			}
			candidates = append(candidates, q)
		}

		if len(candidates) > 0 {
			q := candidates[rand.Intn(len(candidates))]
			return &q
		}
	}
	return nil
}

// rankTopicsByWeakness orders the session's target topics by ascending
// observed accuracy. Topics never attempted sort first — they are
// treated as the weakest.
func rankTopicsByWeakness(sess *models.Session) []string {
	type stat struct {
		attempts int
		correct  int
	}
	stats := make(map[string]*stat, len(sess.TargetTopics))
	for _, r := range sess.Responses {
		q := sess.QuestionByID(r.QuestionID)
		if q == nil {
			continue
		}
		st, ok := stats[q.Topic]
		if !ok {
			st = &stat{}
			stats[q.Topic] = st
		}
		st.attempts++
		if r.Correct {
			st.correct++
		}
	}

	accuracy := func(topic string) float64 {
		st, ok := stats[topic]
		if !ok || st.attempts == 0 {
			return -1 // never attempted: weakest
		}
		return float64(st.correct) / float64(st.attempts)
	}

	topics := make([]string, len(sess.TargetTopics))
	copy(topics, sess.TargetTopics)
	sort.SliceStable(topics, func(i, j int) bool {
		return accuracy(topics[i]) < accuracy(topics[j])
	})
	return topics
}
