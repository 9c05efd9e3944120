package bank

import (
	"log"
	"strings"
	"sync"

	"github.com/brightlearn/assessment/internal/models"
)

// topicBank maps normalized topic → difficulty → items.
type topicBank map[string]map[models.Difficulty][]models.Question

// Memory is the in-process question bank. It starts from whatever was
// seeded via AddQuestions and synthesizes a generic placeholder bank
// for any (subject, grade) or topic it has no entry for. Synthesized
// entries are cached per key, so repeated calls are idempotent within
// a process lifetime.
type Memory struct {
	curriculum TopicProvider

	mu    sync.RWMutex
	banks map[string]topicBank // key: subject|grade
}

func NewMemory(curriculum TopicProvider) *Memory {
	if curriculum == nil {
		curriculum = NewStaticCurriculum()
	}
	return &Memory{
		curriculum: curriculum,
		banks:      make(map[string]topicBank),
	}
}

// NewSeededMemory returns a memory bank preloaded with the built-in
// authored items.
func NewSeededMemory(curriculum TopicProvider) *Memory {
	m := NewMemory(curriculum)
	m.AddQuestions(SeedQuestions())
	return m
}

func bankKey(subject, grade string) string {
	return strings.ToLower(strings.TrimSpace(subject)) + "|" + strings.ToLower(strings.TrimSpace(grade))
}

func topicKey(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// AddQuestions seeds authored items into the bank. Items carry their
// own subject/grade/topic/difficulty.
func (m *Memory) AddQuestions(qs []models.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range qs {
		key := bankKey(q.Subject, q.Grade)
		tb, ok := m.banks[key]
		if !ok {
			tb = make(topicBank)
			m.banks[key] = tb
		}
		tk := topicKey(q.Topic)
		if tb[tk] == nil {
			tb[tk] = make(map[models.Difficulty][]models.Question)
		}
		tb[tk][q.Difficulty] = append(tb[tk][q.Difficulty], q)
	}
}

// Reset clears all entries, including cached synthesized banks.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks = make(map[string]topicBank)
}

func (m *Memory) GetQuestions(subject, grade, topic string, difficulty models.Difficulty) ([]models.Question, error) {
	key := bankKey(subject, grade)
	tk := topicKey(topic)

	m.mu.RLock()
	if tb, ok := m.banks[key]; ok {
		if byDiff, ok := tb[tk]; ok {
			qs := copyQuestions(byDiff[difficulty])
			m.mu.RUnlock()
			return qs, nil
		}
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	tb, ok := m.banks[key]
	if !ok {
		// No bank for this (subject, grade) at all: synthesize the
		// whole default curriculum so later topic requests hit the cache.
		log.Printf("WARN: bank: no entries for %s/%s, synthesizing generic bank", subject, grade)
		tb = make(topicBank)
		for _, t := range m.curriculum.DefaultTopics(subject, grade) {
			tb[topicKey(t)] = synthesizeTopic(subject, grade, t)
		}
		m.banks[key] = tb
	}

	if _, ok := tb[tk]; !ok {
		// Bank exists but not this topic.
		log.Printf("WARN: bank: no %q entries for %s/%s, synthesizing", topic, subject, grade)
		tb[tk] = synthesizeTopic(subject, grade, topic)
	}

	return copyQuestions(tb[tk][difficulty]), nil
}

func copyQuestions(qs []models.Question) []models.Question {
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}
