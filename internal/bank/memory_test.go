package bank

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightlearn/assessment/internal/models"
)

func questionIDs(qs []models.Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestSeededBankServesAuthoredItems(t *testing.T) {
	m := NewSeededMemory(nil)

	qs, err := m.GetQuestions("Math", "class6", "Integers", models.DifficultyBeginner)
	require.NoError(t, err)
	require.Len(t, qs, 4)
	for _, q := range qs {
		assert.Equal(t, "Math", q.Subject)
		assert.Equal(t, "Integers", q.Topic)
		assert.Equal(t, models.DifficultyBeginner, q.Difficulty)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Skills)
	}
}

func TestLookupKeysAreNormalized(t *testing.T) {
	m := NewSeededMemory(nil)

	exact, err := m.GetQuestions("Math", "class6", "Integers", models.DifficultyIntermediate)
	require.NoError(t, err)
	loose, err := m.GetQuestions("  math ", "CLASS6", "integers", models.DifficultyIntermediate)
	require.NoError(t, err)

	assert.Equal(t, questionIDs(exact), questionIDs(loose))
}

func TestSynthesizesBankForUnknownSubject(t *testing.T) {
	m := NewMemory(nil)

	qs, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyIntermediate)
	require.NoError(t, err)
	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, "Art", q.Subject)
		assert.Equal(t, "class7", q.Grade)
		assert.Equal(t, "Painting", q.Topic)
		assert.Equal(t, models.DifficultyIntermediate, q.Difficulty)
		assert.True(t, models.ValidQuestionTypes[q.Type])
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Skills)
	}
}

func TestSynthesizedBankIsCached(t *testing.T) {
	m := NewMemory(nil)

	first, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyBeginner)
	require.NoError(t, err)
	second, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyBeginner)
	require.NoError(t, err)

	assert.Equal(t, questionIDs(first), questionIDs(second))

	// Other difficulties of the same topic come from the same cache fill.
	adv, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyAdvanced)
	require.NoError(t, err)
	assert.NotEmpty(t, adv)
}

func TestTopicMissSynthesizesWithinSeededBank(t *testing.T) {
	m := NewSeededMemory(nil)

	// Unknown topic within a seeded (subject, grade).
	synth, err := m.GetQuestions("Math", "class6", "Algebra", models.DifficultyBeginner)
	require.NoError(t, err)
	require.NotEmpty(t, synth)
	again, err := m.GetQuestions("Math", "class6", "Algebra", models.DifficultyBeginner)
	require.NoError(t, err)
	assert.Equal(t, questionIDs(synth), questionIDs(again))

	// Authored topics are untouched by the synthesis.
	authored, err := m.GetQuestions("Math", "class6", "Integers", models.DifficultyBeginner)
	require.NoError(t, err)
	assert.Len(t, authored, 4)
}

func TestResetClearsSynthesizedCache(t *testing.T) {
	m := NewMemory(nil)

	before, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyBeginner)
	require.NoError(t, err)

	m.Reset()

	after, err := m.GetQuestions("Art", "class7", "Painting", models.DifficultyBeginner)
	require.NoError(t, err)
	assert.NotEqual(t, questionIDs(before), questionIDs(after))
}

func TestConcurrentLookups(t *testing.T) {
	m := NewSeededMemory(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qs, err := m.GetQuestions("History", "class8", "Ancient Civilizations", models.DifficultyBeginner)
			assert.NoError(t, err)
			assert.NotEmpty(t, qs)
		}()
	}
	wg.Wait()
}
