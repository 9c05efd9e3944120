package assessment

import "github.com/brightlearn/assessment/internal/models"

// learningRate controls the step size of ability updates. 0.3 gives
// fast early movement with diminishing returns near the bounds.
const learningRate = 0.3

// UpdateAbility returns the new ability estimate after one graded
// response. The step shrinks as the estimate approaches either bound,
// so the result always stays in [0,1]:
//
//	correct:   a + 0.3 × (1 − a)
//	incorrect: a − 0.3 × a
//
// The item's difficulty intentionally does not scale the step; see
// DESIGN.md for why that simplification is preserved.
func UpdateAbility(current float64, correct bool, difficulty models.Difficulty) float64 {
	if correct {
		return current + learningRate*(1-current)
	}
	return current - learningRate*current
}

// DifficultyBand maps an ability estimate to the difficulty band the
// selector should target next.
func DifficultyBand(ability float64) models.Difficulty {
	switch {
	case ability < 0.3:
		return models.DifficultyBeginner
	case ability < 0.7:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyAdvanced
	}
}
