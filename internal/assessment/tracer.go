package assessment

import "github.com/brightlearn/assessment/internal/models"

// masteryBlend is the weight kept on the previous mastery value when
// folding in the fresh accuracy. A smoothing filter, not full
// Bayesian knowledge tracing — there are no slip/guess parameters.
const masteryBlend = 0.3

// initialMastery is the prior for a skill on first exposure.
const initialMastery = 0.5

// UpdateKnowledge applies one graded response to the per-skill state.
// Every skill tagged on the answered question gets its counters
// bumped and its mastery re-blended from the observed accuracy.
func UpdateKnowledge(state map[string]*models.SkillState, skills []string, correct bool) {
	for _, skill := range skills {
		ss, ok := state[skill]
		if !ok {
			ss = &models.SkillState{Mastery: initialMastery}
			state[skill] = ss
		}

		ss.Attempts++
		if correct {
			ss.Correct++
		}

		correctRate := float64(ss.Correct) / float64(ss.Attempts)
		ss.Mastery = masteryBlend*ss.Mastery + (1-masteryBlend)*correctRate
	}
}
