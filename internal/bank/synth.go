package bank

import (
	"fmt"

	"github.com/brightlearn/assessment/internal/id"
	"github.com/brightlearn/assessment/internal/models"
)

// Generic skill tags attached to synthesized placeholder items.
var genericSkills = map[models.Difficulty][]string{
	models.DifficultyBeginner:     {"basic_understanding"},
	models.DifficultyIntermediate: {"concept_application"},
	models.DifficultyAdvanced:     {"problem_solving", "critical_thinking"},
}

var difficultyLabel = map[models.Difficulty]string{
	models.DifficultyBeginner:     "introductory",
	models.DifficultyIntermediate: "intermediate",
	models.DifficultyAdvanced:     "advanced",
}

// synthesizeTopic builds placeholder items for every difficulty of one
// topic. The content is deliberately generic: it keeps a session
// serviceable for curricula with no authored bank, trading precision
// for availability.
func synthesizeTopic(subject, grade, topic string) map[models.Difficulty][]models.Question {
	out := make(map[models.Difficulty][]models.Question, 3)
	for _, diff := range []models.Difficulty{
		models.DifficultyBeginner,
		models.DifficultyIntermediate,
		models.DifficultyAdvanced,
	} {
		out[diff] = synthesizeItems(subject, grade, topic, diff)
	}
	return out
}

func synthesizeItems(subject, grade, topic string, diff models.Difficulty) []models.Question {
	label := difficultyLabel[diff]
	skills := genericSkills[diff]
	base := models.Question{
		Skills:     skills,
		Subject:    subject,
		Grade:      grade,
		Topic:      topic,
		Difficulty: diff,
	}

	mcq := base
	mcq.ID = id.New()
	mcq.Type = models.TypeMultipleChoice
	mcq.Prompt = fmt.Sprintf("At the %s level, which statement about %s is accurate?", label, topic)
	mcq.Options = []string{
		fmt.Sprintf("%s builds on a small set of core ideas that can be practiced step by step", topic),
		fmt.Sprintf("%s has no connection to other areas of %s", topic, subject),
		fmt.Sprintf("%s can only be memorized, never understood", topic),
		fmt.Sprintf("%s is unrelated to everyday situations", topic),
	}
	mcq.AnswerKey = models.ChoiceKey(0)
	mcq.Explanation = fmt.Sprintf("Like most of %s, %s rests on a few core ideas that reward deliberate practice.", subject, topic)

	tf := base
	tf.ID = id.New()
	tf.Type = models.TypeTrueFalse
	tf.Prompt = fmt.Sprintf("True or false: working %s problems in %s becomes easier once its basic definitions are clear.", label, topic)
	tf.AnswerKey = models.TruthKey(true)
	tf.Explanation = fmt.Sprintf("Fluency in %s starts from its basic definitions.", topic)

	fib := base
	fib.ID = id.New()
	fib.Type = models.TypeFillBlank
	fib.Prompt = fmt.Sprintf("The study of %s begins with its ____ principles.", topic)
	fib.AnswerKey = models.TextKey("basic")
	fib.Explanation = "Every topic is approached from its basic principles first."

	calc := base
	calc.ID = id.New()
	calc.Type = models.TypeCalculation
	calc.Prompt = fmt.Sprintf("If you solve 3 practice problems on %s every day, how many do you solve in 5 days?", topic)
	calc.AnswerKey = models.NumberKey(15)
	calc.Explanation = "3 problems per day for 5 days is 3 × 5 = 15."

	return []models.Question{mcq, tf, fib, calc}
}
