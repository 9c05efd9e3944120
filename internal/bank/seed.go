package bank

import "github.com/brightlearn/assessment/internal/models"

func seedQ(qid string, typ models.QuestionType, grade, topic string, diff models.Difficulty,
	prompt string, key models.AnswerKey, expl string, skills ...string) models.Question {
	subject := "Math"
	if grade == "class7" && (topic == "Heat" || topic == "Nutrition in Plants") {
		subject = "Science"
	}
	return models.Question{
		ID:          qid,
		Type:        typ,
		Prompt:      prompt,
		AnswerKey:   key,
		Explanation: expl,
		Skills:      skills,
		Subject:     subject,
		Grade:       grade,
		Topic:       topic,
		Difficulty:  diff,
	}
}

// SeedQuestions returns the built-in authored bank. cmd/seed loads the
// same set into Postgres.
func SeedQuestions() []models.Question {
	qs := []models.Question{
		// ── Math / class6 / Integers ────────────────────────
		seedQ("m6-int-b1", models.TypeMultipleChoice, "class6", "Integers", models.DifficultyBeginner,
			"Which of these numbers is an integer?",
			models.ChoiceKey(0),
			"Integers are whole numbers and their negatives; 4 qualifies, the others do not.",
			"integer_concepts"),
		seedQ("m6-int-b2", models.TypeTrueFalse, "class6", "Integers", models.DifficultyBeginner,
			"True or false: every whole number is an integer.",
			models.TruthKey(true),
			"The integers contain all whole numbers together with their negatives.",
			"integer_concepts"),
		seedQ("m6-int-b3", models.TypeCalculation, "class6", "Integers", models.DifficultyBeginner,
			"Calculate: -3 + 5",
			models.NumberKey(2),
			"Starting at -3 and moving 5 to the right on the number line lands on 2.",
			"integer_operations"),
		seedQ("m6-int-b4", models.TypeFillBlank, "class6", "Integers", models.DifficultyBeginner,
			"Integers greater than zero are called ____ integers.",
			models.TextKey("positive"),
			"Integers split into positive integers, negative integers and zero.",
			"integer_concepts"),
		seedQ("m6-int-i1", models.TypeCalculation, "class6", "Integers", models.DifficultyIntermediate,
			"Calculate: (-4) × 6",
			models.NumberKey(-24),
			"A negative times a positive is negative: 4 × 6 = 24, so the answer is -24.",
			"integer_operations"),
		seedQ("m6-int-i2", models.TypeMultipleChoice, "class6", "Integers", models.DifficultyIntermediate,
			"Which number is smaller: -7 or -2?",
			models.ChoiceKey(0),
			"-7 lies further left on the number line than -2, so it is smaller.",
			"number_comparison"),
		seedQ("m6-int-i3", models.TypeFillBlank, "class6", "Integers", models.DifficultyIntermediate,
			"The additive inverse of -9 is ____.",
			models.TextKey("9"),
			"A number plus its additive inverse is zero: -9 + 9 = 0.",
			"integer_operations"),
		seedQ("m6-int-i4", models.TypeTrueFalse, "class6", "Integers", models.DifficultyIntermediate,
			"True or false: the product of two negative integers is negative.",
			models.TruthKey(false),
			"Two negatives multiply to a positive: (-2) × (-3) = 6.",
			"integer_operations"),
		seedQ("m6-int-a1", models.TypeCalculation, "class6", "Integers", models.DifficultyAdvanced,
			"Evaluate: (-12) ÷ 3 − (-5)",
			models.NumberKey(1),
			"(-12) ÷ 3 = -4, and subtracting -5 adds 5: -4 + 5 = 1.",
			"integer_operations"),
		seedQ("m6-int-a2", models.TypeCalculation, "class6", "Integers", models.DifficultyAdvanced,
			"The temperature is 6°C and drops by 4°C every hour. What is the temperature after 3 hours?",
			models.NumberKey(-6),
			"A drop of 4°C for 3 hours is -12°C in total: 6 - 12 = -6.",
			"applied_arithmetic", "integer_operations"),
		seedQ("m6-int-a3", models.TypeMultipleChoice, "class6", "Integers", models.DifficultyAdvanced,
			"Which expression is equal to -1?",
			models.ChoiceKey(0),
			"(-3) + 2 = -1; the other options evaluate to 1, 6 and 1.",
			"integer_operations", "number_comparison"),
		seedQ("m6-int-a4", models.TypeShortAnswer, "class6", "Integers", models.DifficultyAdvanced,
			"In your own words: what happens when you add two negative integers?",
			models.TextKey("the result is a negative integer with a larger absolute value"),
			"Adding two negatives moves further left on the number line, so the sum is more negative than either term.",
			"integer_concepts", "integer_operations"),

		// ── Math / class6 / Fractions ───────────────────────
		seedQ("m6-fra-b1", models.TypeMultipleChoice, "class6", "Fractions", models.DifficultyBeginner,
			"Which fraction is equal to one half?",
			models.ChoiceKey(0),
			"2/4 simplifies to 1/2; none of the others do.",
			"fraction_concepts"),
		seedQ("m6-fra-b2", models.TypeCalculation, "class6", "Fractions", models.DifficultyBeginner,
			"What is 1/4 + 1/4, written as a decimal?",
			models.NumberKey(0.5),
			"1/4 + 1/4 = 2/4 = 1/2 = 0.5.",
			"fraction_operations"),
		seedQ("m6-fra-i1", models.TypeCalculation, "class6", "Fractions", models.DifficultyIntermediate,
			"What is 3/4 of 20?",
			models.NumberKey(15),
			"20 ÷ 4 = 5, and 3 × 5 = 15.",
			"fraction_operations"),
		seedQ("m6-fra-i2", models.TypeTrueFalse, "class6", "Fractions", models.DifficultyIntermediate,
			"True or false: 2/3 is greater than 3/4.",
			models.TruthKey(false),
			"On a common denominator, 2/3 = 8/12 and 3/4 = 9/12, so 3/4 is greater.",
			"fraction_concepts", "number_comparison"),
		seedQ("m6-fra-a1", models.TypeCalculation, "class6", "Fractions", models.DifficultyAdvanced,
			"Calculate: 2/5 ÷ 1/10",
			models.NumberKey(4),
			"Dividing by 1/10 multiplies by 10: 2/5 × 10 = 4.",
			"fraction_operations"),
		seedQ("m6-fra-a2", models.TypeFillBlank, "class6", "Fractions", models.DifficultyAdvanced,
			"A fraction whose numerator is larger than its denominator is called an ____ fraction.",
			models.TextKey("improper"),
			"Fractions worth more than one whole are improper fractions.",
			"fraction_concepts"),

		// ── Math / class6 / Decimals ────────────────────────
		seedQ("m6-dec-b1", models.TypeCalculation, "class6", "Decimals", models.DifficultyBeginner,
			"Calculate: 0.3 + 0.4",
			models.NumberKey(0.7),
			"Add the tenths: 3 tenths + 4 tenths = 7 tenths = 0.7.",
			"decimal_operations"),
		seedQ("m6-dec-b2", models.TypeTrueFalse, "class6", "Decimals", models.DifficultyBeginner,
			"True or false: 0.5 and 0.50 are equal.",
			models.TruthKey(true),
			"Trailing zeros after the decimal point do not change the value.",
			"decimal_concepts"),
		seedQ("m6-dec-i1", models.TypeCalculation, "class6", "Decimals", models.DifficultyIntermediate,
			"Calculate: 1.2 × 0.5",
			models.NumberKey(0.6),
			"Half of 1.2 is 0.6.",
			"decimal_operations"),
		seedQ("m6-dec-i2", models.TypeMultipleChoice, "class6", "Decimals", models.DifficultyIntermediate,
			"Which decimal is the largest?",
			models.ChoiceKey(1),
			"Compare tenths first: 0.9 beats 0.85, 0.81 and 0.799.",
			"decimal_concepts", "number_comparison"),
		seedQ("m6-dec-a1", models.TypeCalculation, "class6", "Decimals", models.DifficultyAdvanced,
			"Calculate: 7.2 ÷ 0.9",
			models.NumberKey(8),
			"7.2 ÷ 0.9 = 72 ÷ 9 = 8.",
			"decimal_operations"),
		seedQ("m6-dec-a2", models.TypeFillBlank, "class6", "Decimals", models.DifficultyAdvanced,
			"Moving the decimal point one place to the right multiplies a number by ____.",
			models.TextKey("10"),
			"Each place value step is a factor of ten.",
			"decimal_concepts"),

		// ── Science / class7 ────────────────────────────────
		seedQ("s7-heat-b1", models.TypeTrueFalse, "class7", "Heat", models.DifficultyBeginner,
			"True or false: heat flows from hotter objects to colder objects.",
			models.TruthKey(true),
			"Heat always transfers from the higher temperature body to the lower one.",
			"heat_transfer"),
		seedQ("s7-heat-i1", models.TypeMultipleChoice, "class7", "Heat", models.DifficultyIntermediate,
			"Which of these materials is the best conductor of heat?",
			models.ChoiceKey(0),
			"Metals such as copper conduct heat well; wood, plastic and glass are insulators.",
			"conductors_insulators"),
		seedQ("s7-heat-a1", models.TypeCalculation, "class7", "Heat", models.DifficultyAdvanced,
			"A liquid warms from 22°C to 31°C. By how many degrees did its temperature rise?",
			models.NumberKey(9),
			"31 - 22 = 9 degrees.",
			"heat_transfer", "applied_arithmetic"),
		seedQ("s7-pla-b1", models.TypeTrueFalse, "class7", "Nutrition in Plants", models.DifficultyBeginner,
			"True or false: photosynthesis happens mainly in the leaves.",
			models.TruthKey(true),
			"Leaves hold most of the chlorophyll, so they are the main site of photosynthesis.",
			"plant_nutrition"),
		seedQ("s7-pla-i1", models.TypeFillBlank, "class7", "Nutrition in Plants", models.DifficultyIntermediate,
			"Organisms that prepare their own food are called ____.",
			models.TextKey("autotrophs"),
			"Plants are autotrophs: they synthesize food from carbon dioxide and water.",
			"plant_nutrition"),
		seedQ("s7-pla-a1", models.TypeShortAnswer, "class7", "Nutrition in Plants", models.DifficultyAdvanced,
			"Why do most leaves appear green?",
			models.TextKey("leaves contain the green pigment chlorophyll"),
			"Chlorophyll absorbs red and blue light and reflects green.",
			"plant_nutrition"),
	}

	// Option lists live here so the seed table above stays scannable.
	setOptions(qs, "m6-int-b1", "4", "1/2", "0.75", "√2")
	setOptions(qs, "m6-int-i2", "-7", "-2", "They are equal", "They cannot be compared")
	setOptions(qs, "m6-int-a3", "(-3) + 2", "3 − 2", "(-3) × (-2)", "(-4) ÷ (-4)")
	setOptions(qs, "m6-fra-b1", "2/4", "1/3", "3/5", "2/3")
	setOptions(qs, "m6-dec-i2", "0.81", "0.9", "0.799", "0.85")
	setOptions(qs, "s7-heat-i1", "Copper", "Wood", "Plastic", "Glass")
	return qs
}

func setOptions(qs []models.Question, qid string, options ...string) {
	for i := range qs {
		if qs[i].ID == qid {
			qs[i].Options = options
			return
		}
	}
}
