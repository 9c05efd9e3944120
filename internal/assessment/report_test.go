package assessment

import (
	"testing"
	"time"

	"github.com/brightlearn/assessment/internal/models"
)

func TestClassifyTopic(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		avgRank  float64
		attempts int
		want     models.MasteryLevel
	}{
		{"high accuracy at depth", 0.85, 1.5, 4, models.LevelMastered},
		{"high accuracy on beginner items only", 0.85, 0.0, 4, models.LevelProficient},
		{"solid accuracy", 0.72, 1.0, 4, models.LevelProficient},
		{"middling accuracy", 0.6, 1.0, 5, models.LevelDeveloping},
		{"low accuracy", 0.3, 0.5, 4, models.LevelNeedsSupport},
		{"never attempted", 0.0, 0.0, 0, models.LevelNeedsSupport},
	}

	for _, tt := range tests {
		got := classifyTopic(tt.accuracy, tt.avgRank, tt.attempts)
		if got != tt.want {
			t.Errorf("%s: classifyTopic(%f, %f, %d) = %s, want %s",
				tt.name, tt.accuracy, tt.avgRank, tt.attempts, got, tt.want)
		}
	}
}

func TestBandFromRank(t *testing.T) {
	tests := []struct {
		avg  float64
		want models.Difficulty
	}{
		{0.0, models.DifficultyBeginner},
		{0.4, models.DifficultyBeginner},
		{0.5, models.DifficultyIntermediate},
		{1.4, models.DifficultyIntermediate},
		{1.5, models.DifficultyAdvanced},
		{2.0, models.DifficultyAdvanced},
	}
	for _, tt := range tests {
		if got := bandFromRank(tt.avg); got != tt.want {
			t.Errorf("bandFromRank(%f) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func TestRecommendationsFollowAccuracy(t *testing.T) {
	if got := recommendationsFor(0.3)[0]; got != lowAccuracyRecommendations[0] {
		t.Errorf("low accuracy picked the wrong set: %q", got)
	}
	if got := recommendationsFor(0.6)[0]; got != midAccuracyRecommendations[0] {
		t.Errorf("mid accuracy picked the wrong set: %q", got)
	}
	if got := recommendationsFor(0.9)[0]; got != highAccuracyRecommendations[0] {
		t.Errorf("high accuracy picked the wrong set: %q", got)
	}
}

func TestGenerateReport(t *testing.T) {
	reportQ := func(qid, topic string, diff models.Difficulty) models.Question {
		return models.Question{
			ID: qid, Type: models.TypeTrueFalse, Prompt: "prompt " + qid,
			AnswerKey: models.TruthKey(true),
			Subject:   "Math", Grade: "class6", Topic: topic, Difficulty: diff,
		}
	}

	now := time.Now()
	sess := &models.Session{
		ID:           "sess-report",
		Type:         models.SessionDiagnostic,
		State:        models.StateCompleted,
		Subject:      "Math",
		TargetTopics: []string{"Integers", "Fractions", "Decimals"},
		PresentedQuestions: []models.Question{
			reportQ("q1", "Integers", models.DifficultyIntermediate),
			reportQ("q2", "Integers", models.DifficultyAdvanced),
			reportQ("q3", "Fractions", models.DifficultyBeginner),
		},
		Responses: []models.Response{
			{QuestionID: "q1", Correct: true},
			{QuestionID: "q2", Correct: true},
			{QuestionID: "q3", Correct: false},
		},
		AbilityEstimate: 0.65,
		KnowledgeState: map[string]*models.SkillState{
			"integer_operations": {Mastery: 0.9, Attempts: 2, Correct: 2},
			"fraction_concepts":  {Mastery: 0.15, Attempts: 1, Correct: 0},
			"number_comparison":  {Mastery: 0.15, Attempts: 1, Correct: 1},
		},
		CreatedAt:   now,
		CompletedAt: &now,
	}

	report := GenerateReport(sess)

	if report.TotalQuestions != 3 || report.CorrectCount != 2 {
		t.Errorf("totals = %d/%d, want 2/3", report.CorrectCount, report.TotalQuestions)
	}
	if report.OverallAccuracy < 0.66 || report.OverallAccuracy > 0.67 {
		t.Errorf("overall accuracy = %f, want ≈0.667", report.OverallAccuracy)
	}

	// Weakness order: Decimals (never attempted) first, then Fractions
	// (0%), then Integers (100%).
	wantOrder := []string{"Decimals", "Fractions", "Integers"}
	for i, tr := range report.Topics {
		if tr.Topic != wantOrder[i] {
			t.Fatalf("topic order = %v, want %v", topicNames(report.Topics), wantOrder)
		}
	}

	if len(report.WeakTopics) != 2 || report.WeakTopics[0] != "Decimals" || report.WeakTopics[1] != "Fractions" {
		t.Errorf("weak topics = %v, want [Decimals Fractions]", report.WeakTopics)
	}
	if len(report.Strengths) != 1 || report.Strengths[0] != "Integers" {
		t.Errorf("strengths = %v, want [Integers]", report.Strengths)
	}

	byTopic := make(map[string]models.TopicReport)
	for _, tr := range report.Topics {
		byTopic[tr.Topic] = tr
	}
	// Integers: 2/2 correct at an average rank of 1.5 → mastered.
	if got := byTopic["Integers"].Level; got != models.LevelMastered {
		t.Errorf("Integers level = %s, want mastered", got)
	}
	if got := byTopic["Integers"].AvgDifficulty; got != models.DifficultyAdvanced {
		t.Errorf("Integers avg difficulty = %s, want advanced", got)
	}
	if got := byTopic["Fractions"].Level; got != models.LevelNeedsSupport {
		t.Errorf("Fractions level = %s, want needs_support", got)
	}
	if got := byTopic["Decimals"].Level; got != models.LevelNeedsSupport {
		t.Errorf("unattempted Decimals level = %s, want needs_support", got)
	}

	// Skills sort by ascending mastery, then name.
	wantSkills := []string{"fraction_concepts", "number_comparison", "integer_operations"}
	for i, sr := range report.Skills {
		if sr.Skill != wantSkills[i] {
			t.Fatalf("skill order = %v, want %v", report.Skills, wantSkills)
		}
	}

	// 2/3 accuracy lands in the mid recommendation band.
	if len(report.Recommendations) == 0 || report.Recommendations[0] != midAccuracyRecommendations[0] {
		t.Errorf("recommendations = %v, want the mid-accuracy set", report.Recommendations)
	}

	// The session itself is left untouched.
	if len(sess.Responses) != 3 || sess.State != models.StateCompleted {
		t.Error("report generation must not mutate the session")
	}
}

func topicNames(trs []models.TopicReport) []string {
	names := make([]string, len(trs))
	for i, tr := range trs {
		names[i] = tr.Topic
	}
	return names
}
