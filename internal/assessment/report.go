package assessment

import (
	"sort"
	"time"

	"github.com/brightlearn/assessment/internal/models"
)

// strengthThreshold marks a topic as a strength.
const strengthThreshold = 0.75

var lowAccuracyRecommendations = []string{
	"Revisit the fundamentals of your weakest topics with worked examples before attempting new problems.",
	"Practice beginner-level questions daily and move up only when they feel comfortable.",
	"Ask a teacher or tutor to walk through the topics marked as needing support.",
}

var midAccuracyRecommendations = []string{
	"Keep practicing intermediate questions in your weaker topics.",
	"Re-read the explanation for every question you missed and redo it a day later.",
	"Mix a few advanced questions into your stronger topics to stretch yourself.",
}

var highAccuracyRecommendations = []string{
	"Challenge yourself with advanced questions across your strongest topics.",
	"Explain the concepts you have mastered to someone else to consolidate them.",
	"Broaden into neighbouring topics now that the current ones are solid.",
}

// GenerateReport aggregates a finished session into topic and skill
// analytics. Pure function over the session's final state; the
// session is not mutated.
func GenerateReport(sess *models.Session) *models.Report {
	type topicAgg struct {
		attempts int
		correct  int
		rankSum  int
	}

	aggs := make(map[string]*topicAgg)
	for _, t := range sess.TargetTopics {
		aggs[t] = &topicAgg{}
	}

	correctCount := 0
	for _, r := range sess.Responses {
		if r.Correct {
			correctCount++
		}
		q := sess.QuestionByID(r.QuestionID)
		if q == nil {
			continue
		}
		agg, ok := aggs[q.Topic]
		if !ok {
			agg = &topicAgg{}
			aggs[q.Topic] = agg
		}
		agg.attempts++
		if r.Correct {
			agg.correct++
		}
		agg.rankSum += q.Difficulty.Rank()
	}

	total := len(sess.Responses)
	overall := 0.0
	if total > 0 {
		overall = float64(correctCount) / float64(total)
	}

	topics := make([]models.TopicReport, 0, len(aggs))
	for topic, agg := range aggs {
		tr := models.TopicReport{Topic: topic, Attempts: agg.attempts, Correct: agg.correct}
		avgRank := 0.0
		if agg.attempts > 0 {
			tr.Accuracy = float64(agg.correct) / float64(agg.attempts)
			avgRank = float64(agg.rankSum) / float64(agg.attempts)
		}
		tr.AvgDifficulty = bandFromRank(avgRank)
		tr.Level = classifyTopic(tr.Accuracy, avgRank, agg.attempts)
		topics = append(topics, tr)
	}

	// Weakness order: unattempted first, then ascending accuracy.
	sort.SliceStable(topics, func(i, j int) bool {
		return topicSortKey(topics[i]) < topicSortKey(topics[j])
	})

	var weak, strengths []string
	for _, tr := range topics {
		if tr.Attempts > 0 && tr.Accuracy >= strengthThreshold {
			strengths = append(strengths, tr.Topic)
		} else {
			weak = append(weak, tr.Topic)
		}
	}
	// Strengths rank descending by accuracy.
	sort.SliceStable(strengths, func(i, j int) bool {
		return topicAccuracy(topics, strengths[i]) > topicAccuracy(topics, strengths[j])
	})

	skills := make([]models.SkillReport, 0, len(sess.KnowledgeState))
	for skill, ss := range sess.KnowledgeState {
		skills = append(skills, models.SkillReport{
			Skill:    skill,
			Mastery:  ss.Mastery,
			Attempts: ss.Attempts,
			Correct:  ss.Correct,
		})
	}
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Mastery != skills[j].Mastery {
			return skills[i].Mastery < skills[j].Mastery
		}
		return skills[i].Skill < skills[j].Skill
	})

	return &models.Report{
		SessionID:       sess.ID,
		Type:            sess.Type,
		Subject:         sess.Subject,
		TotalQuestions:  total,
		CorrectCount:    correctCount,
		OverallAccuracy: overall,
		AbilityEstimate: sess.AbilityEstimate,
		Topics:          topics,
		Skills:          skills,
		WeakTopics:      weak,
		Strengths:       strengths,
		Recommendations: recommendationsFor(overall),
		GeneratedAt:     time.Now(),
	}
}

// classifyTopic maps accuracy and average difficulty to the four-level
// scale. Mastery additionally requires the accuracy to have been
// earned at an average difficulty of at least intermediate.
func classifyTopic(accuracy, avgRank float64, attempts int) models.MasteryLevel {
	if attempts == 0 {
		return models.LevelNeedsSupport
	}
	switch {
	case accuracy >= 0.8 && avgRank >= float64(models.DifficultyIntermediate.Rank()):
		return models.LevelMastered
	case accuracy >= 0.7:
		return models.LevelProficient
	case accuracy >= 0.5:
		return models.LevelDeveloping
	default:
		return models.LevelNeedsSupport
	}
}

func bandFromRank(avg float64) models.Difficulty {
	switch {
	case avg >= 1.5:
		return models.DifficultyAdvanced
	case avg >= 0.5:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyBeginner
	}
}

func recommendationsFor(accuracy float64) []string {
	switch {
	case accuracy < 0.5:
		return lowAccuracyRecommendations
	case accuracy < 0.7:
		return midAccuracyRecommendations
	default:
		return highAccuracyRecommendations
	}
}

func topicSortKey(tr models.TopicReport) float64 {
	if tr.Attempts == 0 {
		return -1
	}
	return tr.Accuracy
}

func topicAccuracy(topics []models.TopicReport, topic string) float64 {
	for _, tr := range topics {
		if tr.Topic == topic {
			return tr.Accuracy
		}
	}
	return 0
}
