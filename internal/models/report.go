package models

import "time"

type MasteryLevel string

const (
	LevelMastered     MasteryLevel = "mastered"
	LevelProficient   MasteryLevel = "proficient"
	LevelDeveloping   MasteryLevel = "developing"
	LevelNeedsSupport MasteryLevel = "needs_support"
)

type TopicReport struct {
	Topic         string       `json:"topic"`
	Attempts      int          `json:"attempts"`
	Correct       int          `json:"correct"`
	Accuracy      float64      `json:"accuracy"`
	AvgDifficulty Difficulty   `json:"avg_difficulty"`
	Level         MasteryLevel `json:"level"`
}

type SkillReport struct {
	Skill    string  `json:"skill"`
	Mastery  float64 `json:"mastery"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
}

type Report struct {
	SessionID       string        `json:"session_id"`
	Type            SessionType   `json:"type"`
	Subject         string        `json:"subject"`
	TotalQuestions  int           `json:"total_questions"`
	CorrectCount    int           `json:"correct_count"`
	OverallAccuracy float64       `json:"overall_accuracy"`
	AbilityEstimate float64       `json:"ability_estimate"`
	Topics          []TopicReport `json:"topics"`
	Skills          []SkillReport `json:"skills"`
	WeakTopics      []string      `json:"weak_topics"`
	Strengths       []string      `json:"strengths"`
	Recommendations []string      `json:"recommendations"`
	GeneratedAt     time.Time     `json:"generated_at"`
}
