package models

import "encoding/json"

// ── Request Types ─────────────────────────────────────

type CreateSessionRequest struct {
	Learner LearnerProfile `json:"learner"`
	Type    SessionType    `json:"type,omitempty"`
	Subject string         `json:"subject"`
	Topics  []string       `json:"topics,omitempty"`
}

type SubmitResponseRequest struct {
	QuestionID       string          `json:"question_id"`
	Answer           json.RawMessage `json:"answer"`
	TimeSpentSeconds float64         `json:"time_spent_seconds,omitempty"`
}

// ── Response Types ────────────────────────────────────

type CreateSessionResponse struct {
	SessionID string           `json:"session_id"`
	Type      SessionType      `json:"type"`
	Subject   string           `json:"subject"`
	Topics    []string         `json:"topics"`
	ItemCap   int              `json:"item_cap"`
	Questions []ServedQuestion `json:"questions"`
}

type Feedback struct {
	Correct     bool      `json:"correct"`
	AnswerKey   AnswerKey `json:"answer_key"`
	Explanation string    `json:"explanation"`
}

type Progress struct {
	Answered        int     `json:"answered"`
	ItemCap         int     `json:"item_cap"`
	CorrectCount    int     `json:"correct_count"`
	Accuracy        float64 `json:"accuracy"`
	AbilityEstimate float64 `json:"ability_estimate"`
}

type SubmitResponseResponse struct {
	Feedback     Feedback        `json:"feedback"`
	NextQuestion *ServedQuestion `json:"next_question,omitempty"`
	Progress     Progress        `json:"progress"`
	IsComplete   bool            `json:"is_complete"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
