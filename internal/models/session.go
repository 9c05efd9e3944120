package models

import "time"

type SessionType string

const (
	SessionDiagnostic SessionType = "diagnostic"
	SessionFormative  SessionType = "formative"
	SessionSummative  SessionType = "summative"
	SessionPractice   SessionType = "practice"
	SessionMockExam   SessionType = "mock_exam"
)

// SessionTypeConfig fixes the item cap and adaptivity for a session
// type. Fixed-set types build their full question set up front and
// never consult the adaptive selector.
type SessionTypeConfig struct {
	ItemCap  int
	Adaptive bool
}

var SessionTypeConfigs = map[SessionType]SessionTypeConfig{
	SessionDiagnostic: {ItemCap: 10, Adaptive: true},
	SessionFormative:  {ItemCap: 6, Adaptive: true},
	SessionPractice:   {ItemCap: 8, Adaptive: true},
	SessionSummative:  {ItemCap: 15, Adaptive: false},
	SessionMockExam:   {ItemCap: 20, Adaptive: false},
}

type SessionState string

const (
	StateCreated    SessionState = "created"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
)

type LearnerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type Response struct {
	QuestionID       string    `json:"question_id"`
	RawAnswer        string    `json:"raw_answer"`
	Correct          bool      `json:"correct"`
	TimeSpentSeconds float64   `json:"time_spent_seconds"`
	Timestamp        time.Time `json:"timestamp"`
}

// SkillState tracks per-skill mastery for one session. Mastery is a
// smoothed estimate in [0,1]; Attempts/Correct are raw counters.
type SkillState struct {
	Mastery  float64 `json:"mastery"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
}

type Session struct {
	ID                 string                 `json:"id"`
	Type               SessionType            `json:"type"`
	State              SessionState           `json:"state"`
	Learner            LearnerProfile         `json:"learner"`
	Subject            string                 `json:"subject"`
	TargetTopics       []string               `json:"target_topics"`
	PresentedQuestions []Question             `json:"presented_questions"`
	Responses          []Response             `json:"responses"`
	AbilityEstimate    float64                `json:"ability_estimate"`
	KnowledgeState     map[string]*SkillState `json:"knowledge_state"`
	CreatedAt          time.Time              `json:"created_at"`
	CompletedAt        *time.Time             `json:"completed_at,omitempty"`
}

// QuestionByID returns the presented question with the given id, or nil.
func (s *Session) QuestionByID(questionID string) *Question {
	for i := range s.PresentedQuestions {
		if s.PresentedQuestions[i].ID == questionID {
			return &s.PresentedQuestions[i]
		}
	}
	return nil
}

// HasPresented reports whether a question id is already in the
// presented log. The controller relies on this to keep ids unique.
func (s *Session) HasPresented(questionID string) bool {
	return s.QuestionByID(questionID) != nil
}

// HasAnswered reports whether a response for the question was recorded.
func (s *Session) HasAnswered(questionID string) bool {
	for i := range s.Responses {
		if s.Responses[i].QuestionID == questionID {
			return true
		}
	}
	return false
}

// NextUnanswered returns the earliest presented question without a
// response, or nil if every presented question has been answered.
func (s *Session) NextUnanswered() *Question {
	for i := range s.PresentedQuestions {
		if !s.HasAnswered(s.PresentedQuestions[i].ID) {
			return &s.PresentedQuestions[i]
		}
	}
	return nil
}

// ItemCap returns the response limit for the session's type.
func (s *Session) ItemCap() int {
	cfg, ok := SessionTypeConfigs[s.Type]
	if !ok {
		return SessionTypeConfigs[SessionDiagnostic].ItemCap
	}
	return cfg.ItemCap
}
