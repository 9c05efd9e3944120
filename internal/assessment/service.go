package assessment

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/brightlearn/assessment/internal/archive"
	"github.com/brightlearn/assessment/internal/bank"
	"github.com/brightlearn/assessment/internal/id"
	"github.com/brightlearn/assessment/internal/models"
)

// maxInitialQuestions caps the breadth set built at session creation.
const maxInitialQuestions = 10

// Service orchestrates the assessment lifecycle: create → present →
// respond → adapt → terminate → report. Each response is processed to
// completion under a per-session lock, so one session's state never
// mutates concurrently.
type Service struct {
	bank       bank.Store
	curriculum bank.TopicProvider
	sessions   SessionStore
	selector   *Selector
	archiver   archive.Archiver

	locks sync.Map // session id → *sync.Mutex
}

func NewService(b bank.Store, curriculum bank.TopicProvider, sessions SessionStore, archiver archive.Archiver) *Service {
	if curriculum == nil {
		curriculum = bank.NewStaticCurriculum()
	}
	return &Service{
		bank:       b,
		curriculum: curriculum,
		sessions:   sessions,
		selector:   NewSelector(b),
		archiver:   archiver,
	}
}

// ── Session Creation ────────────────────────────────────

func (s *Service) CreateSession(req models.CreateSessionRequest) (*models.Session, error) {
	if req.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}

	typ := req.Type
	if typ == "" {
		typ = models.SessionDiagnostic
	}
	cfg, ok := models.SessionTypeConfigs[typ]
	if !ok {
		return nil, fmt.Errorf("%w: unknown session type %q", ErrValidation, typ)
	}

	topics := req.Topics
	if len(topics) == 0 {
		topics = s.curriculum.DefaultTopics(req.Subject, req.Learner.Grade)
	}

	sess := &models.Session{
		ID:              id.New(),
		Type:            typ,
		State:           models.StateCreated,
		Learner:         req.Learner,
		Subject:         req.Subject,
		TargetTopics:    topics,
		AbilityEstimate: 0.5,
		KnowledgeState:  make(map[string]*models.SkillState),
		CreatedAt:       time.Now(),
	}

	var initial []models.Question
	if cfg.Adaptive {
		initial = s.buildBreadthSet(req.Subject, req.Learner.Grade, topics, min(maxInitialQuestions, cfg.ItemCap))
	} else {
		initial = s.buildFixedSet(req.Subject, req.Learner.Grade, topics, cfg.ItemCap)
	}
	if len(initial) == 0 {
		return nil, fmt.Errorf("no questions available for %s/%s", req.Subject, req.Learner.Grade)
	}

	rand.Shuffle(len(initial), func(i, j int) { initial[i], initial[j] = initial[j], initial[i] })
	sess.PresentedQuestions = initial
	sess.State = models.StateInProgress

	s.sessions.Put(sess)
	return sess, nil
}

// buildBreadthSet takes one beginner and one intermediate item per
// target topic: breadth coverage before adaptation kicks in.
func (s *Service) buildBreadthSet(subject, grade string, topics []string, limit int) []models.Question {
	seenID := make(map[string]bool)
	seenPrompt := make(map[string]bool)

	var set []models.Question
	for _, topic := range topics {
		for _, diff := range []models.Difficulty{models.DifficultyBeginner, models.DifficultyIntermediate} {
			if len(set) >= limit {
				return set
			}
			if q := s.pickOne(subject, grade, topic, diff, seenID, seenPrompt); q != nil {
				set = append(set, *q)
			}
		}
	}
	return set
}

// buildFixedSet fills the whole item cap up front for non-adaptive
// session types, cycling difficulty bands across topics.
func (s *Service) buildFixedSet(subject, grade string, topics []string, limit int) []models.Question {
	seenID := make(map[string]bool)
	seenPrompt := make(map[string]bool)
	difficulties := []models.Difficulty{
		models.DifficultyBeginner,
		models.DifficultyIntermediate,
		models.DifficultyAdvanced,
	}

	var set []models.Question
	for added := true; added && len(set) < limit; {
		added = false
		for _, diff := range difficulties {
			for _, topic := range topics {
				if len(set) >= limit {
					return set
				}
				if q := s.pickOne(subject, grade, topic, diff, seenID, seenPrompt); q != nil {
					set = append(set, *q)
					added = true
				}
			}
		}
	}
	return set
}

// pickOne fetches candidates for one (topic, difficulty) cell and
// picks an unused one at random, marking it used.
func (s *Service) pickOne(subject, grade, topic string, diff models.Difficulty, seenID, seenPrompt map[string]bool) *models.Question {
	qs, err := s.bank.GetQuestions(subject, grade, topic, diff)
	if err != nil {
		log.Printf("WARN: bank lookup failed for %s/%s/%s: %v", subject, grade, topic, err)
		return nil
	}

	var candidates []models.Question
	for _, q := range qs {
		if seenID[q.ID] || seenPrompt[q.Prompt] {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil
	}

	q := candidates[rand.Intn(len(candidates))]
	seenID[q.ID] = true
	seenPrompt[q.Prompt] = true
	return &q
}

// ── Response Processing ─────────────────────────────────

func (s *Service) SubmitResponse(sessionID string, req models.SubmitResponseRequest) (*models.SubmitResponseResponse, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if sess.State == models.StateCompleted {
		return nil, ErrAssessmentCompleted
	}

	q := sess.QuestionByID(req.QuestionID)
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, req.QuestionID)
	}
	if sess.HasAnswered(req.QuestionID) {
		return nil, fmt.Errorf("%w: question %s already answered", ErrValidation, req.QuestionID)
	}

	ans, err := ParseAnswer(q.Type, req.Answer)
	if err != nil {
		return nil, err
	}

	// Validation is done; from here on the pipeline runs in fixed
	// order: evaluator → ability estimator → knowledge tracer →
	// adaptive selector.
	correct := Evaluate(q, ans)

	sess.Responses = append(sess.Responses, models.Response{
		QuestionID:       req.QuestionID,
		RawAnswer:        string(req.Answer),
		Correct:          correct,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Timestamp:        time.Now(),
	})
	sess.AbilityEstimate = UpdateAbility(sess.AbilityEstimate, correct, q.Difficulty)
	UpdateKnowledge(sess.KnowledgeState, q.Skills, correct)

	cfg := models.SessionTypeConfigs[sess.Type]
	complete := false
	if len(sess.Responses) >= cfg.ItemCap {
		complete = true
	} else if cfg.Adaptive && len(sess.PresentedQuestions) < cfg.ItemCap {
		if next := s.selector.SelectNext(sess); next != nil {
			sess.PresentedQuestions = append(sess.PresentedQuestions, *next)
		} else {
			// Selection exhausted: normal completion, not an error.
			complete = true
		}
	} else if sess.NextUnanswered() == nil {
		complete = true
	}

	if complete {
		s.completeSession(sess)
	}
	s.sessions.Put(sess)

	var next *models.ServedQuestion
	if !complete {
		if nq := sess.NextUnanswered(); nq != nil {
			served := nq.ToServed()
			next = &served
		}
	}

	correctCount := 0
	for _, r := range sess.Responses {
		if r.Correct {
			correctCount++
		}
	}

	return &models.SubmitResponseResponse{
		Feedback: models.Feedback{
			Correct:     correct,
			AnswerKey:   q.AnswerKey,
			Explanation: q.Explanation,
		},
		NextQuestion: next,
		Progress: models.Progress{
			Answered:        len(sess.Responses),
			ItemCap:         cfg.ItemCap,
			CorrectCount:    correctCount,
			Accuracy:        float64(correctCount) / float64(len(sess.Responses)),
			AbilityEstimate: sess.AbilityEstimate,
		},
		IsComplete: complete,
	}, nil
}

func (s *Service) completeSession(sess *models.Session) {
	now := time.Now()
	sess.State = models.StateCompleted
	sess.CompletedAt = &now

	if s.archiver != nil {
		report := GenerateReport(sess)
		if err := s.archiver.ArchiveCompleted(context.Background(), sess, report); err != nil {
			log.Printf("WARN: failed to archive session %s: %v", sess.ID, err)
		}
	}
}

// ── Lookup ──────────────────────────────────────────────

func (s *Service) GetSession(sessionID string) (*models.Session, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

func (s *Service) GetReport(sessionID string) (*models.Report, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if sess.State != models.StateCompleted {
		return nil, fmt.Errorf("%w: assessment still in progress", ErrValidation)
	}
	return GenerateReport(sess), nil
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
