package assessment

import "errors"

var (
	// ErrSessionNotFound: the session id does not exist in the store.
	ErrSessionNotFound = errors.New("assessment session not found")

	// ErrQuestionNotFound: the question id was never presented in the
	// referenced session.
	ErrQuestionNotFound = errors.New("question not presented in this session")

	// ErrAssessmentCompleted: a response was submitted after the
	// session reached its terminal state.
	ErrAssessmentCompleted = errors.New("assessment already completed")

	// ErrValidation: malformed submission, rejected before any state
	// is touched.
	ErrValidation = errors.New("invalid submission")
)
