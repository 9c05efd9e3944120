package archive

import (
	"context"
	"log"

	"github.com/brightlearn/assessment/internal/models"
)

// Archiver receives a completed session and its report for durable
// storage. The engine only holds sessions in memory for the duration
// of an attempt; anything longer-lived goes through here.
type Archiver interface {
	ArchiveCompleted(ctx context.Context, sess *models.Session, report *models.Report) error
}

// LogArchiver is the no-database implementation: it just records that
// a session finished.
type LogArchiver struct{}

func NewLogArchiver() *LogArchiver {
	return &LogArchiver{}
}

func (a *LogArchiver) ArchiveCompleted(_ context.Context, sess *models.Session, report *models.Report) error {
	log.Printf("[archive] session %s completed: %d/%d correct, ability %.2f",
		sess.ID, report.CorrectCount, report.TotalQuestions, report.AbilityEstimate)
	return nil
}
