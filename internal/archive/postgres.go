package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/brightlearn/assessment/internal/models"
)

// Postgres persists completed sessions and reports. The full
// structures are stored as JSON alongside a few queryable columns.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (a *Postgres) ArchiveCompleted(ctx context.Context, sess *models.Session, report *models.Report) error {
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO archived_sessions (id, session_type, learner_id, subject, grade, ability, response_count, session_json, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		sess.ID, sess.Type, sess.Learner.ID, sess.Subject, sess.Learner.Grade,
		sess.AbilityEstimate, len(sess.Responses), sessionJSON, sess.CreatedAt, sess.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("archive session %s: %w", sess.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO archived_reports (session_id, accuracy, report_json, generated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (session_id) DO NOTHING`,
		sess.ID, report.OverallAccuracy, reportJSON, report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("archive report %s: %w", sess.ID, err)
	}

	return tx.Commit()
}
