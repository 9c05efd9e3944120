package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS questions (
		id          VARCHAR(64) PRIMARY KEY,
		qtype       VARCHAR(20) NOT NULL,
		prompt      TEXT NOT NULL,
		options     TEXT,
		answer_key  TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT '',
		skills      TEXT,
		subject     VARCHAR(100) NOT NULL,
		grade       VARCHAR(50) NOT NULL,
		topic       VARCHAR(100) NOT NULL,
		difficulty  VARCHAR(20) NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_questions_bank ON questions(subject, grade, topic, difficulty);

	CREATE TABLE IF NOT EXISTS archived_sessions (
		id              VARCHAR(64) PRIMARY KEY,
		session_type    VARCHAR(20) NOT NULL,
		learner_id      VARCHAR(64) NOT NULL,
		subject         VARCHAR(100) NOT NULL,
		grade           VARCHAR(50) NOT NULL,
		ability         DOUBLE PRECISION NOT NULL,
		response_count  INT NOT NULL,
		session_json    TEXT NOT NULL,
		created_at      TIMESTAMP WITH TIME ZONE NOT NULL,
		completed_at    TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_archived_sessions_learner ON archived_sessions(learner_id);

	CREATE TABLE IF NOT EXISTS archived_reports (
		session_id   VARCHAR(64) PRIMARY KEY REFERENCES archived_sessions(id),
		accuracy     DOUBLE PRECISION NOT NULL,
		report_json  TEXT NOT NULL,
		generated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
