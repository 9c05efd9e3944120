package bank

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brightlearn/assessment/internal/models"
)

// Postgres serves authored questions from the questions table. It
// never synthesizes; wrap it in a Fallback with a Memory bank to get
// the availability guarantee.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) GetQuestions(subject, grade, topic string, difficulty models.Difficulty) ([]models.Question, error) {
	rows, err := p.db.Query(
		`SELECT id, qtype, prompt, options, answer_key, explanation, skills, subject, grade, topic, difficulty
		 FROM questions
		 WHERE LOWER(subject) = $1 AND LOWER(grade) = $2 AND LOWER(topic) = $3 AND difficulty = $4`,
		strings.ToLower(subject), strings.ToLower(grade), strings.ToLower(topic), difficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var qs []models.Question
	for rows.Next() {
		var q models.Question
		var options, answerKey, skills []byte
		if err := rows.Scan(&q.ID, &q.Type, &q.Prompt, &options, &answerKey, &q.Explanation,
			&skills, &q.Subject, &q.Grade, &q.Topic, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if len(options) > 0 {
			if err := json.Unmarshal(options, &q.Options); err != nil {
				return nil, fmt.Errorf("decode options for %s: %w", q.ID, err)
			}
		}
		if err := json.Unmarshal(answerKey, &q.AnswerKey); err != nil {
			return nil, fmt.Errorf("decode answer key for %s: %w", q.ID, err)
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &q.Skills); err != nil {
				return nil, fmt.Errorf("decode skills for %s: %w", q.ID, err)
			}
		}
		qs = append(qs, q)
	}
	return qs, rows.Err()
}

// SaveQuestion upserts one authored question. Used by cmd/seed and by
// hosting applications that author their own banks.
func (p *Postgres) SaveQuestion(q models.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	answerKey, err := json.Marshal(q.AnswerKey)
	if err != nil {
		return fmt.Errorf("encode answer key: %w", err)
	}
	skills, err := json.Marshal(q.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	_, err = p.db.Exec(
		`INSERT INTO questions (id, qtype, prompt, options, answer_key, explanation, skills, subject, grade, topic, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   qtype = EXCLUDED.qtype, prompt = EXCLUDED.prompt, options = EXCLUDED.options,
		   answer_key = EXCLUDED.answer_key, explanation = EXCLUDED.explanation,
		   skills = EXCLUDED.skills, subject = EXCLUDED.subject, grade = EXCLUDED.grade,
		   topic = EXCLUDED.topic, difficulty = EXCLUDED.difficulty`,
		q.ID, q.Type, q.Prompt, options, answerKey, q.Explanation, skills,
		q.Subject, q.Grade, q.Topic, q.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}
