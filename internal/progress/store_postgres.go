package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studypal/engine/internal/classify"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed attempt log. Each attempt is a single
// INSERT, so concurrent writers for the same user never race on a
// read-modify-write.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the store and ensures the quiz_attempts table
// exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS quiz_attempts (
			id         BIGSERIAL PRIMARY KEY,
			user_id    TEXT NOT NULL,
			topic      TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			correct    BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return nil, fmt.Errorf("ensure quiz_attempts table: %w", err)
	}
	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS quiz_attempts_user_idx
		ON quiz_attempts (user_id, id)`)
	if err != nil {
		return nil, fmt.Errorf("ensure quiz_attempts index: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) LogAttempt(ctx context.Context, a Attempt) error {
	if a.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if a.Topic == "" {
		return fmt.Errorf("topic is required")
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO quiz_attempts (user_id, topic, difficulty, correct, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.UserID, a.Topic, string(a.Difficulty), a.Correct, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (s *PostgresStore) Attempts(ctx context.Context, userID string) ([]Attempt, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT user_id, topic, difficulty, correct, created_at
		 FROM quiz_attempts
		 WHERE user_id = $1
		 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var difficulty string
		if err := rows.Scan(&a.UserID, &a.Topic, &difficulty, &a.Correct, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Difficulty = classify.Difficulty(difficulty)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}
