package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// Ensure ChallengeRepository implements the model.ChallengeStore interface.
var _ model.ChallengeStore = (*ChallengeRepository)(nil)

type ChallengeRepository struct {
	db *Connection
}

func NewChallengeRepository(db *Connection) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge model.OTPChallenge) error {
	const query = `
        INSERT INTO otp_challenges (challenge_id, user_id, code, expires_at, consumed)
        VALUES ($1, $2, $3, $4, $5)
    `

	if _, err := r.db.ExecContext(ctx, query,
		challenge.ChallengeID,
		challenge.UserID,
		challenge.Code,
		challenge.ExpiresAt,
		challenge.Consumed,
	); err != nil {
		return fmt.Errorf("failed to create otp challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) GetByID(ctx context.Context, challengeID string) (model.OTPChallenge, error) {
	const query = `
        SELECT challenge_id, user_id, code, expires_at, consumed
        FROM otp_challenges
        WHERE challenge_id = $1
    `
	var c model.OTPChallenge
	if err := r.db.QueryRowContext(ctx, query, challengeID).Scan(
		&c.ChallengeID,
		&c.UserID,
		&c.Code,
		&c.ExpiresAt,
		&c.Consumed,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OTPChallenge{}, model.ErrChallengeNotFound
		}
		return model.OTPChallenge{}, fmt.Errorf("failed to get otp challenge: %w", err)
	}
	return c, nil
}

// Consume marks the challenge used. Consuming an already used challenge fails.
func (r *ChallengeRepository) Consume(ctx context.Context, challengeID string) error {
	const query = `
        UPDATE otp_challenges
        SET consumed = TRUE
        WHERE challenge_id = $1 AND consumed = FALSE
    `
	res, err := r.db.ExecContext(ctx, query, challengeID)
	if err != nil {
		return fmt.Errorf("failed to consume otp challenge: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to consume otp challenge: %w", err)
	}
	if n == 0 {
		return model.ErrChallengeConsumed
	}
	return nil
}

func (r *ChallengeRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	const query = `DELETE FROM otp_challenges WHERE expires_at <= $1`

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired otp challenges: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted otp challenges: %w", err)
	}
	return int(n), nil
}
