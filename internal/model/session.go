package model

import (
	"context"
	"time"
)

// OTPChallengeDuration is the default TTL for pending OTP challenges.
const OTPChallengeDuration = time.Minute * 10

// Session is the authentication slice of the client state.
// UserID is the full phone number (dialing code + digits) once authenticated.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
}

// ChallengeStore persists pending OTP challenges.
type ChallengeStore interface {
	Create(ctx context.Context, challenge OTPChallenge) error
	GetByID(ctx context.Context, challengeID string) (OTPChallenge, error)
	Consume(ctx context.Context, challengeID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// OTPChallenge describes a one-time passcode sent to a phone number.
type OTPChallenge struct {
	ChallengeID string
	UserID      string
	Code        string
	ExpiresAt   time.Time
	Consumed    bool
}

// Expired reports whether the challenge is past its deadline at now.
func (c OTPChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// OTPRequest is the result of an OTP request. Code is returned to the caller
// because there is no real SMS delivery.
type OTPRequest struct {
	ChallengeID string
	UserID      string
	Code        string
	ExpiresAt   time.Time
}

// SessionResult is the result of a successful VerifyOTP.
type SessionResult struct {
	Session     Session
	AccessToken string
}
