// Package memory holds in-process stores used when no database is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

var _ model.ChallengeStore = (*ChallengeStore)(nil)

// ChallengeStore keeps pending OTP challenges in a map.
type ChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]model.OTPChallenge
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{challenges: make(map[string]model.OTPChallenge)}
}

func (s *ChallengeStore) Create(_ context.Context, challenge model.OTPChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[challenge.ChallengeID] = challenge
	return nil
}

func (s *ChallengeStore) GetByID(_ context.Context, challengeID string) (model.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.challenges[challengeID]
	if !ok {
		return model.OTPChallenge{}, model.ErrChallengeNotFound
	}
	return c, nil
}

func (s *ChallengeStore) Consume(_ context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.challenges[challengeID]
	if !ok {
		return model.ErrChallengeNotFound
	}
	if c.Consumed {
		return model.ErrChallengeConsumed
	}
	c.Consumed = true
	s.challenges[challengeID] = c
	return nil
}

func (s *ChallengeStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, c := range s.challenges {
		if c.Expired(now) {
			delete(s.challenges, id)
			n++
		}
	}
	return n, nil
}
