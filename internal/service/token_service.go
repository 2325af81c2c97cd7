package service

import (
	"context"
	"fmt"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
)

// TokenService issues session tokens and checks them against the live session.
// A token stops working as soon as the session is logged out, even before it expires.
type TokenService struct {
	manager model.TokenManager
	store   *state.Store
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store *state.Store, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger}
}

func (s *TokenService) Issue(userID string) (string, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// Verify returns the user id of a valid token bound to the current session.
func (s *TokenService) Verify(_ context.Context, token string) (string, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return "", fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	session := s.store.Session()
	if !session.Authenticated || session.UserID != userID {
		s.logger.Debug("Token service: token does not match session", "user_id", userID)
		return "", model.ErrUnauthenticated
	}

	return userID, nil
}
