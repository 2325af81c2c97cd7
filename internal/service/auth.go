package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
	"github.com/robfig/cron/v3"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/validate"
)

const (
	otpAlphabet = "0123456789"
	otpLength   = 6
)

// AuthConfig tunes the mock OTP flow.
type AuthConfig struct {
	TTL           time.Duration
	SendDelay     time.Duration
	VerifyDelay   time.Duration
	SweepSchedule string
}

type Auth struct {
	store        *state.Store
	challenges   model.ChallengeStore
	tokenService *TokenService
	flusher      model.Flusher
	logger       *logger.Logger
	cfg          AuthConfig

	newCode func() string
	newID   func() string
	now     func() time.Time

	sweeper *cron.Cron
}

func NewAuth(
	store *state.Store,
	challenges model.ChallengeStore,
	tokenManager model.TokenManager,
	flusher model.Flusher,
	logger *logger.Logger,
	cfg AuthConfig,
) (*Auth, error) {
	newCode, err := nanoid.CustomASCII(otpAlphabet, otpLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create otp generator: %w", err)
	}

	if cfg.TTL <= 0 {
		cfg.TTL = model.OTPChallengeDuration
	}

	return &Auth{
		store:        store,
		challenges:   challenges,
		tokenService: NewTokenService(tokenManager, store, logger),
		flusher:      flusher,
		logger:       logger,
		cfg:          cfg,
		newCode:      newCode,
		newID:        uuid.NewString,
		now:          time.Now,
	}, nil
}

// Tokens exposes the token service used to authenticate requests.
func (a *Auth) Tokens() *TokenService {
	return a.tokenService
}

// Session returns the current session.
func (a *Auth) Session() model.Session {
	return a.store.Session()
}

func (a *Auth) RequestOTP(ctx context.Context, countryCode, phoneNumber string) (model.OTPRequest, error) {
	a.logger.Debug("Auth service: otp requested",
		"country_code", countryCode)

	if err := validate.Phone(countryCode, phoneNumber); err != nil {
		return model.OTPRequest{}, err
	}

	if err := sleep(ctx, a.cfg.SendDelay); err != nil {
		return model.OTPRequest{}, err
	}

	challenge := model.OTPChallenge{
		ChallengeID: a.newID(),
		UserID:      countryCode + phoneNumber,
		Code:        a.newCode(),
		ExpiresAt:   a.now().Add(a.cfg.TTL),
	}

	err := a.challenges.Create(ctx, challenge)
	if err != nil {
		a.logger.Error("Auth service: failed to create otp challenge",
			"user_id", challenge.UserID,
			"error", err.Error())
		return model.OTPRequest{}, fmt.Errorf("failed to create otp challenge: %w", err)
	}

	a.logger.Info("Auth service: otp sent",
		"user_id", challenge.UserID,
		"challenge_id", challenge.ChallengeID)

	return model.OTPRequest{
		ChallengeID: challenge.ChallengeID,
		UserID:      challenge.UserID,
		Code:        challenge.Code,
		ExpiresAt:   challenge.ExpiresAt,
	}, nil
}

func (a *Auth) VerifyOTP(ctx context.Context, challengeID, code string) (model.SessionResult, error) {
	a.logger.Debug("Auth service: verifying otp",
		"challenge_id", challengeID)

	if err := validate.OTP(code); err != nil {
		return model.SessionResult{}, err
	}

	if err := sleep(ctx, a.cfg.VerifyDelay); err != nil {
		return model.SessionResult{}, err
	}

	challenge, err := a.challenges.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, model.ErrChallengeNotFound) {
			return model.SessionResult{}, err
		}
		a.logger.Error("Auth service: failed to get otp challenge",
			"challenge_id", challengeID,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to get otp challenge: %w", err)
	}

	if challenge.Consumed {
		return model.SessionResult{}, model.ErrChallengeConsumed
	}
	if challenge.Expired(a.now()) {
		return model.SessionResult{}, model.ErrChallengeExpired
	}
	if challenge.Code != code {
		a.logger.Info("Auth service: otp mismatch",
			"challenge_id", challengeID)
		return model.SessionResult{}, &model.InvalidOTPError{Hint: challenge.Code}
	}

	err = a.challenges.Consume(ctx, challengeID)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to consume otp challenge: %w", err)
	}

	accessToken, err := a.tokenService.Issue(challenge.UserID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", challenge.UserID,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.store.Dispatch(state.LoginSucceeded{UserID: challenge.UserID, DisplayName: challenge.UserID})

	a.logger.Info("Auth service: login completed successfully",
		"user_id", challenge.UserID)

	return model.SessionResult{
		Session:     a.store.Session(),
		AccessToken: accessToken,
	}, nil
}

// Logout clears the session and waits until the cleared state is persisted.
// Room buckets are kept.
func (a *Auth) Logout(ctx context.Context) error {
	userID := a.store.Session().UserID
	a.logger.Debug("Auth service: logging out", "user_id", userID)

	a.store.Dispatch(state.LoggedOut{})

	if a.flusher != nil {
		if err := a.flusher.Flush(ctx); err != nil {
			a.logger.Error("Auth service: failed to flush state on logout",
				"user_id", userID,
				"error", err.Error())
			return fmt.Errorf("failed to flush state: %w", err)
		}
	}

	a.logger.Info("Auth service: logged out", "user_id", userID)
	return nil
}

// SweepExpired removes challenges past their deadline.
func (a *Auth) SweepExpired(ctx context.Context) (int, error) {
	n, err := a.challenges.DeleteExpired(ctx, a.now())
	if err != nil {
		a.logger.Error("Auth service: failed to sweep otp challenges", "error", err.Error())
		return 0, fmt.Errorf("failed to delete expired challenges: %w", err)
	}
	if n > 0 {
		a.logger.Info("Auth service: swept expired otp challenges", "count", n)
	}
	return n, nil
}

// StartSweeper schedules SweepExpired on cfg.SweepSchedule.
func (a *Auth) StartSweeper() error {
	if a.cfg.SweepSchedule == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(a.cfg.SweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, _ = a.SweepExpired(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", a.cfg.SweepSchedule, err)
	}

	c.Start()
	a.sweeper = c
	return nil
}

// StopSweeper stops the scheduler and waits for a running sweep to finish.
func (a *Auth) StopSweeper(ctx context.Context) error {
	if a.sweeper == nil {
		return nil
	}

	select {
	case <-a.sweeper.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
