package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/mocks"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/memory"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/testutil"
)

func newTestAuth(t *testing.T, challenges model.ChallengeStore, tokens model.TokenManager, flusher model.Flusher) (*Auth, *state.Store) {
	t.Helper()
	store := state.NewStore()
	a, err := NewAuth(store, challenges, tokens, flusher, testutil.MakeNoopLogger(), AuthConfig{TTL: time.Minute})
	require.NoError(t, err)
	return a, store
}

func TestAuth_RequestOTP(t *testing.T) {
	ctx := context.Background()
	challenges := memory.NewChallengeStore()
	a, _ := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

	req, err := a.RequestOTP(ctx, "+91", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", req.UserID)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), req.Code)
	assert.NotEmpty(t, req.ChallengeID)

	stored, err := challenges.GetByID(ctx, req.ChallengeID)
	require.NoError(t, err)
	assert.Equal(t, req.Code, stored.Code)
	assert.WithinDuration(t, time.Now().Add(time.Minute), stored.ExpiresAt, 5*time.Second)
}

func TestAuth_RequestOTP_Validation(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	a, _ := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

	_, err := a.RequestOTP(context.Background(), "", "9876543210")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "countryCode", verr.Field)

	_, err = a.RequestOTP(context.Background(), "+91", "123")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phoneNumber", verr.Field)
}

func TestAuth_RequestOTP_StoreError(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	challenges.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	a, _ := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

	_, err := a.RequestOTP(context.Background(), "+91", "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create otp challenge")
}

func TestAuth_VerifyOTP_Success(t *testing.T) {
	ctx := context.Background()
	tokens := mocks.NewTokenManager(t)
	tokens.On("GenerateAccessToken", "+919876543210").Return("token-1", nil)

	a, store := newTestAuth(t, memory.NewChallengeStore(), tokens, nil)

	req, err := a.RequestOTP(ctx, "+91", "9876543210")
	require.NoError(t, err)

	res, err := a.VerifyOTP(ctx, req.ChallengeID, req.Code)
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.AccessToken)
	assert.True(t, res.Session.Authenticated)
	assert.Equal(t, "+919876543210", store.Session().UserID)

	_, err = a.VerifyOTP(ctx, req.ChallengeID, req.Code)
	assert.ErrorIs(t, err, model.ErrChallengeConsumed)
}

func TestAuth_VerifyOTP_WrongCode(t *testing.T) {
	ctx := context.Background()
	challenges := mocks.NewChallengeStore(t)
	challenges.On("GetByID", mock.Anything, "ch-1").Return(model.OTPChallenge{
		ChallengeID: "ch-1", UserID: "+15550000000", Code: "123456", ExpiresAt: time.Now().Add(time.Minute),
	}, nil)

	a, store := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

	_, err := a.VerifyOTP(ctx, "ch-1", "654321")
	var otpErr *model.InvalidOTPError
	require.ErrorAs(t, err, &otpErr)
	assert.Equal(t, "123456", otpErr.Hint)
	assert.Equal(t, `Invalid OTP. Please try again. Use "123456"`, err.Error())
	assert.False(t, store.Session().Authenticated)
}

func TestAuth_VerifyOTP_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		challenge model.OTPChallenge
		getErr    error
		wantErr   error
	}{
		{
			name:    "unknown challenge",
			getErr:  model.ErrChallengeNotFound,
			wantErr: model.ErrChallengeNotFound,
		},
		{
			name:      "expired",
			challenge: model.OTPChallenge{ChallengeID: "ch-1", Code: "123456", ExpiresAt: time.Now().Add(-time.Second)},
			wantErr:   model.ErrChallengeExpired,
		},
		{
			name:      "consumed",
			challenge: model.OTPChallenge{ChallengeID: "ch-1", Code: "123456", ExpiresAt: time.Now().Add(time.Minute), Consumed: true},
			wantErr:   model.ErrChallengeConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			challenges := mocks.NewChallengeStore(t)
			challenges.On("GetByID", mock.Anything, "ch-1").Return(tt.challenge, tt.getErr)
			a, _ := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

			_, err := a.VerifyOTP(context.Background(), "ch-1", "123456")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuth_VerifyOTP_InvalidFormat(t *testing.T) {
	a, _ := newTestAuth(t, mocks.NewChallengeStore(t), mocks.NewTokenManager(t), nil)

	_, err := a.VerifyOTP(context.Background(), "ch-1", "12ab56")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAuth_VerifyOTP_HonorsContext(t *testing.T) {
	store := state.NewStore()
	a, err := NewAuth(store, mocks.NewChallengeStore(t), mocks.NewTokenManager(t), nil,
		testutil.MakeNoopLogger(), AuthConfig{VerifyDelay: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.VerifyOTP(ctx, "ch-1", "123456")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuth_Logout(t *testing.T) {
	flusher := mocks.NewFlusher(t)
	a, store := newTestAuth(t, mocks.NewChallengeStore(t), mocks.NewTokenManager(t), flusher)
	store.Dispatch(state.LoginSucceeded{UserID: "+15550000000"})
	store.Dispatch(state.SearchTermSet{UserID: "+15550000000", Term: "x"})

	flusher.On("Flush", mock.Anything).Run(func(mock.Arguments) {
		assert.False(t, store.Session().Authenticated, "session must be cleared before flush")
	}).Return(nil).Once()

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, store.Session().Authenticated)

	_, ok := store.Bucket("+15550000000")
	assert.True(t, ok, "buckets survive logout")
}

func TestAuth_Logout_FlushError(t *testing.T) {
	flusher := mocks.NewFlusher(t)
	flusher.On("Flush", mock.Anything).Return(errors.New("disk full"))
	a, _ := newTestAuth(t, mocks.NewChallengeStore(t), mocks.NewTokenManager(t), flusher)

	err := a.Logout(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush state")
}

func TestAuth_SweepExpired(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	challenges.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).Return(2, nil).Once()
	challenges.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, errors.New("boom")).Once()
	a, _ := newTestAuth(t, challenges, mocks.NewTokenManager(t), nil)

	n, err := a.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = a.SweepExpired(context.Background())
	assert.Error(t, err)
}

func TestAuth_Sweeper(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	swept := make(chan struct{}, 10)
	challenges.On("DeleteExpired", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	}).Return(0, nil)

	store := state.NewStore()
	a, err := NewAuth(store, challenges, mocks.NewTokenManager(t), nil, testutil.MakeNoopLogger(),
		AuthConfig{SweepSchedule: "@every 1s"})
	require.NoError(t, err)

	require.NoError(t, a.StartSweeper())
	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		t.Fatal("sweeper did not run")
	}
	require.NoError(t, a.StopSweeper(context.Background()))
}

func TestAuth_StartSweeper_BadSchedule(t *testing.T) {
	a, err := NewAuth(state.NewStore(), mocks.NewChallengeStore(t), mocks.NewTokenManager(t), nil,
		testutil.MakeNoopLogger(), AuthConfig{SweepSchedule: "not a schedule"})
	require.NoError(t, err)
	assert.Error(t, a.StartSweeper())
}

func TestTokenService_Verify(t *testing.T) {
	tokens := mocks.NewTokenManager(t)
	tokens.On("ParseAccessToken", "good").Return("+15550000000", nil)
	tokens.On("ParseAccessToken", "bad").Return("", errors.New("signature invalid"))

	store := state.NewStore()
	svc := NewTokenService(tokens, store, testutil.MakeNoopLogger())

	_, err := svc.Verify(context.Background(), "good")
	assert.ErrorIs(t, err, model.ErrUnauthenticated, "no session yet")

	store.Dispatch(state.LoginSucceeded{UserID: "+15550000000"})
	userID, err := svc.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "+15550000000", userID)

	_, err = svc.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	store.Dispatch(state.LoggedOut{})
	_, err = svc.Verify(context.Background(), "good")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}
