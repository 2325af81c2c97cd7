package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

func TestChallengeStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	s := NewChallengeStore()

	_, err := s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrChallengeNotFound)
	assert.ErrorIs(t, s.Consume(ctx, "missing"), model.ErrChallengeNotFound)

	require.NoError(t, s.Create(ctx, model.OTPChallenge{ChallengeID: "a", Code: "111111", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, s.Create(ctx, model.OTPChallenge{ChallengeID: "b", Code: "222222", ExpiresAt: now}))

	got, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "111111", got.Code)

	require.NoError(t, s.Consume(ctx, "a"))
	assert.ErrorIs(t, s.Consume(ctx, "a"), model.ErrChallengeConsumed)

	got, err = s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, got.Consumed)

	n, err := s.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.GetByID(ctx, "b")
	assert.ErrorIs(t, err, model.ErrChallengeNotFound)
}
