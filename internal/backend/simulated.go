// Package backend provides the in-process stand-in for a remote rooms API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	nanoid "github.com/jaevor/go-nanoid"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// ErrRejected is returned by a simulated call the failure injector rejected.
var ErrRejected = errors.New("simulated backend rejected the request")

var _ model.RoomBackend = (*Simulated)(nil)

// Latency holds artificial delays per operation.
type Latency struct {
	List   time.Duration
	Create time.Duration
	Delete time.Duration
}

// FailureFunc decides whether a call to op for userID fails.
type FailureFunc func(op, userID string) error

// Simulated answers room calls after a delay. ListRooms always returns the seed
// rooms; created rooms are not remembered, matching the mock API it stands in for.
type Simulated struct {
	latency Latency
	fail    FailureFunc
	newID   func() string
	now     func() time.Time
	logger  *logger.Logger
}

// NewSimulated creates a simulated backend with the given latencies.
func NewSimulated(latency Latency, logger *logger.Logger) (*Simulated, error) {
	gen, err := nanoid.Standard(12)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	return &Simulated{
		latency: latency,
		newID:   func() string { return "room-" + gen() },
		now:     time.Now,
		logger:  logger,
	}, nil
}

// WithFailures installs a failure injector and returns the backend.
func (s *Simulated) WithFailures(fail FailureFunc) *Simulated {
	s.fail = fail
	return s
}

func (s *Simulated) ListRooms(ctx context.Context, userID string) ([]model.Room, error) {
	if err := s.wait(ctx, "list", userID, s.latency.List); err != nil {
		return nil, err
	}
	return SeedRooms(s.now()), nil
}

func (s *Simulated) CreateRoom(ctx context.Context, userID string, room model.NewRoom) (model.Room, error) {
	if err := s.wait(ctx, "create", userID, s.latency.Create); err != nil {
		return model.Room{}, err
	}

	created := model.Room{
		ID:        s.newID(),
		Title:     room.Title,
		CreatedAt: room.CreatedAt,
		Messages:  []model.Message{},
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = s.now()
	}
	return created, nil
}

func (s *Simulated) DeleteRoom(ctx context.Context, userID string, roomID string) error {
	return s.wait(ctx, "delete", userID, s.latency.Delete)
}

func (s *Simulated) wait(ctx context.Context, op, userID string, d time.Duration) error {
	s.logger.Debug("Simulated backend: call", "op", op, "user_id", userID, "latency", d)

	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.fail != nil {
		if err := s.fail(op, userID); err != nil {
			s.logger.Info("Simulated backend: call rejected", "op", op, "user_id", userID, "error", err.Error())
			return err
		}
	}
	return nil
}
