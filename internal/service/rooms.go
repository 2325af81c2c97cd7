package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/validate"
)

// Rooms runs room registry operations. Backend calls happen outside the
// state store; their results are dispatched when they complete.
type Rooms struct {
	store      *state.Store
	backend    model.RoomBackend
	responder  model.Responder
	logger     *logger.Logger
	replyDelay time.Duration

	now   func() time.Time
	newID func() string
}

func NewRooms(
	store *state.Store,
	backend model.RoomBackend,
	responder model.Responder,
	logger *logger.Logger,
	replyDelay time.Duration,
) *Rooms {
	return &Rooms{
		store:      store,
		backend:    backend,
		responder:  responder,
		logger:     logger,
		replyDelay: replyDelay,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// FetchRooms reloads the user's rooms from the backend. Concurrent fetches
// are not merged; only the most recently started one may update the bucket.
func (s *Rooms) FetchRooms(ctx context.Context, userID string) (model.UserBucket, error) {
	seq := s.store.NextRequestSeq()
	s.logger.Debug("Rooms service: fetching rooms",
		"user_id", userID,
		"seq", seq)

	s.store.Dispatch(state.FetchStarted{UserID: userID, Seq: seq})

	rooms, err := s.backend.ListRooms(ctx, userID)
	if err != nil {
		if !s.store.Dispatch(state.FetchFailed{UserID: userID, Seq: seq, Error: err.Error()}) {
			s.logger.Debug("Rooms service: discarded stale fetch failure", "user_id", userID, "seq", seq)
		}
		s.logger.Error("Rooms service: failed to fetch rooms",
			"user_id", userID,
			"error", err.Error())
		return s.Bucket(userID), fmt.Errorf("failed to fetch rooms: %w", err)
	}

	if !s.store.Dispatch(state.FetchSucceeded{UserID: userID, Seq: seq, Rooms: rooms}) {
		s.logger.Debug("Rooms service: discarded stale fetch result", "user_id", userID, "seq", seq)
	} else {
		s.logger.Info("Rooms service: rooms fetched",
			"user_id", userID,
			"count", len(rooms))
	}

	return s.Bucket(userID), nil
}

// EnsureLoaded fetches the user's rooms unless they were fetched before or a
// fetch is in flight.
func (s *Rooms) EnsureLoaded(ctx context.Context, userID string) (model.UserBucket, error) {
	b, ok := s.store.Bucket(userID)
	if ok && b.LoadStatus != model.StatusIdle {
		return b, nil
	}
	return s.FetchRooms(ctx, userID)
}

// CreateRoom creates a room through the backend and appends it to the bucket.
func (s *Rooms) CreateRoom(ctx context.Context, userID, title string, createdAt time.Time) (model.Room, error) {
	title = strings.TrimSpace(title)
	s.logger.Debug("Rooms service: creating room",
		"user_id", userID,
		"title", title)

	if err := validate.RoomTitle(title); err != nil {
		return model.Room{}, err
	}

	room, err := s.backend.CreateRoom(ctx, userID, model.NewRoom{Title: title, CreatedAt: createdAt})
	if err != nil {
		s.logger.Error("Rooms service: failed to create room",
			"user_id", userID,
			"error", err.Error())
		return model.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	s.store.Dispatch(state.RoomCreated{UserID: userID, Room: room})

	s.logger.Info("Rooms service: room created",
		"user_id", userID,
		"room_id", room.ID)

	return room, nil
}

// DeleteRoom deletes a room through the backend and removes it from the bucket.
func (s *Rooms) DeleteRoom(ctx context.Context, userID, roomID string) error {
	s.logger.Debug("Rooms service: deleting room",
		"user_id", userID,
		"room_id", roomID)

	err := s.backend.DeleteRoom(ctx, userID, roomID)
	if err != nil {
		s.logger.Error("Rooms service: failed to delete room",
			"user_id", userID,
			"room_id", roomID,
			"error", err.Error())
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.store.Dispatch(state.RoomDeleted{UserID: userID, RoomID: roomID})

	s.logger.Info("Rooms service: room deleted",
		"user_id", userID,
		"room_id", roomID)

	return nil
}

// AppendMessage appends msg to a room thread. It reports false when the
// bucket or room does not exist.
func (s *Rooms) AppendMessage(userID, roomID string, msg model.Message) bool {
	return s.store.Dispatch(state.MessageAppended{UserID: userID, RoomID: roomID, Message: msg})
}

func (s *Rooms) SetSearchTerm(userID, term string) {
	s.store.Dispatch(state.SearchTermSet{UserID: userID, Term: term})
}

// Bucket returns the user's bucket, or an empty idle bucket.
func (s *Rooms) Bucket(userID string) model.UserBucket {
	b, ok := s.store.Bucket(userID)
	if !ok {
		return model.NewUserBucket()
	}
	return b
}

// VisibleRooms returns the rooms matching the bucket's search term, newest first.
func (s *Rooms) VisibleRooms(userID string) []model.Room {
	return state.VisibleRooms(s.Bucket(userID))
}

func (s *Rooms) Room(userID, roomID string) (model.Room, error) {
	b := s.Bucket(userID)
	i := b.FindRoom(roomID)
	if i < 0 {
		return model.Room{}, model.ErrNotFound
	}
	return b.Rooms[i], nil
}

// SendMessage appends the user's prompt to a room, waits the reply delay and
// appends the assistant's answer.
func (s *Rooms) SendMessage(ctx context.Context, userID, roomID, prompt string, attachments []model.Attachment) (model.Message, model.Message, error) {
	s.logger.Debug("Rooms service: sending message",
		"user_id", userID,
		"room_id", roomID,
		"attachments", len(attachments))

	if err := validate.Prompt(prompt, attachments); err != nil {
		return model.Message{}, model.Message{}, err
	}

	if _, err := s.Room(userID, roomID); err != nil {
		return model.Message{}, model.Message{}, err
	}

	userMsg := model.Message{
		ID:        s.newID(),
		Role:      model.RoleUser,
		Content:   strings.TrimSpace(prompt),
		CreatedAt: s.now(),
	}
	if len(attachments) > 0 {
		userMsg.Attachments = append([]model.Attachment(nil), attachments...)
	}

	if !s.AppendMessage(userID, roomID, userMsg) {
		return model.Message{}, model.Message{}, model.ErrNotFound
	}

	if err := sleep(ctx, s.replyDelay); err != nil {
		return userMsg, model.Message{}, err
	}

	reply := s.responder.Respond(userMsg.Content)
	if !s.AppendMessage(userID, roomID, reply) {
		s.logger.Info("Rooms service: room gone before reply",
			"user_id", userID,
			"room_id", roomID)
		return userMsg, model.Message{}, model.ErrNotFound
	}

	s.logger.Info("Rooms service: message answered",
		"user_id", userID,
		"room_id", roomID)

	return userMsg, reply, nil
}

// Watch calls send with the user's bucket now and after every change to it,
// until ctx is done or send fails. Bursts of changes are coalesced.
func (s *Rooms) Watch(ctx context.Context, userID string, send func(model.UserBucket) error) error {
	changed := make(chan struct{}, 1)
	unsubscribe := s.store.Subscribe(func(c state.Change) {
		if !c.Touches(state.SliceRooms) {
			return
		}
		if owner, ok := state.UserOf(c.Action); ok && owner != userID {
			return
		}
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	s.logger.Debug("Rooms service: watch started", "user_id", userID)

	if err := send(s.Bucket(userID)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Rooms service: watch finished", "user_id", userID)
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-changed:
			if err := send(s.Bucket(userID)); err != nil {
				return err
			}
		}
	}
}
