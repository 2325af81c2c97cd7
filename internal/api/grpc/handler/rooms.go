package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/chatapi"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
)

// RoomsService defines the room registry operations used by the handler.
type RoomsService interface {
	FetchRooms(ctx context.Context, userID string) (model.UserBucket, error)
	EnsureLoaded(ctx context.Context, userID string) (model.UserBucket, error)
	CreateRoom(ctx context.Context, userID, title string, createdAt time.Time) (model.Room, error)
	DeleteRoom(ctx context.Context, userID, roomID string) error
	Room(userID, roomID string) (model.Room, error)
	SetSearchTerm(userID, term string)
	Bucket(userID string) model.UserBucket
	SendMessage(ctx context.Context, userID, roomID, prompt string, attachments []model.Attachment) (model.Message, model.Message, error)
	Watch(ctx context.Context, userID string, send func(model.UserBucket) error) error
}

// Rooms handles gRPC endpoints for chat rooms of the authenticated user.
type Rooms struct {
	roomsService   RoomsService
	contextManager model.ContextManager
	logger         *logger.Logger
	now            func() time.Time
}

var _ chatapi.RoomsServer = (*Rooms)(nil)

// NewRooms creates a new Rooms handler.
func NewRooms(roomsService RoomsService, contextManager model.ContextManager, logger *logger.Logger) *Rooms {
	return &Rooms{
		roomsService:   roomsService,
		contextManager: contextManager,
		logger:         logger,
		now:            time.Now,
	}
}

func (h *Rooms) userID(ctx context.Context) (string, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, msgLoginRequired)
	}
	return userID, nil
}

func snapshot(b model.UserBucket) *chatapi.RoomsSnapshot {
	return &chatapi.RoomsSnapshot{
		Rooms:      state.VisibleRooms(b),
		Status:     b.LoadStatus,
		Error:      b.Error,
		SearchTerm: b.SearchTerm,
	}
}

// Fetch reloads the caller's rooms from the backend.
func (h *Rooms) Fetch(ctx context.Context, _ *chatapi.FetchRoomsRequest) (*chatapi.RoomsSnapshot, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Rooms handler: processing fetch request", "user_id", userID)

	bucket, err := h.roomsService.FetchRooms(ctx, userID)
	if err != nil {
		h.logger.Error("Rooms handler: fetch failed",
			"user_id", userID,
			"error", err.Error())
		if ctx.Err() != nil {
			return nil, handleError(ctx.Err())
		}
		msg := bucket.Error
		if msg == "" {
			msg = err.Error()
		}
		return nil, status.Error(codes.Unavailable, msg)
	}

	return snapshot(bucket), nil
}

// List returns the caller's visible rooms, loading them on first use.
// A failed load is reported through the snapshot status.
func (h *Rooms) List(ctx context.Context, _ *chatapi.ListRoomsRequest) (*chatapi.RoomsSnapshot, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	bucket, err := h.roomsService.EnsureLoaded(ctx, userID)
	if err != nil {
		h.logger.Error("Rooms handler: list failed",
			"user_id", userID,
			"error", err.Error())
		if ctx.Err() != nil {
			return nil, handleError(ctx.Err())
		}
	}

	return snapshot(bucket), nil
}

func (h *Rooms) Create(ctx context.Context, req *chatapi.CreateRoomRequest) (*chatapi.RoomResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Rooms handler: processing create request", "user_id", userID)

	room, err := h.roomsService.CreateRoom(ctx, userID, req.Title, h.now())
	if err != nil {
		h.logger.Error("Rooms handler: create failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Rooms handler: room created",
		"user_id", userID,
		"room_id", room.ID)

	return &chatapi.RoomResponse{Room: room}, nil
}

func (h *Rooms) Delete(ctx context.Context, req *chatapi.DeleteRoomRequest) (*chatapi.DeleteRoomResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Rooms handler: processing delete request",
		"user_id", userID,
		"room_id", req.RoomID)

	if err := h.roomsService.DeleteRoom(ctx, userID, req.RoomID); err != nil {
		h.logger.Error("Rooms handler: delete failed",
			"user_id", userID,
			"room_id", req.RoomID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &chatapi.DeleteRoomResponse{}, nil
}

func (h *Rooms) Get(ctx context.Context, req *chatapi.GetRoomRequest) (*chatapi.RoomResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	room, err := h.roomsService.Room(userID, req.RoomID)
	if err != nil {
		return nil, handleError(err)
	}

	return &chatapi.RoomResponse{Room: room}, nil
}

func (h *Rooms) SetSearchTerm(ctx context.Context, req *chatapi.SetSearchTermRequest) (*chatapi.RoomsSnapshot, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.roomsService.SetSearchTerm(userID, req.Term)

	return snapshot(h.roomsService.Bucket(userID)), nil
}

// SendMessage posts a prompt and waits for the assistant's reply.
func (h *Rooms) SendMessage(ctx context.Context, req *chatapi.SendMessageRequest) (*chatapi.SendMessageResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Rooms handler: processing message",
		"user_id", userID,
		"room_id", req.RoomID)

	userMsg, reply, err := h.roomsService.SendMessage(ctx, userID, req.RoomID, req.Prompt, req.Attachments)
	if err != nil {
		h.logger.Error("Rooms handler: message failed",
			"user_id", userID,
			"room_id", req.RoomID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &chatapi.SendMessageResponse{
		UserMessage: userMsg,
		Reply:       reply,
	}, nil
}

// Watch streams the caller's room list until the client goes away.
func (h *Rooms) Watch(_ *chatapi.WatchRoomsRequest, stream chatapi.RoomsWatchServer) error {
	ctx := stream.Context()
	userID, err := h.userID(ctx)
	if err != nil {
		return err
	}

	h.logger.Debug("Rooms handler: watch started", "user_id", userID)

	err = h.roomsService.Watch(ctx, userID, func(b model.UserBucket) error {
		return stream.Send(snapshot(b))
	})
	if err != nil {
		h.logger.Error("Rooms handler: watch failed",
			"user_id", userID,
			"error", err.Error())
		return handleError(err)
	}

	h.logger.Debug("Rooms handler: watch finished", "user_id", userID)
	return nil
}
