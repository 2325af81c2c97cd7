package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/mocks"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/testutil"
)

const testUser = "+919876543210"

func newTestRooms(t *testing.T, backend model.RoomBackend, responder model.Responder) (*Rooms, *state.Store) {
	t.Helper()
	store := state.NewStore()
	return NewRooms(store, backend, responder, testutil.MakeNoopLogger(), 0), store
}

func seedRoom(id, title string, createdAt time.Time) model.Room {
	return model.Room{ID: id, Title: title, CreatedAt: createdAt, Messages: []model.Message{}}
}

func TestRooms_FetchRooms(t *testing.T) {
	now := time.Now()
	backend := mocks.NewRoomBackend(t)
	backend.On("ListRooms", mock.Anything, testUser).Return([]model.Room{seedRoom("1", "General Chat", now)}, nil)

	svc, _ := newTestRooms(t, backend, nil)

	b, err := svc.FetchRooms(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSucceeded, b.LoadStatus)
	require.Len(t, b.Rooms, 1)
	assert.Equal(t, "General Chat", b.Rooms[0].Title)
}

func TestRooms_FetchRooms_Failure(t *testing.T) {
	backend := mocks.NewRoomBackend(t)
	backend.On("ListRooms", mock.Anything, testUser).Return(nil, errors.New("network down"))

	svc, _ := newTestRooms(t, backend, nil)

	b, err := svc.FetchRooms(context.Background(), testUser)
	require.Error(t, err)
	assert.Equal(t, model.StatusFailed, b.LoadStatus)
	assert.Equal(t, "network down", b.Error)
}

func TestRooms_FetchRooms_StaleResultIsDiscarded(t *testing.T) {
	now := time.Now()
	release := make(chan struct{})
	first := make(chan struct{})

	backend := mocks.NewRoomBackend(t)
	backend.On("ListRooms", mock.Anything, testUser).Run(func(mock.Arguments) {
		close(first)
		<-release
	}).Return([]model.Room{seedRoom("old", "Old", now)}, nil).Once()
	backend.On("ListRooms", mock.Anything, testUser).Return([]model.Room{seedRoom("new", "New", now)}, nil).Once()

	svc, _ := newTestRooms(t, backend, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = svc.FetchRooms(context.Background(), testUser)
	}()

	<-first
	b, err := svc.FetchRooms(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, b.Rooms, 1)
	assert.Equal(t, "new", b.Rooms[0].ID)

	close(release)
	wg.Wait()

	b = svc.Bucket(testUser)
	require.Len(t, b.Rooms, 1)
	assert.Equal(t, "new", b.Rooms[0].ID, "older fetch must not overwrite newer result")
	assert.Equal(t, model.StatusSucceeded, b.LoadStatus)
}

func TestRooms_CreateRoom(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	backend := mocks.NewRoomBackend(t)
	backend.On("CreateRoom", mock.Anything, testUser, model.NewRoom{Title: "Ideas", CreatedAt: createdAt}).
		Return(seedRoom("room-abc", "Ideas", createdAt), nil)

	svc, _ := newTestRooms(t, backend, nil)

	room, err := svc.CreateRoom(context.Background(), testUser, "  Ideas ", createdAt)
	require.NoError(t, err)
	assert.Equal(t, "room-abc", room.ID)

	b := svc.Bucket(testUser)
	require.Len(t, b.Rooms, 1)
	assert.Equal(t, model.StatusIdle, b.LoadStatus, "create does not change load status")
}

func TestRooms_CreateRoom_InvalidTitle(t *testing.T) {
	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), nil)

	_, err := svc.CreateRoom(context.Background(), testUser, "   ", time.Now())
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, ok := store.Bucket(testUser)
	assert.False(t, ok, "validation failures never reach the registry")
}

func TestRooms_CreateRoom_Rejected(t *testing.T) {
	backend := mocks.NewRoomBackend(t)
	backend.On("CreateRoom", mock.Anything, testUser, mock.Anything).Return(model.Room{}, errors.New("rejected"))

	svc, store := newTestRooms(t, backend, nil)

	_, err := svc.CreateRoom(context.Background(), testUser, "Ideas", time.Now())
	require.Error(t, err)
	_, ok := store.Bucket(testUser)
	assert.False(t, ok)
}

func TestRooms_DeleteRoom(t *testing.T) {
	now := time.Now()
	backend := mocks.NewRoomBackend(t)
	backend.On("DeleteRoom", mock.Anything, testUser, "1").Return(nil)
	backend.On("DeleteRoom", mock.Anything, testUser, "2").Return(errors.New("boom"))

	svc, store := newTestRooms(t, backend, nil)
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "A", now)})
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("2", "B", now)})

	require.NoError(t, svc.DeleteRoom(context.Background(), testUser, "1"))
	require.Error(t, svc.DeleteRoom(context.Background(), testUser, "2"))

	b := svc.Bucket(testUser)
	require.Len(t, b.Rooms, 1)
	assert.Equal(t, "2", b.Rooms[0].ID)
}

func TestRooms_VisibleRoomsAndSearch(t *testing.T) {
	base := time.Now()
	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), nil)
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "Work notes", base)})
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("2", "Holiday", base.Add(time.Minute))})
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("3", "Homework", base.Add(2*time.Minute))})

	visible := svc.VisibleRooms(testUser)
	require.Len(t, visible, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{visible[0].ID, visible[1].ID, visible[2].ID})

	svc.SetSearchTerm(testUser, "WORK")
	visible = svc.VisibleRooms(testUser)
	require.Len(t, visible, 2)
	assert.Equal(t, "3", visible[0].ID)
	assert.Equal(t, "1", visible[1].ID)

	assert.Empty(t, svc.VisibleRooms("+10000000000"))
}

func TestRooms_Room(t *testing.T) {
	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), nil)
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "A", time.Now())})

	r, err := svc.Room(testUser, "1")
	require.NoError(t, err)
	assert.Equal(t, "A", r.Title)

	_, err = svc.Room(testUser, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRooms_SendMessage(t *testing.T) {
	reply := model.Message{ID: "r1", Role: model.RoleAssistant, Content: "Our pricing starts at $10"}
	responder := mocks.NewResponder(t)
	responder.On("Respond", "What is the pricing?").Return(reply)

	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), responder)
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "A", time.Now())})

	userMsg, got, err := svc.SendMessage(context.Background(), testUser, "1", " What is the pricing? ", nil)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, userMsg.Role)
	assert.Equal(t, "What is the pricing?", userMsg.Content)
	assert.Equal(t, reply, got)

	room, err := svc.Room(testUser, "1")
	require.NoError(t, err)
	require.Len(t, room.Messages, 2)
	assert.Equal(t, userMsg.ID, room.Messages[0].ID)
	assert.Equal(t, "r1", room.Messages[1].ID)
}

func TestRooms_SendMessage_Rejections(t *testing.T) {
	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), mocks.NewResponder(t))
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "A", time.Now())})

	var verr *model.ValidationError

	_, _, err := svc.SendMessage(context.Background(), testUser, "1", "  ", nil)
	assert.ErrorAs(t, err, &verr)

	_, _, err = svc.SendMessage(context.Background(), testUser, "1", "see file",
		[]model.Attachment{{Name: "a.pdf", MimeType: "application/pdf"}})
	assert.ErrorAs(t, err, &verr)

	_, _, err = svc.SendMessage(context.Background(), testUser, "missing", "hello", nil)
	assert.ErrorIs(t, err, model.ErrNotFound)

	room, _ := svc.Room(testUser, "1")
	assert.Empty(t, room.Messages)
}

func TestRooms_SendMessage_ImageOnly(t *testing.T) {
	responder := mocks.NewResponder(t)
	responder.On("Respond", "").Return(model.Message{ID: "r1", Role: model.RoleAssistant, Content: "fallback"})

	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), responder)
	store.Dispatch(state.RoomCreated{UserID: testUser, Room: seedRoom("1", "A", time.Now())})

	img := model.Attachment{Name: "cat.png", URL: "blob:cat", MimeType: "image/png"}
	userMsg, _, err := svc.SendMessage(context.Background(), testUser, "1", "", []model.Attachment{img})
	require.NoError(t, err)
	assert.Equal(t, []model.Attachment{img}, userMsg.Attachments)
}

func TestRooms_Watch(t *testing.T) {
	svc, store := newTestRooms(t, mocks.NewRoomBackend(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan model.UserBucket, 16)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, testUser, func(b model.UserBucket) error {
			updates <- b
			return nil
		})
	}()

	initial := <-updates
	assert.Equal(t, model.StatusIdle, initial.LoadStatus)

	store.Dispatch(state.SearchTermSet{UserID: "+10000000000", Term: "other user"})
	store.Dispatch(state.SearchTermSet{UserID: testUser, Term: "mine"})

	select {
	case b := <-updates:
		assert.Equal(t, "mine", b.SearchTerm)
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRooms_Watch_SendError(t *testing.T) {
	svc, _ := newTestRooms(t, mocks.NewRoomBackend(t), nil)
	wantErr := errors.New("client gone")

	err := svc.Watch(context.Background(), testUser, func(model.UserBucket) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestRooms_EnsureLoaded(t *testing.T) {
	backend := mocks.NewRoomBackend(t)
	backend.On("ListRooms", mock.Anything, testUser).Return([]model.Room{seedRoom("1", "General Chat", time.Now())}, nil).Once()

	svc, _ := newTestRooms(t, backend, nil)

	b, err := svc.EnsureLoaded(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSucceeded, b.LoadStatus)

	b, err = svc.EnsureLoaded(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, b.Rooms, 1)
}
