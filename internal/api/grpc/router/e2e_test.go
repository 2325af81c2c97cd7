package router

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/chatapi"
	grpcctx "github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/context"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/assistant"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/backend"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/mocks"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/service"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/memory"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/testutil"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/token"
)

type testClients struct {
	auth      chatapi.AuthClient
	rooms     chatapi.RoomsClient
	directory chatapi.DirectoryClient
}

func startServer(t *testing.T) testClients {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	store := state.NewStore()

	authService, err := service.NewAuth(store, memory.NewChallengeStore(), token.NewJWT("secret", time.Hour), nil, lg, service.AuthConfig{TTL: time.Minute})
	require.NoError(t, err)

	sim, err := backend.NewSimulated(backend.Latency{}, lg)
	require.NoError(t, err)
	roomsService := service.NewRooms(store, sim, assistant.NewGenerator(assistant.DefaultTemplates()), lg, 0)

	source := mocks.NewDirectorySource(t)
	source.On("Fetch", mock.Anything).Maybe().Return([]model.DirectoryEntry{
		{DisplayName: "India", DialCode: "+91"},
		{DisplayName: "United States", DialCode: "+1"},
	}, nil)
	directoryService := service.NewDirectory(store, source, lg)

	r := New(authService, roomsService, directoryService, authService.Tokens(), grpcctx.NewManager(), lg)
	s := r.Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return testClients{
		auth:      chatapi.NewAuthClient(conn),
		rooms:     chatapi.NewRoomsClient(conn),
		directory: chatapi.NewDirectoryClient(conn),
	}
}

func login(t *testing.T, ctx context.Context, c testClients) context.Context {
	t.Helper()

	otp, err := c.auth.RequestOTP(ctx, &chatapi.RequestOTPRequest{CountryCode: "+91", PhoneNumber: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent: "+otp.Code, otp.Message)

	wrong := "000000"
	if otp.Code == wrong {
		wrong = "111111"
	}
	_, err = c.auth.VerifyOTP(ctx, &chatapi.VerifyOTPRequest{ChallengeID: otp.ChallengeID, OTP: wrong})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Contains(t, st.Message(), otp.Code)

	verified, err := c.auth.VerifyOTP(ctx, &chatapi.VerifyOTPRequest{ChallengeID: otp.ChallengeID, OTP: otp.Code})
	require.NoError(t, err)
	require.True(t, verified.Session.Authenticated)
	assert.Equal(t, "+919876543210", verified.Session.UserID)

	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+verified.AccessToken)
}

func TestEndToEnd_RequiresToken(t *testing.T) {
	c := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.rooms.List(ctx, &chatapi.ListRoomsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer nope")
	_, err = c.rooms.List(bad, &chatapi.ListRoomsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.directory.List(ctx, &chatapi.ListDirectoryRequest{Term: "ind"})
	assert.NoError(t, err)
}

func TestEndToEnd_ChatFlow(t *testing.T) {
	c := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authed := login(t, ctx, c)

	listed, err := c.rooms.List(authed, &chatapi.ListRoomsRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSucceeded, listed.Status)
	seeded := len(listed.Rooms)

	watch, err := c.rooms.Watch(authed, &chatapi.WatchRoomsRequest{})
	require.NoError(t, err)
	first, err := watch.Recv()
	require.NoError(t, err)
	assert.Len(t, first.Rooms, seeded)

	created, err := c.rooms.Create(authed, &chatapi.CreateRoomRequest{Title: "  Weekend trip  "})
	require.NoError(t, err)
	assert.Equal(t, "Weekend trip", created.Room.Title)

	for {
		snap, err := watch.Recv()
		require.NoError(t, err)
		if len(snap.Rooms) == seeded+1 {
			assert.Equal(t, created.Room.ID, snap.Rooms[0].ID)
			break
		}
	}

	sent, err := c.rooms.SendMessage(authed, &chatapi.SendMessageRequest{RoomID: created.Room.ID, Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, sent.UserMessage.Role)
	assert.Equal(t, model.RoleAssistant, sent.Reply.Role)
	assert.True(t, strings.HasPrefix(sent.Reply.Content, "Hello!"))

	room, err := c.rooms.Get(authed, &chatapi.GetRoomRequest{RoomID: created.Room.ID})
	require.NoError(t, err)
	assert.Len(t, room.Room.Messages, 2)

	_, err = c.rooms.SendMessage(authed, &chatapi.SendMessageRequest{RoomID: created.Room.ID})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	searched, err := c.rooms.SetSearchTerm(authed, &chatapi.SetSearchTermRequest{Term: "weekend"})
	require.NoError(t, err)
	require.Len(t, searched.Rooms, 1)

	_, err = c.rooms.Delete(authed, &chatapi.DeleteRoomRequest{RoomID: created.Room.ID})
	require.NoError(t, err)
	_, err = c.rooms.Get(authed, &chatapi.GetRoomRequest{RoomID: created.Room.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.auth.Logout(authed, &chatapi.LogoutRequest{})
	require.NoError(t, err)

	_, err = c.rooms.List(authed, &chatapi.ListRoomsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestEndToEnd_Directory(t *testing.T) {
	c := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := c.directory.List(ctx, &chatapi.ListDirectoryRequest{Term: "united"})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "+1", out.Entries[0].DialCode)

	_, err = c.directory.Reset(ctx, &chatapi.ResetDirectoryRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := login(t, ctx, c)
	_, err = c.directory.Reset(authed, &chatapi.ResetDirectoryRequest{})
	require.NoError(t, err)
}
