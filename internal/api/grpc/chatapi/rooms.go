package chatapi

import (
	"context"

	"google.golang.org/grpc"
)

const (
	RoomsServiceName = "chat.Rooms"

	RoomsFetchMethod         = "/chat.Rooms/Fetch"
	RoomsListMethod          = "/chat.Rooms/List"
	RoomsCreateMethod        = "/chat.Rooms/Create"
	RoomsDeleteMethod        = "/chat.Rooms/Delete"
	RoomsGetMethod           = "/chat.Rooms/Get"
	RoomsSetSearchTermMethod = "/chat.Rooms/SetSearchTerm"
	RoomsSendMessageMethod   = "/chat.Rooms/SendMessage"
	RoomsWatchMethod         = "/chat.Rooms/Watch"
)

// RoomsServer is the server API for the chat.Rooms service.
type RoomsServer interface {
	Fetch(context.Context, *FetchRoomsRequest) (*RoomsSnapshot, error)
	List(context.Context, *ListRoomsRequest) (*RoomsSnapshot, error)
	Create(context.Context, *CreateRoomRequest) (*RoomResponse, error)
	Delete(context.Context, *DeleteRoomRequest) (*DeleteRoomResponse, error)
	Get(context.Context, *GetRoomRequest) (*RoomResponse, error)
	SetSearchTerm(context.Context, *SetSearchTermRequest) (*RoomsSnapshot, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	Watch(*WatchRoomsRequest, RoomsWatchServer) error
}

// RoomsWatchServer is the server side of the Watch stream.
type RoomsWatchServer interface {
	Send(*RoomsSnapshot) error
	grpc.ServerStream
}

type roomsWatchServer struct {
	grpc.ServerStream
}

func (x *roomsWatchServer) Send(m *RoomsSnapshot) error {
	return x.ServerStream.SendMsg(m)
}

func roomsWatchHandler(srv any, stream grpc.ServerStream) error {
	m := new(WatchRoomsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RoomsServer).Watch(m, &roomsWatchServer{stream})
}

var RoomsServiceDesc = grpc.ServiceDesc{
	ServiceName: RoomsServiceName,
	HandlerType: (*RoomsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Fetch", Handler: unaryHandler(RoomsFetchMethod, RoomsServer.Fetch)},
		{MethodName: "List", Handler: unaryHandler(RoomsListMethod, RoomsServer.List)},
		{MethodName: "Create", Handler: unaryHandler(RoomsCreateMethod, RoomsServer.Create)},
		{MethodName: "Delete", Handler: unaryHandler(RoomsDeleteMethod, RoomsServer.Delete)},
		{MethodName: "Get", Handler: unaryHandler(RoomsGetMethod, RoomsServer.Get)},
		{MethodName: "SetSearchTerm", Handler: unaryHandler(RoomsSetSearchTermMethod, RoomsServer.SetSearchTerm)},
		{MethodName: "SendMessage", Handler: unaryHandler(RoomsSendMessageMethod, RoomsServer.SendMessage)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       roomsWatchHandler,
			ServerStreams: true,
		},
	},
	Metadata: "chat/rooms",
}

func RegisterRoomsServer(s grpc.ServiceRegistrar, srv RoomsServer) {
	s.RegisterService(&RoomsServiceDesc, srv)
}

// RoomsClient is the client API for the chat.Rooms service.
type RoomsClient interface {
	Fetch(ctx context.Context, in *FetchRoomsRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error)
	List(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error)
	Create(ctx context.Context, in *CreateRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error)
	Delete(ctx context.Context, in *DeleteRoomRequest, opts ...grpc.CallOption) (*DeleteRoomResponse, error)
	Get(ctx context.Context, in *GetRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error)
	SetSearchTerm(ctx context.Context, in *SetSearchTermRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	Watch(ctx context.Context, in *WatchRoomsRequest, opts ...grpc.CallOption) (RoomsWatchClient, error)
}

// RoomsWatchClient is the client side of the Watch stream.
type RoomsWatchClient interface {
	Recv() (*RoomsSnapshot, error)
	grpc.ClientStream
}

type roomsWatchClient struct {
	grpc.ClientStream
}

func (x *roomsWatchClient) Recv() (*RoomsSnapshot, error) {
	m := new(RoomsSnapshot)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type roomsClient struct {
	cc grpc.ClientConnInterface
}

func NewRoomsClient(cc grpc.ClientConnInterface) RoomsClient {
	return &roomsClient{cc}
}

func (c *roomsClient) Fetch(ctx context.Context, in *FetchRoomsRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error) {
	return invoke[RoomsSnapshot](ctx, c.cc, RoomsFetchMethod, in, opts)
}

func (c *roomsClient) List(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error) {
	return invoke[RoomsSnapshot](ctx, c.cc, RoomsListMethod, in, opts)
}

func (c *roomsClient) Create(ctx context.Context, in *CreateRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error) {
	return invoke[RoomResponse](ctx, c.cc, RoomsCreateMethod, in, opts)
}

func (c *roomsClient) Delete(ctx context.Context, in *DeleteRoomRequest, opts ...grpc.CallOption) (*DeleteRoomResponse, error) {
	return invoke[DeleteRoomResponse](ctx, c.cc, RoomsDeleteMethod, in, opts)
}

func (c *roomsClient) Get(ctx context.Context, in *GetRoomRequest, opts ...grpc.CallOption) (*RoomResponse, error) {
	return invoke[RoomResponse](ctx, c.cc, RoomsGetMethod, in, opts)
}

func (c *roomsClient) SetSearchTerm(ctx context.Context, in *SetSearchTermRequest, opts ...grpc.CallOption) (*RoomsSnapshot, error) {
	return invoke[RoomsSnapshot](ctx, c.cc, RoomsSetSearchTermMethod, in, opts)
}

func (c *roomsClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return invoke[SendMessageResponse](ctx, c.cc, RoomsSendMessageMethod, in, opts)
}

func (c *roomsClient) Watch(ctx context.Context, in *WatchRoomsRequest, opts ...grpc.CallOption) (RoomsWatchClient, error) {
	stream, err := c.cc.NewStream(ctx, &RoomsServiceDesc.Streams[0], RoomsWatchMethod, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &roomsWatchClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
