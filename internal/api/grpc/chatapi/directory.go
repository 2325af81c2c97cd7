package chatapi

import (
	"context"

	"google.golang.org/grpc"
)

const (
	DirectoryServiceName = "chat.Directory"

	DirectoryListMethod  = "/chat.Directory/List"
	DirectoryResetMethod = "/chat.Directory/Reset"
)

// DirectoryServer is the server API for the chat.Directory service.
type DirectoryServer interface {
	List(context.Context, *ListDirectoryRequest) (*ListDirectoryResponse, error)
	Reset(context.Context, *ResetDirectoryRequest) (*ResetDirectoryResponse, error)
}

var DirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: DirectoryServiceName,
	HandlerType: (*DirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(DirectoryListMethod, DirectoryServer.List)},
		{MethodName: "Reset", Handler: unaryHandler(DirectoryResetMethod, DirectoryServer.Reset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chat/directory",
}

func RegisterDirectoryServer(s grpc.ServiceRegistrar, srv DirectoryServer) {
	s.RegisterService(&DirectoryServiceDesc, srv)
}

// DirectoryClient is the client API for the chat.Directory service.
type DirectoryClient interface {
	List(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListDirectoryResponse, error)
	Reset(ctx context.Context, in *ResetDirectoryRequest, opts ...grpc.CallOption) (*ResetDirectoryResponse, error)
}

type directoryClient struct {
	cc grpc.ClientConnInterface
}

func NewDirectoryClient(cc grpc.ClientConnInterface) DirectoryClient {
	return &directoryClient{cc}
}

func (c *directoryClient) List(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListDirectoryResponse, error) {
	return invoke[ListDirectoryResponse](ctx, c.cc, DirectoryListMethod, in, opts)
}

func (c *directoryClient) Reset(ctx context.Context, in *ResetDirectoryRequest, opts ...grpc.CallOption) (*ResetDirectoryResponse, error) {
	return invoke[ResetDirectoryResponse](ctx, c.cc, DirectoryResetMethod, in, opts)
}
