package chatapi

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AuthServiceName = "chat.Auth"

	AuthRequestOTPMethod = "/chat.Auth/RequestOTP"
	AuthVerifyOTPMethod  = "/chat.Auth/VerifyOTP"
	AuthLogoutMethod     = "/chat.Auth/Logout"
	AuthSessionMethod    = "/chat.Auth/Session"
)

// AuthServer is the server API for the chat.Auth service.
type AuthServer interface {
	RequestOTP(context.Context, *RequestOTPRequest) (*RequestOTPResponse, error)
	VerifyOTP(context.Context, *VerifyOTPRequest) (*VerifyOTPResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	Session(context.Context, *SessionRequest) (*SessionResponse, error)
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RequestOTP", Handler: unaryHandler(AuthRequestOTPMethod, AuthServer.RequestOTP)},
		{MethodName: "VerifyOTP", Handler: unaryHandler(AuthVerifyOTPMethod, AuthServer.VerifyOTP)},
		{MethodName: "Logout", Handler: unaryHandler(AuthLogoutMethod, AuthServer.Logout)},
		{MethodName: "Session", Handler: unaryHandler(AuthSessionMethod, AuthServer.Session)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chat/auth",
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// AuthClient is the client API for the chat.Auth service.
type AuthClient interface {
	RequestOTP(ctx context.Context, in *RequestOTPRequest, opts ...grpc.CallOption) (*RequestOTPResponse, error)
	VerifyOTP(ctx context.Context, in *VerifyOTPRequest, opts ...grpc.CallOption) (*VerifyOTPResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	Session(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) RequestOTP(ctx context.Context, in *RequestOTPRequest, opts ...grpc.CallOption) (*RequestOTPResponse, error) {
	return invoke[RequestOTPResponse](ctx, c.cc, AuthRequestOTPMethod, in, opts)
}

func (c *authClient) VerifyOTP(ctx context.Context, in *VerifyOTPRequest, opts ...grpc.CallOption) (*VerifyOTPResponse, error) {
	return invoke[VerifyOTPResponse](ctx, c.cc, AuthVerifyOTPMethod, in, opts)
}

func (c *authClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, AuthLogoutMethod, in, opts)
}

func (c *authClient) Session(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, AuthSessionMethod, in, opts)
}
