package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/chatapi"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/handler"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/middleware"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// publicMethods can be called without a bearer token.
var publicMethods = map[string]struct{}{
	chatapi.AuthRequestOTPMethod: {},
	chatapi.AuthVerifyOTPMethod:  {},
	chatapi.DirectoryListMethod:  {},
}

// Router represents a gRPC router for the chat services.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService      handler.AuthService
	roomsService     handler.RoomsService
	directoryService handler.DirectoryService
	tokenService     middleware.TokenService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	roomsService handler.RoomsService,
	directoryService handler.DirectoryService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		roomsService:     roomsService,
		directoryService: directoryService,
		tokenService:     tokenService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// requiresAuth reports whether a call must carry a valid bearer token.
// Listing the directory is needed on the login screen, so it is public.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	_, public := publicMethods[c.FullMethod()]
	return !public
}

// Register registers all gRPC services and middleware.
// Requests are logged, panics recovered and non-public calls authenticated.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovering := middleware.NewRecovery(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovering.Options()...),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleStream,
			recovery.StreamServerInterceptor(recovering.Options()...),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerRoomRoutes(s)
	r.registerDirectoryRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	chatapi.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerRoomRoutes(server *grpc.Server) {
	roomsHandler := handler.NewRooms(r.roomsService, r.contextManager, r.logger)
	chatapi.RegisterRoomsServer(server, roomsHandler)
}

func (r *Router) registerDirectoryRoutes(server *grpc.Server) {
	directoryHandler := handler.NewDirectory(r.directoryService, r.logger)
	chatapi.RegisterDirectoryServer(server, directoryHandler)
}
