package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/jmfontan/docchat-server/internal/api/grpc/handler"
	"github.com/jmfontan/docchat-server/internal/api/grpc/middleware"
	"github.com/jmfontan/docchat-server/internal/api/proto"
	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/service"
)

// Router wires gRPC services and middleware into a server.
type Router struct {
	authService    *service.Auth
	chatService    *service.Chat
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService *service.Auth,
	chatService *service.Chat,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		chatService:    chatService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Auth endpoints mint tokens and Ping is a liveness probe, everything else
// requires a bearer token.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	if strings.HasPrefix(c.FullMethod(), "/docchat.Auth/") {
		return false
	}
	return c.FullMethod() != "/docchat.Chat/Ping"
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerChatRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	proto.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerChatRoutes(server *grpc.Server) {
	chatHandler := handler.NewChat(r.chatService, r.contextManager, r.logger)
	proto.RegisterChatServer(server, chatHandler)
}
