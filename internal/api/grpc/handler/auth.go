package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jmfontan/docchat-server/internal/api/proto"
	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
)

// AuthService defines user registration, login and token refresh operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Refresh(ctx context.Context, tokenString string) (string, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new user credential.
func (h *Auth) Register(ctx context.Context, req *proto.RegisterRequest) (*proto.RegisterResponse, error) {
	h.logger.Debug("Auth handler: processing register request",
		"email", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	user, err := h.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: register completed",
		"email", req.Email,
		"user_id", user.ID)

	return &proto.RegisterResponse{
		UserId: user.ID.String(),
		Email:  user.Email,
	}, nil
}

// Login verifies credentials and returns an access token.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.LoginResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	return &proto.LoginResponse{AccessToken: token}, nil
}

// Refresh exchanges a valid access token for a fresh one.
func (h *Auth) Refresh(ctx context.Context, req *proto.RefreshRequest) (*proto.RefreshResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.AccessToken == "" {
		return nil, status.Error(codes.InvalidArgument, "access token is required")
	}

	token, err := h.authService.Refresh(ctx, req.AccessToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return &proto.RefreshResponse{AccessToken: token}, nil
}
