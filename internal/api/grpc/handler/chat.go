package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/jmfontan/docchat-server/internal/api/proto"
	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/resolver"
)

// ChatService defines the per-turn conversational operations.
type ChatService interface {
	ResolveTurn(ctx context.Context, sessionID, text string) (resolver.Resolution, bool)
	SetCurrentDocument(ctx context.Context, sessionID string, documentID int64) (model.Document, error)
	DocumentURL(ctx context.Context, documentID int64) (string, error)
	ReportTurn(ctx context.Context, m model.TurnMetrics) error
}

// Chat handles gRPC endpoints for chat turn processing.
type Chat struct {
	proto.UnimplementedChatServer
	chatService    ChatService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewChat creates a new Chat handler.
func NewChat(chatService ChatService, contextManager model.ContextManager, logger *logger.Logger) *Chat {
	return &Chat{
		chatService:    chatService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Chat) extractUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}
	return userID, nil
}

// ResolveTurn resolves the document reference of one chat turn, if any.
func (h *Chat) ResolveTurn(ctx context.Context, req *proto.ResolveTurnRequest) (*proto.ResolveTurnResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Chat handler: processing resolve turn request",
		"user_id", userID,
		"session_id", req.SessionId)

	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	res, ok := h.chatService.ResolveTurn(ctx, req.SessionId, req.Text)
	if !ok {
		return &proto.ResolveTurnResponse{Resolved: false}, nil
	}

	h.logger.Info("Chat handler: turn resolved",
		"session_id", req.SessionId,
		"document_id", res.DocumentID)

	return &proto.ResolveTurnResponse{
		Resolved:     true,
		DocumentId:   res.DocumentID,
		DocumentName: res.DocumentName,
	}, nil
}

// SetCurrentDocument pins a document as the session's current context.
func (h *Chat) SetCurrentDocument(ctx context.Context, req *proto.SetCurrentDocumentRequest) (*proto.SetCurrentDocumentResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Chat handler: processing set current document request",
		"user_id", userID,
		"session_id", req.SessionId,
		"document_id", req.DocumentId)

	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	doc, err := h.chatService.SetCurrentDocument(ctx, req.SessionId, req.DocumentId)
	if err != nil {
		h.logger.Error("Chat handler: set current document failed",
			"session_id", req.SessionId,
			"document_id", req.DocumentId,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.SetCurrentDocumentResponse{
		DocumentId:   doc.ID,
		DocumentName: doc.Name,
	}, nil
}

// GetDocumentURL returns a presigned download URL for a document file.
func (h *Chat) GetDocumentURL(ctx context.Context, req *proto.GetDocumentURLRequest) (*proto.GetDocumentURLResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Chat handler: processing get document url request",
		"user_id", userID,
		"document_id", req.DocumentId)

	url, err := h.chatService.DocumentURL(ctx, req.DocumentId)
	if err != nil {
		h.logger.Error("Chat handler: get document url failed",
			"document_id", req.DocumentId,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.GetDocumentURLResponse{Url: url}, nil
}

// ReportTurn records usage metrics for a completed chat turn.
func (h *Chat) ReportTurn(ctx context.Context, req *proto.ReportTurnRequest) (*emptypb.Empty, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Chat handler: processing report turn request",
		"user_id", userID,
		"session_id", req.SessionId)

	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	err = h.chatService.ReportTurn(ctx, model.TurnMetrics{
		SessionID:           req.SessionId,
		TokensUsed:          int(req.TokensUsed),
		Cost:                req.Cost,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
		ModelName:           req.ModelName,
		UsedRetrieval:       req.UsedRetrieval,
		RetrievalChunkCount: int(req.RetrievalChunkCount),
		UsedExternalSearch:  req.UsedExternalSearch,
	})
	if err != nil {
		h.logger.Error("Chat handler: report turn failed",
			"session_id", req.SessionId,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// Ping is an unauthenticated liveness probe.
func (h *Chat) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}
