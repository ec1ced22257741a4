package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcContext "github.com/jmfontan/docchat-server/internal/api/grpc/context"
	"github.com/jmfontan/docchat-server/internal/mocks"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	validUserID := uuid.New()

	tests := []struct {
		name           string
		mdAuthHeader   string
		tokenSvcUserID uuid.UUID
		tokenSvcErr    error
		wantErr        bool
	}{
		{
			name:         "missing authorization header",
			mdAuthHeader: "",
			wantErr:      true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			tokenSvcErr:  model.ErrInvalidToken,
			wantErr:      true,
		},
		{
			name:           "nil user id from token",
			mdAuthHeader:   "Bearer token",
			tokenSvcUserID: uuid.Nil,
			wantErr:        true,
		},
		{
			name:           "valid token",
			mdAuthHeader:   "Bearer token",
			tokenSvcUserID: validUserID,
			wantErr:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenService := &mocks.TokenService{}
			if tt.mdAuthHeader != "" {
				tokenService.On("GetUserID", mock.Anything, "invalid").Return(uuid.Nil, tt.tokenSvcErr).Maybe()
				tokenService.On("GetUserID", mock.Anything, "token").Return(tt.tokenSvcUserID, tt.tokenSvcErr).Maybe()
			}

			contextManager := grpcContext.NewManager()
			m := NewAuthenticate(tokenService, contextManager, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx,
					metadata.New(map[string]string{"authorization": tt.mdAuthHeader}))
			}

			gotCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				return
			}

			require.NoError(t, err)
			userID, ok := contextManager.GetUserIDFromContext(gotCtx)
			require.True(t, ok)
			assert.Equal(t, validUserID, userID)
		})
	}
}
