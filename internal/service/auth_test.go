package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmfontan/docchat-server/internal/mocks"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/password"
	"github.com/jmfontan/docchat-server/internal/testutil"
)

func testHasher() *password.Hasher {
	return password.NewHasher(password.Params{Time: 1, MemoryKiB: 8 * 1024, Parallelism: 1, KeyLength: 32, SaltLength: 16})
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	hasher := testHasher()

	users.On("GetByEmail", ctx, "new@example.com").Return(model.User{}, model.ErrNotFound).Once()
	users.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "new@example.com" && hasher.Verify("pass", u.PasswordHash)
	})).Return(model.User{ID: uuid.New(), Email: "new@example.com"}, nil).Once()

	svc := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())

	user, err := svc.Register(ctx, "new@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)

	users.On("GetByEmail", ctx, "taken@example.com").
		Return(model.User{ID: uuid.New(), Email: "taken@example.com"}, nil).Once()

	svc := NewAuth(users, testHasher(), tokens, testutil.MakeNoopLogger())

	_, err := svc.Register(ctx, "taken@example.com", "pass")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	hasher := testHasher()
	userID := uuid.New()

	hash, err := hasher.Hash("pass")
	require.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").
		Return(model.User{ID: userID, Email: "user@example.com", PasswordHash: hash}, nil).Once()
	tokens.On("Issue", userID, "user@example.com", time.Duration(0)).Return("token", nil).Once()

	svc := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())

	tokenString, err := svc.Login(ctx, "user@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, "token", tokenString)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	hasher := testHasher()

	hash, err := hasher.Hash("pass")
	require.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").
		Return(model.User{ID: uuid.New(), PasswordHash: hash}, nil).Once()

	svc := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())

	_, err = svc.Login(ctx, "user@example.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)

	users.On("GetByEmail", ctx, "ghost@example.com").Return(model.User{}, model.ErrNotFound).Once()

	svc := NewAuth(users, testHasher(), tokens, testutil.MakeNoopLogger())

	// Unknown user and wrong password are indistinguishable to the caller.
	_, err := svc.Login(ctx, "ghost@example.com", "pass")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_RehashesStaleHash(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	userID := uuid.New()

	stale := password.NewHasher(password.Params{Time: 1, MemoryKiB: 8 * 1024, Parallelism: 1, KeyLength: 32, SaltLength: 16})
	current := password.NewHasher(password.Params{Time: 2, MemoryKiB: 16 * 1024, Parallelism: 1, KeyLength: 32, SaltLength: 16})

	staleHash, err := stale.Hash("pass")
	require.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").
		Return(model.User{ID: userID, Email: "user@example.com", PasswordHash: staleHash}, nil).Once()
	users.On("UpdatePasswordHash", ctx, userID, mock.MatchedBy(func(h string) bool {
		return h != staleHash && current.Verify("pass", h) && !current.NeedsRehash(h)
	})).Return(nil).Once()
	tokens.On("Issue", userID, "user@example.com", time.Duration(0)).Return("token", nil).Once()

	svc := NewAuth(users, current, tokens, testutil.MakeNoopLogger())

	_, err = svc.Login(ctx, "user@example.com", "pass")
	require.NoError(t, err)
}

func TestAuth_Login_RehashFailureDoesNotFailLogin(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	userID := uuid.New()

	stale := password.NewHasher(password.Params{Time: 1, MemoryKiB: 8 * 1024, Parallelism: 1, KeyLength: 32, SaltLength: 16})
	current := password.NewHasher(password.Params{Time: 2, MemoryKiB: 8 * 1024, Parallelism: 1, KeyLength: 32, SaltLength: 16})

	staleHash, err := stale.Hash("pass")
	require.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").
		Return(model.User{ID: userID, Email: "user@example.com", PasswordHash: staleHash}, nil).Once()
	users.On("UpdatePasswordHash", ctx, userID, mock.Anything).Return(assert.AnError).Once()
	tokens.On("Issue", userID, "user@example.com", time.Duration(0)).Return("token", nil).Once()

	svc := NewAuth(users, current, tokens, testutil.MakeNoopLogger())

	tokenString, err := svc.Login(ctx, "user@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, "token", tokenString)
}

func TestAuth_Refresh(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	userID := uuid.New()

	tokens.On("Verify", "old-token").
		Return(model.TokenClaims{UserID: userID, Email: "user@example.com"}, nil).Once()
	tokens.On("Issue", userID, "user@example.com", time.Duration(0)).Return("new-token", nil).Once()

	svc := NewAuth(users, testHasher(), tokens, testutil.MakeNoopLogger())

	fresh, err := svc.Refresh(ctx, "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-token", fresh)
}

func TestAuth_Refresh_InvalidToken(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)

	tokens.On("Verify", "bad").Return(model.TokenClaims{}, model.ErrInvalidToken).Once()

	svc := NewAuth(users, testHasher(), tokens, testutil.MakeNoopLogger())

	_, err := svc.Refresh(ctx, "bad")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuth_GetUserID(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	tokens := mocks.NewTokenManager(t)
	userID := uuid.New()

	tokens.On("Verify", "token").
		Return(model.TokenClaims{UserID: userID, Email: "user@example.com"}, nil).Once()

	svc := NewAuth(users, testHasher(), tokens, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
