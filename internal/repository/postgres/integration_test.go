//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jmfontan/docchat-server/internal/model"
	repo "github.com/jmfontan/docchat-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "docchat_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/docchat_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)
	documents := repo.NewDocumentRepository(conn)
	metrics := repo.NewMetricsRepository(conn)

	t.Run("users", func(t *testing.T) {
		now := time.Now()
		user := model.User{
			ID:           uuid.New(),
			Email:        "user@example.com",
			PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		saved, err := users.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user.Email, saved.Email)

		byEmail, err := users.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		require.NoError(t, users.UpdatePasswordHash(ctx, user.ID, "$argon2id$updated"))

		byID, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "$argon2id$updated", byID.PasswordHash)

		_, err = users.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("documents", func(t *testing.T) {
		var id int64
		err := conn.QueryRow(ctx,
			`INSERT INTO documents (display_id, name, s3_key) VALUES ($1, $2, $3) RETURNING id`,
			"5", "informe.pdf", "docs/informe.pdf",
		).Scan(&id)
		require.NoError(t, err)

		doc, err := documents.GetByDisplayID(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, "informe.pdf", doc.Name)

		byID, err := documents.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "5", byID.DisplayID)

		_, err = documents.GetByDisplayID(ctx, "404")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("metrics", func(t *testing.T) {
		err := metrics.Record(ctx, model.TurnMetrics{
			SessionID:           "sess-1",
			TokensUsed:          512,
			Cost:                0.004,
			ResponseTimeSeconds: 1.2,
			ModelName:           "gpt-4o-mini",
			UsedRetrieval:       true,
			RetrievalChunkCount: 4,
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM chat_metrics WHERE session_id = $1`, "sess-1").Scan(&count))
		assert.Equal(t, 1, count)
	})
}
