//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/postgres"
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
				"POSTGRES_DB":       "chat_test",
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
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/chat_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()

	var (
		conn *postgres.Connection
		err  error
	)
	// The port can be open before the server accepts connections.
	require.Eventually(t, func() bool {
		conn, err = postgres.NewConnection(ctx, dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("snapshot_repository", func(t *testing.T) {
		s := postgres.NewSnapshotRepository(conn)

		_, err := s.Load(ctx, "root")
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, s.Save(ctx, "root", []byte(`{"version":1}`)))
		require.NoError(t, s.Save(ctx, "root", []byte(`{"version":1,"auth":{"authenticated":true}}`)))

		data, err := s.Load(ctx, "root")
		require.NoError(t, err)
		require.JSONEq(t, `{"version":1,"auth":{"authenticated":true}}`, string(data))

		require.NoError(t, s.Delete(ctx, "root"))
		_, err = s.Load(ctx, "root")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("challenge_repository", func(t *testing.T) {
		r := postgres.NewChallengeRepository(conn)
		now := time.Now()

		c := model.OTPChallenge{ChallengeID: "ch-1", UserID: "+919876543210", Code: "123456", ExpiresAt: now.Add(time.Minute)}
		require.NoError(t, r.Create(ctx, c))
		require.NoError(t, r.Create(ctx, model.OTPChallenge{ChallengeID: "ch-old", UserID: "+1", Code: "000000", ExpiresAt: now.Add(-time.Minute)}))

		got, err := r.GetByID(ctx, "ch-1")
		require.NoError(t, err)
		require.Equal(t, "123456", got.Code)
		require.False(t, got.Consumed)

		require.NoError(t, r.Consume(ctx, "ch-1"))
		require.ErrorIs(t, r.Consume(ctx, "ch-1"), model.ErrChallengeConsumed)

		n, err := r.DeleteExpired(ctx, now)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = r.GetByID(ctx, "ch-old")
		require.ErrorIs(t, err, model.ErrChallengeNotFound)
	})

	// Migrations are idempotent.
	again, err := postgres.NewConnection(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}
