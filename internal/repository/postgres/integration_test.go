//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/careercoach-server/internal/model"
	repo "github.com/dtroode/careercoach-server/internal/repository/postgres"
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
				"POSTGRES_DB":       "careercoach_test",
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
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/careercoach_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	require.NoError(t, ur.Ping(ctx))

	u := model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hash",
		FirstName:    "A",
		LastName:     "B",
		CreatedAt:    time.Now(),
	}
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)
	require.False(t, saved.IsOnboarded())

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = ur.GetByEmail(ctx, "USER@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = ur.Create(ctx, model.User{ID: uuid.New(), Email: u.Email, FirstName: "C", LastName: "D", CreatedAt: time.Now()})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	updated, err := ur.UpdateOnboarding(ctx, u.ID, model.Onboarding{Industry: "Tech", ExperienceLevel: "Mid"})
	require.NoError(t, err)
	require.True(t, updated.IsOnboarded())
	require.Equal(t, "hash", updated.PasswordHash)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Tech", *byID.Industry)
	require.Equal(t, "Mid", *byID.ExperienceLevel)

	_, err = ur.UpdateOnboarding(ctx, uuid.New(), model.Onboarding{Industry: "Tech", ExperienceLevel: "Mid"})
	require.ErrorIs(t, err, model.ErrNotFound)
}
