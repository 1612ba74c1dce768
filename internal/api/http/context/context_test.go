package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/careercoach-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	t.Parallel()

	m := NewManager()
	user := model.User{ID: uuid.New(), Email: "x@y.com"}

	ctx := m.SetUserToContext(context.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestManager_Override(t *testing.T) {
	t.Parallel()

	m := NewManager()
	first := model.User{ID: uuid.New()}
	second := model.User{ID: uuid.New()}

	ctx := m.SetUserToContext(context.Background(), first)
	ctx = m.SetUserToContext(ctx, second)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
}
