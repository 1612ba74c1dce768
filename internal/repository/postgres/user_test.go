package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/careercoach-server/internal/model"
)

type fakeRow struct {
	user model.User
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	values := []any{
		r.user.ID, r.user.Email, r.user.PasswordHash, r.user.FirstName, r.user.LastName,
		r.user.Industry, r.user.ExperienceLevel, r.user.CreatedAt,
	}
	if len(dest) != len(values) {
		return fmt.Errorf("scan: want %d destinations, got %d", len(values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = values[i].(uuid.UUID)
		case *string:
			*p = values[i].(string)
		case **string:
			*p = values[i].(*string)
		case *time.Time:
			*p = values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	query string
	args  []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.query = sql
	q.args = args
	return q.row
}

func (q *fakeQuerier) Ping(context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Parallel()

	stored := model.User{ID: uuid.New(), Email: "a@b.com", FirstName: "A", LastName: "B", CreatedAt: time.Now()}

	tests := []struct {
		name    string
		row     fakeRow
		want    model.User
		wantErr error
	}{
		{name: "found", row: fakeRow{user: stored}, want: stored},
		{name: "not found", row: fakeRow{err: pgx.ErrNoRows}, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := &fakeQuerier{row: tt.row}
			repo := &UserRepository{db: q}

			got, err := repo.GetByEmail(context.Background(), "a@b.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []any{"a@b.com"}, q.args)
		})
	}
}

func TestUserRepository_GetByID_DBError(t *testing.T) {
	t.Parallel()

	repo := &UserRepository{db: &fakeQuerier{row: fakeRow{err: errors.New("conn reset")}}}

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get user by id")
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hash", FirstName: "A", LastName: "B", CreatedAt: time.Now()}

	tests := []struct {
		name    string
		row     fakeRow
		wantErr error
	}{
		{name: "created", row: fakeRow{user: user}},
		{name: "duplicate email", row: fakeRow{err: &pgconn.PgError{Code: uniqueViolation}}, wantErr: model.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := &fakeQuerier{row: tt.row}
			repo := &UserRepository{db: q}

			got, err := repo.Create(context.Background(), user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
			assert.Len(t, q.args, 8)
		})
	}
}

func TestUserRepository_UpdateOnboarding(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	updated := model.User{ID: id, Email: "a@b.com", Industry: strPtr("Tech"), ExperienceLevel: strPtr("Senior")}

	q := &fakeQuerier{row: fakeRow{user: updated}}
	repo := &UserRepository{db: q}

	got, err := repo.UpdateOnboarding(context.Background(), id, model.Onboarding{Industry: "Tech", ExperienceLevel: "Senior"})
	require.NoError(t, err)
	assert.True(t, got.IsOnboarded())
	assert.Equal(t, []any{id, "Tech", "Senior"}, q.args)
	assert.NotContains(t, q.query, "password_hash =")
	assert.NotContains(t, q.query, "email =")

	missing := &UserRepository{db: &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}}
	_, err = missing.UpdateOnboarding(context.Background(), id, model.Onboarding{Industry: "Tech", ExperienceLevel: "Senior"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
