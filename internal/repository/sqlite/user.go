package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dtroode/careercoach-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// DBTX is the subset of database/sql used by the repository.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, industry, experience_level, created_at`

func scanUser(row *sql.Row) (model.User, error) {
	var (
		user            model.User
		id              string
		industry        sql.NullString
		experienceLevel sql.NullString
		createdAt       int64
	)
	if err := row.Scan(&id, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&industry, &experienceLevel, &createdAt); err != nil {
		return model.User{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.User{}, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	user.ID = parsed
	if industry.Valid {
		user.Industry = &industry.String
	}
	if experienceLevel.Valid {
		user.ExperienceLevel = &experienceLevel.String
	}
	user.CreatedAt = time.UnixMilli(createdAt).UTC()

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := user.CreatedAt.UTC().Truncate(time.Millisecond)
	_, err := r.db.ExecContext(ctx, query,
		user.ID.String(), user.Email, user.PasswordHash, user.FirstName, user.LastName,
		nullable(user.Industry), nullable(user.ExperienceLevel), createdAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	user.CreatedAt = createdAt
	return user, nil
}

func (r *UserRepository) UpdateOnboarding(ctx context.Context, id uuid.UUID, onboarding model.Onboarding) (model.User, error) {
	query := `UPDATE users SET industry = ?, experience_level = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, onboarding.Industry, onboarding.ExperienceLevel, id.String())
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update onboarding: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.User{}, model.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
