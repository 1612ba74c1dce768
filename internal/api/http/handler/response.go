package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/careercoach-server/internal/apierrors"
	"github.com/dtroode/careercoach-server/internal/model"
)

// User is the public representation of an account. It never carries the password hash.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Industry        *string   `json:"industry"`
	ExperienceLevel *string   `json:"experienceLevel"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newUser(u model.User) User {
	return User{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Industry:        u.Industry,
		ExperienceLevel: u.ExperienceLevel,
		CreatedAt:       u.CreatedAt,
	}
}

type sessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type userResponse struct {
	User User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Errors  []apierrors.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apierrors.NewErrMalformedRequest()
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apierrors.NewErrMalformedRequest()
	}
	return nil
}
