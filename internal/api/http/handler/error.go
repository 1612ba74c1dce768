package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/careercoach-server/internal/apierrors"
	"github.com/dtroode/careercoach-server/internal/model"
)

// WriteError sends err to the client as a JSON error body.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := toAPIError(err)
	writeJSON(w, apiErr.Status, errorResponse{
		Message: apiErr.Message,
		Code:    apiErr.Code,
		Errors:  apiErr.Fields,
	})
}

func toAPIError(err error) *apierrors.APIError {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return apierrors.NewErrUserNotFound()
	case errors.Is(err, model.ErrDuplicateEmail):
		return apierrors.NewErrEmailIsTaken()
	default:
		return apierrors.NewErrInternalServerError()
	}
}
