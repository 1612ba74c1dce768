package handler

import (
	"net/http"

	"github.com/dtroode/careercoach-server/internal/apierrors"
)

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, apierrors.NewErrRouteNotFound())
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, apierrors.NewErrMethodNotAllowed())
}
