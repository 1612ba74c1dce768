package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dtroode/careercoach-server/internal/api/http/handler"
	"github.com/dtroode/careercoach-server/internal/apierrors"
	"github.com/dtroode/careercoach-server/internal/logger"
)

// Recover turns handler panics into a JSON 500 response.
type Recover struct {
	logger *logger.Logger
}

// NewRecover creates a new Recover middleware.
func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

// Handle recovers from panics raised by next.
func (m *Recover) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// net/http uses this value to abort a response silently.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logger.Error("HTTP handler panicked",
				"request_id", GetRequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()))

			handler.WriteError(w, apierrors.NewErrInternalServerError())
		}()

		next.ServeHTTP(w, r)
	})
}
