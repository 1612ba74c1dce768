package testutil

import (
	"io"

	"github.com/dtroode/careercoach-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithFormat(0, "text", io.Discard)
}
