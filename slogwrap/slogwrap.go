// Package slogwrap sets up the process logger. Plain text by default,
// JSON when ENABLE_JSON_LOG is set.
package slogwrap

import (
	"log/slog"
	"os"

	"github.com/indexdata/go-utils/utils"
)

// EnvJSONLog is the environment variable that switches the logger to the
// JSON handler.
const EnvJSONLog = "ENABLE_JSON_LOG"

func newLogger(jsonOut bool) *slog.Logger {
	if jsonOut {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.Default()
}

// SlogWrap returns the logger the connector writes through.
func SlogWrap() *slog.Logger {
	return newLogger(utils.Must(utils.GetEnvBool(EnvJSONLog, false)))
}
