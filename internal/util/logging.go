// Package util provides common utilities including logging helpers,
// file system locations, and small numeric helpers.
package util

import "github.com/akyairhashvil/calmtide/internal/logger"

// LogError logs an error with context if it is non-nil.
func LogError(l *logger.Logger, context string, err error) {
	if err != nil && l != nil {
		l.Error().Err(err).Msg(context)
	}
}
