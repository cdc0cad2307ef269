// Package timeouts provides centralized timeout values for handler operations.
//
// These are used with context.WithTimeout for store I/O in HTTP handlers.
// Centralized values keep the budgets consistent and easy to adjust.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or the duplicate pre-check
//   - Medium: bounded list queries and single-document inserts
//   - Long: the monthly window scan plus the user join
package timeouts

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document lookups.
func Short() time.Duration { return short }

// Medium returns the timeout for bounded list queries and writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for month-window scans and joins.
func Long() time.Duration { return long }

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning when the deadline was exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "monthly report")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
