// Package httpjson writes the service's JSON responses and error bodies.
//
// Every error surfaces as {"message": "..."} with the matching status code:
// 401 missing/invalid credential, 403 insufficient role, 400 client error
// (duplicate mark, bad input), 500 anything else. Server faults include the
// underlying message, matching the original service's behavior.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a {"message": msg} error body.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}

// ErrorLogger pairs server-fault responses with structured logging so
// handlers report 500s consistently.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger backed by the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// ServerError logs the fault with context and answers 500 with the
// underlying error message.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, what string, err error) {
	e.log.Error(what,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Error(w, http.StatusInternalServerError, err.Error())
}
