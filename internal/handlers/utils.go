package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/akolanti/ProposalFeedback/internal/adapter"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

var (
	logRH   *logger_i.Logger
	logOnce sync.Once
)

func requestLogger() *logger_i.Logger {
	logOnce.Do(func() {
		logRH = logger_i.NewLogger("RequestHandler")
	})
	return logRH
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are gone already, nothing left but logging
		requestLogger().Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(error))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		requestLogger().Warn("context error", "traceId", logger_i.TraceId(ctx), "error", ctx.Err())
		return false
	}
	return true
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		requestLogger().Error("Couldn't close the request body", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	defer closeBody(r.Body)
	return json.NewDecoder(r.Body).Decode(target)
}
