package validate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type errorResponse struct {
	Success bool     `json:"success"`
	Message []string `json:"message"`
}

// Middleware validates the JSON request body against the schema before the
// handler runs. The body is buffered and restored so the handler can decode
// it again into its own DTO.
func Middleware(log handlerLogger, schema *Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				writeViolations(log, w, []string{"Unable to read request body"})
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			var body map[string]interface{}
			if err := json.Unmarshal(raw, &body); err != nil {
				writeViolations(log, w, []string{"Request body must be valid JSON"})
				return
			}

			if violations := schema.Validate(body); len(violations) > 0 {
				writeViolations(log, w, violations)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeViolations(log handlerLogger, w http.ResponseWriter, violations []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	err := json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Message: violations,
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
