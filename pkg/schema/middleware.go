package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formschema/pkg/logger"
)

// DefaultMaxBodySize limits request bodies read by Middleware (1MB).
const DefaultMaxBodySize = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

type middlewareConfig struct {
	errorStatus int
	strict      bool
	fields      string
	maxBodySize int64
	logger      *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithErrorStatus sets the status used for rejected records. Defaults to 422.
func WithErrorStatus(status int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if status >= 400 && status <= 599 {
			c.errorStatus = status
		}
	}
}

// WithStrict toggles strict mode. Defaults to true.
func WithStrict(strict bool) MiddlewareOption {
	return func(c *middlewareConfig) { c.strict = strict }
}

// WithFields restricts validation to the space-delimited field names.
func WithFields(names string) MiddlewareOption {
	return func(c *middlewareConfig) { c.fields = names }
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) MiddlewareOption {
	return func(c *middlewareConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithLogger sets the logger for rejected requests. Nil is ignored.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware validates JSON request bodies before they reach next.
//
// Rejected records get the configured error status and a body of
// {"success":false,"errors":"..."}. Bodies that are too large or not JSON get
// 413 or 400 with the same shape. The body is restored for next.
func (s *Schema) Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		errorStatus: http.StatusUnprocessableEntity,
		strict:      true,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := readBody(r, cfg.maxBodySize)
			if err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, errBodyTooLarge) {
					status = http.StatusRequestEntityTooLarge
				}
				cfg.logger.WarnContext(ctx, "failed to read request body", logger.Error(err))
				writeResult(w, status, newResult([]string{err.Error()}))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			record, err := decodeJSON(body)
			if err != nil {
				cfg.logger.WarnContext(ctx, "failed to decode request body", logger.Error(err))
				writeResult(w, http.StatusBadRequest, newResult([]string{"invalid JSON body"}))
				return
			}

			var res Result
			if cfg.fields != "" {
				res = s.ValidateFields(cfg.fields, record, cfg.strict)
			} else {
				res = s.Validate(record, cfg.strict)
			}
			if !res.Success {
				cfg.logger.DebugContext(ctx, "request rejected",
					logger.Problems(res.Problems()),
					slog.String("path", r.URL.Path),
				)
				writeResult(w, cfg.errorStatus, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w (max %d bytes)", errBodyTooLarge, limit)
	}
	return body, nil
}

func writeResult(w http.ResponseWriter, status int, res Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
