package handler

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/infrastructure/httpclient"
)

// maxRequestBodySize 請求 Body 上限 (1 MB)
const maxRequestBodySize = 1 << 20

// requestIDMiddleware 沿用客戶端的 X-Request-ID，沒有則產生一個
// Request ID 會放進 Context，由 httpclient 轉發給下游
func (h *Handler) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(httpclient.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(httpclient.HeaderRequestID, requestID)
		ctx := httpclient.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		h.logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", httpclient.RequestIDFromContext(r.Context()),
		)
	})
}

// recoveryMiddleware 攔截 panic 並回應 500
func (h *Handler) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logger.ErrorContext(r.Context(), "panic recovered in HTTP handler",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", httpclient.RequestIDFromContext(r.Context()),
				)
				writeMessage(w, http.StatusInternalServerError, domain.DefaultErrorMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) bodySizeLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter 記錄回應狀態碼
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Hijack /events 升級 websocket 時需要
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("handler: response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
