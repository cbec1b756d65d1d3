package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
	"/api/ready":  {},
	"/metrics":    {},
}

type Middleware struct {
	exposeDetails bool
	logStack      bool
}

func NewMiddleware(exposeDetails, logStack bool) *Middleware {
	return &Middleware{
		exposeDetails: exposeDetails,
		logStack:      logStack,
	}
}

type statusWriter struct {
	http.ResponseWriter
	code        int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.code = code
		w.wroteHeader = true
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), requestID)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)

		w.Header().Set("X-Request-Id", requestID)

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		if _, ok := skipLogging[r.URL.Path]; ok {
			return
		}

		slog.InfoContext(ctx, "request handled", "code", sw.code, "duration", time.Since(start))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		defer func(ctx context.Context) {
			rec := recover()
			if rec == nil {
				return
			}

			attrs := []any{"error", rec}
			if m.logStack {
				attrs = append(attrs, "stack", string(debug.Stack()))
			}

			slog.ErrorContext(ctx, "panic", attrs...)

			// the response is already on its way, a second status would be dropped
			if sw.wroteHeader {
				return
			}

			SendErr(ctx, sw, fmt.Errorf("panic: %v", rec), m.exposeDetails)
		}(r.Context())

		next.ServeHTTP(sw, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Origin, Accept, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
