package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/platform/logger"
)

// TraceHeader carries the trace ID on requests and responses.
const TraceHeader = "X-Trace-ID"

var validTraceID = regexp.MustCompile(`^[A-Za-z0-9-]{8,64}$`)

// Trace returns middleware that attaches a trace ID and a request-scoped
// logger to the request context. A well-formed incoming X-Trace-ID is
// reused; otherwise a new one is generated. The ID is echoed in the response.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if !validTraceID.MatchString(traceID) {
				traceID = shared.NewTraceID()
			}

			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithContext(ctx, base.With(slog.String("trace_id", traceID)))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
