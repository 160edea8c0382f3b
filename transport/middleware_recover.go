package transport

import (
	"net/http"

	"github.com/rentconnect/rentconnect-api/utils/logger"
	"go.uber.org/zap"
)

// RecoverMiddleware converts panics into a generic 500 router error and
// logs the cause.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
