package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/user-api/internal/api"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/platform/logger"
)

// Recover returns middleware that turns a panic in a later handler into an
// InternalServerError envelope. http.ErrAbortHandler is re-panicked so that
// net/http can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			logger.FromContextOrDefault(r.Context(), slog.Default()).Error("request panic",
				slog.Group("http",
					slog.String("uri", r.RequestURI),
					slog.String("method", r.Method),
				),
				slog.Group("error",
					slog.Any("panic", p),
					slog.String("stack", string(debug.Stack())),
				))

			api.HandleAPIError(w, r, fmt.Errorf("%w: recovered from panic", domain.ErrInternal))
		}()
		next.ServeHTTP(w, r)
	})
}
