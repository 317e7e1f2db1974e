// AngelaMos | 2026
// metrics.go

package middleware

import (
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

// Metrics counts every request by method and status code.
func Metrics(m *core.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				m.HTTPRequest(r.Method, strconv.Itoa(ww.Status()))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
