package middleware

import (
	"log/slog"
	"net/http"
)

// MaxBodySize caps request bodies before anything parses them. Requests that
// announce a larger body are refused right away; the rest are cut off once
// they read past limit.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				slog.WarnContext(r.Context(), "request body too large",
					"path", r.URL.Path,
					"content_length", r.ContentLength,
					"limit", limit,
				)
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
