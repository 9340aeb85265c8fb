package http

import "net/http"

// Cross-origin headers sent on every response. The API is consumed by
// browser frontends served from other origins, so the allowance is broad.
const (
	corsAllowOrigin      = "*"
	corsAllowMethods     = "HEAD, GET, POST, PATCH, PUT, OPTIONS, DELETE"
	corsAllowHeaders     = "Origin, X-Requested-With, Content-Type, Accept"
	corsAllowCredentials = "true"
)

// withCORS attaches the CORS headers to every response and short-circuits
// preflight OPTIONS requests before they reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Allow-Credentials", corsAllowCredentials)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
