package middleware

import (
	"net/http"
)

const (
	headerAllowOrigin   = "Access-Control-Allow-Origin"
	headerAllowMethods  = "Access-Control-Allow-Methods"
	headerAllowHeaders  = "Access-Control-Allow-Headers"
	headerExposeHeaders = "Access-Control-Expose-Headers"

	wildcard = "*"
)

var corsVary = []string{"Origin", "Access-Control-Request-Method", "Access-Control-Request-Headers"}

// CORSMiddleware allows any origin, method and header on every response,
// including the router's 404s. Every OPTIONS request is treated as a
// preflight: answered here with an empty 200 and never passed to next.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(headerAllowOrigin, wildcard)
		h.Set(headerAllowMethods, wildcard)
		h.Set(headerAllowHeaders, wildcard)
		h.Set(headerExposeHeaders, wildcard)
		for _, v := range corsVary {
			h.Add("Vary", v)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
