package http

import (
	"io"
	"net/http"
)

const RootGreeting = "Portfolio Backend is up"

// HandleRoot ignores the request entirely.
func (h *HTTPHandlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, RootGreeting)
}
