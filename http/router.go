package http

import "net/http"

// NewRouter registers the projection endpoints. Every route is rate limited
// and tagged with a request id.
func NewRouter(h *ProjectionHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	routes := map[string]http.HandlerFunc{
		"/projection/compute": h.Compute,
		"/projection/charts":  h.Charts,
		"/projection/export":  h.Export,
		"/projection/compare": h.Compare,
	}
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return RequestIDMiddleware(mux)
}
