package server

import (
	"net/http"

	"github.com/muurk/cdterm/internal/logging"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs every request served by next
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status)
	})
}

// siteHandler serves the static pages from dir
func siteHandler(dir string) http.Handler {
	return logRequests(http.FileServer(http.Dir(dir)))
}
