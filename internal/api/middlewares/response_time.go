package middlewares

import (
	"net/http"
	"time"
)

const HeaderResponseTime = "X-Response-Time"

// timedWriter stamps the elapsed time into the headers just before they go out.
type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if !w.stamped {
		w.Header().Set(HeaderResponseTime, time.Since(w.start).String())
		w.stamped = true
	}
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
		// handler wrote nothing; net/http will send the implicit 200
		tw.stamp()
	})
}
