package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// timedWriter injects the X-Process-Time header just before the response
// status is written, since headers cannot change once the body starts.
type timedWriter struct {
	gin.ResponseWriter
	start time.Time
}

func (w *timedWriter) setProcessTime() {
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set("X-Process-Time", fmt.Sprintf("%.4f", elapsed))
}

func (w *timedWriter) WriteHeader(code int) {
	if !w.Written() {
		w.setProcessTime()
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	if !w.Written() {
		w.setProcessTime()
	}
	return w.ResponseWriter.Write(b)
}

// Logger measures each request, stamps the X-Process-Time header and emits
// a structured access log line.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: start}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency_ms", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP Request")
	}
}
