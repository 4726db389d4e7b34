package cache

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// HitFunc runs when a cached page is about to be served instead of the
// handler. Side effects the handler would have had (visit tracking) go
// here.
type HitFunc func(c *gin.Context, slug string)

// Middleware caches successful public portfolio pages (/p/:slug).
// Everything else passes through untouched.
func Middleware(maxAge time.Duration, onHit HitFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		slug := slugFromPath(c.Request.URL.Path)
		if slug == "" {
			c.Next()
			return
		}

		if cached, found := Read(slug, maxAge); found {
			if onHit != nil {
				onHit(c, slug)
			}
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK &&
			strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/html") {
			Write(slug, writer.body.String())
		}
	}
}

// slugFromPath extracts the slug from /p/:slug paths only.
func slugFromPath(path string) string {
	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")
	if len(parts) == 2 && parts[0] == "p" && parts[1] != "" {
		return parts[1]
	}
	return ""
}
