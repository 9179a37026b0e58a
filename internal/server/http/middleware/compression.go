package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently unwraps gzip encoded request bodies.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
