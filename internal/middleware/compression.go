package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that accept it.
// Requests under excludedPaths are served uncompressed.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	if len(excludedPaths) == 0 {
		return gzip.Gzip(gzip.DefaultCompression)
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(excludedPaths))
}
