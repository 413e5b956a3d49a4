// Package bodylimit caps request body size. The limit is configured as a
// human-friendly size string ("1mb") parsed by pkg/format.
package bodylimit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

// New returns middleware that rejects request bodies larger than maxBytes.
// A non-positive limit disables the check.
func New(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			if c.Request.ContentLength > maxBytes {
				response.Error(c, apperrors.New("PAYLOAD_TOO_LARGE", http.StatusRequestEntityTooLarge, "request body too large"))
				c.Abort()
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
