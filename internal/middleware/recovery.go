package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/logger"
	"github.com/noah-isme/academy-api/pkg/response"
)

// Recovery converts panics into 500 envelopes. The full failure is always
// logged; the response carries detail only in development so internals never
// leak to production callers.
func Recovery(log *logger.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				log.Failure("unhandled panic", err)

				message := apperrors.ErrInternal.Message
				if development {
					message = err.Error()
				}
				response.Error(c, apperrors.New(apperrors.ErrInternal.Code, http.StatusInternalServerError, message))
				c.Abort()
			}
		}()

		c.Next()
	}
}
