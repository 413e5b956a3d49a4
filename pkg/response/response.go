package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/format"
	"github.com/noah-isme/academy-api/pkg/pagination"
)

// Envelope is the uniform response wrapper. Success is the discriminant:
// consumers branch on it before reading Data or Error. Every envelope carries
// the request-time timestamp.
type Envelope struct {
	Success    bool             `json:"success"`
	Data       interface{}      `json:"data,omitempty"`
	Error      *apperrors.Error `json:"error,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Timestamp  string           `json:"timestamp"`
}

// JSON sends a success envelope with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, meta *pagination.Meta) {
	c.JSON(status, Envelope{
		Success:    true,
		Data:       data,
		Pagination: meta,
		Timestamp:  format.Timestamp(),
	})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, nil)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends a failure envelope, normalising the error into the common
// structure to pick the HTTP status.
func Error(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	c.JSON(appErr.Status, Envelope{
		Success:   false,
		Error:     appErr,
		Timestamp: format.Timestamp(),
	})
}
