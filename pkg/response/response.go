// Package response defines the uniform JSON envelope used by all handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the wire envelope: code mirrors the HTTP status, message is a
// human-readable outcome, data carries the payload.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "ok", Data: data})
}

// BadRequest maps validation failures.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: message})
}

// NotFound maps missing-resource failures.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: message})
}

// Forbidden maps authorization failures.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Message: message})
}

// Conflict maps invalid-transition failures; data can carry the allowed
// commands for caller-side retry.
func Conflict(c *gin.Context, message string, data any) {
	c.JSON(http.StatusConflict, Response{Code: http.StatusConflict, Message: message, Data: data})
}

// TooManyRequests maps rate-limit rejections.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Response{Code: http.StatusTooManyRequests, Message: message})
}

// InternalError hides internals behind a generic message.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: "internal error"})
}
