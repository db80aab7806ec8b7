package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every failing endpoint returns.
// Message is a short human-readable summary; Error optionally carries
// the underlying detail (a validation message, a driver error).
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageBody is the confirmation envelope (e.g. after a delete).
type MessageBody struct {
	Message string `json:"message"`
}

// ── success responses ──
// Successful list/create/update calls return the record or array bare,
// with no envelope, so the client can consume the body directly.

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Confirmation writes a 200 with a message-only body.
func Confirmation(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// ── error responses ──

// Error writes an error body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ErrorWithDetail writes an error body carrying the underlying detail.
func ErrorWithDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, ErrorBody{Message: message, Error: detail})
}

// ValidationFailed writes the 400 body every validation failure uses.
func ValidationFailed(c *gin.Context, detail string) {
	ErrorWithDetail(c, http.StatusBadRequest, "Validation error", detail)
}

// NotFound writes a 404 with the given message.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError writes a 500 with the given message and detail.
func InternalError(c *gin.Context, message, detail string) {
	ErrorWithDetail(c, http.StatusInternalServerError, message, detail)
}
